//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graph

import (
	"fmt"
	"strconv"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/sent"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// SENTIMENT AND LENGTH OVER THE RELEASE PERIODS
//

const (
	SOLID      = "solid"
	DOTTED     = "dotted"
	SYMBOL     = "circle"
	SHORTAXIS  = "% of short summaries"
	SHORTSUFFX = " (% short)"
)

// PeriodSentiments - mean sentiment per period, one line per group; a segment into a period with fewer than
// minsumm summaries is dotted. If withshort the share of short summaries is drawn against a second axis.
func PeriodSentiments(fn string, groups []sent.Group, minsumm int, withshort bool) error {
	const (
		TITLE = "Mean sentence sentiment per release period"
		SUBT  = "dotted: fewer than %d summaries in the period"
		YNAME = "mean sentiment"
	)

	line := charts.NewLine()
	line.SetGlobalOptions(globals(TITLE, fmt.Sprintf(SUBT, minsumm), CHRTWIDTH, CHRTHEIGHT)...)
	line.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: "value"}),
	)
	line.SetXAxis(vv.TimePeriodLabels)

	if withshort {
		line.ExtendYAxis(opts.YAxis{Name: SHORTAXIS, Type: "value", Min: 0, Max: 100})
	}

	for g := range groups {
		means := sent.PeriodMeans(groups[g].Records)
		counts := sent.PeriodCounts(groups[g].Records)
		addsegments(line, groups[g].Label, color(g), means, counts, minsumm)

		if withshort {
			share := sent.ShortSharePerPeriod(groups[g].Records)
			ld := make([]opts.LineData, len(share))
			for i := range share {
				ld[i] = opts.LineData{Value: round(share[i]), Symbol: SYMBOL}
			}
			line.AddSeries(groups[g].Label+SHORTSUFFX, ld,
				charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1, ShowSymbol: true}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: color(g), Type: "dashed", Opacity: 0.5}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: color(g), Opacity: 0.5}),
			)
		}
	}

	return renderpage(fn, TITLE, components.PageCenterLayout, line)
}

// addsegments - each step j -> j+1 is its own two-point series; they share a name so the legend shows one entry
func addsegments(line *charts.Line, name string, col string, means []float64, counts []int, minsumm int) {
	for j := 0; j+1 < len(means); j++ {
		ld := make([]opts.LineData, len(means))
		for i := range ld {
			ld[i] = opts.LineData{Value: EMPTY}
		}
		ld[j] = opts.LineData{Value: nullable(means[j]), Symbol: SYMBOL}
		ld[j+1] = opts.LineData{Value: nullable(means[j+1]), Symbol: SYMBOL}
		line.AddSeries(name, ld,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: true}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: col, Width: 2, Type: SegmentStyle(counts[j+1], minsumm)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: col}),
		)
	}
}

// SegmentStyle - how to draw the line into a period holding n summaries
func SegmentStyle(n int, minsumm int) string {
	if n >= minsumm {
		return SOLID
	}
	return DOTTED
}

// SummariesPerPeriod - bars of the summary counts per period; optionally the short share against a second axis
func SummariesPerPeriod(fn string, groups []sent.Group, withshort bool) error {
	const (
		TITLE = "Summaries per release period"
		YNAME = "summaries"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(globals(TITLE, "", CHRTWIDTH, CHRTHEIGHT)...)
	bar.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: "value"}),
	)
	bar.SetXAxis(vv.TimePeriodLabels)

	if withshort {
		bar.ExtendYAxis(opts.YAxis{Name: SHORTAXIS, Type: "value", Min: 0, Max: 100})
	}

	for g := range groups {
		counts := sent.PeriodCounts(groups[g].Records)
		bd := make([]opts.BarData, len(counts))
		for i := range counts {
			bd[i] = opts.BarData{Value: counts[i]}
		}
		bar.AddSeries(groups[g].Label, bd, charts.WithItemStyleOpts(opts.ItemStyle{Color: color(g)}))

		if withshort {
			share := sent.ShortSharePerPeriod(groups[g].Records)
			ld := make([]opts.LineData, len(share))
			for i := range share {
				ld[i] = opts.LineData{Value: round(share[i]), Symbol: SYMBOL}
			}
			sl := charts.NewLine()
			sl.AddSeries(groups[g].Label+SHORTSUFFX, ld,
				charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1, ShowSymbol: true}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: color(g), Type: "dashed"}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: color(g)}),
			)
			bar.Overlap(sl)
		}
	}

	return renderpage(fn, TITLE, components.PageCenterLayout, bar)
}

// SummaryLengthProportions - share of summaries with exactly j sentences, one line per group
func SummaryLengthProportions(fn string, groups []sent.Group) error {
	const (
		TITLE = "Proportion of summaries by number of sentences"
	)

	series := make([][]float64, len(groups))
	names := make([]string, len(groups))
	for g := range groups {
		series[g] = sent.LengthProportions(groups[g].Records)
		names[g] = groups[g].Label
	}
	return renderpage(fn, TITLE, components.PageCenterLayout, lengthlines(TITLE, "", names, series))
}

// SummaryLengthProportionsPerPeriod - LengthProportions() of one group, one line per release period
func SummaryLengthProportionsPerPeriod(fn string, group sent.Group) error {
	const (
		TITLE = "Proportion of summaries by number of sentences and release period"
	)

	series := sent.LengthProportionsPerPeriod(group.Records)
	return renderpage(fn, TITLE, components.PageCenterLayout, lengthlines(TITLE, group.Label, vv.TimePeriodLabels, series))
}

func lengthlines(title string, subtitle string, names []string, series [][]float64) *charts.Line {
	const (
		XNAME = "sentences"
		YNAME = "proportion"
	)

	line := charts.NewLine()
	line.SetGlobalOptions(globals(title, subtitle, CHRTWIDTH, CHRTHEIGHT)...)
	line.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: XNAME}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: "value"}),
	)
	line.SetXAxis(sentenceaxis())

	for i := range series {
		ld := make([]opts.LineData, len(series[i]))
		for j := range series[i] {
			ld[j] = opts.LineData{Value: round(series[i][j])}
		}
		line.AddSeries(names[i], ld,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color(i), Width: 1}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color(i)}),
		)
	}
	return line
}

// SummaryLengthCount - raw number of summaries with exactly j sentences, one bar series per group
func SummaryLengthCount(fn string, groups []sent.Group) error {
	const (
		TITLE = "Number of summaries by number of sentences"
		XNAME = "sentences"
		YNAME = "summaries"
	)

	bar := charts.NewBar()
	bar.SetGlobalOptions(globals(TITLE, "", CHRTWIDTH, CHRTHEIGHT)...)
	bar.SetGlobalOptions(
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: XNAME}),
		charts.WithYAxisOpts(opts.YAxis{Name: YNAME, Type: "value"}),
	)
	bar.SetXAxis(sentenceaxis())

	for g := range groups {
		cc := sent.LengthCounts(groups[g].Records)
		bd := make([]opts.BarData, len(cc))
		for i := range cc {
			bd[i] = opts.BarData{Value: cc[i]}
		}
		bar.AddSeries(groups[g].Label, bd, charts.WithItemStyleOpts(opts.ItemStyle{Color: color(g)}))
	}

	return renderpage(fn, TITLE, components.PageCenterLayout, bar)
}

func sentenceaxis() []string {
	ax := make([]string, vv.MAXSENTLEN-1)
	for i := range ax {
		ax[i] = strconv.Itoa(i + 1)
	}
	return ax
}
