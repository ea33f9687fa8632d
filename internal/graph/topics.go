//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graph

import (
	"fmt"
	"strconv"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/vec"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// TOPIC MODEL CHARTS
//

// YlGnBu - the sequential colormap of the heatmaps
var YlGnBu = []string{"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4", "#1d91c0", "#225ea8", "#253494", "#081d58"}

const (
	BARSPERROW = 5
	BARWIDTH   = "360px"
	BARHEIGHT  = "320px"
)

func topiclabels(k int) []string {
	tl := make([]string, k)
	for i := range tl {
		tl[i] = fmt.Sprintf("Topic %d", i)
	}
	return tl
}

func heatmap(title string, subtitle string, xname string, yname string, xax []string, yax []string, data []opts.HeatMapData,
	lo float64, hi float64, label opts.Label) *charts.HeatMap {

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(globals(title, subtitle, CHRTWIDTH, CHRTHEIGHT)...)
	hm.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Name: xname, Type: "category", SplitArea: &opts.SplitArea{Show: true}}),
		charts.WithYAxisOpts(opts.YAxis{Name: yname, Type: "category", Data: yax, SplitArea: &opts.SplitArea{Show: true}}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        float32(lo),
			Max:        float32(hi),
			InRange:    &opts.VisualMapInRange{Color: YlGnBu},
		}),
	)
	hm.SetXAxis(xax).AddSeries(title, data, charts.WithLabelOpts(label))
	return hm
}

// TopWordsHeatmap - topics on one axis, word rank on the other; cells colored by weight and labelled with the word
func TopWordsHeatmap(fn string, table [][]vec.WordWeight) error {
	const (
		TITLE = "Topic top words"
		SUBT  = "color: topic-word weight"
		XNAME = "Word Rank"
		YNAME = "Topics"
	)

	if len(table) == 0 {
		return vec.ErrEmptyVocabulary
	}
	k := len(table[0])

	ranks := make([]string, len(table))
	var data []opts.HeatMapData
	maxw := 0.0
	for r := range table {
		ranks[r] = strconv.Itoa(r + 1)
		for t := 0; t < k; t++ {
			ww := table[r][t]
			data = append(data, opts.HeatMapData{Name: ww.Word, Value: [3]interface{}{r, t, round(ww.Weight)}})
			if ww.Weight > maxw {
				maxw = ww.Weight
			}
		}
	}

	hm := heatmap(TITLE, SUBT, XNAME, YNAME, ranks, topiclabels(k), data, 0, maxw, opts.Label{Show: true, Formatter: "{b}"})
	return renderpage(fn, TITLE, components.PageCenterLayout, hm)
}

// TopWordsBars - one horizontal bar chart per topic; the flex layout puts BARSPERROW of them on a row
func TopWordsBars(fn string, table [][]vec.WordWeight) error {
	const (
		TITLE = "Topic top words"
	)

	if len(table) == 0 {
		return vec.ErrEmptyVocabulary
	}
	k := len(table[0])

	var cc []components.Charter
	for t := 0; t < k; t++ {
		// reversed: the first category sits at the bottom of a flipped axis
		words := make([]string, len(table))
		bd := make([]opts.BarData, len(table))
		for r := range table {
			i := len(table) - 1 - r
			words[i] = table[r][t].Word
			bd[i] = opts.BarData{Value: round(table[r][t].Weight)}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: BARWIDTH, Height: BARHEIGHT}),
			charts.WithTitleOpts(titleopts(topiclabels(k)[t], "")),
			charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		)
		bar.SetXAxis(words).
			AddSeries(topiclabels(k)[t], bd, charts.WithItemStyleOpts(opts.ItemStyle{Color: color(t)})).
			XYReversal()
		cc = append(cc, bar)
	}

	return renderpage(fn, TITLE, components.PageFlexLayout, cc...)
}

// SimilarityHeatmap - the K×K topic similarity matrix
func SimilarityHeatmap(fn string, sim mat.Matrix) error {
	const (
		TITLE = "Inter-topic similarity"
		SUBT  = "cosine similarity of the topic-word distributions"
	)

	k, _ := sim.Dims()
	labels := topiclabels(k)

	var data []opts.HeatMapData
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, j, round(sim.At(i, j))}})
		}
	}

	hm := heatmap(TITLE, SUBT, "", "", labels, labels, data, 0, 1, opts.Label{Show: true})
	return renderpage(fn, TITLE, components.PageCenterLayout, hm)
}

// TopicPrevalence - documents per dominant topic next to the summed topic weights scaled to the largest
func TopicPrevalence(fn string, dominant []int, scaled []float64) error {
	const (
		TITLE  = "Topic prevalence"
		DOMNAM = "documents by dominant topic"
		SCLNAM = "scaled topic weight"
	)

	labels := topiclabels(len(dominant))

	dd := make([]opts.BarData, len(dominant))
	for i := range dominant {
		dd[i] = opts.BarData{Value: dominant[i]}
	}

	ss := make([]opts.BarData, len(scaled))
	for i := range scaled {
		ss[i] = opts.BarData{Value: round(scaled[i])}
	}

	db := charts.NewBar()
	db.SetGlobalOptions(globals(DOMNAM, "", CHRTWIDTH, CHRTHEIGHT)...)
	db.SetXAxis(labels).AddSeries(DOMNAM, dd, charts.WithItemStyleOpts(opts.ItemStyle{Color: color(0)}))

	sb := charts.NewBar()
	sb.SetGlobalOptions(globals(SCLNAM, "", CHRTWIDTH, CHRTHEIGHT)...)
	sb.SetXAxis(labels).AddSeries(SCLNAM, ss, charts.WithItemStyleOpts(opts.ItemStyle{Color: color(1)}))

	return renderpage(fn, TITLE, components.PageCenterLayout, db, sb)
}
