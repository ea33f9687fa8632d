//    MovieSummaryAnalyzer
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package graph

import (
	"fmt"
	"math"
	"os"

	"github.com/e-gun/MovieSummaryAnalyzer/internal/lnch"
	"github.com/e-gun/MovieSummaryAnalyzer/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var Msg = lnch.Msg

//
// PAGES AND SHARED OPTIONS
//

const (
	CHRTWIDTH  = "1200px"
	CHRTHEIGHT = "700px"
	FONTSTYLE  = "normal"
	LEFTALIGN  = "20"
	SAVETYPE   = "png"
	SAVESTR    = "Save to file..."
	TEXTCOLOR  = ""
	PRECISION  = 4
)

// renderpage - the charts on one html page written to fn
func renderpage(fn string, title string, layout components.Layout, cc ...components.Charter) error {
	const (
		MSG1 = "wrote %s"
	)

	// [a] build the page
	p := components.NewPage()
	p.PageTitle = title
	p.SetLayout(layout)
	p.AddCharts(cc...)

	// [b] render it
	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, vv.WRITEPERMS)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	if err = p.Render(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("graph: rendering '%s': %w", fn, err)
	}

	Msg.FYI(fmt.Sprintf(MSG1, fn))
	return f.Close()
}

func titleopts(title string, subtitle string) opts.Title {
	tst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  16,
	}

	sst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  10,
	}

	return opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      subtitle,
		SubtitleStyle: &sst,
		Left:          "center",
	}
}

func toolbox(name string) opts.Toolbox {
	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  name,
		Title: SAVESTR, // get chinese if ""
	}

	tbf := opts.ToolBoxFeature{
		SaveAsImage: &tbs,
	}

	return opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &tbf,
	}
}

// globals - the options every chart here shares
func globals(title string, subtitle string, width string, height string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: width, Height: height}),
		charts.WithTitleOpts(titleopts(title, subtitle)),
		charts.WithToolboxOpts(toolbox(title)),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

// EMPTY - what echarts takes for a missing value
const EMPTY = "-"

// nullable - json has no NaN
func nullable(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return EMPTY
	}
	return round(v)
}

func round(val float64) float64 {
	ratio := math.Pow(10, float64(PRECISION))
	return math.Round(val*ratio) / ratio
}

func color(i int) string {
	return vv.TableauColors[i%len(vv.TableauColors)]
}
