// Package plotting consumes only the read-only accessors pkg/obs.Obs
// exposes after GammaMethod has run (value, dvalue, rho, tau_int
// histories) and renders them as go-echarts HTML, never touching Obs
// internals directly.
package plotting

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/latticeqcd/goerrors/pkg/obs"
)

// RhoHistory renders the normalized autocorrelation function rho(t) for one
// ensemble of o, with the chosen summation window marked.
func RhoHistory(o *obs.Obs, ensemble string) *charts.Line {
	rho := o.Rho(ensemble)
	window := o.Window(ensemble)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Autocorrelation function",
			Subtitle: ensemble,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "rho(t)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xAxis := make([]int, len(rho))
	items := make([]opts.LineData, len(rho))
	for t, v := range rho {
		xAxis[t] = t
		items[t] = opts.LineData{Value: v}
	}

	line.SetXAxis(xAxis).AddSeries("rho(t)", items,
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  "window",
			XAxis: window,
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Label:     &opts.Label{Show: opts.Bool(true)},
			LineStyle: &opts.LineStyle{Type: "dashed", Width: 1},
		}),
	)
	return line
}

// TauIntHistory renders the running integrated-autocorrelation-time curve
// tau_int(W) = 1/2 + sum_{t=1..W} rho(t) for one ensemble of o.
func TauIntHistory(o *obs.Obs, ensemble string) *charts.Line {
	rho := o.Rho(ensemble)

	hist := make([]float64, len(rho))
	if len(hist) > 0 {
		hist[0] = 0.5
		running := 0.5
		for w := 1; w < len(rho); w++ {
			running += rho[w]
			hist[w] = running
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Integrated autocorrelation time",
			Subtitle: ensemble,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "W"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "tau_int(W)"}),
	)

	xAxis := make([]int, len(hist))
	items := make([]opts.LineData, len(hist))
	for w, v := range hist {
		xAxis[w] = w
		items[w] = opts.LineData{Value: v}
	}
	line.SetXAxis(xAxis).AddSeries("tau_int(W)", items)
	return line
}

// RenderHTML writes chart (a *charts.Line, *charts.Scatter, or anything
// implementing Render) to w as a standalone HTML page.
func RenderHTML(w io.Writer, chart interface{ Render(io.Writer) error }) error {
	return chart.Render(w)
}
