// Package chart renders a comparison of current and historical query
// results as an HTML chart.
//
// The chart overlays the two result series the same way the comparison
// itself pairs them: both series come from the same query, so they share
// the x axis. Rendering is delegated to go-echarts; this package only maps
// tables and options onto it.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/snowshift-labs/snowshift/pkg/core"
)

// Kind selects the chart series style.
type Kind string

const (
	KindBars  Kind = "bars"
	KindLines Kind = "lines"
	KindBoth  Kind = "both"
)

// Series colors: historical renders behind in yellow, current in cyan.
const (
	historicalColor = "#FFD100"
	currentColor    = "#00E0FF"
)

// Options configures the comparison chart. Zero values get defaults.
type Options struct {
	CurrentLabel    string // default "Current Data"
	HistoricalLabel string // default "Historical Data"
	Title           string // default "Data Comparison"
	Kind            Kind   // default KindBoth
	DateFormat      string // x-axis label format, passed to the chart engine
}

func (o Options) withDefaults() Options {
	if o.CurrentLabel == "" {
		o.CurrentLabel = "Current Data"
	}
	if o.HistoricalLabel == "" {
		o.HistoricalLabel = "Historical Data"
	}
	if o.Title == "" {
		o.Title = "Data Comparison"
	}
	if o.Kind == "" {
		o.Kind = KindBoth
	}
	return o
}

// Chart is an opaque handle to a rendered comparison, written out as a
// self-contained HTML document.
type Chart struct {
	renderer interface {
		Render(w io.Writer) error
	}
}

// Render writes the chart HTML to w.
func (c *Chart) Render(w io.Writer) error {
	return c.renderer.Render(w)
}

// WriteHTML renders the chart to a file at path.
func (c *Chart) WriteHTML(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := c.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// Comparison builds a chart from a current/historical table pair. xCol and
// yCol name the columns to plot; both tables must have them. Rows are
// plotted positionally against the current table's x values, which assumes
// both results share row ordering on the x column (they come from the same
// ORDER BY).
func Comparison(current, historical *core.Table, xCol, yCol string, o Options) (*Chart, error) {
	o = o.withDefaults()

	switch o.Kind {
	case KindBars, KindLines, KindBoth:
	default:
		return nil, fmt.Errorf("unknown chart kind %q (want bars, lines, or both)", o.Kind)
	}

	xValues, err := current.Column(xCol)
	if err != nil {
		return nil, fmt.Errorf("current table: %w", err)
	}
	currentY, err := current.Column(yCol)
	if err != nil {
		return nil, fmt.Errorf("current table: %w", err)
	}
	if !historical.HasColumn(xCol) {
		return nil, fmt.Errorf("historical table: column %q not found", xCol)
	}
	historicalY, err := historical.Column(yCol)
	if err != nil {
		return nil, fmt.Errorf("historical table: %w", err)
	}

	xAxis := make([]string, len(xValues))
	for i, v := range xValues {
		xAxis[i] = core.FormatValue(v)
	}

	var line *charts.Line
	if o.Kind == KindLines || o.Kind == KindBoth {
		line = buildLines(xAxis, currentY, historicalY, o, xCol, yCol)
	}

	if o.Kind == KindLines {
		return &Chart{renderer: line}, nil
	}

	bar := buildBars(xAxis, currentY, historicalY, o, xCol, yCol)
	if o.Kind == KindBoth {
		bar.Overlap(line)
	}
	return &Chart{renderer: bar}, nil
}

func globalOptions(o Options, xCol, yCol string) []charts.GlobalOpts {
	axisLabel := &opts.AxisLabel{Rotate: 90}
	if o.DateFormat != "" {
		axisLabel.Formatter = types.FuncStr(o.DateFormat)
	}
	return []charts.GlobalOpts{
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5%"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1500px", Height: "600px"}),
		charts.WithXAxisOpts(opts.XAxis{Name: xCol, AxisLabel: axisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: yCol}),
	}
}

func buildBars(xAxis []string, currentY, historicalY []any, o Options, xCol, yCol string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions(o, xCol, yCol)...)

	// Historical first so the current series draws on top of it.
	bar.SetXAxis(xAxis).
		AddSeries(o.HistoricalLabel, barData(historicalY),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: historicalColor, Opacity: 0.2})).
		AddSeries(o.CurrentLabel, barData(currentY),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: currentColor, Opacity: 0.2}))
	return bar
}

func buildLines(xAxis []string, currentY, historicalY []any, o Options, xCol, yCol string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions(o, xCol, yCol)...)
	line.SetXAxis(xAxis).
		AddSeries(o.HistoricalLabel+" Trend", lineData(historicalY),
			charts.WithLineStyleOpts(opts.LineStyle{Color: historicalColor, Width: 4})).
		AddSeries(o.CurrentLabel+" Trend", lineData(currentY),
			charts.WithLineStyleOpts(opts.LineStyle{Color: currentColor, Width: 4}))
	return line
}

func barData(values []any) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}
	return data
}

func lineData(values []any) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
