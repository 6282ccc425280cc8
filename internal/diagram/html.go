package diagram

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ExportHTMLDiagram writes the diagram as an interactive HTML chart
func ExportHTMLDiagram(data MomentDiagramData, filename string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    data.Title,
			Subtitle: data.YLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: data.XLabel,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Name:  data.YLabel,
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	for _, s := range data.Series {
		// Points as [position, moment] pairs on a value axis
		items := make([]opts.LineData, 0, len(s.X))
		for i := range s.X {
			items = append(items, opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}})
		}
		line.AddSeries(s.Name, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := line.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
