package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Export writes the diagram to filename. The extension picks the output:
// .html gives an interactive chart, .png, .svg and .pdf a static image.
func Export(data MomentDiagramData, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if strings.EqualFold(filepath.Ext(filename), ".html") {
		return ExportHTMLDiagram(data, filename)
	}
	return ExportMomentDiagram(data, filename)
}

// ExportMomentDiagram exports the diagram to an image file
func ExportMomentDiagram(data MomentDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.Legend.Top = true

	minX, maxX := 0.0, 1.0
	first := true
	for i, s := range data.Series {
		if len(s.X) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
			if first || s.X[j] < minX {
				minX = s.X[j]
			}
			if first || s.X[j] > maxX {
				maxX = s.X[j]
			}
			first = false
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Radius = vg.Points(2.5)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}

	// Zero moment reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: 0},
		{X: maxX, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)
	p.Add(plotter.NewGrid())

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
