package diagram

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Goldenrod,
}

// DrawASCIIMomentDiagram renders the diagram as a terminal chart followed by
// the extreme value of every series.
func DrawASCIIMomentDiagram(data MomentDiagramData, color bool) string {
	var sb strings.Builder

	var ys [][]float64
	for _, s := range data.Series {
		if len(s.Y) > 0 {
			ys = append(ys, s.Y)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString("  " + strings.Repeat("─", 61) + "\n")

	if len(ys) == 0 {
		sb.WriteString("  (no data)\n")
		return sb.String()
	}

	opts := []asciigraph.Option{
		asciigraph.Height(12),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("%s vs %s", data.YLabel, data.XLabel)),
	}
	if width := longest(ys); width > 72 {
		opts = append(opts, asciigraph.Width(72))
	}
	if color {
		opts = append(opts, asciigraph.SeriesColors(seriesColors[:min(len(ys), len(seriesColors))]...))
	}
	sb.WriteString(asciigraph.PlotMany(ys, opts...))
	sb.WriteString("\n\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Series\tMin\tMax\tPoints\n")
	fmt.Fprintf(w, "  ──────\t───\t───\t──────\n")
	for _, s := range data.Series {
		if len(s.Y) == 0 {
			fmt.Fprintf(w, "  %s\t-\t-\t0\n", s.Name)
			continue
		}
		lo, hi := s.Y[0], s.Y[0]
		for _, v := range s.Y {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%d\n", s.Name, lo, hi, len(s.Y))
	}
	w.Flush()

	return sb.String()
}

func longest(ys [][]float64) int {
	n := 0
	for _, y := range ys {
		n = max(n, len(y))
	}
	return n
}
