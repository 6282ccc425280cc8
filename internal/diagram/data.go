package diagram

import (
	"sort"
	"strings"

	"github.com/alexiusacademia/gosap/internal/results"
)

// Axes a moment diagram can be drawn along
const (
	AxisIndex = "index"
	AxisX     = "x"
	AxisY     = "y"
	AxisZ     = "z"
)

// Series is one curve of a diagram
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// MomentDiagramData holds the curves of a moment diagram
type MomentDiagramData struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

// FromTable builds a diagram of the given fields. Points are placed at the
// row index or at the joint coordinate along axis, and sorted by position.
// Rows without a value for a field are skipped for that field.
func FromTable(t *results.Table, fields []string, axis, unit string) (MomentDiagramData, error) {
	axis = strings.ToLower(axis)
	if axis == "" {
		axis = AxisIndex
	}

	data := MomentDiagramData{
		Title:  "Design Moments",
		YLabel: "Moment",
	}
	if unit != "" {
		data.YLabel += " (" + unit + ")"
	}

	switch axis {
	case AxisIndex:
		data.XLabel = "Result row"
	case AxisX, AxisY, AxisZ:
		data.XLabel = "Global " + strings.ToUpper(axis)
	default:
		return data, results.NewDataError(-1, axis, "diagram axis must be index, x, y or z")
	}

	for _, f := range fields {
		if !t.HasField(f) {
			return data, results.NewDataError(-1, f, "not in table")
		}
		s := Series{Name: f}
		for i, r := range t.Rows {
			v, ok := r.Value(f)
			if !ok {
				continue
			}
			pos := float64(i + 1)
			if axis != AxisIndex {
				if r.Coord == nil {
					return data, results.NewDataError(i, strings.ToUpper(axis), "row has no coordinates")
				}
				switch axis {
				case AxisX:
					pos = r.Coord.X
				case AxisY:
					pos = r.Coord.Y
				case AxisZ:
					pos = r.Coord.Z
				}
			}
			s.X = append(s.X, pos)
			s.Y = append(s.Y, v)
		}
		sort.Stable(byX(s))
		data.Series = append(data.Series, s)
	}
	return data, nil
}

// byX sorts the points of a series by position, keeping ties in row order
type byX Series

func (s byX) Len() int           { return len(s.X) }
func (s byX) Less(i, j int) bool { return s.X[i] < s.X[j] }
func (s byX) Swap(i, j int) {
	s.X[i], s.X[j] = s.X[j], s.X[i]
	s.Y[i], s.Y[j] = s.Y[j], s.Y[i]
}
