package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/alexiusacademia/gosap/internal/setup"
	"github.com/phpdave11/gofpdf"
)

// Input describes a design moment report
type Input struct {
	Title   string
	Project string
	Source  string // Result file the table was read from
	Method  string
	Alpha   float64
	Options setup.Options
	Fields  []string // Table columns after the key columns
	Table   *results.Table

	// Governing rows per field, printed as a summary when set
	Governing map[string]results.Row
}

const (
	keyWidth   = 18.0
	fieldWidth = 22.0
	rowHeight  = 5.0
)

// headerLines describes the source of the table and the settings it was
// extracted and designed with
func headerLines(in Input) []string {
	unit := in.Options.Units
	lines := []string{
		fmt.Sprintf("Project: %s", in.Project),
		fmt.Sprintf("Source: %s", in.Source),
		fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")),
		fmt.Sprintf("Units: %s (moments in %s)", unit, unit.MomentLabel()),
		fmt.Sprintf("Method: %s, alpha = %.1f deg", in.Method, in.Alpha),
		fmt.Sprintf("Nonlinear static: %s, multi-step static: %s, multi-valued combos: %s",
			in.Options.NLStatic, in.Options.MSStatic, in.Options.MVCombo),
	}
	if len(in.Options.LoadCases) > 0 {
		lines = append(lines, "Load cases: "+strings.Join(in.Options.LoadCases, ", "))
	}
	if len(in.Options.Groups) > 0 {
		lines = append(lines, "Groups: "+strings.Join(in.Options.Groups, ", "))
	}
	return lines
}

// Write renders the report as PDF
func Write(w io.Writer, in Input) error {
	if in.Title == "" {
		in.Title = "Slab Design Moments"
	}

	orientation := "P"
	if len(in.Fields) > 4 {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	unit := in.Options.Units
	lines := headerLines(in)
	for _, l := range lines {
		pdf.Cell(0, 5, l)
		pdf.Ln(5)
	}
	pdf.Ln(4)

	if len(in.Governing) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Governing values")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 9)
		for _, f := range in.Fields {
			r, ok := in.Governing[f]
			if !ok {
				continue
			}
			v, _ := r.Value(f)
			pdf.Cell(0, rowHeight, fmt.Sprintf("%s = %.3f %s at %s", f, v, unit.MomentLabel(), r.Key))
			pdf.Ln(rowHeight)
		}
		pdf.Ln(4)
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(220, 220, 220)
		for _, h := range []string{"Joint", "Case", "Step"} {
			pdf.CellFormat(keyWidth, rowHeight+1, h, "1", 0, "C", true, 0, "")
		}
		for _, f := range in.Fields {
			pdf.CellFormat(fieldWidth, rowHeight+1, f, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	if in.Table != nil {
		header()
		_, pageHeight := pdf.GetPageSize()
		_, _, _, bottom := pdf.GetMargins()
		for _, r := range in.Table.Rows {
			if pdf.GetY()+rowHeight > pageHeight-bottom-15 {
				pdf.AddPage()
				header()
			}
			step := r.StepType
			if r.StepNum != 0 {
				step = fmt.Sprintf("%s %g", r.StepType, r.StepNum)
			}
			pdf.CellFormat(keyWidth, rowHeight, fmt.Sprint(r.Joint), "1", 0, "C", false, 0, "")
			pdf.CellFormat(keyWidth, rowHeight, r.LoadCase, "1", 0, "L", false, 0, "")
			pdf.CellFormat(keyWidth, rowHeight, step, "1", 0, "L", false, 0, "")
			for _, f := range in.Fields {
				cell := "-"
				if v, ok := r.Value(f); ok {
					cell = fmt.Sprintf("%.3f", v)
				}
				pdf.CellFormat(fieldWidth, rowHeight, cell, "1", 0, "R", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
