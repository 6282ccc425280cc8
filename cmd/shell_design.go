package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gosap/internal/diagram"
	"github.com/alexiusacademia/gosap/internal/report"
	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/alexiusacademia/gosap/internal/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	designFile        string
	designOutput      string
	designAlpha       float64
	designMethod      string
	designCases       []string
	designNoAverage   bool
	designShowDiagram bool
	designPlotFile    string
	designAxis        string
	designReportFile  string
	designProject     string
	designRows        int
)

var shellDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Compute slab design moments from a shell force table",
	Long: `Compute reinforcement design moments for every joint of a shell force
table. The table must carry M11, M22 and M12.

Rows are averaged over shared joints first unless --no-average is given.

Methods:
  wood-armer  - MxPos, MaPos, MxNeg, MaNeg for layers at 0 and alpha degrees
  simple      - M11Pos, M11Neg, M22Pos, M22Neg as M ± |M12|

Examples:
  gosap shell design -f shell-forces.csv
  gosap shell design -f shell-forces.xlsx --alpha 60 -o design.xlsx
  gosap shell design -f forces.csv --diagram --plot moments.png --axis x
  gosap shell design -f forces.csv --report slab.pdf --project "Level 2 slab"`,
	RunE: runShellDesign,
}

func init() {
	shellCmd.AddCommand(shellDesignCmd)

	shellDesignCmd.Flags().StringVarP(&designFile, "file", "f", "", "Path to the shell force table [required]")
	shellDesignCmd.Flags().StringVarP(&designOutput, "output", "o", "", "Save the design table (csv, json, yaml, xlsx)")
	shellDesignCmd.Flags().Float64VarP(&designAlpha, "alpha", "a", 90, "Angle of the second reinforcement layer (degrees)")
	shellDesignCmd.Flags().StringVarP(&designMethod, "method", "m", "", "Combination method: wood-armer or simple")
	shellDesignCmd.Flags().StringSliceVarP(&designCases, "case", "c", nil, "Load cases to keep (default: all)")
	shellDesignCmd.Flags().BoolVar(&designNoAverage, "no-average", false, "Use the rows as read, without joint averaging")
	shellDesignCmd.Flags().IntVarP(&designRows, "rows", "n", 10, "Number of design rows to print (0 for all)")

	shellDesignCmd.MarkFlagRequired("file")

	// Diagram options
	shellDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII design moment diagram")
	shellDesignCmd.Flags().StringVar(&designPlotFile, "plot", "", "Export diagram to file (png, svg, pdf, html)")
	shellDesignCmd.Flags().StringVar(&designAxis, "axis", diagram.AxisIndex, "Diagram abscissa: index, x, y or z")

	// Report options
	shellDesignCmd.Flags().StringVar(&designReportFile, "report", "", "Write a PDF report")
	shellDesignCmd.Flags().StringVar(&designProject, "project", "", "Project name printed on the report")
}

func runShellDesign(cmd *cobra.Command, args []string) error {
	d := shell.NewDesigner()
	d.Alpha = conf.Alpha
	if cmd.Flags().Changed("alpha") {
		d.Alpha = designAlpha
	}
	method := conf.Method
	if designMethod != "" {
		method = designMethod
	}
	var err error
	if d.Method, err = shell.ParseMethod(method); err != nil {
		return err
	}

	t, err := loadResults(designFile, designCases)
	if err != nil {
		return err
	}
	if !designNoAverage {
		if t, err = averageResults(t, nil, nil, ""); err != nil {
			return err
		}
	}

	designed, err := d.Apply(t)
	if err != nil {
		return fmt.Errorf("error computing design moments: %w", err)
	}
	fields := d.Fields()
	governing := shell.Envelope(designed, fields)
	logger.Info("design moments computed",
		zap.String("method", string(d.Method)),
		zap.Float64("alpha", d.Alpha),
		zap.Int("rows", len(designed.Rows)),
	)

	out := cmd.OutOrStdout()
	unit := opts.Units.MomentLabel() + "/" + opts.Units.Length()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                  SLAB DESIGN MOMENTS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Source:\t%s\n", designFile)
	fmt.Fprintf(w, "  Units:\t%s (%s)\n", opts.Units, unit)
	fmt.Fprintf(w, "  Method:\t%s\n", d.Method)
	if d.Method == shell.WoodArmer {
		fmt.Fprintf(w, "  Reinforcement angle (α):\t%.2f°\n", d.Alpha)
	}
	fmt.Fprintf(w, "  Averaged:\t%t\n", !designNoAverage)
	fmt.Fprintf(w, "  Rows:\t%d\n", len(designed.Rows))
	w.Flush()
	fmt.Fprintln(out)

	printRows(out, designed, fields, designRows)

	fmt.Fprintf(out, "GOVERNING VALUES (%s):\n", unit)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		r, ok := governing[f]
		if !ok {
			continue
		}
		v, _ := r.Value(f)
		fmt.Fprintf(w, "  %s:\t%.3f\tat %s\n", f, v, r.Key)
	}
	w.Flush()
	fmt.Fprintln(out)

	if designShowDiagram || designPlotFile != "" {
		data, err := diagram.FromTable(designed, fields, designAxis, unit)
		if err != nil {
			return err
		}
		data.Title = fmt.Sprintf("Design Moments - %s", filepath.Base(designFile))

		if designShowDiagram {
			fmt.Fprintln(out, diagram.DrawASCIIMomentDiagram(data, false))
		}
		if designPlotFile != "" {
			if err := diagram.Export(data, designPlotFile); err != nil {
				return fmt.Errorf("error exporting diagram: %w", err)
			}
			logger.Info("diagram exported", zap.String("file", designPlotFile))
			fmt.Fprintf(out, "  Diagram exported to: %s\n", designPlotFile)
		}
	}

	if designReportFile != "" {
		if err := writeReport(designReportFile, d, designed, governing); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Report written to: %s\n", designReportFile)
	}

	if designOutput != "" {
		if err := saveResults(designOutput, designed); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Design table saved to: %s\n", designOutput)
	}
	fmt.Fprintln(out)
	return nil
}

func writeReport(path string, d *shell.Designer, t *results.Table, governing map[string]results.Row) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = report.Write(f, report.Input{
		Project:   designProject,
		Source:    filepath.Base(designFile),
		Method:    string(d.Method),
		Alpha:     d.Alpha,
		Options:   opts,
		Fields:    d.Fields(),
		Table:     t,
		Governing: governing,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	logger.Info("report written", zap.String("file", path))
	return nil
}
