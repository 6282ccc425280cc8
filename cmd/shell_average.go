package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gosap/internal/results"
	"github.com/spf13/cobra"
)

var (
	averageFile    string
	averageOutput  string
	averageGroupBy []string
	averageFields  []string
	averageCases   []string
	averageSchema  string
	averageRows    int
)

var shellAverageCmd = &cobra.Command{
	Use:   "average",
	Short: "Average nodal results over shared joints",
	Long: `Average result rows sharing the same joint, load case, step type and
step number. A joint connected to several shell elements appears once per
element in the exported table; the averaged table has one row per joint.

Coordinates and text columns (element names) are taken from the first row
of each group. Rows keep the order in which their key first appears.

Schemas select the averaged fields of a known table:
  shell  - F11 F22 F12 FMax FMin FAngle FVM M11 M22 M12 MMax MMin MAngle V13 V23 VMax VAngle
  frame  - F1 F2 F3 M1 M2 M3 (frame joint forces)
  joint  - F1 F2 F3 M1 M2 M3 (joint reactions)
  base   - Fx Fy Fz Mx My Mz gx gy gz (base reactions)

Examples:
  gosap shell average -f shell-forces.csv -o averaged.xlsx
  gosap shell average -f forces.json --fields M11,M22,M12 --case DL,LL
  gosap shell average -f reactions.csv --schema joint --group-by Joint,LoadCase`,
	RunE: runShellAverage,
}

func init() {
	shellCmd.AddCommand(shellAverageCmd)

	shellAverageCmd.Flags().StringVarP(&averageFile, "file", "f", "", "Path to the result table [required]")
	shellAverageCmd.Flags().StringVarP(&averageOutput, "output", "o", "", "Save the averaged table (csv, json, yaml, xlsx)")
	shellAverageCmd.Flags().StringSliceVar(&averageGroupBy, "group-by", nil, "Key fields to group on (default: Joint,LoadCase,StepType,StepNum)")
	shellAverageCmd.Flags().StringSliceVar(&averageFields, "fields", nil, "Numeric fields to average")
	shellAverageCmd.Flags().StringSliceVarP(&averageCases, "case", "c", nil, "Load cases to keep (default: all)")
	shellAverageCmd.Flags().StringVar(&averageSchema, "schema", "", "Table schema: shell, frame, joint or base")
	shellAverageCmd.Flags().IntVarP(&averageRows, "rows", "n", 10, "Number of averaged rows to print (0 for all)")

	shellAverageCmd.MarkFlagRequired("file")
}

func runShellAverage(cmd *cobra.Command, args []string) error {
	t, err := loadResults(averageFile, averageCases)
	if err != nil {
		return err
	}
	avg, err := averageResults(t, averageGroupBy, averageFields, averageSchema)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                  AVERAGED NODAL RESULTS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Source:\t%s\n", averageFile)
	fmt.Fprintf(w, "  Units:\t%s\n", opts.Units)
	fmt.Fprintf(w, "  Rows read:\t%d\n", len(t.Rows))
	fmt.Fprintf(w, "  Rows averaged:\t%d\n", len(avg.Rows))
	fmt.Fprintf(w, "  Fields:\t%s\n", strings.Join(avg.Fields, ", "))
	w.Flush()
	fmt.Fprintln(out)

	printRows(out, avg, avg.Fields, averageRows)

	if averageOutput != "" {
		if err := saveResults(averageOutput, avg); err != nil {
			return err
		}
		fmt.Fprintf(out, "  Averaged table saved to: %s\n\n", averageOutput)
	}
	return nil
}

// printRows prints the key and the given fields of the first limit rows
func printRows(out io.Writer, t *results.Table, fields []string, limit int) {
	if len(t.Rows) == 0 {
		fmt.Fprintln(out, "  No rows.")
		fmt.Fprintln(out)
		return
	}
	n := len(t.Rows)
	if limit > 0 && limit < n {
		n = limit
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Joint\tLoadCase\tStep\t")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t", f)
	}
	fmt.Fprintln(w)
	for _, r := range t.Rows[:n] {
		step := r.StepType
		if step == "" {
			step = "-"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t", r.Joint, r.LoadCase, step)
		for _, f := range fields {
			if v, ok := r.Value(f); ok {
				fmt.Fprintf(w, "%.3f\t", v)
			} else {
				fmt.Fprint(w, "-\t")
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	if n < len(t.Rows) {
		fmt.Fprintf(out, "  ... %d more rows\n", len(t.Rows)-n)
	}
	fmt.Fprintln(out)
}
