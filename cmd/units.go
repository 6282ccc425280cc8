package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gosap/internal/setup"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List unit systems and result option selectors",
	Long: `List the unit systems results can be reported in, and the selectors
for nonlinear static, multi-step static and multi-valued combination
results. Units and selectors are given by name or by code in the
configuration file, the environment (GOSAP_UNITS, GOSAP_RESULTS_NL_STATIC,
...) or the --units flag.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out)
		fmt.Fprintln(out, "UNIT SYSTEMS:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Code\tName\tForce\tLength\tTemperature\t")
		for _, u := range setup.Units() {
			mark := ""
			if u == opts.Units {
				mark = "(current)"
			}
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\n", int(u), u, u.Force(), u.Length(), u.Temperature(), mark)
		}
		w.Flush()
		fmt.Fprintln(out)

		fmt.Fprintln(out, "STEP SELECTORS (nl_static, ms_static):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, m := range setup.StepModes() {
			fmt.Fprintf(w, "  %d\t%s\n", int(m), m)
		}
		w.Flush()
		fmt.Fprintln(out)

		fmt.Fprintln(out, "COMBINATION SELECTORS (mv_combo):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, m := range setup.ComboModes() {
			fmt.Fprintf(w, "  %d\t%s\n", int(m), m)
		}
		w.Flush()
		fmt.Fprintln(out)

		fmt.Fprintf(out, "  Current: units=%s nl_static=%s ms_static=%s mv_combo=%s\n\n",
			opts.Units, opts.NLStatic, opts.MSStatic, opts.MVCombo)
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
