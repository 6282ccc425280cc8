package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gosap/internal/plate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Plate moments per unit width
	combineM11 float64
	combineM22 float64
	combineM12 float64

	// Options
	combineAlpha  float64
	combineSimple bool
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Combine plate moments into Wood-Armer design moments",
	Long: `Combine the bending moments M11, M22 and the twisting moment M12 of a
plate element into reinforcement design moments (Wood-Armer).

The x-direction reinforcement is parallel to local axis 1. The second
layer is placed at angle alpha, measured clockwise from the x-axis.
alpha = 90 gives orthogonal reinforcement.

Output:
  Mx+  Ma+  - Design moments for the bottom (positive) reinforcement
  Mx-  Ma-  - Design moments for the top (negative) reinforcement

Examples:
  # Orthogonal reinforcement
  gosap combine --m11 100 --m22 50 --m12 20

  # Skew reinforcement at 60 degrees
  gosap combine --m11 100 --m22 50 --m12 20 --alpha 60

  # Simplified combination M +/- |M12|
  gosap combine --m11 100 --m22 50 --m12 20 --simple`,
	RunE: runCombine,
}

func init() {
	rootCmd.AddCommand(combineCmd)

	combineCmd.Flags().Float64Var(&combineM11, "m11", 0, "Bending moment M11 per unit width")
	combineCmd.Flags().Float64Var(&combineM22, "m22", 0, "Bending moment M22 per unit width")
	combineCmd.Flags().Float64Var(&combineM12, "m12", 0, "Twisting moment M12 per unit width")
	combineCmd.Flags().Float64VarP(&combineAlpha, "alpha", "a", plate.DefaultAlpha, "Angle of the second reinforcement layer (degrees)")
	combineCmd.Flags().BoolVarP(&combineSimple, "simple", "s", false, "Use the simplified combination M +/- |M12|")
}

func runCombine(cmd *cobra.Command, args []string) error {
	m := plate.MomentSet{M11: combineM11, M22: combineM22, M12: combineM12, Alpha: conf.Alpha}
	if cmd.Flags().Changed("alpha") {
		m.Alpha = combineAlpha
	}
	unit := opts.Units.MomentLabel() + "/" + opts.Units.Length()

	out := cmd.OutOrStdout()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "              PLATE DESIGN MOMENTS (WOOD-ARMER)")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "INPUT MOMENTS (%s):\n", unit)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  M11:\t%.2f\n", m.M11)
	fmt.Fprintf(w, "  M22:\t%.2f\n", m.M22)
	fmt.Fprintf(w, "  M12:\t%.2f\n", m.M12)
	if !combineSimple {
		fmt.Fprintf(w, "  Reinforcement angle (α):\t%.2f°\n", m.Alpha)
	}
	w.Flush()
	fmt.Fprintln(out)

	if combineSimple {
		s := plate.Simple(m)
		logger.Debug("simple combination", zap.Float64("m11_pos", s.M11Pos), zap.Float64("m22_pos", s.M22Pos))

		fmt.Fprintln(out, "DESIGN MOMENTS (M ± |M12|):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Direction 1:\tM11+ = %.2f\tM11- = %.2f\n", s.M11Pos, s.M11Neg)
		fmt.Fprintf(w, "  Direction 2:\tM22+ = %.2f\tM22- = %.2f\n", s.M22Pos, s.M22Neg)
		w.Flush()
		fmt.Fprintln(out)
		return nil
	}

	d, err := m.Combine()
	if err != nil {
		return err
	}
	logger.Debug("wood-armer combination",
		zap.Float64("mx_pos", d.MxPos), zap.Float64("ma_pos", d.MaPos),
		zap.Float64("mx_neg", d.MxNeg), zap.Float64("ma_neg", d.MaNeg))

	fmt.Fprintln(out, "DESIGN MOMENTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Layer\tx-direction\tα-direction")
	fmt.Fprintln(w, "  ─────\t───────────\t───────────")
	fmt.Fprintf(w, "  Bottom (+)\t%.2f\t%.2f\n", d.MxPos, d.MaPos)
	fmt.Fprintf(w, "  Top (-)\t%.2f\t%.2f\n", d.MxNeg, d.MaNeg)
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
