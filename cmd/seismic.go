package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/seismic"
)

var seismicIn = seismic.DefaultInput()

var seismicCmd = &cobra.Command{
	Use:   "seismic",
	Short: "Seismic base shear and overturning moment (Annex E, simplified)",
	Long: `Calculate the seismic coefficient, base shear and ringwall
overturning moment of a tank by the simplified Annex E method.

  Cs  = min(Ss / (R/Ie), 0.044 Ss Ie)
  V   = Cs W_eff
  Mrw = 0.75 Cs W_eff × 0.4 H

Examples:
  gotank seismic --ss 0.5 --weight 500000 --r 3 --height 12`,
	Run: runSeismic,
}

func init() {
	rootCmd.AddCommand(seismicCmd)

	seismicCmd.Flags().Float64Var(&seismicIn.Ss, "ss", seismicIn.Ss, "Short period spectral acceleration Ss (g)")
	seismicCmd.Flags().Float64Var(&seismicIn.S1, "s1", seismicIn.S1, "1-second spectral acceleration S1 (g)")
	seismicCmd.Flags().Float64VarP(&seismicIn.EffectiveN, "weight", "W", seismicIn.EffectiveN, "Effective seismic weight W_eff (N)")
	seismicCmd.Flags().Float64Var(&seismicIn.R, "r", seismicIn.R, "Response modification factor R")
	seismicCmd.Flags().Float64Var(&seismicIn.Ie, "ie", seismicIn.Ie, "Importance factor Ie")
	seismicCmd.Flags().Float64VarP(&seismicIn.Height, "height", "H", seismicIn.Height, "Tank height (m)")
}

func runSeismic(cmd *cobra.Command, args []string) {
	result, err := seismic.Calculate(seismicIn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        SEISMIC LOADS - API 650 ANNEX E (SIMPLIFIED)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ss / S1:\t%.3f / %.3f g\n", seismicIn.Ss, seismicIn.S1)
	fmt.Fprintf(w, "  Effective weight (W_eff):\t%.0f N\n", seismicIn.EffectiveN)
	fmt.Fprintf(w, "  R / Ie:\t%.2f / %.2f\n", seismicIn.R, seismicIn.Ie)
	fmt.Fprintf(w, "  Height (H):\t%.2f m\n", seismicIn.Height)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Seismic coefficient (Cs):\t%.4f\n", result.Cs)
	fmt.Fprintf(w, "  Impulsive coefficient (Ci):\t%.4f\n", result.Ci)
	fmt.Fprintf(w, "  Base shear (V):\t%.0f N\n", result.BaseShearN)
	fmt.Fprintf(w, "  Centroid height (Hc):\t%.2f m\n", result.CentroidM)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  OVERTURNING Mrw = %.0f N·m        \n", result.OverturningNm)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
