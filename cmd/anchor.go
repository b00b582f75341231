package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/anchor"
)

var (
	anchorWind    float64
	anchorSeismic float64
	anchorDead    float64
)

var anchorCmd = &cobra.Command{
	Use:   "anchor",
	Short: "Anchorage check and anchor chair count",
	Long: `Compare the governing overturning moment (wind or seismic) with the
dead load restoring moment W·D/2. When it is exceeded the uplift is

  U = (M - W D/2) / (0.8 D)

and is shared by chairs of 50 kN each, with at least 8 chairs.

Examples:
  gotank anchor --diameter 8 --wind-moment 1e6 --seismic-moment 8e5 --dead 5e5`,
	Run: runAnchor,
}

func init() {
	rootCmd.AddCommand(anchorCmd)

	anchorCmd.Flags().Float64VarP(&tankDiameter, "diameter", "D", 8, "Tank diameter (m)")
	anchorCmd.Flags().Float64VarP(&tankHeight, "height", "H", 12, "Tank height (m)")
	anchorCmd.Flags().Float64Var(&anchorWind, "wind-moment", 1e6, "Wind overturning moment (N·m)")
	anchorCmd.Flags().Float64Var(&anchorSeismic, "seismic-moment", 8e5, "Seismic overturning moment (N·m)")
	anchorCmd.Flags().Float64Var(&anchorDead, "dead", 5e5, "Resisting dead weight (N)")
}

func runAnchor(cmd *cobra.Command, args []string) {
	result, err := anchor.Calculate(anchor.Input{
		Diameter:        tankDiameter,
		Height:          tankHeight,
		WindMomentNm:    anchorWind,
		SeismicMomentNm: anchorSeismic,
		DeadWeightN:     anchorDead,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 ANCHORAGE CHECK - ANCHOR CHAIRS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wind moment:\t%.0f N·m\n", anchorWind)
	fmt.Fprintf(w, "  Seismic moment:\t%.0f N·m\n", anchorSeismic)
	fmt.Fprintf(w, "  Governing overturning:\t%.0f N·m\n", result.OverturningNm)
	fmt.Fprintf(w, "  Restoring (W·D/2):\t%.0f N·m\n", result.RestoringNm)
	w.Flush()
	fmt.Println()

	if !result.Required {
		fmt.Println("  Tank is self-anchored, no anchorage required ✓")
		fmt.Println()
		return
	}

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Uplift (U):\t%.0f N\n", result.UpliftN)
	fmt.Fprintf(w, "  Chair spacing:\t%.3f m\n", result.SpacingM)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ANCHOR CHAIRS REQUIRED = %d             \n", result.Chairs)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
