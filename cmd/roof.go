package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/roof"
)

var (
	roofDead     float64
	roofLive     float64
	roofSnow     float64
	roofExternal float64
	roofSpan     float64
	roofCA       float64
	roofMaterial string
	roofAnnexR   bool
)

var roofCmd = &cobra.Command{
	Use:   "roof",
	Short: "Supported cone roof plate thickness (Annex V)",
	Long: `Find the roof plate thickness for external pressure by the simplified
Annex V §7.2 buckling check.

  p_cr = k π² E (t/span)²
  accept the first candidate plate with p ≤ φ p_cr

Roof loads are combined into a single external pressure. By default live,
snow and vacuum act together; --annex-r checks the Annex R combinations
and uses the governing one.

Examples:
  # Default loads (1.0 kPa live, 0.5 kPa snow) on an 8 m roof
  gotank roof --diameter 8

  # Annex R combinations with 0.6 kPa vacuum and a 2 m rafter spacing
  gotank roof -D 20 --vacuum 0.6 --span 2 --annex-r`,
	Run: runRoof,
}

func init() {
	rootCmd.AddCommand(roofCmd)

	roofCmd.Flags().Float64VarP(&tankDiameter, "diameter", "D", 8, "Tank diameter (m)")
	roofCmd.Flags().Float64Var(&roofDead, "dead", 0, "Roof dead load DL (kPa)")
	roofCmd.Flags().Float64VarP(&roofLive, "live", "l", 1.0, "Roof live load Lr (kPa)")
	roofCmd.Flags().Float64VarP(&roofSnow, "snow", "s", 0.5, "Snow load S (kPa)")
	roofCmd.Flags().Float64Var(&roofExternal, "vacuum", 0, "Design external pressure Pe (kPa)")
	roofCmd.Flags().Float64Var(&roofSpan, "span", 0, "Unsupported plate span (m), D/4 when 0")
	roofCmd.Flags().Float64Var(&roofCA, "ca", roof.DefaultCorrosionAllowance, "Roof corrosion allowance (mm)")
	roofCmd.Flags().StringVarP(&roofMaterial, "material", "m", "A36", "Roof plate grade")
	roofCmd.Flags().BoolVar(&roofAnnexR, "annex-r", false, "Check the Annex R load combinations")
}

func runRoof(cmd *cobra.Command, args []string) {
	in := roof.DesignInput{
		Diameter: tankDiameter,
		Loads: api650.RoofLoads{
			Dead:     roofDead,
			Live:     roofLive,
			Snow:     roofSnow,
			External: roofExternal,
		},
		CorrosionAllowanceMM: roofCA,
		Material:             roofMaterial,
	}
	if roofSpan > 0 {
		in.SpanM = &roofSpan
	}
	combos := api650.BasicRoofCombinations
	if roofAnnexR {
		combos = api650.RoofCombinations
	}
	in.Combinations = combos

	result, err := roof.Design(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("         ROOF PLATE DESIGN - API 650 ANNEX V §7.2")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("LOAD COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tp (kPa)\n")
	fmt.Fprintf(w, "  ─\t───────────\t───────\n")
	for _, combo := range combos {
		marker := ""
		if combo.ID == result.Governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.3f%s\n", combo.ID, combo.Description, combo.Pressure(in.Loads), marker)
	}
	w.Flush()
	fmt.Println()

	sol := result.Solution
	fmt.Println("BUCKLING CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roof type:\t%s\n", result.Type)
	fmt.Fprintf(w, "  Material:\t%s\n", result.Material)
	fmt.Fprintf(w, "  Plate span:\t%.3f m\n", sol.SpanM)
	fmt.Fprintf(w, "  Governing pressure:\t%.3f kPa\n", result.TotalLoadKPa)
	if sol.Analytic {
		fmt.Fprintf(w, "  Plate thickness:\t%.2f mm ⚠ (beyond candidate plates, analytic)\n", sol.PlateThicknessMM)
	} else {
		fmt.Fprintf(w, "  Plate thickness:\t%.0f mm\n", sol.PlateThicknessMM)
		fmt.Fprintf(w, "  Slenderness (λ):\t%.1f\n", sol.Slenderness)
	}
	fmt.Fprintf(w, "  Buckling coefficient (k):\t%.3f\n", sol.K)
	fmt.Fprintf(w, "  φ·p_cr:\t%.3f kPa\n", sol.CriticalPressureKPa)
	fmt.Fprintf(w, "  Corrosion allowance:\t%.1f mm\n", result.CorrosionAllowanceMM)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  REQUIRED ROOF PLATE = %.1f mm          \n", sol.ThicknessMM)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
