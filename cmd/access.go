package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/access"
	"github.com/alexiusacademia/gotank/internal/api650"
)

var accessIn = access.DefaultInput()

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Stairway and handrail compliance (Tables 5.18 and 5.19)",
	Long: `Check a tank stairway against the Table 5.18 requirements and the
Table 5.19 rise-run relationship (610 mm ≤ 2R + r ≤ 660 mm).

Examples:
  gotank access --width 800 --angle 35 --handrail 810 --posts 2000 --rise 178 --run 254`,
	Run: runAccess,
}

func init() {
	rootCmd.AddCommand(accessCmd)

	accessCmd.Flags().Float64Var(&accessIn.ClearWidthMM, "width", accessIn.ClearWidthMM, "Stair clear width (mm)")
	accessCmd.Flags().Float64Var(&accessIn.AngleDeg, "angle", accessIn.AngleDeg, "Stair angle (degrees)")
	accessCmd.Flags().Float64Var(&accessIn.HandrailHeightMM, "handrail", accessIn.HandrailHeightMM, "Handrail height (mm)")
	accessCmd.Flags().Float64Var(&accessIn.PostSpacingMM, "posts", accessIn.PostSpacingMM, "Railing post spacing (mm)")
	accessCmd.Flags().Float64Var(&accessIn.RiseMM, "rise", accessIn.RiseMM, "Tread rise R (mm)")
	accessCmd.Flags().Float64Var(&accessIn.RunMM, "run", accessIn.RunMM, "Tread run r (mm)")
}

func runAccess(cmd *cobra.Command, args []string) {
	result, err := access.Check(accessIn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("        STAIRWAY COMPLIANCE - API 650 TABLES 5.18/5.19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("TABLE 5.18:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Clear width ≥ %.0f mm:\t%.0f mm\t%s\n", api650.StairMinClearWidth, accessIn.ClearWidthMM, status(result.Checks.ClearWidthOK))
	fmt.Fprintf(w, "  Angle ≤ %.0f°:\t%.1f°\t%s\n", api650.StairMaxAngle, accessIn.AngleDeg, status(result.Checks.AngleOK))
	fmt.Fprintf(w, "  Handrail %.0f-%.0f mm:\t%.0f mm\t%s\n", api650.HandrailMinHeight, api650.HandrailMaxHeight, accessIn.HandrailHeightMM, status(result.Checks.HandrailHeightOK))
	fmt.Fprintf(w, "  Post spacing ≤ %.0f mm:\t%.0f mm\t%s\n", api650.RailingMaxPostSpacing, accessIn.PostSpacingMM, status(result.Checks.PostSpacingOK))
	w.Flush()
	fmt.Println()

	fmt.Println("TABLE 5.19:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  2R + r:\t%.0f mm\t%s\n", 2*accessIn.RiseMM+accessIn.RunMM, status(result.RiseRunAcceptable))
	fmt.Fprintf(w, "  Closest table entry:\tR %.0f / r %.0f mm (%.1f°)\n", result.Match.Rise, result.Match.Run, result.Match.Angle)
	fmt.Fprintf(w, "  Difference:\t%.1f mm\n", result.MatchDifference)
	w.Flush()
	fmt.Println()

	if result.Passed {
		fmt.Println("  Stairway complies ✓")
	} else {
		fmt.Println("  Stairway does NOT comply ✗")
	}
	fmt.Println()
}
