package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/bottom"
)

var (
	bottomGrade string
	bottomCA    float64

	annularShell  []float64
	annularEdge   float64
	annularShellW float64
	annularLiqW   float64
)

var bottomCmd = &cobra.Command{
	Use:   "bottom",
	Short: "Bottom plate thickness (5.4)",
	Long: `Calculate the bottom plate thickness for the hydrostatic head.

  tb = max(2.6 D H G / S + CA, 6 + CA)

Examples:
  gotank bottom --diameter 8 --height 12 --material A36 --ca 3`,
	Run: runBottom,
}

var annularCmd = &cobra.Command{
	Use:   "annular",
	Short: "Annular bottom plate requirement and size (5.5)",
	Long: `Decide whether an annular bottom plate is required and size it.
An annular plate is required when D exceeds 36 ft or the shell and liquid
bearing pressure exceeds 25 kPa.

Shell and liquid weights are estimated from the course thicknesses unless
given.

Examples:
  gotank annular --diameter 8 --height 12
  gotank annular -D 30 -H 15 --shell 20,16,12,10,8,8,8`,
	Run: runAnnular,
}

func init() {
	rootCmd.AddCommand(bottomCmd)
	rootCmd.AddCommand(annularCmd)

	addTankFlags(bottomCmd)
	bottomCmd.Flags().StringVarP(&bottomGrade, "material", "m", "A36", "Bottom plate grade")
	bottomCmd.Flags().Float64Var(&bottomCA, "ca", 3, "Bottom corrosion allowance (mm)")

	addTankFlags(annularCmd)
	annularCmd.Flags().Float64SliceVar(&annularShell, "shell", api650.DefaultCourseThicknessesMM, "Shell course thicknesses (mm)")
	annularCmd.Flags().Float64Var(&annularEdge, "edge", 0, "Projection inside the shell (mm), 600 when 0")
	annularCmd.Flags().Float64Var(&annularShellW, "shell-weight", 0, "Known shell weight (kg), estimated when 0")
	annularCmd.Flags().Float64Var(&annularLiqW, "liquid-weight", 0, "Known liquid weight (kg), estimated when 0")
}

func runBottom(cmd *cobra.Command, args []string) {
	result, err := bottom.DesignPlate(catalog, bottom.PlateInput{
		Diameter:             tankDiameter,
		Height:               tankHeight,
		SpecificGravity:      tankSG,
		Grade:                bottomGrade,
		CorrosionAllowanceMM: bottomCA,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("            BOTTOM PLATE DESIGN - API 650 5.4")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter / height:\t%.2f / %.2f m\n", tankDiameter, tankHeight)
	fmt.Fprintf(w, "  Specific gravity (G):\t%.3f\n", tankSG)
	fmt.Fprintf(w, "  Material:\t%s", result.Grade)
	if result.MaterialFallback {
		fmt.Fprintf(w, " ⚠ (not in catalog)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Allowable stress (S):\t%.1f MPa\n", result.AllowableStress)
	fmt.Fprintf(w, "  Corrosion allowance:\t%.1f mm\n", result.CorrosionAllowanceMM)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  BOTTOM PLATE tb = %.2f mm            \n", result.ThicknessMM)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}

func runAnnular(cmd *cobra.Command, args []string) {
	in := bottom.AnnularInput{
		Diameter:           tankDiameter,
		Height:             tankHeight,
		SpecificGravity:    tankSG,
		ShellThicknessesMM: annularShell,
		EdgeDistanceMM:     annularEdge,
	}
	if annularShellW > 0 {
		in.ShellWeightKg = &annularShellW
	}
	if annularLiqW > 0 {
		in.LiquidWeightKg = &annularLiqW
	}

	result, err := bottom.DesignAnnular(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("           ANNULAR BOTTOM PLATE - API 650 5.5")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter:\t%.2f m (%.2f ft)\n", tankDiameter, result.DiameterFt)
	fmt.Fprintf(w, "  Shell weight:\t%.0f kg\n", result.ShellWeightKg)
	fmt.Fprintf(w, "  Liquid weight:\t%.0f kg\n", result.LiquidWeightKg)
	fmt.Fprintf(w, "  Bearing pressure:\t%.3f kPa\n", result.BearingKPa)
	w.Flush()
	fmt.Println()

	if !result.Required {
		fmt.Println("  Annular bottom plate is not required ✓")
		fmt.Println()
		return
	}

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ANNULAR PLATE %.0f mm × %.0f mm wide     \n", result.ThicknessMM, result.WidthMM)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
