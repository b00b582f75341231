package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/diagram"
	"github.com/alexiusacademia/gotank/internal/shell"
	"github.com/alexiusacademia/gotank/internal/wind"
)

var (
	shellGrade      string
	shellE          float64
	shellCA         float64
	shellPlateWidth float64
	shellSd         float64
	shellSt         float64
	shellWindSpeed  float64
	shellDiagram    bool
	shellPlot       string
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Shell course design by the one-foot method",
	Long: `Size the shell courses of a tank by the API 650 one-foot method
(Section 5.6.3.2) for both design and hydrostatic test conditions.

  td = 4.9 D (H' - 0.3) G / (Sd E) + CA
  tt = the same with the test stress St
  tr = max(td, tt, 6 + CA), rounded up to an even mm

Wind girders for the sized shell are located with the transformed
shell method at the given wind speed.

Examples:
  # 8 m x 12 m tank in A36 with 3 mm corrosion allowance
  gotank shell --diameter 8 --height 12 --material A36 --ca 3

  # Override the allowable stresses and export a shell profile
  gotank shell -D 30 -H 18 --sd 160 --st 171 --plot shell.png`,
	Run: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	addTankFlags(shellCmd)
	shellCmd.Flags().StringVarP(&shellGrade, "material", "m", "A36", "Shell plate grade")
	shellCmd.Flags().Float64VarP(&shellE, "joint-efficiency", "E", 1.0, "Joint efficiency (0 < E ≤ 1)")
	shellCmd.Flags().Float64Var(&shellCA, "ca", 3, "Shell corrosion allowance (mm)")
	shellCmd.Flags().Float64VarP(&shellPlateWidth, "plate-width", "w", api650.DefaultPlateWidth, "Shell plate width (mm)")
	shellCmd.Flags().Float64Var(&shellSd, "sd", 0, "Design allowable stress Sd (MPa), catalog value when 0")
	shellCmd.Flags().Float64Var(&shellSt, "st", 0, "Test allowable stress St (MPa), catalog value when 0")
	shellCmd.Flags().Float64VarP(&shellWindSpeed, "wind-speed", "V", wind.DefaultWindSpeedKmh, "Design wind speed for girder placement (km/h)")
	shellCmd.Flags().BoolVar(&shellDiagram, "diagram", true, "Draw the shell elevation")
	shellCmd.Flags().StringVar(&shellPlot, "plot", "", "Export the shell profile (.png, .svg, .pdf)")
}

func runShell(cmd *cobra.Command, args []string) {
	in := shell.Input{
		Diameter:             tankDiameter,
		Height:               tankHeight,
		SpecificGravity:      tankSG,
		Grade:                shellGrade,
		JointEfficiency:      shellE,
		CorrosionAllowanceMM: shellCA,
		PlateWidthMM:         shellPlateWidth,
	}
	if shellSd > 0 {
		in.DesignStress = &shellSd
	}
	if shellSt > 0 {
		in.TestStress = &shellSt
	}

	result, err := shell.Design(catalog, in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	windIn := wind.DefaultInput(in.Diameter, in.Height)
	windIn.WindSpeedKmh = shellWindSpeed
	windIn.PlateWidthMM = in.PlateWidthMM
	windIn.CourseThicknessesMM = result.Thicknesses()
	windIn.TopThicknessMM = result.Courses[len(result.Courses)-1].RequiredThicknessMM
	windResult, err := wind.Analyze(windIn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("       SHELL DESIGN - API 650 ONE-FOOT METHOD (5.6.3.2)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (D):\t%.2f m\n", in.Diameter)
	fmt.Fprintf(w, "  Liquid height (H):\t%.2f m\n", in.Height)
	fmt.Fprintf(w, "  Specific gravity (G):\t%.3f\n", in.SpecificGravity)
	fmt.Fprintf(w, "  Material:\t%s", in.Grade)
	if result.MaterialFallback {
		fmt.Fprintf(w, " ⚠ (not in catalog, default stress used)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Joint efficiency (E):\t%.2f\n", in.JointEfficiency)
	fmt.Fprintf(w, "  Corrosion allowance:\t%.1f mm\n", in.CorrosionAllowanceMM)
	fmt.Fprintf(w, "  Plate width:\t%.0f mm\n", result.PlateWidthMM)
	fmt.Fprintf(w, "  Sd / St:\t%.1f / %.1f MPa\n", result.DesignStress, result.TestStress)
	w.Flush()
	fmt.Println()

	fmt.Println("SHELL COURSES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Course\tH' (m)\ttd (mm)\ttt (mm)\ttr (mm)\n")
	fmt.Fprintf(w, "  ──────\t──────\t───────\t───────\t───────\n")
	for _, c := range result.Courses {
		fmt.Fprintf(w, "  %d\t%.3f\t%.2f\t%.2f\t%.0f\n",
			c.Index, c.LocalHeightM, c.DesignThicknessMM, c.TestThicknessMM, c.RequiredThicknessMM)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("WIND GIRDERS (5.9.7):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Velocity pressure (p):\t%.3f psf\n", windResult.VelocityPressure)
	if windResult.StiffeningNeeded {
		fmt.Fprintf(w, "  Max unstiffened height (H1):\t%.0f mm\n", windResult.MaxUnstiffenedMM)
		fmt.Fprintf(w, "  Girder elevations:\t%s m\n", joinMM(windResult.RingElevationsM))
		fmt.Fprintf(w, "  Governing panel (H2):\t%.3f m\n", windResult.GoverningPanelM)
	} else {
		fmt.Fprintf(w, "  Intermediate girders:\tnot required ✓\n")
	}
	w.Flush()
	fmt.Println()

	diagramData := shellDiagramData(result, windResult.RingElevationsM, in)
	if shellDiagram {
		fmt.Print(diagram.DrawShellElevation(diagramData))
		fmt.Println()
	}

	fmt.Printf("  Bottom course hoop stress (full head): %.2f MPa\n", result.BottomHoopStress)
	fmt.Println()

	if shellPlot != "" {
		if path, err := diagram.ExportShellProfile(diagramData, shellPlot); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("  Shell profile exported to %s\n", path)
		}
		fmt.Println()
	}
}

func shellDiagramData(result *shell.Result, rings []float64, in shell.Input) diagram.ShellDiagramData {
	marks := make([]diagram.CourseMark, len(result.Courses))
	for i, c := range result.Courses {
		marks[i] = diagram.CourseMark{Index: c.Index, ThicknessMM: c.RequiredThicknessMM}
	}
	return diagram.ShellDiagramData{
		Diameter:        in.Diameter,
		Height:          in.Height,
		PlateWidthMM:    result.PlateWidthMM,
		Courses:         marks,
		RingElevationsM: rings,
	}
}
