package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/wind"
)

var (
	windSpeed      float64
	windKz         float64
	windKzt        float64
	windKd         float64
	windI          float64
	windG          float64
	windTop        float64
	windPlateWidth float64
	windCourses    []float64
)

var windCmd = &cobra.Command{
	Use:   "wind",
	Short: "Wind girder check by the transformed shell method",
	Long: `Check the maximum unstiffened shell height and place intermediate
wind girders (API 650 Section 5.9.7).

  p  = 0.00256 Kz Kzt Kd V² I G           (psf, V in mph)
  H1  = 2.5 √(D t / p)                    (mm, p in Pa)
  Wtr = W (t_uniform / t_course)

Examples:
  # Default 150 km/h wind on an 8 m x 12 m tank with a 6 mm top course
  gotank wind --diameter 8 --height 12

  # Tapered shell, bottom course first
  gotank wind -D 20 -H 17.5 --courses 14,12,10,8,6,6,6,6,6`,
	Run: runWind,
}

func init() {
	rootCmd.AddCommand(windCmd)

	windCmd.Flags().Float64VarP(&tankDiameter, "diameter", "D", 8, "Tank diameter (m)")
	windCmd.Flags().Float64VarP(&tankHeight, "height", "H", 12, "Shell height (m)")
	windCmd.Flags().Float64VarP(&windSpeed, "speed", "V", wind.DefaultWindSpeedKmh, "Design wind speed (km/h)")
	windCmd.Flags().Float64Var(&windKz, "kz", wind.DefaultKz, "Velocity pressure exposure coefficient Kz")
	windCmd.Flags().Float64Var(&windKzt, "kzt", wind.DefaultKzt, "Topographic factor Kzt")
	windCmd.Flags().Float64Var(&windKd, "kd", wind.DefaultKd, "Directionality factor Kd")
	windCmd.Flags().Float64Var(&windI, "importance", wind.DefaultImportanceFactor, "Importance factor I")
	windCmd.Flags().Float64Var(&windG, "gust", wind.DefaultGustFactor, "Gust effect factor G")
	windCmd.Flags().Float64Var(&windTop, "top-thickness", wind.DefaultTopThicknessMM, "Top course thickness (mm)")
	windCmd.Flags().Float64VarP(&windPlateWidth, "plate-width", "w", api650.DefaultPlateWidth, "Shell plate width (mm)")
	windCmd.Flags().Float64SliceVar(&windCourses, "courses", nil, "Course thicknesses, bottom first (mm)")
}

func runWind(cmd *cobra.Command, args []string) {
	in := wind.Input{
		Diameter:            tankDiameter,
		Height:              tankHeight,
		WindSpeedKmh:        windSpeed,
		Kz:                  windKz,
		Kzt:                 windKzt,
		Kd:                  windKd,
		ImportanceFactor:    windI,
		GustFactor:          windG,
		TopThicknessMM:      windTop,
		PlateWidthMM:        windPlateWidth,
		CourseThicknessesMM: windCourses,
	}

	result, err := wind.Analyze(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("       WIND GIRDERS - API 650 TRANSFORMED SHELL (5.9.7)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("WIND PRESSURE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wind speed:\t%.1f km/h (%.1f mph)\n", in.WindSpeedKmh, result.WindSpeedMph)
	fmt.Fprintf(w, "  Kz / Kzt / Kd:\t%.2f / %.2f / %.2f\n", in.Kz, in.Kzt, in.Kd)
	fmt.Fprintf(w, "  I / G:\t%.2f / %.2f\n", in.ImportanceFactor, in.GustFactor)
	fmt.Fprintf(w, "  Velocity pressure (p):\t%.3f psf\n", result.VelocityPressure)
	w.Flush()
	fmt.Println()

	fmt.Println("SHELL STABILITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if math.IsInf(result.MaxUnstiffenedMM, 1) {
		fmt.Fprintf(w, "  Max unstiffened height (H1):\tunlimited\n")
	} else {
		fmt.Fprintf(w, "  Max unstiffened height (H1):\t%.0f mm\n", result.MaxUnstiffenedMM)
	}
	fmt.Fprintf(w, "  Uniform thickness (t_uniform):\t%.1f mm\n", result.UniformThicknessMM)
	fmt.Fprintf(w, "  Shell height:\t%.0f mm\n", in.Height*1000)
	w.Flush()
	fmt.Println()

	if !result.StiffeningNeeded {
		fmt.Println("  Intermediate wind girders are not required ✓")
		fmt.Println()
		return
	}

	fmt.Println("INTERMEDIATE GIRDERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tElevation (m)\n")
	fmt.Fprintf(w, "  ─\t─────────────\n")
	for i, z := range result.RingElevationsM {
		fmt.Fprintf(w, "  %d\t%.3f\n", i+1, z)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Panels (bottom first):\t%s m\n", joinMM(result.PanelHeightsM))
	fmt.Fprintf(w, "  Governing panel (H2):\t%.3f m\n", result.GoverningPanelM)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  GIRDER AREA REQUIRED = %.0f mm²      \n", result.RingAreaMM2)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
