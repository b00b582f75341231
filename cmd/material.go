package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/material"
)

var (
	recTemperature float64
	recThicknesses []float64
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Plate material catalog and grade recommendation",
	Long: `Inspect the plate material catalog (Table 4.2) and recommend grades
for a design temperature and set of plate thicknesses.

The catalog is read from --catalog (.json, .yaml or .xlsx) and falls back
to the built-in table.

Subcommands:
  list       - List the catalog grades
  recommend  - Rank suitable grades by allowable stress`,
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the material catalog",
	Run:   runMaterialList,
}

var materialRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend plate grades",
	Long: `Recommend up to three grades whose maximum thickness covers the
controlling (largest) plate thickness, at design temperatures of -29 °C
and above. Grades are ranked by allowable stress.

Examples:
  gotank material recommend --temperature 20 --thicknesses 10,8,6
  gotank material recommend --catalog blueprint.yaml -t 30`,
	Run: runMaterialRecommend,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.AddCommand(materialListCmd)
	materialCmd.AddCommand(materialRecommendCmd)

	materialRecommendCmd.Flags().Float64Var(&recTemperature, "temperature", 20, "Design metal temperature (°C)")
	materialRecommendCmd.Flags().Float64SliceVarP(&recThicknesses, "thicknesses", "t", api650.DefaultCourseThicknessesMM, "Plate thicknesses (mm)")
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func runMaterialList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("           PLATE MATERIALS - API 650 TABLE 4.2")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Grade\tFu min\tFu max\tFy\tt max\tS allow\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────\t──\t─────\t───────\n")
	for _, g := range catalog.Grades() {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n", g.Name,
			optional(g.TensileMin, "%.0f"),
			optional(g.TensileMax, "%.0f"),
			optional(g.YieldMin, "%.0f"),
			optional(g.MaxThickness, "%.0f"),
			optional(g.AllowableStress, "%.0f"))
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d grades (MPa, mm)\n", catalog.Len())
	fmt.Println()
}

func runMaterialRecommend(cmd *cobra.Command, args []string) {
	recs := material.Recommend(catalog, recTemperature, recThicknesses)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              MATERIAL RECOMMENDATION - API 650 4.2")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Design temperature:\t%.1f °C\n", recTemperature)
	fmt.Fprintf(w, "  Controlling thickness:\t%.1f mm\n", material.RequiredThickness(recThicknesses))
	w.Flush()
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("  No suitable grade in the catalog ✗")
		fmt.Println()
		return
	}

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tGrade\tS allow (MPa)\tFy (MPa)\tt max (mm)\n")
	fmt.Fprintf(w, "  ─\t─────\t─────────────\t────────\t──────────\n")
	for i, r := range recs {
		fmt.Fprintf(w, "  %d\t%s\t%.0f\t%.0f\t%.0f\n", i+1, r.Grade, r.AllowableStress, r.Yield, r.MaxThickness)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %s\n", recs[0].Reason)
	fmt.Println()
}
