package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/capacity"
	"github.com/alexiusacademia/gotank/internal/diagram"
	"github.com/alexiusacademia/gotank/internal/export"
)

var (
	// Capacity inputs
	capTemperature  float64
	capInternal     float64
	capInternalUnit string
	capExternal     float64
	capExternalUnit string
	capCA           float64

	// Outputs
	capShowTable bool
	capChart     bool
	capCSV       string
	capXLSX      string
	capPlot      string
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Tank capacity, strapping table and capacity curve",
	Long: `Calculate the nominal (Annex A), geometric, working and freeboard
capacity of a vertical cylindrical tank, and the height-capacity curve
at 100 mm increments.

  C = 0.14 × D² × H   (barrels, D and H in feet)

Examples:
  # 8 m diameter, 12 m high tank
  gotank capacity --diameter 8 --height 12

  # Export the strapping table and a capacity curve plot
  gotank capacity --diameter 20 --height 15 --csv table.csv --xlsx table.xlsx --plot curve.png`,
	Run: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)

	addTankFlags(capacityCmd)
	capacityCmd.Flags().Float64Var(&capTemperature, "temperature", 20, "Operating temperature (°C)")
	capacityCmd.Flags().Float64Var(&capInternal, "internal-pressure", 0, "Internal design pressure")
	capacityCmd.Flags().StringVar(&capInternalUnit, "internal-unit", capacity.UnitBar, "Internal pressure unit (bar, kPa)")
	capacityCmd.Flags().Float64Var(&capExternal, "external-pressure", 0, "External design pressure")
	capacityCmd.Flags().StringVar(&capExternalUnit, "external-unit", capacity.UnitBar, "External pressure unit (bar, kPa)")
	capacityCmd.Flags().Float64Var(&capCA, "ca", 3, "Corrosion allowance for every component (mm)")

	capacityCmd.Flags().BoolVarP(&capShowTable, "table", "t", false, "Print the full strapping table")
	capacityCmd.Flags().BoolVar(&capChart, "chart", false, "Draw the capacity curve in the terminal")
	capacityCmd.Flags().StringVar(&capCSV, "csv", "", "Write the strapping table to a CSV file")
	capacityCmd.Flags().StringVar(&capXLSX, "xlsx", "", "Write the strapping table to an Excel workbook")
	capacityCmd.Flags().StringVar(&capPlot, "plot", "", "Export the capacity curve (.png, .svg, .pdf)")
}

func runCapacity(cmd *cobra.Command, args []string) {
	in := capacity.Input{
		Diameter:             tankDiameter,
		Height:               tankHeight,
		SpecificGravity:      tankSG,
		OperatingTemperature: capTemperature,
		InternalPressure:     capInternal,
		InternalPressureUnit: capInternalUnit,
		ExternalPressure:     capExternal,
		ExternalPressureUnit: capExternalUnit,
		CorrosionAllowances: capacity.CorrosionAllowances{
			Shell: capCA, Bottom: capCA, Roof: capCA, Structure: capCA, AnchorBolt: capCA, External: capCA,
		},
	}

	result, err := capacity.Calculate(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TANK CAPACITY - API 650 ANNEX A")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Diameter (D):\t%.2f m\n", in.Diameter)
	fmt.Fprintf(w, "  Height (H):\t%.2f m\n", in.Height)
	fmt.Fprintf(w, "  Specific gravity (G):\t%.3f\n", in.SpecificGravity)
	fmt.Fprintf(w, "  Operating temperature:\t%.1f °C\n", in.OperatingTemperature)
	fmt.Fprintf(w, "  Internal pressure:\t%s\n", capacity.PressureDisplay(in.InternalPressure, in.InternalPressureUnit))
	fmt.Fprintf(w, "  External pressure:\t%s\n", capacity.PressureDisplay(in.ExternalPressure, in.ExternalPressureUnit))
	fmt.Fprintf(w, "  Corrosion allowance:\t%.1f mm\n", capCA)
	w.Flush()
	fmt.Println()

	fmt.Println("CAPACITY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal (Annex A):\t%s bbl\t%s kL\n", export.Fixed(result.NominalBarrels, 2), export.Fixed(result.NominalM3, 2))
	fmt.Fprintf(w, "  Geometric (πD²H/4):\t\t%s kL\n", export.Fixed(result.GeometricM3, 2))
	fmt.Fprintf(w, "  Working (90%%):\t\t%s kL\n", export.Fixed(result.WorkingM3, 2))
	fmt.Fprintf(w, "  Freeboard (10%%):\t\t%s kL\n", export.Fixed(result.FreeboardM3, 2))
	fmt.Fprintf(w, "  Freeboard height:\t\t%s m\n", export.Fixed(result.FreeboardHeightM, 3))
	w.Flush()
	fmt.Println()

	rows := export.CapacityTable(result.Curve, result.GeometricM3)

	if capShowTable {
		fmt.Println("STRAPPING TABLE:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, h := range export.CapacityHeaders {
			fmt.Fprintf(w, "%s\t", h)
		}
		fmt.Fprintln(w)
		for _, row := range rows {
			for _, c := range row.Cells() {
				fmt.Fprintf(w, "%s\t", c)
			}
			fmt.Fprintln(w)
		}
		w.Flush()
		fmt.Println()
	}

	if capChart {
		fmt.Println(diagram.CapacityChart(result.Curve, 60, 15))
		fmt.Println()
	}

	if capCSV != "" {
		if err := export.CapacityCSV(capCSV, rows); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("  Strapping table written to %s\n", capCSV)
		}
	}
	if capXLSX != "" {
		if err := export.CapacityXLSX(capXLSX, rows); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("  Strapping table written to %s\n", capXLSX)
		}
	}
	if capPlot != "" {
		if path, err := diagram.ExportCapacityCurve(result.Curve, capPlot); err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("  Capacity curve exported to %s\n", path)
		}
	}
	fmt.Println()
}
