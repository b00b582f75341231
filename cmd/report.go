package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gotank/internal/anchor"
	"github.com/alexiusacademia/gotank/internal/api650"
	"github.com/alexiusacademia/gotank/internal/bottom"
	"github.com/alexiusacademia/gotank/internal/capacity"
	"github.com/alexiusacademia/gotank/internal/export"
	"github.com/alexiusacademia/gotank/internal/roof"
	"github.com/alexiusacademia/gotank/internal/seismic"
	"github.com/alexiusacademia/gotank/internal/shell"
	"github.com/alexiusacademia/gotank/internal/weights"
	"github.com/alexiusacademia/gotank/internal/wind"
)

var (
	reportOut        string
	reportTitle      string
	reportGrade      string
	reportCA         float64
	reportWindSpeed  float64
	reportWindMoment float64
	reportSs         float64
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Full tank design report (PDF)",
	Long: `Run the complete preliminary design of a tank and write a PDF report:
capacity, shell courses, wind girders, roof, bottom and annular plates,
steel weights, seismic loads and anchorage.

The steel weight comes from the designed plates; the seismic weight is
the steel plus the stored liquid.

Examples:
  gotank report --diameter 20 --height 15 --sg 0.85 -o tank.pdf`,
	Run: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	addTankFlags(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "tank_report.pdf", "Report file")
	reportCmd.Flags().StringVar(&reportTitle, "title", "Storage Tank Design Report", "Report title")
	reportCmd.Flags().StringVarP(&reportGrade, "material", "m", "A36", "Plate grade")
	reportCmd.Flags().Float64Var(&reportCA, "ca", 3, "Corrosion allowance (mm)")
	reportCmd.Flags().Float64VarP(&reportWindSpeed, "wind-speed", "V", wind.DefaultWindSpeedKmh, "Design wind speed (km/h)")
	reportCmd.Flags().Float64Var(&reportWindMoment, "wind-moment", 1e6, "Wind overturning moment (N·m)")
	reportCmd.Flags().Float64Var(&reportSs, "ss", seismic.DefaultInput().Ss, "Short period spectral acceleration Ss (g)")
}

func runReport(cmd *cobra.Command, args []string) {
	rep, err := buildReport()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := rep.WritePDF(reportOut); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("  Report %s written to %s\n", rep.ID, reportOut)
}

func mm(v float64) string { return fmt.Sprintf("%.1f mm", v) }

func buildReport() (*export.Report, error) {
	d, h, g := tankDiameter, tankHeight, tankSG
	rep := export.NewReport(reportTitle)

	capResult, err := capacity.Calculate(capacity.Input{
		Diameter:        d,
		Height:          h,
		SpecificGravity: g,
		CorrosionAllowances: capacity.CorrosionAllowances{
			Shell: reportCA, Bottom: reportCA, Roof: reportCA, Structure: reportCA, AnchorBolt: reportCA, External: reportCA,
		},
	})
	if err != nil {
		return nil, err
	}
	rep.Add(export.Section{
		Title: "Geometry and Capacity",
		Rows: []export.Row{
			{Label: "Diameter / height", Value: fmt.Sprintf("%.2f / %.2f m", d, h)},
			{Label: "Specific gravity", Value: fmt.Sprintf("%.3f", g)},
			{Label: "Nominal capacity (Annex A)", Value: export.Fixed(capResult.NominalBarrels, 2) + " bbl"},
			{Label: "Geometric capacity", Value: export.Fixed(capResult.GeometricM3, 2) + " kL"},
			{Label: "Working capacity (90%)", Value: export.Fixed(capResult.WorkingM3, 2) + " kL"},
			{Label: "Freeboard height", Value: export.Fixed(capResult.FreeboardHeightM, 3) + " m"},
		},
	})

	shellResult, err := shell.Design(catalog, shell.Input{
		Diameter:             d,
		Height:               h,
		SpecificGravity:      g,
		Grade:                reportGrade,
		JointEfficiency:      1,
		CorrosionAllowanceMM: reportCA,
		PlateWidthMM:         api650.DefaultPlateWidth,
	})
	if err != nil {
		return nil, err
	}
	shellSection := export.Section{Title: "Shell Courses (one-foot method)"}
	for _, c := range shellResult.Courses {
		shellSection.Rows = append(shellSection.Rows, export.Row{
			Label: fmt.Sprintf("Course %d (H' = %.2f m)", c.Index, c.LocalHeightM),
			Value: fmt.Sprintf("td %.2f, tt %.2f, tr %.0f mm", c.DesignThicknessMM, c.TestThicknessMM, c.RequiredThicknessMM),
		})
	}
	shellSection.Notes = append(shellSection.Notes,
		fmt.Sprintf("Material %s, Sd %.0f MPa, St %.0f MPa, E = 1.0", reportGrade, shellResult.DesignStress, shellResult.TestStress))
	if shellResult.MaterialFallback {
		shellSection.Notes = append(shellSection.Notes, "Grade not in catalog; default allowable stress used.")
	}
	rep.Add(shellSection)

	thicknesses := shellResult.Thicknesses()
	windIn := wind.DefaultInput(d, h)
	windIn.WindSpeedKmh = reportWindSpeed
	windIn.CourseThicknessesMM = thicknesses
	windIn.TopThicknessMM = thicknesses[len(thicknesses)-1]
	windResult, err := wind.Analyze(windIn)
	if err != nil {
		return nil, err
	}
	windSection := export.Section{
		Title: "Wind Girders",
		Rows: []export.Row{
			{Label: "Velocity pressure", Value: fmt.Sprintf("%.3f psf", windResult.VelocityPressure)},
		},
	}
	if windResult.StiffeningNeeded {
		windSection.Rows = append(windSection.Rows,
			export.Row{Label: "Max unstiffened height H1", Value: fmt.Sprintf("%.0f mm", windResult.MaxUnstiffenedMM)},
			export.Row{Label: "Girder elevations", Value: joinMM(windResult.RingElevationsM) + " m"},
			export.Row{Label: "Girder area", Value: fmt.Sprintf("%.0f mm²", windResult.RingAreaMM2)},
		)
	} else {
		windSection.Notes = []string{"Intermediate wind girders are not required."}
	}
	rep.Add(windSection)

	roofResult, err := roof.Design(roof.DesignInput{
		Diameter:             d,
		Loads:                api650.RoofLoads{Live: 1.0, Snow: 0.5},
		CorrosionAllowanceMM: reportCA,
		Material:             reportGrade,
	})
	if err != nil {
		return nil, err
	}
	bottomResult, err := bottom.DesignPlate(catalog, bottom.PlateInput{
		Diameter: d, Height: h, SpecificGravity: g, Grade: reportGrade, CorrosionAllowanceMM: reportCA,
	})
	if err != nil {
		return nil, err
	}
	annular, err := bottom.DesignAnnular(bottom.AnnularInput{
		Diameter: d, Height: h, SpecificGravity: g, ShellThicknessesMM: thicknesses,
	})
	if err != nil {
		return nil, err
	}
	annularValue := "not required"
	if annular.Required {
		annularValue = fmt.Sprintf("%.0f mm × %.0f mm", annular.ThicknessMM, annular.WidthMM)
	}
	rep.Add(export.Section{
		Title: "Roof and Bottom",
		Rows: []export.Row{
			{Label: "Roof plate (Annex V, Lr 1.0 + S 0.5 kPa)", Value: mm(roofResult.Solution.ThicknessMM)},
			{Label: "Bottom plate", Value: mm(bottomResult.ThicknessMM)},
			{Label: "Bearing pressure", Value: fmt.Sprintf("%.2f kPa", annular.BearingKPa)},
			{Label: "Annular plate", Value: annularValue},
		},
	})

	// Steel take-off from the designed plates
	widthMM := shellResult.PlateWidthMM
	components := map[string]weights.Component{
		"bottom": {Area: math.Pi * d * d / 4 * 1e6, Thickness: bottomResult.ThicknessMM},
		"roof":   {Area: math.Pi * d * d / 4 * 1e6, Thickness: roofResult.Solution.ThicknessMM},
	}
	for _, c := range shellResult.Courses {
		components[fmt.Sprintf("shell course %02d", c.Index)] = weights.Component{
			Area:      math.Pi * d * 1000 * widthMM,
			Thickness: c.RequiredThicknessMM,
		}
	}
	bom, err := weights.Weigh(components, api650.SteelDensity)
	if err != nil {
		return nil, err
	}
	weightSection := export.Section{Title: "Steel Weights"}
	for _, line := range bom.Lines {
		weightSection.Rows = append(weightSection.Rows, export.Row{Label: line.Name, Value: fmt.Sprintf("%.0f kg", line.Weight)})
	}
	weightSection.Rows = append(weightSection.Rows, export.Row{Label: "Total steel", Value: fmt.Sprintf("%.0f kg", bom.Total)})
	rep.Add(weightSection)

	liquidKg := weights.LiquidWeight(d, h, g)
	quakeIn := seismic.DefaultInput()
	quakeIn.Ss = reportSs
	quakeIn.Height = h
	quakeIn.EffectiveN = (bom.Total + liquidKg) * api650.Gravity
	seismicResult, err := seismic.Calculate(quakeIn)
	if err != nil {
		return nil, err
	}

	anchorResult, err := anchor.Calculate(anchor.Input{
		Diameter:        d,
		Height:          h,
		WindMomentNm:    reportWindMoment,
		SeismicMomentNm: seismicResult.OverturningNm,
		DeadWeightN:     bom.Total * api650.Gravity,
	})
	if err != nil {
		return nil, err
	}
	anchorValue := "not required"
	if anchorResult.Required {
		anchorValue = fmt.Sprintf("%d chairs at %.2f m", anchorResult.Chairs, anchorResult.SpacingM)
	}
	rep.Add(export.Section{
		Title: "Seismic and Anchorage",
		Rows: []export.Row{
			{Label: "Effective weight", Value: fmt.Sprintf("%.0f N", quakeIn.EffectiveN)},
			{Label: "Seismic coefficient Cs", Value: fmt.Sprintf("%.4f", seismicResult.Cs)},
			{Label: "Base shear", Value: fmt.Sprintf("%.0f N", seismicResult.BaseShearN)},
			{Label: "Seismic overturning", Value: fmt.Sprintf("%.0f N·m", seismicResult.OverturningNm)},
			{Label: "Wind overturning", Value: fmt.Sprintf("%.0f N·m", reportWindMoment)},
			{Label: "Restoring moment", Value: fmt.Sprintf("%.0f N·m", anchorResult.RestoringNm)},
			{Label: "Anchorage", Value: anchorValue},
		},
		Notes: []string{"Simplified Annex E seismic method; preliminary sizing only."},
	})

	return rep, nil
}
