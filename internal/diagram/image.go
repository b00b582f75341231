package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gotank/internal/capacity"
)

// ExportCapacityCurve exports the height-capacity curve to an image file.
// The format follows the extension (.png, .svg, .pdf); anything else gets .png.
func ExportCapacityCurve(curve []capacity.CurvePoint, filename string) (string, error) {
	if len(curve) == 0 {
		return "", fmt.Errorf("empty capacity curve")
	}

	p := plot.New()
	p.Title.Text = "Tank Capacity Curve"
	p.X.Label.Text = "Fill height (m)"
	p.Y.Label.Text = "Capacity (m³)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(curve)+1)
	pts = append(pts, plotter.XY{X: 0, Y: 0})
	for _, pt := range curve {
		pts = append(pts, plotter.XY{X: pt.HeightM, Y: pt.VolumeM3})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Working level at 90% of the full volume
	top := curve[len(curve)-1]
	work, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: top.VolumeM3 * 0.9},
		{X: top.HeightM, Y: top.VolumeM3 * 0.9},
	})
	if err != nil {
		return "", err
	}
	work.LineStyle.Width = vg.Points(1)
	work.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	work.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(work)
	p.Legend.Add("capacity", line)
	p.Legend.Add("working (90%)", work)
	p.Legend.Top = true
	p.Legend.Left = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportShellProfile exports course thickness against elevation, with the
// wind girder elevations marked
func ExportShellProfile(data ShellDiagramData, filename string) (string, error) {
	if len(data.Courses) == 0 {
		return "", fmt.Errorf("no shell courses")
	}

	p := plot.New()
	p.Title.Text = "Shell Course Thickness"
	p.X.Label.Text = "Thickness (mm)"
	p.Y.Label.Text = "Elevation (m)"

	widthM := data.PlateWidthMM / 1000
	var maxT float64
	steps := make(plotter.XYs, 0, 2*len(data.Courses))
	for i, c := range data.Courses {
		bottom := float64(i) * widthM
		top := bottom + widthM
		steps = append(steps, plotter.XY{X: c.ThicknessMM, Y: bottom}, plotter.XY{X: c.ThicknessMM, Y: top})
		maxT = max(maxT, c.ThicknessMM)
	}
	profile, err := plotter.NewLine(steps)
	if err != nil {
		return "", err
	}
	profile.LineStyle.Width = vg.Points(2)
	profile.LineStyle.Color = color.Black
	p.Add(profile)

	marks, err := plotter.NewScatter(steps)
	if err != nil {
		return "", err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	for _, z := range data.RingElevationsM {
		ring, err := plotter.NewLine(plotter.XYs{{X: 0, Y: z}, {X: maxT * 1.1, Y: z}})
		if err != nil {
			return "", err
		}
		ring.LineStyle.Width = vg.Points(1.5)
		ring.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		ring.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(ring)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: maxT * 1.1, Y: z}},
			Labels: []string{fmt.Sprintf("girder %.2f m", z)},
		})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}
	p.X.Min = 0
	p.Y.Min = 0

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension and returns
// the path written
func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	return filename, p.Save(width, height, filename)
}
