package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gotank/internal/capacity"
)

// CourseMark is one shell course for drawing
type CourseMark struct {
	Index       int     // 1 = bottom
	ThicknessMM float64 // required thickness
}

// ShellDiagramData holds data for drawing a shell elevation
type ShellDiagramData struct {
	Diameter     float64 // m
	Height       float64 // m
	PlateWidthMM float64

	Courses         []CourseMark // bottom first
	RingElevationsM []float64    // wind girders, from the bottom
}

// rowsPerCourse is the number of text rows drawn for each course
const rowsPerCourse = 2

// DrawShellElevation creates an ASCII elevation of the shell courses with
// their thicknesses and any wind girders
func DrawShellElevation(data ShellDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	n := len(data.Courses)
	widthM := data.PlateWidthMM / 1000

	// text row of each girder, counted from the top of the shell
	ringRows := make(map[int]float64)
	for _, z := range data.RingElevationsM {
		row := int(math.Round((float64(n)*widthM - z) / widthM * rowsPerCourse))
		ringRows[min(max(row, 1), n*rowsPerCourse-1)] = z
	}

	sb.WriteString("\n")
	sb.WriteString("  SHELL ELEVATION\n")
	sb.WriteString("  ───────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))

	for i := n - 1; i >= 0; i-- {
		c := data.Courses[i]
		for r := 0; r < rowsPerCourse; r++ {
			row := (n-1-i)*rowsPerCourse + r
			fill := strings.Repeat(" ", widthChars)
			if r == 0 {
				label := fmt.Sprintf("Course %d", c.Index)
				fill = label + strings.Repeat(" ", widthChars-len(label))
				fill = " " + fill[:widthChars-1]
			}
			sb.WriteString(fmt.Sprintf("  │%s│", fill))
			if r == 0 {
				sb.WriteString(fmt.Sprintf("  t = %.0f mm", c.ThicknessMM))
			}
			if z, ok := ringRows[row]; ok && r != 0 {
				sb.WriteString(fmt.Sprintf("  ◄═ girder @ %.2f m", z))
			}
			sb.WriteString("\n")
		}
		if i > 0 {
			sb.WriteString(fmt.Sprintf("  ├%s┤", strings.Repeat("─", widthChars)))
			if z, ok := ringRows[(n-i)*rowsPerCourse]; ok {
				sb.WriteString(fmt.Sprintf("  ◄═ girder @ %.2f m", z))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("▀", widthChars+2)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  D = %.2f m, H = %.2f m, %d courses of %.0f mm\n",
		data.Diameter, data.Height, n, data.PlateWidthMM))
	if len(data.RingElevationsM) > 0 {
		sb.WriteString(fmt.Sprintf("  ◄═ = intermediate wind girder (%d)\n", len(data.RingElevationsM)))
	}

	return sb.String()
}

// CapacityChart plots the height-capacity curve in the terminal, volume
// against fill height
func CapacityChart(curve []capacity.CurvePoint, width, height int) string {
	if len(curve) == 0 {
		return ""
	}
	series := make([]float64, len(curve))
	for i, pt := range curve {
		series[i] = pt.VolumeM3
	}
	top := curve[len(curve)-1]
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("Capacity (m³) vs fill height, 0 → %.1f m", top.HeightM)),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	pad := func(s string) string {
		return s + strings.Repeat(" ", maxLen-4-utf8.RuneCountInString(s))
	}

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
