package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Geometry and liquid, shared by the tank commands
var (
	tankDiameter float64
	tankHeight   float64
	tankSG       float64
)

func addTankFlags(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&tankDiameter, "diameter", "D", 8, "Tank diameter (m)")
	cmd.Flags().Float64VarP(&tankHeight, "height", "H", 12, "Tank height / design liquid level (m)")
	cmd.Flags().Float64VarP(&tankSG, "sg", "G", 1.0, "Liquid specific gravity")
}

// status renders a pass/fail mark
func status(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func joinMM(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return strings.Join(parts, ", ")
}
