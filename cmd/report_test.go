package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gotank/internal/material"
)

func TestBuildReport(t *testing.T) {
	catalog = material.Builtin()
	tankDiameter, tankHeight, tankSG = 8, 12, 1

	rep, err := buildReport()
	require.NoError(t, err)

	titles := make([]string, len(rep.Sections))
	for i, s := range rep.Sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Geometry and Capacity",
		"Shell Courses (one-foot method)",
		"Wind Girders",
		"Roof and Bottom",
		"Steel Weights",
		"Seismic and Anchorage",
	}, titles)

	// six shell courses, bottom and roof, plus the total
	assert.Len(t, rep.Sections[4].Rows, 9)

	path := filepath.Join(t.TempDir(), "tank.pdf")
	require.NoError(t, rep.WritePDF(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestBuildReportRejectsBadGeometry(t *testing.T) {
	catalog = material.Builtin()
	tankDiameter, tankHeight, tankSG = -1, 12, 1
	defer func() { tankDiameter = 8 }()

	_, err := buildReport()
	assert.Error(t, err)
}

func TestReadNozzleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nozzles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- tag: N1
  service: pump suction
  flow: 100
- tag: N2
  service: vent
  flow: 50
  velocity: 5
  pressure: 2
`), 0644))

	items, err := readNozzleFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "N1", items[0].Tag)
	assert.Nil(t, items[0].DesiredVelocity)
	require.NotNil(t, items[1].DesiredVelocity)
	assert.Equal(t, 5.0, *items[1].DesiredVelocity)
	assert.Equal(t, 2.0, items[1].DesignPressureBar)

	_, err = readNozzleFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
