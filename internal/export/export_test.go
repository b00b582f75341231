package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gotank/internal/capacity"
	"github.com/alexiusacademia/gotank/internal/errors"
)

func referenceRows(t *testing.T) []CapacityRow {
	t.Helper()
	curve := slices.Collect(capacity.HeightCapacityCurve(8, 12, capacity.DefaultCurveStep))
	require.Len(t, curve, 120)
	return CapacityTable(curve, capacity.GeometricVolume(8, 12))
}

func TestCapacityTable(t *testing.T) {
	rows := referenceRows(t)

	first := rows[0]
	assert.InDelta(t, 0.1, first.HeightM, 1e-9)
	assert.InDelta(t, 5.0265, first.CapacityKL, 1e-4)
	assert.InDelta(t, first.CapacityKL, first.AddedKL, 1e-12)

	last := rows[len(rows)-1]
	assert.InDelta(t, 100.0, last.PercentFull, 1e-9)
	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, 5.0265, rows[i].AddedKL, 1e-4)
		assert.Greater(t, rows[i].PercentFull, rows[i-1].PercentFull)
	}

	assert.Nil(t, CapacityTable(nil, 10))
}

func TestCapacityTableDefaultsTotalToLastPoint(t *testing.T) {
	rows := CapacityTable([]capacity.CurvePoint{{HeightM: 1, VolumeM3: 5}, {HeightM: 2, VolumeM3: 10}}, 0)
	assert.Equal(t, 50.0, rows[0].PercentFull)
	assert.Equal(t, 100.0, rows[1].PercentFull)
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "0.10", Fixed(0.1, 2))
	assert.Equal(t, "5.027", Fixed(5.0265482, 3))
	assert.Equal(t, "100.0", Fixed(100, 1))
	assert.Equal(t, "2.5", Fixed(2.45, 1))
}

func TestWriteCapacityCSV(t *testing.T) {
	rows := referenceRows(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCapacityCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(rows)+1)
	assert.Equal(t, CapacityHeaders, records[0])
	assert.Equal(t, []string{"0.10", "5.027", "0.8", "5.027"}, records[1])
	assert.Equal(t, "12.00", records[len(records)-1][0])
	assert.Equal(t, "100.0", records[len(records)-1][2])
}

func TestCapacityCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tank_capacity_curve.csv")
	require.NoError(t, CapacityCSV(path, referenceRows(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 121, strings.Count(string(data), "\n"))

	err = CapacityCSV(filepath.Join(t.TempDir(), "missing", "x.csv"), nil)
	assert.True(t, errors.IsType(err, errors.TypeExport))
}

func TestCapacityXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capacity.xlsx")
	require.NoError(t, CapacityXLSX(path, referenceRows(t)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(CapacitySheet)
	require.NoError(t, err)
	require.Len(t, rows, 121)
	assert.Equal(t, CapacityHeaders, rows[0])
	assert.Equal(t, "0.1", rows[1][0])
	assert.Equal(t, "12", rows[120][0])
}

func TestReportWritePDF(t *testing.T) {
	r := NewReport("Tank T-101")
	r.Add(Section{
		Title: "Capacity",
		Rows: []Row{
			{"Geometric volume", "603.186 m³"},
			{"Working capacity", "542.867 m³"},
		},
	})
	r.Add(Section{
		Title: "Shell",
		Rows:  []Row{{"Course 1", "10 mm"}},
		Notes: []string{"Minimum thickness 6 mm + CA governs."},
	})

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, r.WritePDF(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestReportRequiresSections(t *testing.T) {
	r := NewReport("empty")
	assert.NotEqual(t, r.ID.String(), NewReport("other").ID.String())

	err := r.WritePDF(filepath.Join(t.TempDir(), "empty.pdf"))
	assert.True(t, errors.IsType(err, errors.TypeExport))
}
