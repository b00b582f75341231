package material

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuiltinCoversMandatoryGrades(t *testing.T) {
	cat := Builtin()
	require.Equal(t, len(builtinGrades)+len(mandatoryGrades), cat.Len())

	for _, g := range mandatoryGrades {
		got, ok := cat.Lookup(g.Name)
		require.True(t, ok, g.Name)
		assert.NotNil(t, got.AllowableStress, g.Name)
	}

	a36, ok := cat.Lookup("A36")
	require.True(t, ok)
	assert.Equal(t, 138.0, *a36.AllowableStress)
	assert.Equal(t, 40.0, *a36.MaxThickness)
}

func TestLookupMiss(t *testing.T) {
	_, ok := Builtin().Lookup("A999")
	assert.False(t, ok)

	s, fallback := AllowableStress(Builtin(), "A999")
	assert.True(t, fallback)
	assert.Equal(t, DefaultAllowableStress, s)

	s, fallback = AllowableStress(Builtin(), "S355")
	assert.False(t, fallback)
	assert.Equal(t, 196.0, s)
}

func TestGradesReturnsCopy(t *testing.T) {
	cat := Builtin()
	grades := cat.Grades()
	grades[0].Name = "mutated"

	first := cat.Grades()[0]
	assert.Equal(t, "235d", first.Name)
}

func TestNewCatalogSkipsUnnamedAndReplacesDuplicates(t *testing.T) {
	cat := NewCatalog([]Grade{
		{Name: "X", AllowableStress: f(100)},
		{Name: ""},
		{Name: "Y"},
		{Name: "X", AllowableStress: f(120)},
	})
	require.Equal(t, 2, cat.Len())
	x, _ := cat.Lookup("X")
	assert.Equal(t, 120.0, *x.AllowableStress)
	assert.Equal(t, "X", cat.Grades()[0].Name)
}

func TestAccessorsUseExplicitDefaults(t *testing.T) {
	g := Grade{Name: "bare"}
	assert.Equal(t, 138.0, g.AllowableOr(138))
	assert.Equal(t, 10.0, g.MaxThicknessOr(10))
	assert.Equal(t, 0.0, g.YieldOr(0))
}

func TestLoadEmptyPathUsesBuiltin(t *testing.T) {
	res := Load("")
	assert.True(t, res.Fallback())
	assert.NoError(t, res.Err)
	assert.Greater(t, res.Catalog.Len(), 0)
}

func TestLoadFallbacks(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(t.TempDir(), "nope.json")},
		{"malformed", writeFile(t, "bad.json", `{"materials": [`)},
		{"no rows", writeFile(t, "empty.json", `{"materials": {"tables": {}}}`)},
		{"no grades", writeFile(t, "nogrades.json", `{"rows": [{"yield_min": 250}]}`)},
		{"unsupported", writeFile(t, "catalog.toml", `grade = "A36"`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Load(tt.path)
			assert.True(t, res.Fallback())
			assert.Error(t, res.Err)
			assert.Equal(t, Builtin().Len(), res.Catalog.Len())
		})
	}
}

func TestLoadJSONBlueprint(t *testing.T) {
	path := writeFile(t, "blueprint.json", `{
	  "materials": {"tables": {"mechanical_chemical_table_4_2": {"rows": [
	    {"grade": "A283C", "tensile_min_MPa": 380, "tensile_max_MPa": 515, "yield_min_MPa": 205, "max_thickness_mm": 25, "S_allow_MPa": 120},
	    {"grade": "X70", "tensile_min": 570, "yield_min": 485, "max_thickness": 30},
	    {"tensile_min": 1}
	  ]}}}
	}`)

	res := Load(path)
	require.False(t, res.Fallback())
	require.NoError(t, res.Err)

	a283, ok := res.Catalog.Lookup("A283C")
	require.True(t, ok)
	assert.Equal(t, 120.0, *a283.AllowableStress, "file rows win over the mandatory set")

	x70, ok := res.Catalog.Lookup("X70")
	require.True(t, ok)
	assert.Equal(t, 570.0, *x70.TensileMin)
	assert.Nil(t, x70.AllowableStress)
	assert.Nil(t, x70.TensileMax)

	_, ok = res.Catalog.Lookup("A841B")
	assert.True(t, ok, "mandatory grades complete a loaded catalog")
	_, ok = res.Catalog.Lookup("A36")
	assert.False(t, ok, "built-in extras are not merged into a loaded catalog")
	assert.Equal(t, 2+len(mandatoryGrades)-1, res.Catalog.Len())
}

func TestLoadNonPositiveAllowableCountsAsAbsent(t *testing.T) {
	path := writeFile(t, "zero.json", `{"rows": [
	  {"grade": "X", "S_allow": 0, "max_thickness": 40},
	  {"grade": "Y", "S_allow_MPa": -50, "max_thickness": 40}
	]}`)

	res := Load(path)
	require.False(t, res.Fallback())
	require.NoError(t, res.Err)

	for _, name := range []string{"X", "Y"} {
		s, fallback := AllowableStress(res.Catalog, name)
		assert.True(t, fallback, name)
		assert.Equal(t, DefaultAllowableStress, s, name)

		g, ok := res.Catalog.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, 150.0, g.AllowableOr(150), name)
	}
}

func TestLoadYAMLRows(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
rows:
  - grade: S460
    tensile_min: 540
    tensile_max: 720
    yield_min: 460
    max_thickness: 40
    S_allow_MPa: 216
`)
	res := Load(path)
	require.False(t, res.Fallback())

	g, ok := res.Catalog.Lookup("S460")
	require.True(t, ok)
	assert.Equal(t, 216.0, g.AllowableOr(0))
	assert.Equal(t, 460.0, g.YieldOr(0))
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"grade", "yield_min_MPa", "max_thickness_mm", "S_allow_MPa"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{"Q345R", 345, 60, 189}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]interface{}{"Q245R", 245, 40}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	res := Load(path)
	require.False(t, res.Fallback(), "%v", res.Err)

	q345, ok := res.Catalog.Lookup("Q345R")
	require.True(t, ok)
	assert.Equal(t, 189.0, *q345.AllowableStress)
	assert.Equal(t, 60.0, *q345.MaxThickness)

	q245, ok := res.Catalog.Lookup("Q245R")
	require.True(t, ok)
	assert.Nil(t, q245.AllowableStress)
}

func TestConcurrentLookups(t *testing.T) {
	cat := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, g := range cat.Grades() {
				_, ok := cat.Lookup(g.Name)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
