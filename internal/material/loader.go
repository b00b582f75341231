package material

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/logging"
)

// Source tells where a catalog came from
type Source string

const (
	SourceFile    Source = "file"
	SourceBuiltin Source = "builtin"
)

// LoadResult is the outcome of reading a catalog source. Catalog is never
// nil or empty: when the source cannot be used, Source is SourceBuiltin and
// Err says why.
type LoadResult struct {
	Catalog *Catalog
	Source  Source
	Path    string
	Err     error
}

// Fallback reports whether the built-in table is in use
func (r LoadResult) Fallback() bool {
	return r.Source == SourceBuiltin
}

// blueprint is the document shape of the API 650 app blueprint
type blueprint struct {
	Materials struct {
		Tables struct {
			Table42 struct {
				Rows []map[string]interface{} `json:"rows" yaml:"rows"`
			} `json:"mechanical_chemical_table_4_2" yaml:"mechanical_chemical_table_4_2"`
		} `json:"tables" yaml:"tables"`
	} `json:"materials" yaml:"materials"`
	Rows []map[string]interface{} `json:"rows" yaml:"rows"`
}

func (b blueprint) rows() []map[string]interface{} {
	if rows := b.Materials.Tables.Table42.Rows; len(rows) > 0 {
		return rows
	}
	return b.Rows
}

// Load reads a catalog source (.json, .yaml, .yml or .xlsx) and falls back to
// the built-in table when the path is empty, unreadable, malformed or yields
// no grades.
func Load(path string) LoadResult {
	if path == "" {
		logging.Debug("no material catalog configured, using built-in table")
		return LoadResult{Catalog: Builtin(), Source: SourceBuiltin}
	}

	rows, err := readRows(path)
	if err == nil && len(rows) == 0 {
		err = errors.New(errors.TypeCatalog, "catalog source has no rows")
	}

	var grades []Grade
	if err == nil {
		for _, row := range rows {
			if g, ok := gradeFromRow(row); ok {
				grades = append(grades, g)
			}
		}
		if len(grades) == 0 {
			err = errors.New(errors.TypeCatalog, "catalog source has no graded rows")
		}
	}

	if err != nil {
		logging.Warn("material catalog unavailable, using built-in table",
			zap.String("path", path), zap.Error(err))
		return LoadResult{Catalog: Builtin(), Source: SourceBuiltin, Path: path, Err: err}
	}

	cat := NewCatalog(withMandatory(grades))
	logging.Info("material catalog loaded", zap.String("path", path), zap.Int("grades", cat.Len()))
	return LoadResult{Catalog: cat, Source: SourceFile, Path: path}
}

func readRows(path string) ([]map[string]interface{}, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return readXLSXRows(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeCatalog, "cannot read catalog", err)
	}

	var bp blueprint
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &bp)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bp)
	default:
		return nil, errors.New(errors.TypeCatalog, "unsupported catalog format").WithContext("ext", ext)
	}
	if err != nil {
		return nil, errors.Wrap(errors.TypeCatalog, "malformed catalog", err)
	}
	return bp.rows(), nil
}

// readXLSXRows reads the first sheet; the first row holds the column keys
func readXLSXRows(path string) ([]map[string]interface{}, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeCatalog, "cannot open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New(errors.TypeCatalog, "workbook has no sheets")
	}

	table, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(errors.TypeCatalog, "cannot read sheet", err)
	}
	if len(table) < 2 {
		return nil, nil
	}

	header := table[0]
	rows := make([]map[string]interface{}, 0, len(table)-1)
	for _, cells := range table[1:] {
		row := make(map[string]interface{}, len(header))
		for i, key := range header {
			if i < len(cells) && strings.TrimSpace(cells[i]) != "" {
				row[strings.TrimSpace(key)] = strings.TrimSpace(cells[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// gradeFromRow maps one source row to a grade. The unit-suffixed key wins
// over the bare key when it is present and non-zero. Missing numbers stay nil.
func gradeFromRow(row map[string]interface{}) (Grade, bool) {
	name := strings.TrimSpace(fmt.Sprint(row["grade"]))
	if row["grade"] == nil || name == "" {
		return Grade{}, false
	}
	return Grade{
		Name:            name,
		TensileMin:      number(row, "tensile_min_MPa", "tensile_min"),
		TensileMax:      number(row, "tensile_max_MPa", "tensile_max"),
		YieldMin:        number(row, "yield_min_MPa", "yield_min"),
		MaxThickness:    number(row, "max_thickness_mm", "max_thickness"),
		AllowableStress: number(row, "S_allow_MPa", "S_allow"),
	}, true
}

func number(row map[string]interface{}, keys ...string) *float64 {
	for i, key := range keys {
		v, ok := toFloat(row[key])
		if ok && (v != 0 || i == len(keys)-1) {
			return &v
		}
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return x, err == nil
	default:
		return 0, false
	}
}
