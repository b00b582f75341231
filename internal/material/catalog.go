// Package material holds the plate material catalog (API 650 Table 4.2) and
// the grade recommender built on it.
package material

// DefaultAllowableStress is substituted when a grade is unknown or carries no
// allowable stress (MPa). It is the A36 design stress.
const DefaultAllowableStress = 138.0

// Grade holds the mechanical properties of one plate material.
// A nil property is absent in the catalog source; consumers supply their own
// default through the Or accessors.
type Grade struct {
	Name            string   `json:"grade"`
	TensileMin      *float64 `json:"tensile_min,omitempty"`   // MPa
	TensileMax      *float64 `json:"tensile_max,omitempty"`   // MPa
	YieldMin        *float64 `json:"yield_min,omitempty"`     // MPa
	MaxThickness    *float64 `json:"max_thickness,omitempty"` // mm
	AllowableStress *float64 `json:"S_allow,omitempty"`       // MPa
}

// AllowableOr returns the allowable stress, or def when absent or not positive
func (g Grade) AllowableOr(def float64) float64 {
	if !g.hasAllowable() {
		return def
	}
	return *g.AllowableStress
}

// hasAllowable reports whether the grade carries a usable allowable stress.
// Zero, negative and NaN values count as absent since thicknesses divide by it.
func (g Grade) hasAllowable() bool {
	return g.AllowableStress != nil && *g.AllowableStress > 0
}

// MaxThicknessOr returns the maximum plate thickness, or def when absent
func (g Grade) MaxThicknessOr(def float64) float64 {
	return valueOr(g.MaxThickness, def)
}

// YieldOr returns the minimum yield stress, or def when absent
func (g Grade) YieldOr(def float64) float64 {
	return valueOr(g.YieldMin, def)
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// Lookup resolves a grade key to its properties
type Lookup interface {
	Lookup(grade string) (Grade, bool)
}

// Catalog is an immutable, ordered set of grades. It is safe for concurrent use.
type Catalog struct {
	grades []Grade
	index  map[string]int
}

// NewCatalog builds a catalog from grades in order. Grades without a name are
// skipped and a repeated name replaces the earlier entry in place.
func NewCatalog(grades []Grade) *Catalog {
	c := &Catalog{index: make(map[string]int, len(grades))}
	for _, g := range grades {
		if g.Name == "" {
			continue
		}
		if i, ok := c.index[g.Name]; ok {
			c.grades[i] = g
			continue
		}
		c.index[g.Name] = len(c.grades)
		c.grades = append(c.grades, g)
	}
	return c
}

// Lookup returns the grade with the given key
func (c *Catalog) Lookup(grade string) (Grade, bool) {
	i, ok := c.index[grade]
	if !ok {
		return Grade{}, false
	}
	return c.grades[i], true
}

// Grades returns a copy of all grades in catalog order
func (c *Catalog) Grades() []Grade {
	out := make([]Grade, len(c.grades))
	copy(out, c.grades)
	return out
}

// Len returns the number of grades
func (c *Catalog) Len() int {
	return len(c.grades)
}

// AllowableStress resolves the allowable stress for a grade from any lookup.
// The boolean reports whether the default had to be used, which includes a
// catalog row whose allowable stress is zero or negative.
func AllowableStress(l Lookup, grade string) (float64, bool) {
	if l != nil {
		if g, ok := l.Lookup(grade); ok && g.hasAllowable() {
			return *g.AllowableStress, false
		}
	}
	return DefaultAllowableStress, true
}
