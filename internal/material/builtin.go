package material

func f(v float64) *float64 { return &v }

func grade(name string, tensileMin, tensileMax, yieldMin, maxThickness, allowable float64) Grade {
	return Grade{
		Name:            name,
		TensileMin:      f(tensileMin),
		TensileMax:      f(tensileMax),
		YieldMin:        f(yieldMin),
		MaxThickness:    f(maxThickness),
		AllowableStress: f(allowable),
	}
}

// builtinGrades is the fallback table used when no catalog source is available
var builtinGrades = []Grade{
	grade("235d", 360, 510, 235, 20, 129),
	grade("250", 400, 530, 250, 40, 138),
	grade("275", 430, 560, 275, 40, 152),
	grade("A36", 400, 550, 250, 40, 138),
	grade("A131A", 400, 520, 235, 13, 129),
	grade("A131B", 400, 520, 235, 25, 138),
	grade("CSA260W", 410, 560, 260, 25, 143),
	grade("CSA300W", 450, 620, 300, 40, 165),
	grade("CSA350W", 480, 650, 350, 45, 193),
	grade("E275", 430, 580, 275, 40, 152),
	grade("E355", 490, 630, 355, 45, 196),
	grade("S275", 430, 580, 275, 40, 152),
	grade("S355", 490, 630, 355, 50, 196),
}

// mandatoryGrades is the API 650 grade set every catalog must cover
var mandatoryGrades = []Grade{
	grade("A36A", 400, 550, 250, 40, 138),
	grade("A283C", 380, 515, 205, 25, 124),
	grade("A285C", 380, 515, 205, 25, 117),
	grade("A516Gr380", 380, 515, 205, 40, 152),
	grade("A516Gr415", 415, 550, 240, 40, 165),
	grade("A516Gr450", 450, 585, 275, 40, 179),
	grade("A516Gr485", 485, 620, 310, 40, 193),
	grade("A537Cl1", 485, 620, 345, 65, 172),
	grade("A537Cl2", 550, 690, 415, 65, 207),
	grade("A573Gr400", 400, 550, 290, 40, 152),
	grade("A573Gr450", 450, 585, 315, 40, 165),
	grade("A573Gr485", 485, 620, 345, 40, 179),
	grade("A633C", 550, 690, 415, 65, 207),
	grade("A633D", 550, 690, 415, 65, 207),
	grade("A662B", 380, 515, 275, 40, 138),
	grade("A662C", 415, 550, 310, 40, 152),
	grade("A678A", 415, 550, 290, 40, 152),
	grade("A678B", 450, 585, 315, 40, 165),
	grade("A737B", 485, 620, 345, 65, 172),
	grade("A841A", 550, 690, 415, 65, 207),
	grade("A841B", 550, 690, 415, 65, 207),
}

// Builtin returns the fallback catalog: the built-in grades followed by the
// mandatory grade set. It is never empty.
func Builtin() *Catalog {
	all := make([]Grade, 0, len(builtinGrades)+len(mandatoryGrades))
	all = append(all, builtinGrades...)
	all = append(all, mandatoryGrades...)
	return NewCatalog(all)
}

// withMandatory appends every mandatory grade the loaded rows do not define.
// Rows read from the source keep their values.
func withMandatory(grades []Grade) []Grade {
	seen := make(map[string]bool, len(grades))
	for _, g := range grades {
		seen[g.Name] = true
	}
	for _, g := range mandatoryGrades {
		if !seen[g.Name] {
			grades = append(grades, g)
		}
	}
	return grades
}
