package nozzle

// Pipe is one nominal pipe size with its schedule wall thicknesses (ASME B36.10M)
type Pipe struct {
	NPS   float64 // inch
	OD    float64 // mm
	Walls []Wall  // thinnest first
}

// Wall is a schedule wall thickness
type Wall struct {
	Schedule  string
	Thickness float64 // mm
}

// Thinnest returns the thinnest listed wall
func (p Pipe) Thinnest() Wall {
	return p.Walls[0]
}

// InsideDiameter approximates the bore with the thinnest wall (mm)
func (p Pipe) InsideDiameter() float64 {
	return p.OD - 2*p.Thinnest().Thickness
}

// PipeTable lists the candidate nozzle sizes in ascending order
var PipeTable = []Pipe{
	{NPS: 1, OD: 33.4, Walls: walls(2.77, 3.38, 4.55)},
	{NPS: 1.5, OD: 48.3, Walls: walls(2.77, 3.68, 5.08)},
	{NPS: 2, OD: 60.3, Walls: walls(2.77, 3.91, 5.54)},
	{NPS: 3, OD: 88.9, Walls: walls(3.05, 5.49, 7.62)},
	{NPS: 4, OD: 114.3, Walls: walls(3.05, 6.02, 8.56)},
	{NPS: 6, OD: 168.3, Walls: walls(3.40, 7.11, 10.97)},
	{NPS: 8, OD: 219.1, Walls: walls(3.76, 8.18, 12.70)},
	{NPS: 10, OD: 273.1, Walls: walls(4.19, 9.27, 15.09)},
	{NPS: 12, OD: 323.9, Walls: walls(4.57, 10.31, 17.48)},
	{NPS: 14, OD: 355.6, Walls: walls(6.35, 11.13, 19.05)},
	{NPS: 16, OD: 406.4, Walls: walls(6.35, 12.70, 21.44)},
	{NPS: 18, OD: 457.2, Walls: walls(6.35, 14.27, 23.83)},
	{NPS: 20, OD: 508.0, Walls: walls(6.35, 15.09, 26.19)},
	{NPS: 24, OD: 609.6, Walls: walls(6.35, 17.48, 30.96)},
}

func walls(sch10, sch40, sch80 float64) []Wall {
	return []Wall{
		{Schedule: "10", Thickness: sch10},
		{Schedule: "40", Thickness: sch40},
		{Schedule: "80", Thickness: sch80},
	}
}

// PipeFor returns the table entry for an NPS
func PipeFor(nps float64) (Pipe, bool) {
	for _, p := range PipeTable {
		if p.NPS == nps {
			return p, true
		}
	}
	return Pipe{}, false
}
