package game

// Direction is the heading of a snake cell. The zero value means the cell has
// not been given a heading yet and does not move.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

type displacement struct {
	Dx, Dy int
}

// Up increases Y: row 0 is the bottom of the board.
var displacements = [...]displacement{
	DirNone:  {0, 0},
	DirLeft:  {-1, 0},
	DirRight: {1, 0},
	DirUp:    {0, 1},
	DirDown:  {0, -1},
}

var opposites = [...]Direction{
	DirNone:  DirNone,
	DirLeft:  DirRight,
	DirRight: DirLeft,
	DirUp:    DirDown,
	DirDown:  DirUp,
}

var directionNames = [...]string{
	DirNone:  "None",
	DirLeft:  "Left",
	DirRight: "Right",
	DirUp:    "Up",
	DirDown:  "Down",
}

// Headings lists the four movement directions.
var Headings = []Direction{DirLeft, DirRight, DirUp, DirDown}

func (d Direction) valid() bool {
	return d >= DirNone && d <= DirDown
}

// Delta returns the unit displacement for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	if !d.valid() {
		return 0, 0
	}
	v := displacements[d]
	return v.Dx, v.Dy
}

func (d Direction) Opposite() Direction {
	if !d.valid() {
		return DirNone
	}
	return opposites[d]
}

// Reverses reports whether turning from d to next would make the head run
// back into the second cell.
func (d Direction) Reverses(next Direction) bool {
	return d != DirNone && next == d.Opposite()
}

func (d Direction) String() string {
	if !d.valid() {
		return "Unknown"
	}
	return directionNames[d]
}

// towards returns the heading that moves from one cell to an orthogonally
// adjacent one, or DirNone if they are not adjacent.
func towards(from, to Point) Direction {
	for _, d := range Headings {
		dx, dy := d.Delta()
		if from.X+dx == to.X && from.Y+dy == to.Y {
			return d
		}
	}
	return DirNone
}
