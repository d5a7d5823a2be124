package game

import "fmt"

// Cell is one body segment: a grid position and the heading it will move in
// on the next step.
type Cell struct {
	X   int
	Y   int
	Dir Direction
}

func (c Cell) Pos() Point {
	return Point{X: c.X, Y: c.Y}
}

func (c Cell) At(p Point) bool {
	return c.X == p.X && c.Y == p.Y
}

// Snake is an ordered body, head first. The backing array is allocated once
// with room for MaxCells segments and never grows past it.
type Snake struct {
	cells []Cell
}

func NewSnake(head Cell) *Snake {
	cells := make([]Cell, 1, MaxCells)
	cells[0] = head
	return &Snake{cells: cells}
}

// newSnakeFromCells builds a snake from an explicit body, head first.
func newSnakeFromCells(body ...Cell) (*Snake, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("snake needs at least one cell")
	}
	if len(body) >= MaxCells {
		return nil, fmt.Errorf("%w: %d cells", ErrSnakeFull, len(body))
	}
	cells := make([]Cell, len(body), MaxCells)
	copy(cells, body)
	return &Snake{cells: cells}, nil
}

func (s *Snake) Len() int {
	return len(s.cells)
}

func (s *Snake) Head() Cell {
	return s.cells[0]
}

func (s *Snake) Tail() Cell {
	return s.cells[len(s.cells)-1]
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// SetHeading replaces the head's direction. Reversal checks are the caller's
// job; see GameManager.Steer.
func (s *Snake) SetHeading(d Direction) {
	s.cells[0].Dir = d
}

// Step moves the snake one cell. The head goes first; every other segment
// moves along its own heading and then takes the heading the segment ahead
// had before this step, so a turn reaches the tail after Len steps.
func (s *Snake) Step() {
	head := &s.cells[0]
	dx, dy := head.Dir.Delta()
	head.X += dx
	head.Y += dy

	for i := len(s.cells) - 1; i > 0; i-- {
		c := &s.cells[i]
		dx, dy := c.Dir.Delta()
		c.X += dx
		c.Y += dy
		c.Dir = s.cells[i-1].Dir
	}
}

// Grow appends a segment behind the tail, facing the tail. When the cell
// directly behind is already taken by the body, the other free neighbours of
// the tail are tried in Headings order.
func (s *Snake) Grow() error {
	if len(s.cells) >= MaxCells-1 {
		return fmt.Errorf("%w: length %d, capacity %d", ErrSnakeFull, len(s.cells), MaxCells)
	}

	tail := s.Tail()
	tailPos := tail.Pos()

	candidate := Cell{X: tailPos.X, Y: tailPos.Y, Dir: tail.Dir}
	if tail.Dir != DirNone {
		behind := tailPos.Add(tail.Dir.Opposite())
		candidate = Cell{X: behind.X, Y: behind.Y, Dir: tail.Dir}
	}

	if tail.Dir == DirNone || s.Occupies(candidate.Pos()) {
		for _, d := range Headings {
			p := tailPos.Add(d)
			if s.Occupies(p) {
				continue
			}
			candidate = Cell{X: p.X, Y: p.Y, Dir: towards(p, tailPos)}
			break
		}
	}

	s.cells = append(s.cells, candidate)
	return nil
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, c := range s.cells {
		if c.At(p) {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.cells[0].Pos()
	for _, c := range s.cells[1:] {
		if c.At(head) {
			return true
		}
	}
	return false
}
