package game

import "fmt"

// BoundaryRule decides when a head position counts as outside the grid.
type BoundaryRule int

const (
	// BoundaryStrict kills the head as soon as it leaves [0,Width) x [0,Height).
	BoundaryStrict BoundaryRule = iota
	// BoundaryOverhang lets the head rest one cell past the right and top
	// edges before it dies, the way the first SDL build behaved.
	BoundaryOverhang
)

func (r BoundaryRule) String() string {
	switch r {
	case BoundaryStrict:
		return "strict"
	case BoundaryOverhang:
		return "overhang"
	default:
		return "unknown"
	}
}

func ParseBoundaryRule(s string) (BoundaryRule, error) {
	switch s {
	case "strict", "":
		return BoundaryStrict, nil
	case "overhang":
		return BoundaryOverhang, nil
	}
	return BoundaryStrict, fmt.Errorf("%w: unknown edge rule %q", ErrInvalidConfig, s)
}

// Bounds is the playable grid: Width columns by Height rows.
type Bounds struct {
	Width  int
	Height int
	Rule   BoundaryRule
}

func (b Bounds) Area() int {
	return b.Width * b.Height
}

// Contains reports whether p is a visible grid cell. Spawning only ever uses
// visible cells, whatever the boundary rule.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// IsWall reports whether a head at p has left the grid.
func (b Bounds) IsWall(p Point) bool {
	if p.X < 0 || p.Y < 0 {
		return true
	}

	if b.Rule == BoundaryOverhang {
		return p.X > b.Width || p.Y > b.Height
	}

	return p.X >= b.Width || p.Y >= b.Height
}
