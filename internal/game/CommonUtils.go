package game

// Point is a grid coordinate without a heading.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func GetManhattanDistance(p1, p2 Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
