package game

import (
	"fmt"
	"math/rand"
	"time"
)

// AppleSpawner places apples on free cells. Its generator is seeded once when
// it is built; Spawn never reseeds.
type AppleSpawner struct {
	rng  *rand.Rand
	seed int64
}

func NewAppleSpawner(seed int64) *AppleSpawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AppleSpawner{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (as *AppleSpawner) Seed() int64 {
	return as.seed
}

// Spawn samples cells uniformly from the visible grid until it finds one the
// snake does not cover.
func (as *AppleSpawner) Spawn(snake *Snake, bounds Bounds) (Point, error) {
	if bounds.Area() <= 0 {
		return Point{}, fmt.Errorf("%w: empty %dx%d board", ErrBoardFull, bounds.Width, bounds.Height)
	}

	if as.freeCells(snake, bounds) == 0 {
		return Point{}, fmt.Errorf("%w: snake of length %d covers the %dx%d board",
			ErrBoardFull, snake.Len(), bounds.Width, bounds.Height)
	}

	for {
		p := Point{
			X: as.rng.Intn(bounds.Width),
			Y: as.rng.Intn(bounds.Height),
		}
		if !snake.Occupies(p) {
			return p, nil
		}
	}
}

// freeCells counts visible cells not covered by the snake. Segments past the
// edge or stacked on each other are only counted once.
func (as *AppleSpawner) freeCells(snake *Snake, bounds Bounds) int {
	covered := make(map[Point]struct{}, snake.Len())
	for _, c := range snake.cells {
		if bounds.Contains(c.Pos()) {
			covered[c.Pos()] = struct{}{}
		}
	}
	return bounds.Area() - len(covered)
}
