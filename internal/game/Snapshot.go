package game

// Snapshot is the read-only view of one frame handed to the renderer. Cells
// is a copy, so holding on to a snapshot never pins or mutates the snake.
type Snapshot struct {
	Mode        GameMode
	Menu        MenuChoice
	Cells       []Cell
	Apple       Point
	Score       int
	ApplesEaten int
	Bounds      Bounds
	Latched     Direction
	Ticks       uint64
	Cause       DeathCause
	SessionID   string
	Err         error
}

func (s Snapshot) Head() (Cell, bool) {
	if len(s.Cells) == 0 {
		return Cell{}, false
	}
	return s.Cells[0], true
}
