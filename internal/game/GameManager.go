package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type GameMode int

const (
	ModeStart GameMode = iota
	ModePlay
	ModeEnd
)

func (m GameMode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlay:
		return "play"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// MenuChoice is the highlighted entry of the start menu.
type MenuChoice int

const (
	ChoiceStart MenuChoice = iota
	ChoiceExit
)

// DeathCause records why a game ended.
type DeathCause string

const (
	CauseNone  DeathCause = ""
	CauseWall  DeathCause = "wall"
	CauseSelf  DeathCause = "self"
	CauseFault DeathCause = "fault"
)

// Input is the key state for one frame.
type Input struct {
	Up, Down, Left, Right, Enter bool
}

type Option func(*GameManager)

func WithLogger(logger *log.Logger) Option {
	return func(gm *GameManager) {
		if logger != nil {
			gm.logger = logger
		}
	}
}

// WithSpawner replaces the spawner built from Config.Seed.
func WithSpawner(spawner *AppleSpawner) Option {
	return func(gm *GameManager) {
		if spawner != nil {
			gm.spawner = spawner
		}
	}
}

// GameManager owns the whole simulation: snake, apple, timers and mode. It is
// driven by one Update call per frame and is not safe for concurrent use.
type GameManager struct {
	cfg       Config
	bounds    Bounds
	mode      GameMode
	menu      MenuChoice
	snake     *Snake
	apple     Point
	spawner   *AppleSpawner
	latched   Direction
	lastTick  time.Time
	ticks     uint64
	eaten     int
	cause     DeathCause
	err       error
	quit      bool
	sessionID string
	logger    *log.Logger
}

func NewGameManager(cfg Config, opts ...Option) (*GameManager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gm := &GameManager{
		cfg:       cfg,
		bounds:    cfg.Bounds(),
		mode:      ModeStart,
		menu:      ChoiceStart,
		snake:     NewSnake(Cell{X: SnakeSpawnX, Y: SnakeSpawnY, Dir: DirRight}),
		latched:   DirRight,
		sessionID: uuid.NewString(),
		logger:    log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(gm)
	}

	if gm.spawner == nil {
		gm.spawner = NewAppleSpawner(cfg.Seed)
	}
	gm.logger = gm.logger.With("session", gm.sessionID)

	apple, err := gm.spawner.Spawn(gm.snake, gm.bounds)
	if err != nil {
		return nil, fmt.Errorf("placing first apple: %w", err)
	}
	gm.apple = apple

	gm.logger.Info("Session created",
		"width", gm.bounds.Width,
		"height", gm.bounds.Height,
		"edge", gm.bounds.Rule,
		"tick", cfg.TickInterval,
		"seed", gm.spawner.Seed(),
	)

	return gm, nil
}

// Update runs one frame. now must come from a monotonic clock; the movement
// step only fires once TickInterval has passed since the previous one.
func (gm *GameManager) Update(now time.Time, in Input) error {
	switch gm.mode {
	case ModeStart:
		gm.updateMenu(now, in)
	case ModePlay:
		return gm.updatePlay(now, in)
	}
	return nil
}

func (gm *GameManager) updateMenu(now time.Time, in Input) {
	if in.Up {
		gm.menu = ChoiceStart
	} else if in.Down {
		gm.menu = ChoiceExit
	}

	if !in.Enter {
		return
	}

	switch gm.menu {
	case ChoiceStart:
		gm.lastTick = now
		gm.setMode(ModePlay)
	case ChoiceExit:
		gm.logger.Info("Exit chosen from menu")
		gm.quit = true
	}
}

func (gm *GameManager) updatePlay(now time.Time, in Input) error {
	gm.latchInput(in)

	if now.Sub(gm.lastTick) >= gm.cfg.TickInterval {
		gm.tick(now)
		if gm.mode != ModePlay {
			return nil
		}
	}

	if gm.snake.HitsSelf() {
		gm.die(CauseSelf)
		return nil
	}

	if gm.snake.Head().At(gm.apple) {
		return gm.eatApple()
	}

	return nil
}

// latchInput takes the first accepted key in priority order: Left, Right, Up,
// then Down.
func (gm *GameManager) latchInput(in Input) {
	switch {
	case in.Left && gm.Steer(DirLeft):
	case in.Right && gm.Steer(DirRight):
	case in.Up && gm.Steer(DirUp):
	case in.Down && gm.Steer(DirDown):
	}
}

// Steer latches the heading for the next tick and reports whether it was
// accepted. A reversal of the head's current heading is refused and leaves
// the latch untouched.
func (gm *GameManager) Steer(d Direction) bool {
	if d == DirNone || !d.valid() {
		return false
	}
	if gm.snake.Head().Dir.Reverses(d) {
		return false
	}
	gm.latched = d
	return true
}

func (gm *GameManager) tick(now time.Time) {
	gm.snake.SetHeading(gm.latched)
	gm.snake.Step()
	gm.ticks++
	gm.lastTick = now

	switch head := gm.snake.Head().Pos(); {
	case gm.bounds.IsWall(head):
		gm.die(CauseWall)
	case gm.snake.HitsSelf():
		gm.die(CauseSelf)
	}
}

func (gm *GameManager) eatApple() error {
	if err := gm.snake.Grow(); err != nil {
		return gm.fail(err)
	}
	gm.eaten++

	apple, err := gm.spawner.Spawn(gm.snake, gm.bounds)
	if err != nil {
		return gm.fail(err)
	}

	gm.logger.Debug("Apple eaten", "length", gm.snake.Len(), "at", gm.apple, "next", apple)
	gm.apple = apple
	return nil
}

func (gm *GameManager) die(cause DeathCause) {
	gm.cause = cause
	gm.logger.Info("Snake died", "cause", cause, "head", gm.snake.Head().Pos(), "length", gm.snake.Len(), "ticks", gm.ticks)
	gm.setMode(ModeEnd)
}

func (gm *GameManager) fail(err error) error {
	gm.err = err
	gm.cause = CauseFault
	gm.logger.Error("Simulation stopped", "error", err, "length", gm.snake.Len())
	gm.setMode(ModeEnd)
	return err
}

func (gm *GameManager) setMode(mode GameMode) {
	if mode == gm.mode {
		return
	}
	gm.logger.Info("Mode change", "from", gm.mode, "to", mode)
	gm.mode = mode
}

func (gm *GameManager) Mode() GameMode {
	return gm.mode
}

// ShouldQuit is set once Exit is confirmed in the start menu.
func (gm *GameManager) ShouldQuit() bool {
	return gm.quit
}

func (gm *GameManager) SessionID() string {
	return gm.sessionID
}

func (gm *GameManager) Snapshot() Snapshot {
	return Snapshot{
		Mode:        gm.mode,
		Menu:        gm.menu,
		Cells:       gm.snake.Cells(),
		Apple:       gm.apple,
		Score:       gm.snake.Len(),
		ApplesEaten: gm.eaten,
		Bounds:      gm.bounds,
		Latched:     gm.latched,
		Ticks:       gm.ticks,
		Cause:       gm.cause,
		SessionID:   gm.sessionID,
		Err:         gm.err,
	}
}
