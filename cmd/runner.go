package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Mshel/snake2d/internal/game"
	"github.com/Mshel/snake2d/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := game.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("snake2d", flag.ContinueOnError)
	tick := fs.Duration("tick", cfg.TickInterval, "time between snake moves")
	fps := fs.Int("fps", int(time.Second/game.FrameDuration), "frames per second")
	width := fs.Int("width", cfg.Width, "board width in cells")
	height := fs.Int("height", cfg.Height, "board height in cells")
	seed := fs.Int64("seed", cfg.Seed, "apple spawner seed, 0 picks one from the clock")
	edge := fs.String("edge", cfg.Boundary.String(), "boundary rule: strict or overhang")
	logPath := fs.String("log", cfg.LogPath, "write logs to this file")
	debug := fs.Bool("debug", false, "debug logging and on-screen session info")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	rule, err := game.ParseBoundaryRule(*edge)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		return 1
	}
	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "error fps must be positive, got %d\n", *fps)
		return 1
	}

	cfg.TickInterval = *tick
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed
	cfg.Boundary = rule
	cfg.LogPath = *logPath

	logger, closeLog, err := newLogger(cfg.LogPath, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		return 1
	}
	defer closeLog()

	gameManager, err := game.NewGameManager(cfg, game.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create game", "error", err)
		fmt.Fprintf(os.Stderr, "error %v\n", err)
		return 1
	}

	model := ui.NewControllerModel(gameManager,
		ui.WithFrameInterval(time.Second/time.Duration(*fps)),
		ui.WithLogger(logger),
		ui.WithDebug(*debug),
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		logger.Error("Terminal failed", "error", err)
		fmt.Printf("error %v", err)
		return 1
	}

	if m, ok := final.(ui.ControllerModel); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "game stopped: %v\n", m.Err())
		return 1
	}

	logger.Info("Bye", "session", gameManager.SessionID())
	return 0
}

// newLogger writes to path when set and discards everything otherwise, so the
// alt screen is never drawn over.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "snake2d",
		Level:           level,
	})
	return logger, closeFn, nil
}
