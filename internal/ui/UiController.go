package ui

import (
	"io"
	"time"

	"github.com/Mshel/snake2d/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// FrameMsg drives one pass of the game loop.
type FrameMsg time.Time

type ModelOption func(*ControllerModel)

func WithFrameInterval(d time.Duration) ModelOption {
	return func(m *ControllerModel) {
		if d > 0 {
			m.frameInterval = d
		}
	}
}

func WithLogger(logger *log.Logger) ModelOption {
	return func(m *ControllerModel) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDebug adds the session id and tick counter under the board.
func WithDebug(debug bool) ModelOption {
	return func(m *ControllerModel) {
		m.debug = debug
	}
}

// ControllerModel is the platform side of the game: it turns key presses into
// per-frame input, runs the simulation once per frame and renders the
// resulting snapshot for the current mode.
type ControllerModel struct {
	GameManager  *game.GameManager
	ScreenWidth  int
	ScreenHeight int

	keys          keyMap
	help          help.Model
	pending       game.Input
	frameInterval time.Duration
	logger        *log.Logger
	debug         bool
	err           error
}

func NewControllerModel(gameManager *game.GameManager, opts ...ModelOption) ControllerModel {
	m := ControllerModel{
		GameManager:   gameManager,
		keys:          defaultKeyMap(),
		help:          help.New(),
		frameInterval: game.FrameDuration,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m ControllerModel) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.logger.Info("Quit requested", "key", msg.String())
			return m, tea.Quit
		}
		m.pending = m.keys.collect(msg, m.pending)
		return m, nil

	case FrameMsg:
		in := m.pending
		m.pending = game.Input{}

		if err := m.GameManager.Update(time.Time(msg), in); err != nil {
			m.logger.Error("Game stopped", "error", err)
			m.err = err
		}

		if m.GameManager.ShouldQuit() {
			return m, tea.Quit
		}
		return m, frameCmd(m.frameInterval)
	}

	return m, nil
}

// Err is the invariant violation that ended the session, if any.
func (m ControllerModel) Err() error {
	return m.err
}

func (m ControllerModel) View() string {
	snap := m.GameManager.Snapshot()

	var content string
	switch snap.Mode {
	case game.ModeStart:
		content = lipgloss.JoinVertical(lipgloss.Center,
			renderStartMenu(snap),
			m.help.View(menuHelp{m.keys}),
		)
	case game.ModePlay:
		content = lipgloss.JoinVertical(lipgloss.Center,
			renderBoard(snap),
			renderStatus(snap, m.debug),
			m.help.View(m.keys),
		)
	case game.ModeEnd:
		content = renderGameOver(snap)
	default:
		content = "Unknown Screen"
	}

	if m.ScreenWidth == 0 || m.ScreenHeight == 0 {
		return content
	}
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
