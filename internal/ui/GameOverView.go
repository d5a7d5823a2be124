package ui

import (
	"fmt"

	"github.com/Mshel/snake2d/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				Padding(1, 5).
				Align(lipgloss.Center)

	gameOverErrStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("203")).
				Italic(true)

	gameOverHintStyle = lipgloss.NewStyle().Faint(true).Margin(1, 0, 0, 0)

	gameOverFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				Padding(0, 2)
)

var causeText = map[game.DeathCause]string{
	game.CauseWall:  "You hit the wall.",
	game.CauseSelf:  "You bit yourself.",
	game.CauseFault: "The game stopped.",
}

// renderGameOver draws the final score and, for sessions stopped by an
// error, what went wrong.
func renderGameOver(snap game.Snapshot) string {
	rows := []string{
		gameOverTitleStyle.Render("GAME OVER"),
		fmt.Sprintf("Score: %d", snap.Score),
	}

	if text, ok := causeText[snap.Cause]; ok {
		rows = append(rows, text)
	}
	if snap.Err != nil {
		rows = append(rows, gameOverErrStyle.Render(snap.Err.Error()))
	}
	rows = append(rows, gameOverHintStyle.Render("Press q or esc to quit."))

	return gameOverFrameStyle.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
