package ui

import (
	"github.com/Mshel/snake2d/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("28"))

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	menuSelectedStyle = menuItemStyle.
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("82"))

	menuArrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

type menuEntry struct {
	label  string
	choice game.MenuChoice
}

var menuEntries = []menuEntry{
	{"START", game.ChoiceStart},
	{"EXIT", game.ChoiceExit},
}

// renderStartMenu draws the title and the two menu entries, marking the
// selected one with an arrow.
func renderStartMenu(snap game.Snapshot) string {
	rows := []string{titleStyle.Render("SNAKE 2D"), ""}

	for _, entry := range menuEntries {
		arrow := "  "
		style := menuItemStyle
		if entry.choice == snap.Menu {
			arrow = menuArrowStyle.Render("▶ ")
			style = menuSelectedStyle
		}
		rows = append(rows, arrow+style.Render(entry.label))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
