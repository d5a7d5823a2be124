package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/snake2d/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	appleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	debugStyle = lipgloss.NewStyle().Faint(true)

	headRunes = map[game.Direction]string{
		game.DirUp:    "▲",
		game.DirDown:  "▼",
		game.DirLeft:  "◀",
		game.DirRight: "▶",
	}
)

const (
	emptyRune = "·"
	bodyRune  = "█"
	appleRune = "●"
	blockRune = "■"
)

// renderBoard draws the grid with row 0 at the bottom. Cells that sit past
// the visible edge are clipped.
func renderBoard(snap game.Snapshot) string {
	b := snap.Bounds
	glyphs := make(map[game.Point]string, len(snap.Cells)+1)

	if b.Contains(snap.Apple) {
		glyphs[snap.Apple] = appleStyle.Render(appleRune)
	}

	// Tail first so the head wins when cells overlap.
	for i := len(snap.Cells) - 1; i >= 0; i-- {
		c := snap.Cells[i]
		if !b.Contains(c.Pos()) {
			continue
		}
		if i == 0 {
			glyphs[c.Pos()] = headStyle.Render(headGlyph(c.Dir))
			continue
		}
		glyphs[c.Pos()] = bodyStyle.Render(bodyRune)
	}

	empty := emptyStyle.Render(emptyRune)
	var sb strings.Builder
	for y := b.Height - 1; y >= 0; y-- {
		for x := 0; x < b.Width; x++ {
			if g, ok := glyphs[game.Point{X: x, Y: y}]; ok {
				sb.WriteString(g)
			} else {
				sb.WriteString(empty)
			}
		}
		if y > 0 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

func headGlyph(d game.Direction) string {
	if r, ok := headRunes[d]; ok {
		return r
	}
	return blockRune
}

func renderStatus(snap game.Snapshot, debug bool) string {
	status := scoreStyle.Render(fmt.Sprintf("SCORE %d", snap.Score))
	if !debug {
		return status
	}

	head, _ := snap.Head()
	info := debugStyle.Render(fmt.Sprintf("session %s  tick %d  head (%d,%d) %v  next %v",
		snap.SessionID, snap.Ticks, head.X, head.Y, head.Dir, snap.Latched))
	return lipgloss.JoinVertical(lipgloss.Center, status, info)
}
