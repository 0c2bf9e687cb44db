package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

var (
	overlayBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("15")).
			Padding(1, 3).
			Align(lipgloss.Center)

	gameOverTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	victoryTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	scoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10"))
)

// overlayContent renders the end-of-game box for a terminal mode.
func overlayContent(st core.GameState, shareStatus string) string {
	var title, action string
	switch st.Mode {
	case core.ModeVictory:
		title = victoryTitle.Render("Victory!")
		action = "Play Again"
	default:
		title = gameOverTitle.Render("Game Over")
		action = "Restart"
	}

	lines := []string{
		title,
		"",
		scoreStyle.Render(fmt.Sprintf("Final Score: %d", st.Score)),
		"",
		hintStyle.Render(fmt.Sprintf("[r] %s   [s] Share", action)),
	}
	if shareStatus != "" {
		lines = append(lines, statusStyle.Render(shareStatus))
	}
	return overlayBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// composeOverlay renders the canvas with box centered on top of it.
// Canvas cells under the box are hidden; the rest stay visible.
func composeOverlay(s *core.Screen, box string) string {
	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	boxH := len(boxLines)

	if boxW > s.Width() || boxH > s.Height() {
		// Not enough room to show the canvas around the box
		return lipgloss.Place(s.Width(), s.Height(), lipgloss.Center, lipgloss.Center, box)
	}

	left := (s.Width() - boxW) / 2
	top := (s.Height() - boxH) / 2

	var sb strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		if y < top || y >= top+boxH {
			writeRow(&sb, s, y, 0, s.Width())
			continue
		}
		line := boxLines[y-top]
		writeRow(&sb, s, y, 0, left)
		sb.WriteString(line)
		// Pad short box lines so the canvas resumes at the same column
		sb.WriteString(strings.Repeat(" ", boxW-lipgloss.Width(line)))
		writeRow(&sb, s, y, left+boxW, s.Width())
	}
	return sb.String()
}
