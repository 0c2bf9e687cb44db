package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func TestComposeOverlayKeepsCanvasAround(t *testing.T) {
	s := core.NewScreen(40, 12)
	s.Fill('#', core.ColorDefault)

	out := composeOverlay(s, overlayContent(core.GameState{Score: 3, Mode: core.ModeGameOver}, ""))
	lines := strings.Split(out, "\n")

	if len(lines) != 12 {
		t.Fatalf("overlay produced %d lines, expected 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d is %d cells wide, expected 40", i, w)
		}
	}
	if lines[0] != strings.Repeat("#", 40) {
		t.Errorf("top row should be untouched canvas, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[6], "#") || !strings.HasSuffix(lines[6], "#") {
		t.Errorf("canvas should stay visible beside the box, got %q", lines[6])
	}
}

func TestComposeOverlayTinyScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	out := composeOverlay(s, overlayContent(core.GameState{Mode: core.ModeVictory}, "Copied to clipboard!"))
	if !strings.Contains(out, "Victory!") {
		t.Errorf("tiny screen should still show the overlay text, got %q", out)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 1, 'x', core.ColorRed)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[1], "x") {
		t.Errorf("RenderScreen = %q", lines)
	}
}
