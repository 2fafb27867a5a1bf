package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/catch-the-coin/internal/core"
)

// Half-scale canvas: 600x400 logical units on a 300x200 grid.
func newHalfCanvas() (*core.Screen, *cellCanvas) {
	screen := core.NewScreen(300, 200)
	return screen, newCellCanvas(screen, 600, 400)
}

func TestCellCanvasFill(t *testing.T) {
	screen, c := newHalfCanvas()
	screen.Set(5, 5, 'x')

	c.Fill(core.ColorBackground)

	if screen.Get(5, 5) != ' ' {
		t.Error("Fill should clear the grid")
	}
	if screen.Background() != core.ColorBackground {
		t.Errorf("Background() = %v, expected ColorBackground", screen.Background())
	}
}

func TestCellCanvasDrawSprite(t *testing.T) {
	screen, c := newHalfCanvas()
	c.DrawSprite(core.RectF{X: 280, Y: 350, W: 40, H: 20}, core.Sprite{Color: core.ColorCyan, Glyph: '█'})

	tests := []struct {
		x, y int
		want rune
	}{
		{140, 175, '█'},
		{159, 184, '█'},
		{139, 175, ' '},
		{160, 175, ' '},
		{140, 174, ' '},
		{140, 185, ' '},
	}
	for _, tt := range tests {
		if got := screen.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
	if screen.GetCell(150, 180).Color != core.ColorCyan {
		t.Error("sprite cells should carry the sprite color")
	}
}

func TestCellCanvasTinySpriteStillVisible(t *testing.T) {
	screen, c := newHalfCanvas()
	c.DrawSprite(core.RectF{X: 10, Y: 10}, core.Sprite{Glyph: '●'})

	if screen.Get(5, 5) != '●' {
		t.Error("a zero-sized sprite should still occupy one cell")
	}
}

func TestCellCanvasSpriteDefaultGlyph(t *testing.T) {
	screen, c := newHalfCanvas()
	c.DrawSprite(core.RectF{X: 0, Y: 0, W: 2, H: 2}, core.Sprite{})

	if screen.Get(0, 0) != '#' {
		t.Errorf("expected fallback glyph, got %q", screen.Get(0, 0))
	}
}

func TestCellCanvasSpriteClipped(t *testing.T) {
	screen, c := newHalfCanvas()
	// Partly above the playfield, like a freshly spawned coin
	c.DrawSprite(core.RectF{X: 100, Y: -30, W: 20, H: 20}, core.Sprite{Glyph: '●'})

	for y := 0; y < screen.Height(); y++ {
		if strings.ContainsRune(screen.Row(y), '●') {
			t.Fatalf("off-screen sprite leaked into row %d", y)
		}
	}
}

func TestCellCanvasDrawText(t *testing.T) {
	screen, c := newHalfCanvas()

	c.DrawText("Score: 3", core.Vec{X: 10, Y: 10}, core.TextStyle{Color: core.ColorWhite})
	if got := screen.Row(5)[5:13]; got != "Score: 3" {
		t.Errorf("left-aligned text at %q", got)
	}

	c.DrawText("abcd", core.Vec{X: 300, Y: 200}, core.TextStyle{Align: core.AlignCenter})
	if got := screen.Row(100)[148:152]; got != "abcd" {
		t.Errorf("centered text at %q", got)
	}
}

func TestCellCanvasWideTextStaysOnScreen(t *testing.T) {
	screen := core.NewScreen(10, 4)
	c := newCellCanvas(screen, 600, 400)

	c.DrawText("Game Over! Press ENTER", core.Vec{X: 300, Y: 200}, core.TextStyle{Align: core.AlignCenter})
	if got := screen.Row(2); got != "Game Over!" {
		t.Errorf("expected text clipped from the left edge, got %q", got)
	}
}
