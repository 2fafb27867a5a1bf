package tui

import (
	"math"

	"github.com/vovakirdan/catch-the-coin/internal/core"
)

// cellCanvas draws a logical playfield into a character Screen,
// stretching it to fill the whole grid.
type cellCanvas struct {
	screen *core.Screen
	sx, sy float64
}

// newCellCanvas maps a playfield of w x h logical units onto screen.
func newCellCanvas(screen *core.Screen, w, h float64) *cellCanvas {
	c := &cellCanvas{screen: screen}
	if w > 0 {
		c.sx = float64(screen.Width()) / w
	}
	if h > 0 {
		c.sy = float64(screen.Height()) / h
	}
	return c
}

// Fill clears the screen and paints it with bg.
func (c *cellCanvas) Fill(bg core.Color) {
	c.screen.SetBackground(bg)
	c.screen.Clear()
}

// DrawSprite fills every cell the bounds touch with the sprite glyph.
// Anything on screen is at least one cell in each direction.
func (c *cellCanvas) DrawSprite(bounds core.RectF, s core.Sprite) {
	x0 := int(math.Floor(bounds.X * c.sx))
	y0 := int(math.Floor(bounds.Y * c.sy))
	x1 := int(math.Ceil(bounds.Right() * c.sx))
	y1 := int(math.Ceil(bounds.Bottom() * c.sy))

	w := core.Max(1, x1-x0)
	h := core.Max(1, y1-y0)

	glyph := s.Glyph
	if glyph == 0 {
		glyph = '#'
	}
	c.screen.DrawRect(core.NewRect(x0, y0, w, h), glyph, s.Color)
}

// DrawText places text on the row containing the anchor. Size is ignored.
func (c *cellCanvas) DrawText(text string, at core.Vec, style core.TextStyle) {
	x := int(math.Floor(at.X * c.sx))
	y := int(math.Floor(at.Y * c.sy))
	if style.Align == core.AlignCenter {
		x -= len([]rune(text)) / 2
	}
	c.screen.DrawText(core.Clamp(x, 0, core.Max(0, c.screen.Width()-1)), y, text, style.Color)
}
