package core

// Align selects how DrawText interprets its anchor point.
type Align uint8

const (
	AlignLeft   Align = iota // anchor is the top-left corner of the text
	AlignCenter              // anchor is the center of the text
)

// TextStyle describes how a line of text is drawn.
type TextStyle struct {
	Color Color
	Size  float64 // Point size; cell-based canvases ignore it
	Align Align
}

// Shape is the outline a sprite is drawn with.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeDisc
)

// Sprite describes how an actor looks. Glyph is used by character canvases,
// Shape by pixel canvases.
type Sprite struct {
	Shape Shape
	Color Color
	Glyph rune
}

// Canvas is the drawing surface a game renders into. All coordinates are in
// logical playfield units; the implementation owns the mapping to pixels or cells.
type Canvas interface {
	// Fill clears the whole surface to a single color.
	Fill(bg Color)

	// DrawSprite draws an actor occupying bounds.
	DrawSprite(bounds RectF, s Sprite)

	// DrawText draws a single line of text anchored at the given point.
	DrawText(text string, at Vec, style TextStyle)
}
