package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/catch-the-coin/internal/core"
)

// palette maps core.Color to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:    {R: 255, G: 255, B: 255, A: 255},
	core.ColorBackground: {R: 25, G: 25, B: 35, A: 255},
	core.ColorWhite:      {R: 255, G: 255, B: 255, A: 255},
	core.ColorYellow:     {R: 255, G: 255, B: 0, A: 255},
	core.ColorOrange:     {R: 255, G: 165, B: 0, A: 255},
	core.ColorGold:       {R: 255, G: 215, B: 0, A: 255},
	core.ColorCyan:       {R: 0, G: 200, B: 255, A: 255},
	core.ColorGray:       {R: 128, G: 128, B: 128, A: 255},
	core.ColorRed:        {R: 220, G: 50, B: 50, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// canvas draws into an ebiten image whose size equals the playfield.
type canvas struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newCanvas() (*canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: cannot load font: %w", err)
	}
	return &canvas{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// face returns the cached font face for a point size.
func (c *canvas) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 16
	}
	f, ok := c.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: c.source, Size: size}
		c.faces[size] = f
	}
	return f
}

func (c *canvas) Fill(bg core.Color) {
	c.dst.Fill(rgba(bg))
}

func (c *canvas) DrawSprite(bounds core.RectF, s core.Sprite) {
	clr := rgba(s.Color)
	switch s.Shape {
	case core.ShapeDisc:
		center := bounds.Center()
		r := min(bounds.W, bounds.H) / 2
		vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(r), clr, true)
	default:
		vector.DrawFilledRect(c.dst, float32(bounds.X), float32(bounds.Y), float32(bounds.W), float32(bounds.H), clr, false)
	}
}

func (c *canvas) DrawText(str string, at core.Vec, style core.TextStyle) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(at.X, at.Y)
	opts.ColorScale.ScaleWithColor(rgba(style.Color))
	if style.Align == core.AlignCenter {
		opts.LayoutOptions.PrimaryAlign = text.AlignCenter
		opts.LayoutOptions.SecondaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, str, c.face(style.Size), opts)
}
