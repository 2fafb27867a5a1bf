package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/catch-the-coin/internal/core"
)

// foregrounds maps core.Color to ANSI 256-color codes.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorWhite:  lipgloss.Color("15"),
	core.ColorYellow: lipgloss.Color("11"),
	core.ColorOrange: lipgloss.Color("208"),
	core.ColorGold:   lipgloss.Color("220"),
	core.ColorCyan:   lipgloss.Color("51"),
	core.ColorGray:   lipgloss.Color("245"),
	core.ColorRed:    lipgloss.Color("9"),
}

// backgrounds maps screen background colors to ANSI 256-color codes.
var backgrounds = map[core.Color]lipgloss.Color{
	core.ColorBackground: lipgloss.Color("235"),
}

// cellStyle returns the lipgloss style for a cell color on the given background.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := foregrounds[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := backgrounds[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	bg := s.Background()
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
