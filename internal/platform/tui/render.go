package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Theme maps core color roles to lipgloss styles. A plain theme draws the
// bare characters.
type Theme struct {
	styles map[core.Color]lipgloss.Style
	plain  bool
}

// PlainTheme returns a theme without colors.
func PlainTheme() Theme {
	return Theme{plain: true}
}

// NewTheme builds a theme from configured hex colors. Every role shares the
// playfield background except the button, which is filled with its own color.
func NewTheme(c config.ColorsConfig) Theme {
	base := lipgloss.NewStyle().Background(lipgloss.Color(c.Background))

	return Theme{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault: base.Foreground(lipgloss.Color(c.Text)),
		core.ColorShip:    base.Foreground(lipgloss.Color(c.Ship)),
		core.ColorAlien:   base.Foreground(lipgloss.Color(c.Alien)),
		core.ColorBullet:  base.Foreground(lipgloss.Color(c.Bullet)),
		core.ColorButton: lipgloss.NewStyle().
			Background(lipgloss.Color(c.Button)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true),
		core.ColorNotice: base.Foreground(lipgloss.Color(c.Text)).Bold(true),
	}}
}

// Style returns the style for a color role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) RenderScreen(s *core.Screen) string {
	if t.plain {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
