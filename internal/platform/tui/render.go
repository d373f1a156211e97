package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// styles holds one lipgloss style per palette entry, built once at
// startup and read-only after that.
var styles = buildStyles()

func buildStyles() []lipgloss.Style {
	out := make([]lipgloss.Style, int(core.ColorGray)+1)
	for i := range out {
		st := lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		out[i] = st
	}
	return out
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(styles) {
		return styles[c]
	}
	return styles[core.ColorDefault]
}

// RenderScreen flattens a screen buffer into a styled string. Cells are
// emitted in runs of equal color, so each run costs one ANSI escape
// instead of one per cell.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			var run []rune
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(string(run)))
		}
	}
	return sb.String()
}
