package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cnake/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderTooSmall centers a resize hint on a width x height terminal.
func renderTooSmall(width, height, needW, needH int) string {
	msg := warnStyle.Render("Window too small") + "\n" +
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
			Render(fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, width, height))
	return lipgloss.Place(max(width, 1), max(height, 1), lipgloss.Center, lipgloss.Center, msg)
}
