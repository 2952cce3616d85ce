package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shimonopoly/internal/canvas"
)

// colorStyles maps canvas.Color to lipgloss styles.
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:   lipgloss.NewStyle(),
	canvas.ColorIntact:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	canvas.ColorDamaged:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	canvas.ColorRestored:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	canvas.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	canvas.ColorLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	canvas.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderCanvas converts a Canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *canvas.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			startColor := c.Get(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "."
}
