// Package widgets renders device state as terminal blocks.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderPad renders a single colored pad.
func RenderPad(color [3]uint8) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render("■")
}

// RenderPadGrid renders the 8x8 grid with the side column on the right
// and the bottom row (plus corner button) underneath. Row 0 is drawn at
// the top, matching the physical panel.
func RenderPadGrid(grid [8][8][3]uint8, side [8][3]uint8, bottom [8][3]uint8, corner [3]uint8) string {
	var lines []string
	for row := 0; row < 8; row++ {
		var line strings.Builder
		for col := 0; col < 8; col++ {
			line.WriteString(RenderPad(grid[col][row]))
			line.WriteString(" ")
		}
		line.WriteString("  ")
		line.WriteString(RenderPad(side[row]))
		lines = append(lines, line.String())
	}

	var last strings.Builder
	for col := 0; col < 8; col++ {
		last.WriteString(RenderPad(bottom[col]))
		last.WriteString(" ")
	}
	last.WriteString("  ")
	last.WriteString(RenderPad(corner))
	lines = append(lines, "", last.String())

	return strings.Join(lines, "\n")
}

// RenderSliderBank renders the 8 sliders as horizontal bars with their
// fraction, one per line.
func RenderSliderBank(levels [8]float32, barColor lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Foreground(barColor)
	var lines []string
	for i, level := range levels {
		filled := int(level*float32(width) + 0.5)
		if filled > width {
			filled = width
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		lines = append(lines, fmt.Sprintf("%d %s %4.0f%%", i, style.Render(bar), level*100))
	}
	return strings.Join(lines, "\n")
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
