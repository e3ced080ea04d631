// Package theme holds the monitor's terminal colors.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type RGB [3]uint8

// Theme maps monitor UI roles to colors.
type Theme struct {
	bg      RGB
	fg      RGB
	muted   RGB
	accent  RGB
	pressed RGB
	idle    RGB
	slider  RGB
}

// Default is tuned for dark terminals: green pressed pads on a dim grid,
// amber sliders, matching the hardware's own LED palette.
func Default() *Theme {
	return &Theme{
		bg:      RGB{24, 20, 28},
		fg:      RGB{220, 214, 228},
		muted:   RGB{100, 92, 110},
		accent:  RGB{235, 110, 180},
		pressed: RGB{80, 250, 120},
		idle:    RGB{56, 50, 64},
		slider:  RGB{255, 190, 70},
	}
}

func (t *Theme) FG() lipgloss.Color     { return toLipgloss(t.fg) }
func (t *Theme) Muted() lipgloss.Color  { return toLipgloss(t.muted) }
func (t *Theme) Accent() lipgloss.Color { return toLipgloss(t.accent) }
func (t *Theme) Slider() lipgloss.Color { return toLipgloss(t.slider) }

// Pad returns the color for a pad in the given press state.
func (t *Theme) Pad(pressed bool) RGB {
	if pressed {
		return t.pressed
	}
	return t.idle
}

func toLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
