package apcmini

import "gitlab.com/gomidi/midi/v2"

// ButtonColor is the velocity byte that selects an LED state. Grid pads
// have tri-color LEDs and understand the whole palette; side, bottom and
// corner buttons are single-color and only understand Off, On and Blink.
type ButtonColor uint8

const (
	ColorOff         ButtonColor = 0
	ColorGreen       ButtonColor = 1
	ColorGreenBlink  ButtonColor = 2
	ColorRed         ButtonColor = 3
	ColorRedBlink    ButtonColor = 4
	ColorYellow      ButtonColor = 5
	ColorYellowBlink ButtonColor = 6

	// Aliases for the single-color buttons.
	ColorOn    = ColorGreen
	ColorBlink = ColorGreenBlink
)

// SetButtonColor drives one button's LED. The device takes LED state as
// a note-on whose velocity is the color.
func (c *Connection) SetButtonColor(idx ButtonIdx, color ButtonColor) error {
	return c.send(midi.NoteOn(0, idx.Raw(), uint8(color)))
}

// Reset turns every LED on the device off.
func (c *Connection) Reset() error {
	var firstErr error
	for _, b := range AllButtons() {
		if err := c.SetButtonColor(b, ColorOff); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
