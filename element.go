// Package apcmini is a driver for the Akai APC mini grid controller.
//
// It maps the device's raw note/controller bytes onto typed element
// addresses (grid pads, side buttons, bottom buttons, the corner button,
// sliders) and bridges the asynchronous MIDI input callback into an event
// queue the application drains from its own goroutine.
package apcmini

import "fmt"

// APC mini note layout:
// Grid:   notes 0-63, note 0 is the bottom-left pad (col 0, row 7),
//         each run of 8 notes is one visual row from the bottom up
// Bottom: notes 64-71
// Side:   notes 82-89
// Corner: note 98 (shift)
// Sliders: CC 48-55
const (
	gridNoteMax = 63
	bottomBase  = 64
	sideBase    = 82
	cornerNote  = 98
	sliderBase  = 48

	bankWidth = 8
)

// RangeError reports a raw byte outside an element's reserved range, or
// constructor coordinates outside the device.
type RangeError struct {
	Element string
	Value   uint8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("apcmini: value %d out of range for %s", e.Value, e.Element)
}

// ButtonIdx addresses exactly one physical button on the device. The
// implementations are GridButtonIdx, SideButtonIdx, BottomButtonIdx and
// CornerButtonIdx; no other type satisfies it.
type ButtonIdx interface {
	// Raw returns the note number the device uses for this button.
	Raw() uint8

	buttonIdx()
}

// ButtonFromRaw decodes a note number into whichever button kind owns it.
// The four ranges are disjoint, so the order of attempts doesn't matter.
func ButtonFromRaw(raw uint8) (ButtonIdx, error) {
	if g, err := GridButtonFromRaw(raw); err == nil {
		return g, nil
	}
	if s, err := SideButtonFromRaw(raw); err == nil {
		return s, nil
	}
	if b, err := BottomButtonFromRaw(raw); err == nil {
		return b, nil
	}
	if c, err := CornerButtonFromRaw(raw); err == nil {
		return c, nil
	}
	return nil, &RangeError{Element: "button", Value: raw}
}

// GridButtonIdx addresses one pad of the 8x8 grid. Row 0 is the top row,
// col 0 the leftmost column.
type GridButtonIdx struct {
	Col, Row uint8
}

// NewGridButtonIdx builds a grid address, rejecting coordinates off the grid.
func NewGridButtonIdx(col, row uint8) (GridButtonIdx, bool) {
	if col >= bankWidth || row >= bankWidth {
		return GridButtonIdx{}, false
	}
	return GridButtonIdx{Col: col, Row: row}, true
}

// AllGridButtons lists every grid pad, column by column, each column top
// to bottom.
func AllGridButtons() []GridButtonIdx {
	all := make([]GridButtonIdx, 0, bankWidth*bankWidth)
	for col := uint8(0); col < bankWidth; col++ {
		for row := uint8(0); row < bankWidth; row++ {
			all = append(all, GridButtonIdx{Col: col, Row: row})
		}
	}
	return all
}

// GridButtonFromRaw decodes notes 0-63. Note 0 is the bottom-left pad.
func GridButtonFromRaw(raw uint8) (GridButtonIdx, error) {
	if raw > gridNoteMax {
		return GridButtonIdx{}, &RangeError{Element: "grid button", Value: raw}
	}
	g, ok := NewGridButtonIdx(raw%bankWidth, 7-raw/bankWidth)
	if !ok {
		return GridButtonIdx{}, &RangeError{Element: "grid button", Value: raw}
	}
	return g, nil
}

func (g GridButtonIdx) Raw() uint8 {
	return bankWidth*(7-g.Row) + g.Col
}

func (GridButtonIdx) buttonIdx() {}

// CornerButtonIdx addresses the single shift button below the side column.
type CornerButtonIdx struct{}

// AllCornerButtons lists the one corner button, for symmetry with the
// other kinds.
func AllCornerButtons() []CornerButtonIdx {
	return []CornerButtonIdx{{}}
}

// CornerButtonFromRaw decodes note 98.
func CornerButtonFromRaw(raw uint8) (CornerButtonIdx, error) {
	if raw != cornerNote {
		return CornerButtonIdx{}, &RangeError{Element: "corner button", Value: raw}
	}
	return CornerButtonIdx{}, nil
}

func (CornerButtonIdx) Raw() uint8 { return cornerNote }

func (CornerButtonIdx) buttonIdx() {}

// The side buttons, bottom buttons and sliders are all a bank of 8
// elements at a fixed base offset in the note (or CC) space. One set of
// helpers covers the range checks so the arithmetic lives in one place.

func newBankIdx(idx uint8) (uint8, bool) {
	if idx >= bankWidth {
		return 0, false
	}
	return idx, true
}

func bankFromRaw(raw, base uint8, element string) (uint8, error) {
	if raw < base || raw >= base+bankWidth {
		return 0, &RangeError{Element: element, Value: raw}
	}
	return raw - base, nil
}

// SideButtonIdx addresses one of the 8 round buttons on the right edge,
// top to bottom.
type SideButtonIdx uint8

// NewSideButtonIdx builds a side button address for index 0-7.
func NewSideButtonIdx(idx uint8) (SideButtonIdx, bool) {
	i, ok := newBankIdx(idx)
	return SideButtonIdx(i), ok
}

// AllSideButtons lists the side buttons top to bottom.
func AllSideButtons() []SideButtonIdx {
	all := make([]SideButtonIdx, bankWidth)
	for i := range all {
		all[i] = SideButtonIdx(i)
	}
	return all
}

// SideButtonFromRaw decodes notes 82-89.
func SideButtonFromRaw(raw uint8) (SideButtonIdx, error) {
	i, err := bankFromRaw(raw, sideBase, "side button")
	return SideButtonIdx(i), err
}

func (s SideButtonIdx) Raw() uint8 { return uint8(s) + sideBase }

func (SideButtonIdx) buttonIdx() {}

// BottomButtonIdx addresses one of the 8 round buttons under the grid,
// left to right.
type BottomButtonIdx uint8

// NewBottomButtonIdx builds a bottom button address for index 0-7.
func NewBottomButtonIdx(idx uint8) (BottomButtonIdx, bool) {
	i, ok := newBankIdx(idx)
	return BottomButtonIdx(i), ok
}

// AllBottomButtons lists the bottom buttons left to right.
func AllBottomButtons() []BottomButtonIdx {
	all := make([]BottomButtonIdx, bankWidth)
	for i := range all {
		all[i] = BottomButtonIdx(i)
	}
	return all
}

// BottomButtonFromRaw decodes notes 64-71.
func BottomButtonFromRaw(raw uint8) (BottomButtonIdx, error) {
	i, err := bankFromRaw(raw, bottomBase, "bottom button")
	return BottomButtonIdx(i), err
}

func (b BottomButtonIdx) Raw() uint8 { return uint8(b) + bottomBase }

func (BottomButtonIdx) buttonIdx() {}

// SliderIdx addresses one of the 8 channel sliders, left to right.
type SliderIdx uint8

// NewSliderIdx builds a slider address for index 0-7.
func NewSliderIdx(idx uint8) (SliderIdx, bool) {
	i, ok := newBankIdx(idx)
	return SliderIdx(i), ok
}

// AllSliders lists the sliders left to right.
func AllSliders() []SliderIdx {
	all := make([]SliderIdx, bankWidth)
	for i := range all {
		all[i] = SliderIdx(i)
	}
	return all
}

// SliderFromRaw decodes controller numbers 48-55.
func SliderFromRaw(raw uint8) (SliderIdx, error) {
	i, err := bankFromRaw(raw, sliderBase, "slider")
	return SliderIdx(i), err
}

func (s SliderIdx) Raw() uint8 { return uint8(s) + sliderBase }

// AllButtons lists every button on the device: the grid, then the side
// column, the bottom row, and the corner button.
func AllButtons() []ButtonIdx {
	all := make([]ButtonIdx, 0, bankWidth*bankWidth+2*bankWidth+1)
	for _, g := range AllGridButtons() {
		all = append(all, g)
	}
	for _, s := range AllSideButtons() {
		all = append(all, s)
	}
	for _, b := range AllBottomButtons() {
		all = append(all, b)
	}
	for _, c := range AllCornerButtons() {
		all = append(all, c)
	}
	return all
}
