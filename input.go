package apcmini

// MIDI status bytes the APC mini sends on channel 0.
const (
	statusNoteOn        uint8 = 0x90
	statusNoteOff       uint8 = 0x80
	statusControlChange uint8 = 0xB0
)

// InputEvent is something the user did on the device: a ButtonEvent or a
// SliderEvent.
type InputEvent interface {
	inputEvent()
}

// ButtonEvent is a button going down or coming back up.
type ButtonEvent struct {
	Idx     ButtonIdx
	Pressed bool
}

func (ButtonEvent) inputEvent() {}

// SliderEvent is a slider reporting a new position.
type SliderEvent struct {
	Idx   SliderIdx
	Value SliderValue
}

func (SliderEvent) inputEvent() {}

// SliderValue is a slider position as the device reported it, 0-127.
type SliderValue struct {
	raw uint8
}

// NewSliderValue wraps a raw value byte, rejecting anything above 127.
func NewSliderValue(raw uint8) (SliderValue, bool) {
	if raw > 127 {
		return SliderValue{}, false
	}
	return SliderValue{raw: raw}, true
}

// Raw returns the value byte.
func (v SliderValue) Raw() uint8 { return v.raw }

// Fraction returns the position scaled to 0.0 (bottom) through 1.0 (top).
func (v SliderValue) Fraction() float32 {
	return float32(v.raw) / 127
}

// TranslateFrame turns one raw MIDI frame into an input event. Only
// 3-byte note on/off and control change frames on channel 0 are
// recognized; anything else returns ok=false, as does a recognized frame
// whose note or controller doesn't belong to any element. The hardware
// link is noisy by nature, so unrecognized frames are dropped rather
// than surfaced as errors.
func TranslateFrame(frame []byte) (InputEvent, bool) {
	if len(frame) != 3 {
		return nil, false
	}
	switch frame[0] {
	case statusNoteOn:
		return translateButton(frame[1], true)
	case statusNoteOff:
		return translateButton(frame[1], false)
	case statusControlChange:
		idx, err := SliderFromRaw(frame[1])
		if err != nil {
			return nil, false
		}
		value, ok := NewSliderValue(frame[2])
		if !ok {
			return nil, false
		}
		return SliderEvent{Idx: idx, Value: value}, true
	}
	return nil, false
}

func translateButton(note uint8, pressed bool) (InputEvent, bool) {
	idx, err := ButtonFromRaw(note)
	if err != nil {
		return nil, false
	}
	return ButtonEvent{Idx: idx, Pressed: pressed}, true
}
