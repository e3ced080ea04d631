package apcmini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderValueBounds(t *testing.T) {
	v, ok := NewSliderValue(0)
	require.True(t, ok)
	assert.Equal(t, float32(0), v.Fraction())
	assert.Equal(t, uint8(0), v.Raw())

	v, ok = NewSliderValue(127)
	require.True(t, ok)
	assert.Equal(t, float32(1), v.Fraction())

	_, ok = NewSliderValue(128)
	assert.False(t, ok)
	_, ok = NewSliderValue(255)
	assert.False(t, ok)
}

func TestTranslateFrame(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
		want  InputEvent
	}{
		{
			name:  "note on bottom-left pad",
			frame: []byte{0x90, 0, 127},
			want:  ButtonEvent{Idx: GridButtonIdx{Col: 0, Row: 7}, Pressed: true},
		},
		{
			name:  "note off bottom-left pad",
			frame: []byte{0x80, 0, 0},
			want:  ButtonEvent{Idx: GridButtonIdx{Col: 0, Row: 7}, Pressed: false},
		},
		{
			name:  "note on side button",
			frame: []byte{0x90, 82, 127},
			want:  ButtonEvent{Idx: SideButtonIdx(0), Pressed: true},
		},
		{
			name:  "note on bottom button",
			frame: []byte{0x90, 71, 127},
			want:  ButtonEvent{Idx: BottomButtonIdx(7), Pressed: true},
		},
		{
			name:  "note on corner button",
			frame: []byte{0x90, 98, 127},
			want:  ButtonEvent{Idx: CornerButtonIdx{}, Pressed: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := TranslateFrame(tt.frame)
			require.True(t, ok)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestTranslateFrameSlider(t *testing.T) {
	ev, ok := TranslateFrame([]byte{0xB0, 48, 64})
	require.True(t, ok)

	slider, isSlider := ev.(SliderEvent)
	require.True(t, isSlider)
	assert.Equal(t, SliderIdx(0), slider.Idx)
	assert.Equal(t, uint8(64), slider.Value.Raw())
	assert.InDelta(t, 0.504, slider.Value.Fraction(), 0.001)
}

// Frames outside the recognized vocabulary produce no event and no
// error; the hardware link is allowed to be noisy.
func TestTranslateFrameDiscards(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
	}{
		{name: "empty frame", frame: nil},
		{name: "two bytes", frame: []byte{0x90, 0}},
		{name: "four bytes", frame: []byte{0x90, 0, 127, 0}},
		{name: "foreign status", frame: []byte{0xA0, 0, 127}},
		{name: "note on wrong channel", frame: []byte{0x91, 0, 127}},
		{name: "note in gap 72-81", frame: []byte{0x90, 72, 127}},
		{name: "note in gap 90-97", frame: []byte{0x90, 97, 127}},
		{name: "note above corner", frame: []byte{0x90, 99, 127}},
		{name: "note off in gap", frame: []byte{0x80, 120, 0}},
		{name: "cc below slider bank", frame: []byte{0xB0, 47, 64}},
		{name: "cc above slider bank", frame: []byte{0xB0, 56, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := TranslateFrame(tt.frame)
			assert.False(t, ok)
			assert.Nil(t, ev)
		})
	}
}

func TestTranslateFrameNoteOnAnyVelocity(t *testing.T) {
	// The APC mini signals release with a real note-off, so a note-on
	// with velocity 0 still counts as a press.
	ev, ok := TranslateFrame([]byte{0x90, 63, 0})
	require.True(t, ok)
	assert.Equal(t, ButtonEvent{Idx: GridButtonIdx{Col: 7, Row: 0}, Pressed: true}, ev)
}
