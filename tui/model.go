// Package tui is the live monitor: a bubbletea model fed by a Connection.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apcmini "github.com/kstrohbeck/apc-mini"
	"github.com/kstrohbeck/apc-mini/theme"
	"github.com/kstrohbeck/apc-mini/widgets"
)

// EventMsg wraps a device event for the bubbletea loop.
type EventMsg struct {
	Event apcmini.InputEvent
}

// ClosedMsg means the connection's queue is closed and drained.
type ClosedMsg struct{}

type Model struct {
	Conn       *apcmini.Connection
	Theme      *theme.Theme
	MirrorLEDs bool

	grid     [8][8]bool
	side     [8]bool
	bottom   [8]bool
	corner   bool
	sliders  [8]float32
	lastDesc string
	count    int
	quitting bool
}

func NewModel(conn *apcmini.Connection, th *theme.Theme, mirrorLEDs bool) Model {
	return Model{
		Conn:       conn,
		Theme:      th,
		MirrorLEDs: mirrorLEDs,
	}
}

// listenForEvents blocks on the connection's queue in a Cmd goroutine,
// which is the one consumer the bridge expects.
func listenForEvents(conn *apcmini.Connection) tea.Cmd {
	return func() tea.Msg {
		ev, ok := conn.Event()
		if !ok {
			return ClosedMsg{}
		}
		return EventMsg{Event: ev}
	}
}

func (m Model) Init() tea.Cmd {
	return listenForEvents(m.Conn)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.Conn.Close()
			return m, tea.Quit
		case "r":
			m.Conn.Reset()
		}

	case EventMsg:
		m.apply(msg.Event)
		return m, listenForEvents(m.Conn)

	case ClosedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) apply(ev apcmini.InputEvent) {
	m.count++

	switch ev := ev.(type) {
	case apcmini.ButtonEvent:
		m.applyButton(ev)
	case apcmini.SliderEvent:
		m.sliders[ev.Idx] = ev.Value.Fraction()
		m.lastDesc = fmt.Sprintf("slider %d -> %.3f", ev.Idx, ev.Value.Fraction())
	}
}

func (m *Model) applyButton(ev apcmini.ButtonEvent) {
	state := "up"
	if ev.Pressed {
		state = "down"
	}

	switch idx := ev.Idx.(type) {
	case apcmini.GridButtonIdx:
		m.grid[idx.Col][idx.Row] = ev.Pressed
		m.lastDesc = fmt.Sprintf("grid (%d,%d) %s", idx.Col, idx.Row, state)
	case apcmini.SideButtonIdx:
		m.side[idx] = ev.Pressed
		m.lastDesc = fmt.Sprintf("side %d %s", idx, state)
	case apcmini.BottomButtonIdx:
		m.bottom[idx] = ev.Pressed
		m.lastDesc = fmt.Sprintf("bottom %d %s", idx, state)
	case apcmini.CornerButtonIdx:
		m.corner = ev.Pressed
		m.lastDesc = fmt.Sprintf("corner %s", state)
	}

	if m.MirrorLEDs {
		color := apcmini.ColorOff
		if ev.Pressed {
			color = mirrorColor(ev.Idx)
		}
		m.Conn.SetButtonColor(ev.Idx, color)
	}
}

// mirrorColor picks the held-down LED state per button kind: grid pads
// are tri-color, the rest only know on/off/blink.
func mirrorColor(idx apcmini.ButtonIdx) apcmini.ButtonColor {
	if _, ok := idx.(apcmini.GridButtonIdx); ok {
		return apcmini.ColorGreen
	}
	return apcmini.ColorOn
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	header := headerStyle.Render(fmt.Sprintf("apc-mini monitor  %s  events:%d", m.Conn.InPort(), m.count))

	var grid [8][8][3]uint8
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			grid[col][row] = m.Theme.Pad(m.grid[col][row])
		}
	}
	var side, bottom [8][3]uint8
	for i := 0; i < 8; i++ {
		side[i] = m.Theme.Pad(m.side[i])
		bottom[i] = m.Theme.Pad(m.bottom[i])
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderPadGrid(grid, side, bottom, m.Theme.Pad(m.corner)))
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderSliderBank(m.sliders, m.Theme.Slider(), 24))
	out.WriteString("\n\n")
	if m.lastDesc != "" {
		out.WriteString(dimStyle.Render("last: " + m.lastDesc))
		out.WriteString("\n")
	}
	out.WriteString(dimStyle.Render("r:reset LEDs  q:quit"))

	return out.String()
}
