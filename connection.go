package apcmini

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"github.com/kstrohbeck/apc-mini/debug"
)

// ErrPortNotFound means no MIDI port name matched the requested prefix.
var ErrPortNotFound = errors.New("port not found")

// ConnectStage names the step of Connect that failed.
type ConnectStage string

const (
	StageInputPort  ConnectStage = "input port lookup"
	StageOutputPort ConnectStage = "output port lookup"
	StageInputOpen  ConnectStage = "input open"
	StageOutputOpen ConnectStage = "output open"
)

// ConnectError is a Connect failure tagged with the stage it happened in.
type ConnectError struct {
	Stage ConnectStage
	Err   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("apcmini: %s: %v", e.Stage, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Connection is an open session with an APC mini: one input port feeding
// the event queue and one output port for LEDs. Input events arrive on
// the MIDI driver's goroutine and are drained with Event or TryEvent;
// the output side is safe to use from the draining goroutine.
type Connection struct {
	in    drivers.In
	out   drivers.Out
	send  func(midi.Message) error
	stop  func()
	queue *eventQueue
}

// Connect finds the first input and output port whose names start with
// portPrefix and opens both. Both ports must exist before either is
// opened. Failures are returned as a *ConnectError naming the stage;
// missing ports additionally match ErrPortNotFound.
func Connect(portPrefix string) (*Connection, error) {
	in := findInPort(portPrefix)
	if in == nil {
		return nil, &ConnectError{Stage: StageInputPort, Err: fmt.Errorf("%w: no input matching %q", ErrPortNotFound, portPrefix)}
	}
	out := findOutPort(portPrefix)
	if out == nil {
		return nil, &ConnectError{Stage: StageOutputPort, Err: fmt.Errorf("%w: no output matching %q", ErrPortNotFound, portPrefix)}
	}

	c := &Connection{
		in:    in,
		out:   out,
		queue: newEventQueue(),
	}

	// The callback runs on the driver's goroutine. It only parses and
	// enqueues; the queue push never blocks and never fails.
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		if ev, ok := TranslateFrame(msg); ok {
			c.queue.push(ev)
		}
	})
	if err != nil {
		return nil, &ConnectError{Stage: StageInputOpen, Err: err}
	}
	c.stop = stop

	send, err := midi.SendTo(out)
	if err != nil {
		stop()
		return nil, &ConnectError{Stage: StageOutputOpen, Err: err}
	}
	c.send = send

	debug.Log("midi", "connected in=%q out=%q", in.String(), out.String())
	return c, nil
}

func findInPort(prefix string) drivers.In {
	for _, in := range midi.GetInPorts() {
		if strings.HasPrefix(in.String(), prefix) {
			return in
		}
	}
	return nil
}

func findOutPort(prefix string) drivers.Out {
	for _, out := range midi.GetOutPorts() {
		if strings.HasPrefix(out.String(), prefix) {
			return out
		}
	}
	return nil
}

// Event returns the next input event, blocking until one arrives. It
// returns ok=false once the connection is closed and the queue drained.
func (c *Connection) Event() (InputEvent, bool) {
	return c.queue.wait()
}

// TryEvent returns the next input event if one is already queued.
func (c *Connection) TryEvent() (InputEvent, bool) {
	return c.queue.tryPop()
}

// InPort returns the name of the connected input port.
func (c *Connection) InPort() string { return c.in.String() }

// OutPort returns the name of the connected output port.
func (c *Connection) OutPort() string { return c.out.String() }

// Close turns the LEDs off, stops the input listener and closes the
// queue. Events already queued can still be drained afterwards.
func (c *Connection) Close() error {
	err := c.Reset()
	if c.stop != nil {
		c.stop()
	}
	c.queue.close()
	debug.Log("midi", "closed %q", c.in.String())
	return err
}
