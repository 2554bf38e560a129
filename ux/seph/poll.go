package seph

import (
	"errors"
	"fmt"
	"time"

	"nanoux/hal"
	"nanoux/ux/buttons"
)

// EventKind classifies what one poll produced.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventButton
	EventCommand
	EventTicker
	EventOther
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventButton:
		return "button"
	case EventCommand:
		return "command"
	case EventTicker:
		return "ticker"
	case EventOther:
		return "other"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is the outcome of one poll. Frame holds the received frame for
// EventCommand, Err the transport failure for EventError.
type Event struct {
	Kind   EventKind
	Button buttons.Event
	Frame  Frame
	Err    error
}

// Poll makes sure a ready status is outstanding, then receives frames while
// it is pending. A button frame is fed to st and its event returned; any
// other frame is discarded. Poll reports false when no button event came
// out of this round, so callers simply poll again. Transport errors report
// false as well; Comm adds a backoff for links that keep failing.
func Poll(t Transport, st *buttons.State) (buttons.Event, bool) {
	var buf [MaxFrameBytes]byte
	ev := next(t, st, buf[:])
	if ev.Kind != EventButton {
		return buttons.None, false
	}
	return ev.Button, true
}

func next(t Transport, st *buttons.State, buf []byte) Event {
	if !t.IsStatusPending() {
		if err := t.SendReadyStatus(); err != nil {
			return Event{Kind: EventError, Err: fmt.Errorf("seph: ready status: %w", err)}
		}
	}

	var ev Event
	for t.IsStatusPending() {
		frame, err := t.Recv(buf, 0)
		if errors.Is(err, ErrTimeout) {
			return Event{}
		}
		if err != nil {
			return Event{Kind: EventError, Err: fmt.Errorf("seph: recv: %w", err)}
		}
		tag, payload, err := Split(frame)
		if err != nil {
			continue
		}

		switch tag {
		case TagButtonPush:
			reading, ok := ButtonReading(payload)
			if !ok {
				continue
			}
			if b, ok := st.Step(buttons.Mask(reading)); ok {
				return Event{Kind: EventButton, Button: b}
			}
			return Event{}
		case TagCommandAPDU:
			ev = Event{Kind: EventCommand}
			ev.Frame.Set(frame)
			return ev
		case TagTicker:
			ev = Event{Kind: EventTicker}
		default:
			ev = Event{Kind: EventOther}
		}
	}
	return ev
}

// Comm is the event pump shared by every screen of one device.
//
// Button-only screens use Poll: command frames that arrive meanwhile are
// parked in a bounded backlog instead of being acted on or lost, and
// whoever dispatches host commands collects them with TakeCommand.
//
// A failing transport is logged once per outage and polled again with a
// growing delay, up to maxBackoff.
type Comm struct {
	t       Transport
	log     hal.Logger
	buf     [MaxFrameBytes]byte
	backlog Mailbox
	backoff time.Duration
}

const (
	minBackoff = time.Millisecond
	maxBackoff = 100 * time.Millisecond
)

// NewComm returns a Comm over t. log may be nil.
func NewComm(t Transport, log hal.Logger) *Comm {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Comm{t: t, log: log}
}

// Transport returns the underlying transport.
func (c *Comm) Transport() Transport { return c.t }

// NextEvent returns whatever the next poll round produced, commands included.
// A transport error comes back as EventError after the backoff delay.
func (c *Comm) NextEvent(st *buttons.State) Event {
	ev := next(c.t, st, c.buf[:])
	if ev.Kind != EventError {
		if c.backoff != 0 {
			c.log.WriteLineString("seph: link recovered")
			c.backoff = 0
		}
		return ev
	}

	if c.backoff == 0 {
		c.log.WriteLineString(ev.Err.Error())
		c.backoff = minBackoff
	} else if c.backoff < maxBackoff {
		c.backoff = min(2*c.backoff, maxBackoff)
	}
	time.Sleep(c.backoff)
	return ev
}

// Failing reports whether the last poll hit a transport error.
func (c *Comm) Failing() bool { return c.backoff != 0 }

// Poll returns the next button event; command frames go to the backlog.
func (c *Comm) Poll(st *buttons.State) (buttons.Event, bool) {
	ev := c.NextEvent(st)
	switch ev.Kind {
	case EventButton:
		return ev.Button, true
	case EventCommand:
		if !c.backlog.TrySend(ev.Frame.Bytes()) {
			c.log.WriteLineString(fmt.Sprintf("seph: command backlog full, dropped %d bytes", len(ev.Frame.Payload())))
		}
	}
	return buttons.None, false
}

// TakeCommand pops the oldest parked command frame.
func (c *Comm) TakeCommand() (Frame, bool) {
	return c.backlog.TryRecv()
}

// Backlog returns the number of parked command frames.
func (c *Comm) Backlog() int { return c.backlog.Len() }
