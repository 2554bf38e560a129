package seph

import (
	"errors"
	"fmt"
	"time"

	"nanoux/hal"
)

var ErrTimeout = errors.New("seph: receive timeout")

// Link is the raw frame pipe to the co-processor.
//
// Recv blocks until one frame is available or the timeout elapses
// (0 = wait forever) and returns ErrTimeout in the latter case.
type Link interface {
	Send(frame []byte) error
	Recv(buf []byte, timeout time.Duration) (int, error)
}

// Transport is the host-communication contract consumed by the input
// adapter and the descriptor display backend.
type Transport interface {
	Send(frame []byte) error
	Recv(buf []byte, timeout time.Duration) ([]byte, error)
	IsStatusPending() bool
	SendReadyStatus() error
}

// Channel tracks the status/event handshake over a Link.
//
// Sending a status frame arms the pending flag; receiving any frame clears
// it. Frames pulled out of order (while waiting for a specific event) can
// be deferred and are replayed first by the next Recv.
type Channel struct {
	link     Link
	log      hal.Logger
	pending  bool
	deferred Mailbox
	scratch  [MaxFrameBytes]byte
}

// NewChannel returns a Channel over link. log may be nil.
func NewChannel(link Link, log hal.Logger) *Channel {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Channel{link: link, log: log}
}

func (c *Channel) Send(frame []byte) error {
	if len(frame) < HeaderBytes {
		return ErrShortFrame
	}
	if err := c.link.Send(frame); err != nil {
		return fmt.Errorf("seph send %s: %w", Tag(frame[0]), err)
	}
	if Tag(frame[0]).IsStatus() {
		c.pending = true
	}
	return nil
}

func (c *Channel) Recv(buf []byte, timeout time.Duration) ([]byte, error) {
	if f, ok := c.deferred.TryRecv(); ok {
		n := copy(buf, f.Bytes())
		c.pending = false
		return buf[:n], nil
	}
	n, err := c.link.Recv(buf, timeout)
	if err != nil {
		return nil, err
	}
	c.pending = false
	return buf[:n], nil
}

func (c *Channel) IsStatusPending() bool { return c.pending }

// SendReadyStatus tells the co-processor the UI is idle and ready for the
// next event.
func (c *Channel) SendReadyStatus() error {
	var b [HeaderBytes + 2]byte
	n, err := Encode(b[:], TagGeneralStatus, []byte{0x00, 0x00})
	if err != nil {
		return err
	}
	return c.Send(b[:n])
}

// Defer queues a frame for the next Recv. It returns false (and logs) when
// the deferred queue is full.
func (c *Channel) Defer(frame []byte) bool {
	if c.deferred.TrySend(frame) {
		return true
	}
	if len(frame) > 0 {
		c.log.WriteLineString("seph: deferred queue full, dropped " + Tag(frame[0]).String())
	}
	return false
}

// Settle consumes the answer to an outstanding status straight from the
// link and defers it, so the next status starts a fresh exchange.
func (c *Channel) Settle(timeout time.Duration) error {
	if !c.pending {
		return nil
	}
	n, err := c.link.Recv(c.scratch[:], timeout)
	if err != nil {
		return err
	}
	c.pending = false
	c.Defer(c.scratch[:n])
	return nil
}

// Await reads the link until a frame tagged want arrives. Frames with other
// tags are deferred in arrival order.
func (c *Channel) Await(buf []byte, want Tag, timeout time.Duration) ([]byte, error) {
	for {
		n, err := c.link.Recv(buf, timeout)
		if err != nil {
			return nil, err
		}
		c.pending = false
		if n > 0 && Tag(buf[0]) == want {
			return buf[:n], nil
		}
		c.Defer(buf[:n])
	}
}

// SetTicker asks the co-processor for a ticker event every ms milliseconds
// (0 disables it).
func SetTicker(t Transport, ms uint16) error {
	var b [HeaderBytes + 2]byte
	n, err := Encode(b[:], TagSetTicker, []byte{byte(ms >> 8), byte(ms)})
	if err != nil {
		return err
	}
	return t.Send(b[:n])
}
