package bagl

import (
	"errors"
	"fmt"
	"time"

	"nanoux/hal"
	"nanoux/ux/seph"
)

// AckTimeout bounds the wait for a display-processed event.
const AckTimeout = 500 * time.Millisecond

// StatusChannel is the transport a DescriptorBackend talks through.
type StatusChannel interface {
	Send(frame []byte) error
	Settle(timeout time.Duration) error
	Await(buf []byte, want seph.Tag, timeout time.Duration) ([]byte, error)
}

// DescriptorBackend sends each component as a display status frame to a
// co-processor that owns the physical screen, one record at a time.
type DescriptorBackend struct {
	ch  StatusChannel
	log hal.Logger
	out [seph.MaxFrameBytes]byte
	in  [seph.MaxFrameBytes]byte
}

// NewDescriptorBackend returns a backend over ch. log may be nil.
func NewDescriptorBackend(ch StatusChannel, log hal.Logger) *DescriptorBackend {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &DescriptorBackend{ch: ch, log: log}
}

func (d *DescriptorBackend) Draw(c *Component, text string) error {
	if err := d.ch.Settle(AckTimeout); err != nil {
		if !errors.Is(err, seph.ErrTimeout) {
			return fmt.Errorf("bagl: settle: %w", err)
		}
		d.log.WriteLineString("bagl: no answer to pending status")
	}

	var rec [ComponentBytes]byte
	if _, err := c.MarshalTo(rec[:]); err != nil {
		return err
	}
	if room := seph.MaxFrameBytes - seph.HeaderBytes - ComponentBytes; len(text) > room {
		text = text[:room]
	}
	n, err := seph.Encode(d.out[:], seph.TagDisplayStatus, rec[:], []byte(text))
	if err != nil {
		return err
	}
	if err := d.ch.Send(d.out[:n]); err != nil {
		return fmt.Errorf("bagl: send %s: %w", c.Type, err)
	}
	if _, err := d.ch.Await(d.in[:], seph.TagDisplayProcessed, AckTimeout); err != nil {
		return fmt.Errorf("bagl: display ack: %w", err)
	}
	return nil
}

// Update is a no-op: the co-processor shows each record as it lands.
func (d *DescriptorBackend) Update() error { return nil }

