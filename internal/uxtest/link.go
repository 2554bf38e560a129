// Package uxtest holds fakes shared by the UI package tests.
package uxtest

import (
	"testing"
	"time"

	"nanoux/ux/seph"
)

// Link is a scripted seph.Link. Recv hands out queued frames in order and
// fails the test once the script runs dry. Display status frames are
// acknowledged automatically.
type Link struct {
	tb     testing.TB
	script [][]byte
	Sent   [][]byte
}

// NewLink returns an empty script bound to tb.
func NewLink(tb testing.TB) *Link {
	return &Link{tb: tb}
}

// Readings queues one button frame per raw mask.
func (l *Link) Readings(masks ...uint8) *Link {
	for _, m := range masks {
		var b [seph.HeaderBytes + 1]byte
		n, _ := seph.EncodeButtonPush(b[:], m)
		l.script = append(l.script, append([]byte(nil), b[:n]...))
	}
	return l
}

// Tap queues a press and full release of mask.
func (l *Link) Tap(mask uint8) *Link {
	return l.Readings(mask, 0)
}

// Taps queues a tap for each mask.
func (l *Link) Taps(masks ...uint8) *Link {
	for _, m := range masks {
		l.Tap(m)
	}
	return l
}

// Command queues a command frame carrying payload.
func (l *Link) Command(payload ...byte) *Link {
	var b [seph.MaxFrameBytes]byte
	n, err := seph.Encode(b[:], seph.TagCommandAPDU, payload)
	if err != nil {
		l.tb.Fatalf("uxtest: encode command: %v", err)
	}
	l.script = append(l.script, append([]byte(nil), b[:n]...))
	return l
}

// Frame queues a raw frame.
func (l *Link) Frame(b ...byte) *Link {
	l.script = append(l.script, b)
	return l
}

// Remaining returns the number of frames not yet received.
func (l *Link) Remaining() int { return len(l.script) }

func (l *Link) Send(frame []byte) error {
	l.Sent = append(l.Sent, append([]byte(nil), frame...))
	if len(frame) > 0 && seph.Tag(frame[0]) == seph.TagDisplayStatus {
		ack := []byte{byte(seph.TagDisplayProcessed), 0x00, 0x00}
		l.script = append([][]byte{ack}, l.script...)
	}
	return nil
}

func (l *Link) Recv(buf []byte, _ time.Duration) (int, error) {
	if len(l.script) == 0 {
		l.tb.Fatalf("uxtest: script exhausted after %d sent frames", len(l.Sent))
		return 0, seph.ErrTimeout
	}
	f := l.script[0]
	l.script = l.script[1:]
	return copy(buf, f), nil
}
