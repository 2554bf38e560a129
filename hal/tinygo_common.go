//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

// pinButtons samples two active-low pins and reports debounced readings.
type pinButtons struct {
	left  machine.Pin
	right machine.Pin
	ch    chan uint8
}

const buttonSamplePeriod = 5 * time.Millisecond

func newPinButtons(left, right machine.Pin) *pinButtons {
	left.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	right.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	b := &pinButtons{left: left, right: right, ch: make(chan uint8, 16)}
	go b.sample()
	return b
}

func (b *pinButtons) Events() <-chan uint8 { return b.ch }

func (b *pinButtons) read() uint8 {
	var mask uint8
	if !b.left.Get() {
		mask |= 0x1
	}
	if !b.right.Get() {
		mask |= 0x2
	}
	return mask
}

func (b *pinButtons) sample() {
	var last, candidate uint8
	for {
		time.Sleep(buttonSamplePeriod)
		cur := b.read()
		// Require two equal consecutive samples before reporting.
		if cur != candidate {
			candidate = cur
			continue
		}
		if cur == last {
			continue
		}
		last = cur
		select {
		case b.ch <- cur:
		default:
		}
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type uartSerial struct {
	uart *machine.UART
}

func (s *uartSerial) Read(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	for s.uart.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	return s.uart.Read(p)
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}
