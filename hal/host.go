//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Host screen geometry, matching the 128x64 OLED of the target.
const (
	HostScreenWidth  = 128
	HostScreenHeight = 64
)

type hostHAL struct {
	logger *hostLogger
	fb     *MonoFramebuffer
	btn    *hostButtons
	t      *hostTime
	serial Serial
}

// New returns a host HAL implementation.
func New() HAL {
	return NewWithSize(HostScreenWidth, HostScreenHeight)
}

// NewWithSize returns a host HAL with a custom screen size (e.g. 128x32).
func NewWithSize(width, height int) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     NewMonoFramebuffer(width, height),
		btn:    newHostButtons(),
		t:      newHostTime(),
		serial: &hostSerial{r: os.Stdin, w: os.Stdout},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Buttons() Buttons { return h.btn }
func (h *hostHAL) Serial() Serial   { return h.serial }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *MonoFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w == nil {
		return
	}
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostButtons turns key state into 2-bit button readings.
type hostButtons struct {
	ch   chan uint8
	last uint8
}

func newHostButtons() *hostButtons {
	return &hostButtons{ch: make(chan uint8, 64)}
}

func (b *hostButtons) Events() <-chan uint8 { return b.ch }

// set emits the reading if it differs from the last one delivered.
func (b *hostButtons) set(mask uint8) {
	mask &= 0x3
	if mask == b.last {
		return
	}
	select {
	case b.ch <- mask:
		b.last = mask
	default:
		// Dropped; a later set retries.
	}
}

// tap emits a full press/release cycle for the given buttons.
func (b *hostButtons) tap(mask uint8) {
	b.set(mask)
	b.set(0)
}

type hostSerial struct {
	mu sync.Mutex
	r  *os.File
	w  *os.File
}

func (s *hostSerial) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotImplemented
	}
	return s.r.Read(p)
}

func (s *hostSerial) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type hostTime struct {
	ch  chan uint64
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step converts wall-clock time elapsed since the last call into 1ms ticks.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.emit(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / time.Millisecond)
	if ticks == 0 {
		return
	}
	t.acc %= time.Millisecond
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
