//go:build tinygo && !baremetal

package hal

import (
	"bufio"
	"os"
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *MonoFramebuffer
	btn    *tinyGoHostButtons
	t      *tinyGoHostTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. Buttons are typed on stdin, one per line: l, r or b (both).
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     NewMonoFramebuffer(HostScreenWidth, HostScreenHeight),
		btn:    newTinyGoHostButtons(),
		t:      newTinyGoHostTime(),
	}
}

// Host screen geometry, matching the 128x64 OLED of the target.
const (
	HostScreenWidth  = 128
	HostScreenHeight = 64
)

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Buttons() Buttons { return h.btn }
func (h *tinyGoHostHAL) Serial() Serial   { return nil }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime() *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 16)}
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

func (t *tinyGoHostTime) Ticks() <-chan uint64 { return t.ch }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostButtons struct {
	ch chan uint8
}

func newTinyGoHostButtons() *tinyGoHostButtons {
	b := &tinyGoHostButtons{ch: make(chan uint8, 16)}
	go b.readStdin()
	return b
}

func (b *tinyGoHostButtons) Events() <-chan uint8 { return b.ch }

// readStdin turns each typed line into a press/release tap.
func (b *tinyGoHostButtons) readStdin() {
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		var mask uint8
		switch sc.Text() {
		case "l":
			mask = 0x1
		case "r":
			mask = 0x2
		case "b":
			mask = 0x3
		default:
			continue
		}
		b.ch <- mask
		b.ch <- 0
	}
}
