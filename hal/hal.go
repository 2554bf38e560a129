package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// NopLogger drops every line.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is a 1bpp monochrome pixel buffer plus a "present" hook.
//
// Pixels are packed row-major, LSB first: pixel (x, y) lives in bit x%8 of
// byte y*StrideBytes()+x/8. A set bit is a lit pixel.
type Framebuffer interface {
	Width() int
	Height() int
	StrideBytes() int
	Buffer() []byte
	Clear(lit bool)
	Present() error
}

// Snapshotter is implemented by framebuffers that can copy their last
// presented frame for an observer (window, terminal, snapshot export).
type Snapshotter interface {
	Snapshot(dst []byte) []byte
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Buttons reports the raw held-state of the two device buttons.
//
// Each value is a 2-bit reading: bit0 = left held, bit1 = right held.
// A new value is emitted only when the reading changes.
type Buttons interface {
	Events() <-chan uint8
}

// Serial is the byte stream to the host computer.
type Serial interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined (1ms on every current platform).
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the UI stack and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	Serial() Serial
	Time() Time
}
