package seph

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MaxFrameBytes bounds one frame, header included.
	MaxFrameBytes = 300

	// HeaderBytes is the tag + length prefix.
	HeaderBytes = 3
)

var (
	ErrShortFrame    = errors.New("seph: short frame")
	ErrFrameTooLarge = errors.New("seph: frame too large")
)

// Frame is a fixed-size frame envelope; it never allocates.
type Frame struct {
	Len  uint16
	Data [MaxFrameBytes]byte
}

// Set copies b into the frame, truncating to MaxFrameBytes.
func (f *Frame) Set(b []byte) {
	n := copy(f.Data[:], b)
	f.Len = uint16(n)
}

// Bytes returns the raw frame.
func (f *Frame) Bytes() []byte {
	n := int(f.Len)
	if n > MaxFrameBytes {
		n = MaxFrameBytes
	}
	return f.Data[:n]
}

// Tag returns byte 0, or 0 for an empty frame.
func (f *Frame) Tag() Tag {
	if f.Len == 0 {
		return 0
	}
	return Tag(f.Data[0])
}

// Payload returns the bytes after the header, clamped to the declared length.
func (f *Frame) Payload() []byte {
	_, payload, err := Split(f.Bytes())
	if err != nil {
		return nil
	}
	return payload
}

// Encode writes a frame with the given tag and payload parts into dst and
// returns its length.
func Encode(dst []byte, tag Tag, parts ...[]byte) (int, error) {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	if size > MaxFrameBytes-HeaderBytes {
		return 0, fmt.Errorf("%w: %d payload bytes", ErrFrameTooLarge, size)
	}
	if len(dst) < HeaderBytes+size {
		return 0, fmt.Errorf("%w: buffer holds %d, need %d", ErrFrameTooLarge, len(dst), HeaderBytes+size)
	}
	dst[0] = byte(tag)
	binary.BigEndian.PutUint16(dst[1:3], uint16(size))
	n := HeaderBytes
	for _, p := range parts {
		n += copy(dst[n:], p)
	}
	return n, nil
}

// Split returns the tag and payload of a raw frame. A payload shorter than
// the declared length is an error; trailing bytes are ignored.
func Split(b []byte) (Tag, []byte, error) {
	if len(b) < HeaderBytes {
		return 0, nil, ErrShortFrame
	}
	size := int(binary.BigEndian.Uint16(b[1:3]))
	if len(b) < HeaderBytes+size {
		return Tag(b[0]), nil, fmt.Errorf("%w: declared %d, have %d", ErrShortFrame, size, len(b)-HeaderBytes)
	}
	return Tag(b[0]), b[HeaderBytes : HeaderBytes+size], nil
}

// ButtonReading extracts the 2-bit button mask from a button-push payload.
func ButtonReading(payload []byte) (uint8, bool) {
	if len(payload) < 1 {
		return 0, false
	}
	return (payload[0] >> 1) & 0x3, true
}

// EncodeButtonPush builds the event a co-processor sends for a new reading.
func EncodeButtonPush(dst []byte, mask uint8) (int, error) {
	return Encode(dst, TagButtonPush, []byte{(mask & 0x3) << 1})
}
