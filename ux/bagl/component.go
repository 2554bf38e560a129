// Package bagl draws the closed set of UI primitives (rectangles, icons and
// single text lines) through a pluggable display backend.
//
// Widgets build primitives as plain values and hand them to a Screen. The
// Screen resolves alignment against its geometry, turns each primitive into
// a Component descriptor and passes it to the Backend, which either rasterizes
// it into a framebuffer or ships it to a display co-processor.
package bagl

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ComponentType is the kind byte of a descriptor record.
type ComponentType uint8

const (
	TypeRectangle ComponentType = 3
	TypeIcon      ComponentType = 5
	TypeLabelLine ComponentType = 7
)

func (t ComponentType) String() string {
	switch t {
	case TypeRectangle:
		return "rectangle"
	case TypeIcon:
		return "icon"
	case TypeLabelLine:
		return "labelline"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Color is a 24-bit RGB value; the monochrome backends treat any non-zero
// color as lit.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// Lit reports whether c lights a monochrome pixel.
func (c Color) Lit() bool { return c != Black }

const (
	NoFill uint8 = 0
	Fill   uint8 = 1
)

// ComponentBytes is the size of an encoded descriptor record.
const ComponentBytes = 24

var (
	ErrUnknownComponent = errors.New("bagl: unknown component type")
	ErrShortComponent   = errors.New("bagl: short component record")
)

// Component is one draw request. X and Y are the top-left corner of the
// bounding box. The text of a label travels beside it.
type Component struct {
	Type    ComponentType
	UserID  uint8
	X, Y    int16
	Width   uint16
	Height  uint16
	Stroke  uint8
	Radius  uint8
	Fill    uint8
	FgColor Color
	BgColor Color
	FontID  uint16
	IconID  uint8
}

// MarshalTo writes the little-endian record into dst.
func (c *Component) MarshalTo(dst []byte) (int, error) {
	if len(dst) < ComponentBytes {
		return 0, ErrShortComponent
	}
	dst[0] = byte(c.Type)
	dst[1] = c.UserID
	binary.LittleEndian.PutUint16(dst[2:4], uint16(c.X))
	binary.LittleEndian.PutUint16(dst[4:6], uint16(c.Y))
	binary.LittleEndian.PutUint16(dst[6:8], c.Width)
	binary.LittleEndian.PutUint16(dst[8:10], c.Height)
	dst[10] = c.Stroke
	dst[11] = c.Radius
	dst[12] = c.Fill
	binary.LittleEndian.PutUint32(dst[13:17], uint32(c.FgColor))
	binary.LittleEndian.PutUint32(dst[17:21], uint32(c.BgColor))
	binary.LittleEndian.PutUint16(dst[21:23], c.FontID)
	dst[23] = c.IconID
	return ComponentBytes, nil
}

// UnmarshalComponent decodes a record and returns the trailing text bytes.
func UnmarshalComponent(b []byte) (Component, []byte, error) {
	if len(b) < ComponentBytes {
		return Component{}, nil, fmt.Errorf("%w: %d bytes", ErrShortComponent, len(b))
	}
	c := Component{
		Type:    ComponentType(b[0]),
		UserID:  b[1],
		X:       int16(binary.LittleEndian.Uint16(b[2:4])),
		Y:       int16(binary.LittleEndian.Uint16(b[4:6])),
		Width:   binary.LittleEndian.Uint16(b[6:8]),
		Height:  binary.LittleEndian.Uint16(b[8:10]),
		Stroke:  b[10],
		Radius:  b[11],
		Fill:    b[12],
		FgColor: Color(binary.LittleEndian.Uint32(b[13:17])),
		BgColor: Color(binary.LittleEndian.Uint32(b[17:21])),
		FontID:  binary.LittleEndian.Uint16(b[21:23]),
		IconID:  b[23],
	}
	switch c.Type {
	case TypeRectangle, TypeIcon, TypeLabelLine:
	default:
		return c, nil, fmt.Errorf("%w: %d", ErrUnknownComponent, uint8(c.Type))
	}
	return c, b[ComponentBytes:], nil
}

// Backend renders components.
//
// Draw must not retain c or text after it returns. Update makes everything
// drawn so far visible.
type Backend interface {
	Draw(c *Component, text string) error
	Update() error
}
