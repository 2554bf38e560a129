package bagl

import (
	"fmt"
	"image/color"

	"nanoux/hal"
	"nanoux/ux/bitmaps"
	"nanoux/ux/fonts"

	"tinygo.org/x/tinyfont"
)

// maxLabelWidth bounds a rasterized label; wider text is clipped.
const maxLabelWidth = 256

// BlitBackend rasterizes components straight into a framebuffer.
type BlitBackend struct {
	fb     hal.Framebuffer
	canvas labelCanvas
}

// NewBlitBackend draws into fb.
func NewBlitBackend(fb hal.Framebuffer) *BlitBackend {
	return &BlitBackend{fb: fb}
}

// Framebuffer returns the target framebuffer.
func (b *BlitBackend) Framebuffer() hal.Framebuffer { return b.fb }

// Blit copies a packed w x h bitmap to (x, y). A pixel is lit when its bit
// differs from inverted. Pixels outside the framebuffer are dropped; a
// bitmap shorter than w*h bits reads as zeros.
func (b *BlitBackend) Blit(x, y, w, h int, inverted bool, bitmap []byte) {
	buf := b.fb.Buffer()
	stride := b.fb.StrideBytes()
	fw, fh := b.fb.Width(), b.fb.Height()

	for row := 0; row < h; row++ {
		py := y + row
		if py < 0 || py >= fh {
			continue
		}
		for col := 0; col < w; col++ {
			px := x + col
			if px < 0 || px >= fw {
				continue
			}
			i := row*w + col
			bit := false
			if i/8 < len(bitmap) {
				bit = (bitmap[i/8]>>(i%8))&1 == 1
			}
			hal.SetPixelAt(buf, stride, px, py, bit != inverted)
		}
	}
}

func (b *BlitBackend) Draw(c *Component, text string) error {
	x, y := int(c.X), int(c.Y)
	w, h := int(c.Width), int(c.Height)

	switch c.Type {
	case TypeRectangle:
		lit := c.FgColor.Lit()
		if c.Fill == Fill || int(c.Stroke)*2 >= w || int(c.Stroke)*2 >= h {
			b.Blit(x, y, w, h, lit, bitmaps.Blank[:])
			return nil
		}
		s := int(c.Stroke)
		if s == 0 {
			s = 1
		}
		b.Blit(x, y, w, s, lit, bitmaps.Blank[:])
		b.Blit(x, y+h-s, w, s, lit, bitmaps.Blank[:])
		b.Blit(x, y, s, h, lit, bitmaps.Blank[:])
		b.Blit(x+w-s, y, s, h, lit, bitmaps.Blank[:])
		return nil

	case TypeIcon:
		g, ok := bitmaps.ByID(bitmaps.ID(c.IconID))
		if !ok {
			return fmt.Errorf("bagl: icon %d: %w", c.IconID, ErrUnknownComponent)
		}
		// A dark foreground draws the icon in negative.
		inverted := g.Inverted != !c.FgColor.Lit()
		b.Blit(x, y, g.Width, g.Height, inverted, g.Bitmap)
		return nil

	case TypeLabelLine:
		if w > maxLabelWidth {
			w = maxLabelWidth
		}
		b.canvas.reset(w, h)
		w, h = b.canvas.w, b.canvas.h
		f := fonts.ByID(fonts.ID(c.FontID))
		tinyfont.WriteLine(&b.canvas, f, 0, int16(h-1), text, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		b.Blit(x, y, w, h, !c.FgColor.Lit(), b.canvas.bits[:bitmaps.Bytes(w, h)])
		return nil

	default:
		return fmt.Errorf("%w: %d", ErrUnknownComponent, uint8(c.Type))
	}
}

func (b *BlitBackend) Update() error {
	return b.fb.Present()
}

// labelCanvas is a scratch bitmap in blit layout that tinyfont draws into.
type labelCanvas struct {
	w, h int
	bits [maxLabelWidth * fonts.Height / 8]byte
}

func (c *labelCanvas) reset(w, h int) {
	if w > 0 && w*h > len(c.bits)*8 {
		h = len(c.bits) * 8 / w
	}
	c.w, c.h = w, h
	clear(c.bits[:])
}

func (c *labelCanvas) Size() (int16, int16) { return int16(c.w), int16(c.h) }

func (c *labelCanvas) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	i := int(y)*c.w + int(x)
	c.bits[i/8] |= 1 << (i % 8)
}

func (c *labelCanvas) Display() error { return nil }
