// Package fonts provides the monospace bitmap fonts used by labels.
package fonts

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// ID selects a font in display descriptors.
type ID uint16

const (
	IDRegular ID = 0
	IDBold    ID = 1
)

const (
	// Height is the line height of every font in this package.
	Height = 8

	cols      = 5
	firstRune = 0x20
	lastRune  = 0x7E
)

// Regular is the 6x8 ASCII font. Bold is the same face struck twice with a
// one pixel offset, one pixel wider per glyph.
//
// Neither is safe for concurrent use: GetGlyph reuses one glyph value.
var (
	Regular tinyfont.Fonter = &font{advance: 6}
	Bold    tinyfont.Fonter = &font{advance: 7, bold: true}
)

// ByID returns the font for id, falling back to Regular.
func ByID(id ID) tinyfont.Fonter {
	if id == IDBold {
		return Bold
	}
	return Regular
}

// For returns the font for the given weight.
func For(bold bool) tinyfont.Fonter {
	if bold {
		return Bold
	}
	return Regular
}

// IDFor returns the descriptor id for the given weight.
func IDFor(bold bool) ID {
	if bold {
		return IDBold
	}
	return IDRegular
}

type font struct {
	advance uint8
	bold    bool
	g       glyph
}

type glyph struct {
	r rune
	f *font
}

func (f *font) GetYAdvance() uint8 { return Height }

func (f *font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.f = f
	return &f.g
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * cols
	strikes := int16(1)
	if g.f.bold {
		strikes = 2
	}
	for col := 0; col < cols; col++ {
		bits := glyphData[base+col]
		for row := 0; row < Height-1; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			for s := int16(0); s < strikes; s++ {
				display.SetPixel(x+int16(col)+s, y-int16(Height-1-row), c)
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    g.f.advance,
		Height:   Height,
		XAdvance: g.f.advance,
		XOffset:  0,
		YOffset:  -(Height - 1),
	}
}

func glyphIndex(r rune) int {
	if r < firstRune || r > lastRune {
		r = '?'
	}
	return int(r - firstRune)
}

// TextWidth returns the rendered width of s in pixels.
func TextWidth(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}
