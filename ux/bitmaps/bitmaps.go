// Package bitmaps holds the pre-baked monochrome icons drawn by the UI.
//
// Bitmaps are a continuous row-major bit stream, least significant bit
// first: pixel (x, y) of a w-wide glyph is bit (y*w+x)%8 of byte
// (y*w+x)/8. A set bit is lit unless the glyph is inverted.
package bitmaps

// Glyph is a packed icon together with its size.
type Glyph struct {
	Bitmap   []byte
	Width    int
	Height   int
	Inverted bool
}

// Invert returns g with lit and unlit swapped.
func (g Glyph) Invert() Glyph {
	g.Inverted = !g.Inverted
	return g
}

// Lit reports whether pixel (x, y) of g is drawn in the foreground color.
func (g Glyph) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return false
	}
	i := y*g.Width + x
	if i/8 >= len(g.Bitmap) {
		return g.Inverted
	}
	return (g.Bitmap[i/8]>>(i%8))&1 == 1 != g.Inverted
}

// Bytes returns the number of bytes a w x h bitmap occupies.
func Bytes(w, h int) int {
	return (w*h + 7) / 8
}

// ID selects an icon in display descriptors.
type ID uint8

const (
	IDNone ID = iota
	IDLeft
	IDRight
	IDUp
	IDDown
	IDCheck
	IDCross
	IDBack
	IDLogo
)

func (id ID) String() string {
	switch id {
	case IDNone:
		return "none"
	case IDLeft:
		return "left"
	case IDRight:
		return "right"
	case IDUp:
		return "up"
	case IDDown:
		return "down"
	case IDCheck:
		return "check"
	case IDCross:
		return "cross"
	case IDBack:
		return "back"
	case IDLogo:
		return "logo"
	default:
		return "unknown"
	}
}

// ByID returns the icon for id.
func ByID(id ID) (Glyph, bool) {
	if int(id) >= len(palette) || id == IDNone {
		return Glyph{}, false
	}
	return palette[id], true
}

// Blank is an all-unlit bitmap large enough to cover a 128x64 screen.
var Blank [128 * 64 / 8]byte

var (
	Left  = pack(leftArt)
	Right = pack(rightArt)
	Up    = pack(upArt)
	Down  = pack(downArt)
	Check = pack(checkArt)
	Cross = pack(crossArt)
	Back  = pack(backArt)
	Logo  = pack(logoArt)
)

var palette = [...]Glyph{
	IDLeft:  Left,
	IDRight: Right,
	IDUp:    Up,
	IDDown:  Down,
	IDCheck: Check,
	IDCross: Cross,
	IDBack:  Back,
	IDLogo:  Logo,
}

// pack turns rows of '#' (lit) and '.' into a packed glyph.
func pack(rows []string) Glyph {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := Glyph{Bitmap: make([]byte, Bytes(w, h)), Width: w, Height: h}
	for y, row := range rows {
		for x := 0; x < w && x < len(row); x++ {
			if row[x] == '#' {
				i := y*w + x
				g.Bitmap[i/8] |= 1 << (i % 8)
			}
		}
	}
	return g
}
