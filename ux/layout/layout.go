// Package layout resolves alignment policies into pixel coordinates on a
// fixed-size screen.
//
// Everything here is pure: no drawing, no state.
package layout

import "strconv"

const (
	// Padding is the default margin from a screen edge and between stacked
	// lines.
	Padding = 2

	// OuterPadding is the margin used for navigation arrows.
	OuterPadding = 2

	// MaxLines is the number of text lines a regular screen shows at once.
	MaxLines = 4
)

// Geometry is the pixel size of a screen.
type Geometry struct {
	Width  int
	Height int
}

var (
	Regular = Geometry{Width: 128, Height: 64}
	Compact = Geometry{Width: 128, Height: 32}
)

// IsCompact reports whether g is the short 32px variant.
func (g Geometry) IsCompact() bool { return g.Height <= 32 }

// MaxLines returns how many menu lines fit on g.
func (g Geometry) MaxLines() int {
	if g.IsCompact() {
		return 2
	}
	return MaxLines
}

func (g Geometry) String() string {
	return strconv.Itoa(g.Width) + "x" + strconv.Itoa(g.Height)
}

type layoutKind uint8

const (
	kindLeft layoutKind = iota
	kindRight
	kindCentered
	kindCustom
)

// Layout is a horizontal alignment policy.
type Layout struct {
	kind   layoutKind
	offset int
}

var (
	Left     = Layout{kind: kindLeft}
	Right    = Layout{kind: kindRight}
	Centered = Layout{kind: kindCentered}
)

// CustomX places content at the literal x coordinate k.
func CustomX(k int) Layout { return Layout{kind: kindCustom, offset: k} }

// X resolves the left edge of content w pixels wide on a screen width
// pixels wide. Right never resolves left of the screen edge; content too
// wide for its margin loses the margin instead.
func (l Layout) X(w, width int) int {
	switch l.kind {
	case kindRight:
		return max(width-w-Padding, 0)
	case kindCentered:
		return (width - w) / 2
	case kindCustom:
		return l.offset
	default:
		return Padding
	}
}

func (l Layout) String() string {
	switch l.kind {
	case kindLeft:
		return "left"
	case kindRight:
		return "right"
	case kindCentered:
		return "centered"
	default:
		return "x=" + strconv.Itoa(l.offset)
	}
}

type locationKind uint8

const (
	kindTop locationKind = iota
	kindMiddle
	kindBottom
	kindCustomY
)

// Location is a vertical alignment policy.
type Location struct {
	kind   locationKind
	offset int
}

var (
	Top    = Location{kind: kindTop}
	Middle = Location{kind: kindMiddle}
	Bottom = Location{kind: kindBottom}
)

// CustomY places content at the literal y coordinate k.
func CustomY(k int) Location { return Location{kind: kindCustomY, offset: k} }

// Y resolves the top edge of content h pixels tall on a screen height
// pixels tall.
func (l Location) Y(h, height int) int {
	switch l.kind {
	case kindMiddle:
		return (height - h) / 2
	case kindBottom:
		return height - h - Padding
	case kindCustomY:
		return l.offset
	default:
		return Padding
	}
}

func (l Location) String() string {
	switch l.kind {
	case kindTop:
		return "top"
	case kindMiddle:
		return "middle"
	case kindBottom:
		return "bottom"
	default:
		return "y=" + strconv.Itoa(l.offset)
	}
}

// Box is a resolved rectangle.
type Box struct {
	X, Y          int
	Width, Height int
}

// Stack positions up to len(dst) lines of the given sizes as one block.
//
// The block is as tall as the sum of the line heights plus padding between
// consecutive lines; its top edge comes from v. Each line's x comes from h
// applied to that line's own width, so Left and Right lines share an edge
// and Centered lines are centered one by one. Lines beyond len(dst) are
// ignored. Stack returns the filled prefix of dst.
func Stack(dst []Box, sizes []Box, h Layout, v Location, g Geometry, padding int) []Box {
	n := len(sizes)
	if n > len(dst) {
		n = len(dst)
	}
	if n == 0 {
		return dst[:0]
	}

	total := padding * (n - 1)
	for i := 0; i < n; i++ {
		total += sizes[i].Height
	}

	y := v.Y(total, g.Height)
	for i := 0; i < n; i++ {
		w, lh := sizes[i].Width, sizes[i].Height
		dst[i] = Box{X: h.X(w, g.Width), Y: y, Width: w, Height: lh}
		y += lh + padding
	}
	return dst[:n]
}
