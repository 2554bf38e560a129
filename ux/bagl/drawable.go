package bagl

import (
	"nanoux/ux/bitmaps"
	"nanoux/ux/fonts"
	"nanoux/ux/layout"
)

// Drawable is one of Rect, Icon or Label.
type Drawable interface {
	drawable()
}

func (Rect) drawable()  {}
func (Icon) drawable()  {}
func (Label) drawable() {}

// Rect is an axis-aligned rectangle, filled unless Outline is set.
type Rect struct {
	X, Y          int
	Width, Height int
	Color         Color
	Outline       bool
	UserID        uint8
}

// NewRect returns a lit 1x1 filled rectangle at the origin.
func NewRect() Rect {
	return Rect{Width: 1, Height: 1, Color: White}
}

func (r Rect) Pos(x, y int) Rect        { r.X, r.Y = x, y; return r }
func (r Rect) Size(w, h int) Rect       { r.Width, r.Height = w, h; return r }
func (r Rect) WithColor(c Color) Rect   { r.Color = c; return r }
func (r Rect) WithOutline(on bool) Rect { r.Outline = on; return r }
func (r Rect) WithUserID(id uint8) Rect { r.UserID = id; return r }
func (r Rect) Paint(s *Screen)          { s.Paint(r) }
func (r Rect) Display(s *Screen)        { s.Display(r) }
func (r Rect) Erase(s *Screen)          { s.Erase(r) }
func (r Rect) box(layout.Geometry) layout.Box {
	return layout.Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Icon draws a palette glyph with its top-left corner at (X, Y).
type Icon struct {
	ID       bitmaps.ID
	X, Y     int
	Inverted bool
}

// NewIcon returns the icon for id at the origin.
func NewIcon(id bitmaps.ID) Icon { return Icon{ID: id} }

func (i Icon) At(x, y int) Icon  { i.X, i.Y = x, y; return i }
func (i Icon) SetX(x int) Icon   { i.X = x; return i }
func (i Icon) SetY(y int) Icon   { i.Y = y; return i }
func (i Icon) ShiftH(n int) Icon { i.X += n; return i }
func (i Icon) ShiftV(n int) Icon { i.Y += n; return i }
func (i Icon) Invert() Icon      { i.Inverted = !i.Inverted; return i }
func (i Icon) Paint(s *Screen)   { s.Paint(i) }
func (i Icon) Display(s *Screen) { s.Display(i) }
func (i Icon) Erase(s *Screen)   { s.Erase(i) }

// Middle centers the icon vertically on g.
func (i Icon) Middle(g layout.Geometry) Icon {
	_, h := i.Size()
	i.Y = layout.Middle.Y(h, g.Height)
	return i
}

// Size returns the glyph size, or zero for an unknown id.
func (i Icon) Size() (int, int) {
	glyph, ok := bitmaps.ByID(i.ID)
	if !ok {
		return 0, 0
	}
	return glyph.Width, glyph.Height
}

func (i Icon) box(layout.Geometry) layout.Box {
	w, h := i.Size()
	return layout.Box{X: i.X, Y: i.Y, Width: w, Height: h}
}

// Label is one line of text aligned on the screen.
type Label struct {
	Text     string
	Bold     bool
	Inverted bool
	Layout   layout.Layout
	Location layout.Location
}

// NewLabel returns text centered on the screen in the regular weight.
func NewLabel(text string) Label {
	return Label{Text: text, Layout: layout.Centered, Location: layout.Middle}
}

func (l Label) WithText(text string) Label  { l.Text = text; return l }
func (l Label) WithBold(bold bool) Label    { l.Bold = bold; return l }
func (l Label) WithInverted(inv bool) Label { l.Inverted = inv; return l }
func (l Label) WithLayout(h layout.Layout) Label {
	l.Layout = h
	return l
}
func (l Label) WithLocation(v layout.Location) Label {
	l.Location = v
	return l
}
func (l Label) Paint(s *Screen)   { s.Paint(l) }
func (l Label) Display(s *Screen) { s.Display(l) }
func (l Label) Erase(s *Screen)   { s.Erase(l) }

// Size returns the rendered width and the line height.
func (l Label) Size() (int, int) {
	return fonts.TextWidth(fonts.For(l.Bold), l.Text), fonts.Height
}

func (l Label) box(g layout.Geometry) layout.Box {
	w, h := l.Size()
	return layout.Box{X: l.Layout.X(w, g.Width), Y: l.Location.Y(h, g.Height), Width: w, Height: h}
}

// component resolves d against g.
func component(d Drawable, g layout.Geometry) (Component, string) {
	switch v := d.(type) {
	case Rect:
		c := Component{
			Type:    TypeRectangle,
			UserID:  v.UserID,
			X:       int16(v.X),
			Y:       int16(v.Y),
			Width:   uint16(v.Width),
			Height:  uint16(v.Height),
			Fill:    Fill,
			FgColor: v.Color,
			BgColor: Black,
		}
		if v.Outline {
			c.Fill = NoFill
			c.Stroke = 1
		}
		return c, ""

	case Icon:
		b := v.box(g)
		c := Component{
			Type:    TypeIcon,
			X:       int16(b.X),
			Y:       int16(b.Y),
			Width:   uint16(b.Width),
			Height:  uint16(b.Height),
			FgColor: White,
			BgColor: Black,
			IconID:  uint8(v.ID),
		}
		if v.Inverted {
			c.FgColor, c.BgColor = Black, White
		}
		return c, ""

	case Label:
		b := v.box(g)
		c := Component{
			Type:    TypeLabelLine,
			X:       int16(b.X),
			Y:       int16(b.Y),
			Width:   uint16(b.Width),
			Height:  uint16(b.Height),
			Fill:    NoFill,
			FgColor: White,
			BgColor: Black,
			FontID:  uint16(fonts.IDFor(v.Bold)),
		}
		if v.Inverted {
			c.Fill = Fill
			c.FgColor, c.BgColor = Black, White
		}
		return c, v.Text
	}
	return Component{}, ""
}

// bounds returns the footprint of d on g.
func bounds(d Drawable, g layout.Geometry) layout.Box {
	switch v := d.(type) {
	case Rect:
		return v.box(g)
	case Icon:
		return v.box(g)
	case Label:
		return v.box(g)
	}
	return layout.Box{}
}
