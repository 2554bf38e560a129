package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/bitmaps"
	"nanoux/ux/fonts"
	"nanoux/ux/layout"
)

// PageStyle selects how a Page arranges its icon and two lines.
type PageStyle uint8

const (
	// PictureNormal is an icon with two regular lines.
	PictureNormal PageStyle = iota
	// PictureBold is an icon with one bold line.
	PictureBold
	// BoldNormal is a bold line over a regular one.
	BoldNormal
	// Normal is two centered regular lines.
	Normal
)

func (s PageStyle) String() string {
	switch s {
	case PictureNormal:
		return "picture_normal"
	case PictureBold:
		return "picture_bold"
	case BoldNormal:
		return "bold_normal"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// Page is one screen of a MultiPageMenu or HScroller.
type Page struct {
	Style PageStyle
	Lines [2]string
	Icon  bitmaps.ID
}

func NewPictureNormalPage(lines [2]string, icon bitmaps.ID) Page {
	return Page{Style: PictureNormal, Lines: lines, Icon: icon}
}

func NewPictureBoldPage(text string, icon bitmaps.ID) Page {
	return Page{Style: PictureBold, Lines: [2]string{text, ""}, Icon: icon}
}

// NewTextPage returns a BoldNormal page when bold is set, Normal otherwise.
func NewTextPage(lines [2]string, bold bool) Page {
	if bold {
		return Page{Style: BoldNormal, Lines: lines}
	}
	return Page{Style: Normal, Lines: lines}
}

// Place clears the screen and draws the page. Compact screens use a
// side-by-side arrangement for pictures.
func (p Page) Place(s *bagl.Screen) {
	g := s.Geometry()
	s.Clear()

	switch p.Style {
	case PictureNormal:
		lines := [2]bagl.Label{bagl.NewLabel(p.Lines[0]), bagl.NewLabel(p.Lines[1])}
		icon := bagl.NewIcon(p.Icon).At(57, 10)
		if g.IsCompact() {
			s.Place(lines[:], layout.Middle, layout.CustomX(41))
			icon = icon.At(16, 8)
		} else {
			s.Place(lines[:], layout.CustomY(28), layout.Centered)
		}
		p.paintIcon(s, icon)

	case PictureBold:
		label := bagl.NewLabel(p.Lines[0]).WithBold(true)
		icon := bagl.NewIcon(p.Icon).At(57, 17)
		if g.IsCompact() {
			label = label.WithLocation(layout.Bottom)
			icon = icon.At(56, 2)
		} else {
			label = label.WithLocation(layout.CustomY(35))
		}
		s.Paint(label)
		p.paintIcon(s, icon)

	case BoldNormal:
		const padding = 1
		total := 2*fonts.Height + 2*padding
		y := layout.Middle.Y(total, g.Height)
		s.Paint(bagl.NewLabel(p.Lines[0]).WithBold(true).WithLocation(layout.CustomY(y)))
		y += fonts.Height + 2*padding
		s.Paint(bagl.NewLabel(p.Lines[1]).WithLocation(layout.CustomY(y)))

	default:
		lines := [2]bagl.Label{bagl.NewLabel(p.Lines[0]), bagl.NewLabel(p.Lines[1])}
		s.Place(lines[:], layout.Middle, layout.Centered)
	}
}

func (p Page) paintIcon(s *bagl.Screen, icon bagl.Icon) {
	if p.Icon != bitmaps.IDNone {
		s.Paint(icon)
	}
}
