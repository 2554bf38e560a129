package bagl

import (
	"nanoux/ux/bitmaps"
	"nanoux/ux/layout"
)

// Navigation arrows sit OuterPadding from the screen edges, vertically
// centered. The S variants are the pressed look, shifted by armedShift.
const armedShift = 4

func LeftArrow(g layout.Geometry) Icon {
	return NewIcon(bitmaps.IDLeft).SetX(layout.OuterPadding).Middle(g)
}

func RightArrow(g layout.Geometry) Icon {
	return NewIcon(bitmaps.IDRight).SetX(g.Width - layout.OuterPadding - bitmaps.Right.Width).Middle(g)
}

// UpArrow and DownArrow mark vertical lists: up on the left edge, down on
// the right.
func UpArrow(g layout.Geometry) Icon {
	return NewIcon(bitmaps.IDUp).SetX(layout.OuterPadding).Middle(g)
}

func DownArrow(g layout.Geometry) Icon {
	return NewIcon(bitmaps.IDDown).SetX(g.Width - layout.OuterPadding - bitmaps.Down.Width).Middle(g)
}

func LeftArrowS(g layout.Geometry) Icon  { return LeftArrow(g).ShiftH(armedShift) }
func RightArrowS(g layout.Geometry) Icon { return RightArrow(g).ShiftH(-armedShift) }
func UpArrowS(g layout.Geometry) Icon    { return UpArrow(g).ShiftV(-armedShift) }
func DownArrowS(g layout.Geometry) Icon  { return DownArrow(g).ShiftV(armedShift) }

// CheckIcon and CrossIcon are vertically centered at x = 0.
func CheckIcon(g layout.Geometry) Icon { return NewIcon(bitmaps.IDCheck).Middle(g) }
func CrossIcon(g layout.Geometry) Icon { return NewIcon(bitmaps.IDCross).Middle(g) }
