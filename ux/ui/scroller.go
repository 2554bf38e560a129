package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"

	"github.com/mattn/go-runewidth"
)

// CharN is how many display cells of a message fit on one scroller page.
const CharN = 16

// MessageScroller splits a long message into CharN-cell pages, breaking
// only on rune boundaries. The cursor clamps at both ends.
type MessageScroller struct {
	Message string
}

func NewMessageScroller(message string) MessageScroller {
	return MessageScroller{Message: message}
}

// PageCount returns the number of pages; zero for an empty message.
func (m MessageScroller) PageCount() int {
	n := 0
	for rest := m.Message; rest != ""; rest = rest[chunkLen(rest):] {
		n++
	}
	return n
}

// Page returns the text of page i, or "" when out of range.
func (m MessageScroller) Page(i int) string {
	rest := m.Message
	for ; i > 0 && rest != ""; i-- {
		rest = rest[chunkLen(rest):]
	}
	if i != 0 {
		return ""
	}
	return rest[:chunkLen(rest)]
}

// cells measures runes the way the device font lays them out: ambiguous
// runes take one cell whatever the host locale says.
var cells = &runewidth.Condition{EastAsianWidth: false}

// chunkLen returns the byte length of the first page of s. A rune wider
// than CharN still gets a page of its own.
func chunkLen(s string) int {
	used := 0
	for i, r := range s {
		w := cells.RuneWidth(r)
		if used+w > CharN && i > 0 {
			return i
		}
		used += w
	}
	return len(s)
}

// EventLoop runs until both buttons are released. An empty message
// returns at once.
func (m MessageScroller) EventLoop(d *Device) {
	pageCount := m.PageCount()
	if pageCount == 0 {
		return
	}
	g := d.geometry()
	var st buttons.State
	cur := 0
	m.draw(d, cur, pageCount)

	for {
		switch ev := d.next(&st); ev {
		case buttons.LeftPress:
			armed(d, bagl.LeftArrowS(g))
		case buttons.RightPress:
			armed(d, bagl.RightArrowS(g))
		case buttons.LeftRelease, buttons.RightRelease:
			delta, pressed, resting := -1, bagl.LeftArrowS(g), bagl.LeftArrow(g)
			if ev == buttons.RightRelease {
				delta, pressed, resting = 1, bagl.RightArrowS(g), bagl.RightArrow(g)
			}
			next := clampStep(cur, delta, pageCount)
			if next == cur {
				disarm(d, pressed, resting, arrowShown(cur, delta, pageCount))
				continue
			}
			cur = next
			m.draw(d, cur, pageCount)
		case buttons.BothRelease:
			return
		}
	}
}

func (m MessageScroller) draw(d *Device, page, pageCount int) {
	g := d.geometry()
	d.Screen.Clear()
	if page > 0 {
		d.Screen.Paint(bagl.LeftArrow(g))
	}
	if page+1 < pageCount {
		d.Screen.Paint(bagl.RightArrow(g))
	}
	d.Screen.Paint(bagl.NewLabel(m.Page(page)))
	d.Screen.Update()
}

// arrowShown reports whether page of pageCount shows the arrow pointing in
// direction delta.
func arrowShown(page, delta, pageCount int) bool {
	if delta < 0 {
		return page > 0
	}
	return page+1 < pageCount
}

// HScroller flips through pages with clamped left/right navigation until
// both buttons are released.
type HScroller struct {
	Pages []Page
}

func NewHScroller(pages []Page) HScroller { return HScroller{Pages: pages} }

// EventLoop runs until both buttons are released. No pages returns at once.
func (h HScroller) EventLoop(d *Device) {
	if len(h.Pages) == 0 {
		return
	}
	g := d.geometry()
	var st buttons.State
	cur := 0
	h.draw(d, cur)

	for {
		switch ev := d.next(&st); ev {
		case buttons.LeftPress:
			armed(d, bagl.LeftArrowS(g))
		case buttons.RightPress:
			armed(d, bagl.RightArrowS(g))
		case buttons.LeftRelease, buttons.RightRelease:
			delta, pressed, resting := -1, bagl.LeftArrowS(g), bagl.LeftArrow(g)
			if ev == buttons.RightRelease {
				delta, pressed, resting = 1, bagl.RightArrowS(g), bagl.RightArrow(g)
			}
			next := clampStep(cur, delta, len(h.Pages))
			if next == cur {
				disarm(d, pressed, resting, arrowShown(cur, delta, len(h.Pages)))
				continue
			}
			cur = next
			h.draw(d, cur)
		case buttons.BothRelease:
			return
		}
	}
}

func (h HScroller) draw(d *Device, page int) {
	g := d.geometry()
	h.Pages[page].Place(d.Screen)
	if page > 0 {
		d.Screen.Paint(bagl.LeftArrow(g))
	}
	if page+1 < len(h.Pages) {
		d.Screen.Paint(bagl.RightArrow(g))
	}
	d.Screen.Update()
}
