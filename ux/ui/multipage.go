package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"
	"nanoux/ux/seph"
)

// MenuResult is what a MultiPageMenu returned: the selected page, or a
// host command that arrived first.
type MenuResult struct {
	Index    int
	FromHost bool
	Command  seph.Frame
}

// MultiPageMenu shows one Page per screen with a cyclic cursor. It is the
// only widget that gives host commands priority over the user.
type MultiPageMenu struct {
	Pages []Page
}

func NewMultiPageMenu(pages []Page) MultiPageMenu { return MultiPageMenu{Pages: pages} }

// Show returns on a two-button release or as soon as a host command is
// available, including one parked by an earlier widget.
func (m MultiPageMenu) Show(d *Device) MenuResult {
	if f, ok := d.Comm.TakeCommand(); ok {
		return MenuResult{FromHost: true, Command: f}
	}
	if len(m.Pages) == 0 {
		return MenuResult{}
	}

	g := d.geometry()
	var st buttons.State
	index := 0
	m.draw(d, index)

	for {
		ev := d.Comm.NextEvent(&st)
		switch ev.Kind {
		case seph.EventCommand:
			return MenuResult{Index: index, FromHost: true, Command: ev.Frame}
		case seph.EventButton:
		default:
			continue
		}

		switch ev.Button {
		case buttons.LeftPress:
			armed(d, bagl.LeftArrowS(g))
		case buttons.RightPress:
			armed(d, bagl.RightArrowS(g))
		case buttons.LeftRelease:
			index = wrapStep(index, -1, len(m.Pages))
			m.draw(d, index)
		case buttons.RightRelease:
			index = wrapStep(index, 1, len(m.Pages))
			m.draw(d, index)
		case buttons.BothRelease:
			return MenuResult{Index: index}
		}
	}
}

func (m MultiPageMenu) draw(d *Device, index int) {
	g := d.geometry()
	m.Pages[index].Place(d.Screen)
	d.Screen.Paint(bagl.LeftArrow(g), bagl.RightArrow(g))
	d.Screen.Update()
}
