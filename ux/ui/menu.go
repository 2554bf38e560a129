package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"
	"nanoux/ux/layout"
)

// Menu is a vertical list of panels shown a screenful at a time. The
// selected panel is bold; the cursor clamps at both ends.
type Menu struct {
	Panels []string
}

func NewMenu(panels []string) Menu { return Menu{Panels: panels} }

// Show returns the index selected with a two-button release. An empty
// menu returns 0 at once.
func (m Menu) Show(d *Device) int {
	if len(m.Panels) == 0 {
		return 0
	}
	g := d.geometry()
	var st buttons.State
	index := 0
	m.draw(d, index)

	for {
		switch ev := d.next(&st); ev {
		case buttons.LeftPress:
			armed(d, bagl.UpArrowS(g))
		case buttons.RightPress:
			armed(d, bagl.DownArrowS(g))
		case buttons.LeftRelease, buttons.RightRelease:
			delta, pressed, resting := -1, bagl.UpArrowS(g), bagl.UpArrow(g)
			if ev == buttons.RightRelease {
				delta, pressed, resting = 1, bagl.DownArrowS(g), bagl.DownArrow(g)
			}
			next := clampStep(index, delta, len(m.Panels))
			if next == index {
				disarm(d, pressed, resting, true)
				continue
			}
			index = next
			m.draw(d, index)
		case buttons.BothRelease:
			return index
		}
	}
}

func (m Menu) draw(d *Device, index int) {
	g := d.geometry()
	per := g.MaxLines()
	chunk := index / per * per

	var lines [layout.MaxLines]bagl.Label
	for i := 0; i < per; i++ {
		text := ""
		if chunk+i < len(m.Panels) {
			text = m.Panels[chunk+i]
		}
		lines[i] = bagl.NewLabel(text).WithBold(chunk+i == index)
	}

	d.Screen.Clear()
	d.Screen.Paint(bagl.UpArrow(g), bagl.DownArrow(g))
	d.Screen.Place(lines[:per], layout.Middle, layout.Centered)
	d.Screen.Update()
}
