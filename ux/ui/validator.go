package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"
	"nanoux/ux/layout"
)

// DefaultCancel is the label a Validator offers against its message.
const DefaultCancel = "Cancel"

// Validator asks a yes/no question on one screen: the cancel label above
// the message, the current choice in bold. Left picks cancel, right picks
// the message; holding both highlights the choice and releasing both
// returns it.
type Validator struct {
	Message string
	Cancel  string
}

func NewValidator(message string) Validator {
	return Validator{Message: message, Cancel: DefaultCancel}
}

// Ask returns true when the message was chosen. The message starts
// selected.
func (v Validator) Ask(d *Device) bool {
	g := d.geometry()
	var st buttons.State
	response := true
	v.draw(d, response)

	for {
		switch d.next(&st) {
		case buttons.LeftPress:
			armed(d, bagl.UpArrowS(g))
		case buttons.RightPress:
			armed(d, bagl.DownArrowS(g))
		case buttons.LeftRelease:
			response = false
			v.draw(d, response)
		case buttons.RightRelease:
			response = true
			v.draw(d, response)
		case buttons.BothPress:
			d.Screen.Erase(bagl.UpArrow(g), bagl.DownArrow(g), bagl.UpArrowS(g), bagl.DownArrowS(g))
			lines := v.lines(response)
			if response {
				lines[1] = lines[1].WithInverted(true)
			} else {
				lines[0] = lines[0].WithInverted(true)
			}
			d.Screen.Place(lines[:], layout.Middle, layout.Centered)
			d.Screen.Update()
		case buttons.BothRelease:
			return response
		}
	}
}

func (v Validator) lines(response bool) [2]bagl.Label {
	cancel := v.Cancel
	if cancel == "" {
		cancel = DefaultCancel
	}
	return [2]bagl.Label{
		bagl.NewLabel(cancel).WithBold(!response),
		bagl.NewLabel(v.Message).WithBold(response),
	}
}

func (v Validator) draw(d *Device, response bool) {
	g := d.geometry()
	lines := v.lines(response)
	d.Screen.Clear()
	d.Screen.Place(lines[:], layout.Middle, layout.Centered)
	d.Screen.Paint(bagl.UpArrow(g), bagl.DownArrow(g))
	d.Screen.Update()
}

// MessageValidator pages through Message, then offers a confirm page
// (check icon) and a cancel page (cross icon). Confirm and Cancel hold
// zero to two lines each. The cursor clamps at both ends.
type MessageValidator struct {
	Message []string
	Confirm []string
	Cancel  []string
}

func NewMessageValidator(message, confirm, cancel []string) MessageValidator {
	return MessageValidator{Message: message, Confirm: confirm, Cancel: cancel}
}

// Ask returns true when both buttons are released on the confirm page and
// false on the cancel page. Elsewhere a two-button release only redraws.
func (v MessageValidator) Ask(d *Device) bool {
	g := d.geometry()
	pageCount := len(v.Message) + 2
	var st buttons.State
	cur := 0
	v.draw(d, cur)

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
			v.draw(d, cur)
		case buttons.BothRelease:
			switch cur {
			case pageCount - 2:
				return true
			case pageCount - 1:
				return false
			}
			v.draw(d, cur)
		}
	}
}

func (v MessageValidator) draw(d *Device, page int) {
	g := d.geometry()
	pageCount := len(v.Message) + 2
	d.Screen.Clear()

	switch page {
	case pageCount - 2:
		iconAndText(d, bagl.CheckIcon(g), v.Confirm)
		d.Screen.Paint(bagl.RightArrow(g))
	case pageCount - 1:
		iconAndText(d, bagl.CrossIcon(g), v.Cancel)
	default:
		d.Screen.Paint(bagl.NewLabel(v.Message[page]), bagl.RightArrow(g))
	}
	if page > 0 {
		d.Screen.Paint(bagl.LeftArrow(g))
	}
	d.Screen.Update()
}

// iconAndText draws icon alone in the center, or on the left beside up to
// two centered lines.
func iconAndText(d *Device, icon bagl.Icon, text []string) {
	g := d.geometry()
	if len(text) == 0 {
		w, _ := icon.Size()
		d.Screen.Paint(icon.SetX(layout.Centered.X(w, g.Width)))
		return
	}
	d.Screen.Paint(icon.SetX(18))
	if len(text) > 2 {
		text = text[:2]
	}
	var lines [2]bagl.Label
	for i, s := range text {
		lines[i] = bagl.NewLabel(s)
	}
	d.Screen.Place(lines[:len(text)], layout.Middle, layout.Centered)
}
