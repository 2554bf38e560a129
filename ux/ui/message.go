package ui

import (
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"
	"nanoux/ux/layout"
)

// Popup clears the screen, shows msg and waits for any release.
func Popup(d *Device, msg string) {
	d.Screen.Clear()
	NewSingleMessage(msg).ShowAndWait(d)
}

// SingleMessage shows one centered line.
type SingleMessage struct {
	Message string
}

func NewSingleMessage(message string) SingleMessage {
	return SingleMessage{Message: message}
}

// Show draws the message and returns immediately.
func (m SingleMessage) Show(d *Device) {
	d.Screen.Display(bagl.NewLabel(m.Message).WithLocation(layout.Middle))
	d.Screen.Update()
}

// ShowAndWait draws the message and returns on any release.
func (m SingleMessage) ShowAndWait(d *Device) {
	var st buttons.State
	m.Show(d)
	for {
		if d.next(&st).IsRelease() {
			return
		}
	}
}
