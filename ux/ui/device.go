// Package ui implements the blocking navigation widgets: menus, pagers,
// scrollers and yes/no prompts.
//
// Every widget is a small value built from borrowed content and shown on a
// Device. Show, Ask and EventLoop block until the user leaves the widget
// with a full two-button release (or, for MultiPageMenu, until a host
// command arrives). Presses only paint the pressed arrow; the cursor moves
// on the matching release.
package ui

import (
	"nanoux/hal"
	"nanoux/ux/bagl"
	"nanoux/ux/buttons"
	"nanoux/ux/layout"
	"nanoux/ux/seph"
)

// Device bundles the screen and the event pump a widget runs against.
// Only one widget may use a Device at a time.
type Device struct {
	Screen *bagl.Screen
	Comm   *seph.Comm
	Log    hal.Logger
}

// NewDevice returns a Device. log may be nil.
func NewDevice(s *bagl.Screen, c *seph.Comm, log hal.Logger) *Device {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Device{Screen: s, Comm: c, Log: log}
}

func (d *Device) geometry() layout.Geometry { return d.Screen.Geometry() }

// next blocks until the next button event.
func (d *Device) next(st *buttons.State) buttons.Event {
	for {
		if ev, ok := d.Comm.Poll(st); ok {
			return ev
		}
	}
}

// ClearScreen blanks the display.
func (d *Device) ClearScreen() {
	d.Screen.Clear()
	d.Screen.Update()
}

// armed shows the pressed variant of an arrow without a full redraw.
func armed(d *Device, icon bagl.Icon) {
	d.Screen.Instant(icon)
}

// disarm removes a pressed arrow and restores the resting arrow if it is
// still shown.
func disarm(d *Device, pressed bagl.Icon, resting bagl.Icon, shown bool) {
	d.Screen.Erase(pressed)
	if shown {
		d.Screen.Paint(resting)
	}
	d.Screen.Update()
}

// clampStep moves cur within [0, n) by delta, clamping at the ends.
func clampStep(cur, delta, n int) int {
	cur += delta
	if cur < 0 {
		return 0
	}
	if cur > n-1 {
		return n - 1
	}
	return cur
}

// wrapStep moves cur within [0, n) by delta, wrapping at the ends.
func wrapStep(cur, delta, n int) int {
	return ((cur+delta)%n + n) % n
}
