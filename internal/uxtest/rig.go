package uxtest

import (
	"testing"

	"nanoux/hal"
	"nanoux/ux/bagl"
	"nanoux/ux/layout"
	"nanoux/ux/seph"
)

// Rig wires a scripted link to a recorded, rasterizing screen.
type Rig struct {
	Link     *Link
	Channel  *seph.Channel
	Comm     *seph.Comm
	FB       *hal.MonoFramebuffer
	Recorder *Recorder
	Screen   *bagl.Screen
}

// NewRig returns a rig for geometry g with an empty script.
func NewRig(tb testing.TB, g layout.Geometry) *Rig {
	link := NewLink(tb)
	ch := seph.NewChannel(link, nil)
	fb := hal.NewMonoFramebuffer(g.Width, g.Height)
	rec := NewRecorder(g.Width, g.Height, bagl.NewBlitBackend(fb))
	return &Rig{
		Link:     link,
		Channel:  ch,
		Comm:     seph.NewComm(ch, nil),
		FB:       fb,
		Recorder: rec,
		Screen:   bagl.NewScreen(rec, g, nil),
	}
}
