package uxtest

import (
	"nanoux/ux/bagl"
	"nanoux/ux/bitmaps"
)

// Call is one recorded draw.
type Call struct {
	Component bagl.Component
	Text      string
}

// Recorder is a bagl.Backend that logs every draw and forwards it to Next
// when set.
type Recorder struct {
	Next    bagl.Backend
	Calls   []Call
	Updates int

	width, height int
	lastClear     int
}

// NewRecorder records draws on a width x height screen.
func NewRecorder(width, height int, next bagl.Backend) *Recorder {
	return &Recorder{Next: next, width: width, height: height}
}

func (r *Recorder) Draw(c *bagl.Component, text string) error {
	if r.isClear(c) {
		r.lastClear = len(r.Calls) + 1
	}
	r.Calls = append(r.Calls, Call{Component: *c, Text: text})
	if r.Next != nil {
		return r.Next.Draw(c, text)
	}
	return nil
}

func (r *Recorder) Update() error {
	r.Updates++
	if r.Next != nil {
		return r.Next.Update()
	}
	return nil
}

// Clears returns how many full-screen clears were drawn.
func (r *Recorder) Clears() int {
	n := 0
	for i := range r.Calls {
		if r.isClear(&r.Calls[i].Component) {
			n++
		}
	}
	return n
}

// Screen returns the draws since the last full-screen clear.
func (r *Recorder) Screen() []Call {
	return r.Calls[r.lastClear:]
}

// Labels returns the label texts drawn since the last clear.
func (r *Recorder) Labels() []string {
	var out []string
	for _, c := range r.Screen() {
		if c.Component.Type == bagl.TypeLabelLine {
			out = append(out, c.Text)
		}
	}
	return out
}

// Label returns the most recent draw of text since the last clear.
func (r *Recorder) Label(text string) (bagl.Component, bool) {
	calls := r.Screen()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Component.Type == bagl.TypeLabelLine && calls[i].Text == text {
			return calls[i].Component, true
		}
	}
	return bagl.Component{}, false
}

// Icons returns the icon ids drawn since the last clear.
func (r *Recorder) Icons() []bitmaps.ID {
	var out []bitmaps.ID
	for _, c := range r.Screen() {
		if c.Component.Type == bagl.TypeIcon {
			out = append(out, bitmaps.ID(c.Component.IconID))
		}
	}
	return out
}

// HasIcon reports whether id was drawn since the last clear.
func (r *Recorder) HasIcon(id bitmaps.ID) bool {
	for _, got := range r.Icons() {
		if got == id {
			return true
		}
	}
	return false
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Updates = 0
	r.lastClear = 0
}

func (r *Recorder) isClear(c *bagl.Component) bool {
	return c.Type == bagl.TypeRectangle && c.Fill == bagl.Fill && !c.FgColor.Lit() &&
		c.X == 0 && c.Y == 0 && int(c.Width) == r.width && int(c.Height) == r.height
}
