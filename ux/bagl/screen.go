package bagl

import (
	"fmt"

	"nanoux/hal"
	"nanoux/ux/layout"
)

// Screen is the drawing context handed to every widget. It owns no pixels;
// it resolves drawables against its geometry and forwards them to the
// backend.
//
// Draw failures are logged and otherwise ignored so that callers stay
// total.
type Screen struct {
	backend Backend
	geom    layout.Geometry
	log     hal.Logger
}

// NewScreen returns a Screen of geometry g drawing through b. log may be nil.
func NewScreen(b Backend, g layout.Geometry, log hal.Logger) *Screen {
	if log == nil {
		log = hal.NopLogger{}
	}
	return &Screen{backend: b, geom: g, log: log}
}

func (s *Screen) Geometry() layout.Geometry { return s.geom }
func (s *Screen) Backend() Backend          { return s.backend }

// Paint draws items over the current contents.
func (s *Screen) Paint(items ...Drawable) {
	for _, d := range items {
		c, text := component(d, s.geom)
		if c.Type == TypeLabelLine && text == "" {
			continue
		}
		if err := s.backend.Draw(&c, text); err != nil {
			s.log.WriteLineString(fmt.Sprintf("bagl: draw %s: %v", c.Type, err))
		}
	}
}

// Display clears the screen and then paints items.
func (s *Screen) Display(items ...Drawable) {
	s.Clear()
	s.Paint(items...)
}

// Erase blanks the footprint of each item.
func (s *Screen) Erase(items ...Drawable) {
	for _, d := range items {
		b := bounds(d, s.geom)
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		s.Paint(NewRect().Pos(b.X, b.Y).Size(b.Width, b.Height).WithColor(Black))
	}
}

// Instant paints items and makes them visible right away.
func (s *Screen) Instant(items ...Drawable) {
	s.Paint(items...)
	s.Update()
}

// Clear blanks the whole screen.
func (s *Screen) Clear() {
	s.Paint(NewRect().Size(s.geom.Width, s.geom.Height).WithColor(Black))
}

// Update makes everything drawn so far visible.
func (s *Screen) Update() {
	if err := s.backend.Update(); err != nil {
		s.log.WriteLineString(fmt.Sprintf("bagl: update: %v", err))
	}
}

// Place stacks up to layout.MaxLines labels as one block positioned by v,
// aligning each line by h. Empty labels keep their slot but draw nothing.
func (s *Screen) Place(lines []Label, v layout.Location, h layout.Layout) {
	if len(lines) == 0 {
		return
	}
	var sizes, boxes [layout.MaxLines]layout.Box
	n := len(lines)
	if n > len(sizes) {
		n = len(sizes)
	}
	for i := 0; i < n; i++ {
		w, lh := lines[i].Size()
		sizes[i] = layout.Box{Width: w, Height: lh}
	}
	placed := layout.Stack(boxes[:], sizes[:n], h, v, s.geom, layout.Padding)
	for i, b := range placed {
		s.Paint(lines[i].WithLayout(layout.CustomX(b.X)).WithLocation(layout.CustomY(b.Y)))
	}
}
