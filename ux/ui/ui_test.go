package ui

import (
	"strings"
	"testing"

	"nanoux/internal/uxtest"
	"nanoux/ux/bagl"
	"nanoux/ux/bitmaps"
	"nanoux/ux/layout"

	"github.com/mattn/go-runewidth"
)

const (
	left  = 1
	right = 2
	both  = 3
)

func newDevice(t *testing.T, g layout.Geometry) (*Device, *uxtest.Rig) {
	t.Helper()
	rig := uxtest.NewRig(t, g)
	return NewDevice(rig.Screen, rig.Comm, nil), rig
}

func TestStepHelpers(t *testing.T) {
	tests := []struct {
		name              string
		cur, delta, n     int
		wantClamp, wantWr int
	}{
		{"middle", 2, 1, 5, 3, 3},
		{"low end", 0, -1, 5, 0, 4},
		{"high end", 4, 1, 5, 4, 0},
		{"single", 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		if got := clampStep(tt.cur, tt.delta, tt.n); got != tt.wantClamp {
			t.Fatalf("%s: clampStep = %d, want %d", tt.name, got, tt.wantClamp)
		}
		if got := wrapStep(tt.cur, tt.delta, tt.n); got != tt.wantWr {
			t.Fatalf("%s: wrapStep = %d, want %d", tt.name, got, tt.wantWr)
		}
	}
}

func TestMenuClampsAtLastIndex(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(right, right, right, right, right, right, both)

	got := NewMenu([]string{"p0", "p1", "p2", "p3", "p4"}).Show(d)
	if got != 4 {
		t.Fatalf("Show() = %d, want 4", got)
	}
	if c, ok := rig.Recorder.Label("p4"); !ok || c.FontID != 1 {
		t.Fatalf("p4 not bold on the last screen (%+v, %v)", c, ok)
	}
	if labels := rig.Recorder.Labels(); len(labels) != 1 {
		t.Fatalf("second chunk labels = %q, want only p4", labels)
	}
	// Initial draw plus four moves; the clamped release does not clear.
	if got := rig.Recorder.Clears(); got != 5 {
		t.Fatalf("clears = %d, want 5", got)
	}
}

func TestMenuLeftAtZeroIsNoop(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(left, both)

	if got := NewMenu([]string{"a", "b"}).Show(d); got != 0 {
		t.Fatalf("Show() = %d, want 0", got)
	}
	if got := rig.Recorder.Clears(); got != 1 {
		t.Fatalf("clears = %d, want 1", got)
	}
}

func TestMenuPressDoesNotMove(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	// Right held, then both, then everything released.
	rig.Link.Readings(right, both, 0)

	if got := NewMenu([]string{"a", "b", "c"}).Show(d); got != 0 {
		t.Fatalf("Show() = %d, want 0", got)
	}
	if !rig.Recorder.HasIcon(bitmaps.IDDown) {
		t.Fatalf("no pressed arrow painted")
	}
}

func TestMenuCompactPagesByTwo(t *testing.T) {
	d, rig := newDevice(t, layout.Compact)
	rig.Link.Taps(right, right, both)

	if got := NewMenu([]string{"a", "b", "c", "d"}).Show(d); got != 2 {
		t.Fatalf("Show() = %d, want 2", got)
	}
	labels := rig.Recorder.Labels()
	if len(labels) != 2 || labels[0] != "c" || labels[1] != "d" {
		t.Fatalf("labels = %q, want [c d]", labels)
	}
}

func TestMenuEmptyReturnsImmediately(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	if got := NewMenu(nil).Show(d); got != 0 {
		t.Fatalf("Show() = %d, want 0", got)
	}
	if len(rig.Link.Sent) != 0 {
		t.Fatalf("empty menu talked to the link")
	}
}

func TestMenuDrawsArrows(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Tap(both)
	NewMenu([]string{"only"}).Show(d)

	uxtest.AssertRender(t, rig.FB, 2, 30, 7, 4, `
...#...
..###..
.#####.
#######
`)
}

func TestValidatorScenario(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(left, both)

	if NewValidator("Confirm?").Ask(d) {
		t.Fatalf("Ask() = true after a left release, want false")
	}
	c, ok := rig.Recorder.Label("Cancel")
	if !ok || c.FontID != 1 || c.FgColor.Lit() {
		t.Fatalf("Cancel not bold and highlighted: %+v", c)
	}
}

func TestValidatorDefaultsToMessage(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Readings(both, 0)

	if !NewValidator("Confirm?").Ask(d) {
		t.Fatalf("Ask() = false, want true")
	}
	c, ok := rig.Recorder.Label("Confirm?")
	if !ok || c.FgColor.Lit() {
		t.Fatalf("selected label not highlighted on both press: %+v", c)
	}
	if !rig.Recorder.HasIcon(bitmaps.IDUp) {
		t.Fatalf("arrows never drawn")
	}
}

func TestValidatorRightAfterLeft(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(left, right, both)

	if !NewValidator("Sign").Ask(d) {
		t.Fatalf("Ask() = false, want true")
	}
}

func TestMessageValidator(t *testing.T) {
	tests := []struct {
		name string
		taps []uint8
		want bool
	}{
		{"confirm", []uint8{right, right, both}, true},
		{"cancel clamps", []uint8{right, right, right, right, right, both}, false},
		{"both on message redraws", []uint8{both, right, right, both}, true},
		{"back from cancel", []uint8{right, right, right, left, both}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rig := newDevice(t, layout.Regular)
			rig.Link.Taps(tt.taps...)

			v := NewMessageValidator([]string{"Send 1 BTC", "to bc1q..."}, []string{"Accept"}, []string{"Reject"})
			if got := v.Ask(d); got != tt.want {
				t.Fatalf("Ask() = %v, want %v", got, tt.want)
			}
			if rig.Link.Remaining() != 0 {
				t.Fatalf("%d frames left unread", rig.Link.Remaining())
			}
		})
	}
}

func TestMessageValidatorPages(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	v := NewMessageValidator([]string{"m"}, nil, []string{"Reject", "now"})

	v.draw(d, 0)
	if icons := rig.Recorder.Icons(); len(icons) != 1 || icons[0] != bitmaps.IDRight {
		t.Fatalf("message page icons = %v", icons)
	}

	v.draw(d, 1)
	icons := rig.Recorder.Icons()
	if len(icons) != 3 || icons[0] != bitmaps.IDCheck {
		t.Fatalf("confirm page icons = %v", icons)
	}
	c := rig.Recorder.Screen()[0].Component
	if want := int16((128 - 14) / 2); c.X != want {
		t.Fatalf("lone check icon at x=%d, want %d", c.X, want)
	}

	v.draw(d, 2)
	if rig.Recorder.HasIcon(bitmaps.IDRight) || !rig.Recorder.HasIcon(bitmaps.IDCross) {
		t.Fatalf("cancel page icons = %v", rig.Recorder.Icons())
	}
	if labels := rig.Recorder.Labels(); len(labels) != 2 {
		t.Fatalf("cancel page labels = %q", labels)
	}
}

func TestMessageScrollerPaging(t *testing.T) {
	msg := "0123456789abcdef0123456789ABCDEFxyzwvuts"
	m := NewMessageScroller(msg)
	if got := m.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}
	if got := m.Page(1); got != "0123456789ABCDEF" {
		t.Fatalf("Page(1) = %q", got)
	}
	if got := m.Page(2); got != "xyzwvuts" {
		t.Fatalf("Page(2) = %q", got)
	}
	if got := m.Page(3); got != "" {
		t.Fatalf("Page(3) = %q, want empty", got)
	}

	d, rig := newDevice(t, layout.Regular)
	m.draw(d, 0, 3)
	if icons := rig.Recorder.Icons(); len(icons) != 1 || icons[0] != bitmaps.IDRight {
		t.Fatalf("first page icons = %v, want [right]", icons)
	}
	m.draw(d, 1, 3)
	if icons := rig.Recorder.Icons(); len(icons) != 2 {
		t.Fatalf("middle page icons = %v, want both arrows", icons)
	}
	m.draw(d, 2, 3)
	if icons := rig.Recorder.Icons(); len(icons) != 1 || icons[0] != bitmaps.IDLeft {
		t.Fatalf("last page icons = %v, want [left]", icons)
	}
}

func TestMessageScrollerEventLoop(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(right, right, right, both)

	NewMessageScroller("0123456789abcdef0123456789ABCDEFxyz").EventLoop(d)
	if labels := rig.Recorder.Labels(); len(labels) != 1 || labels[0] != "xyz" {
		t.Fatalf("final labels = %q, want [xyz]", labels)
	}
	if got := rig.Recorder.Clears(); got != 3 {
		t.Fatalf("clears = %d, want 3", got)
	}
}

func TestMessageScrollerRuneBoundaries(t *testing.T) {
	m := NewMessageScroller("日本語日本語日本語日本")
	if got := m.PageCount(); got != 2 {
		t.Fatalf("PageCount() = %d, want 2", got)
	}
	if got := m.Page(0); got != "日本語日本語日本" {
		t.Fatalf("Page(0) = %q", got)
	}
}

func TestMessageScrollerIgnoresHostLocale(t *testing.T) {
	saved := runewidth.DefaultCondition.EastAsianWidth
	defer func() { runewidth.DefaultCondition.EastAsianWidth = saved }()

	msg := strings.Repeat("αβγδε", 8)
	for _, eastAsian := range []bool{false, true} {
		runewidth.DefaultCondition.EastAsianWidth = eastAsian
		m := NewMessageScroller(msg)
		if got := m.PageCount(); got != 3 {
			t.Fatalf("EastAsianWidth=%v: PageCount() = %d, want 3", eastAsian, got)
		}
		if got := m.Page(0); got != "αβγδεαβγδεαβγδεα" {
			t.Fatalf("EastAsianWidth=%v: Page(0) = %q", eastAsian, got)
		}
	}
}

func TestMessageScrollerEmpty(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	NewMessageScroller("").EventLoop(d)
	if len(rig.Recorder.Calls) != 0 {
		t.Fatalf("empty scroller drew %d components", len(rig.Recorder.Calls))
	}
}

func TestMultiPageMenuWraps(t *testing.T) {
	pages := []Page{
		NewTextPage([2]string{"zero", ""}, false),
		NewTextPage([2]string{"one", ""}, true),
		NewPictureBoldPage("two", bitmaps.IDLogo),
	}
	tests := []struct {
		name string
		taps []uint8
		want int
	}{
		{"left from first", []uint8{left, both}, 2},
		{"right from last", []uint8{left, right, both}, 0},
		{"forward", []uint8{right, both}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, rig := newDevice(t, layout.Regular)
			rig.Link.Taps(tt.taps...)
			got := NewMultiPageMenu(pages).Show(d)
			if got.FromHost || got.Index != tt.want {
				t.Fatalf("Show() = %+v, want index %d", got, tt.want)
			}
		})
	}
}

func TestMultiPageMenuCommandEscape(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Tap(right).Command(0xE0, 0x01)

	pages := []Page{NewTextPage([2]string{"a", ""}, false), NewTextPage([2]string{"b", ""}, false)}
	got := NewMultiPageMenu(pages).Show(d)
	if !got.FromHost || got.Index != 1 {
		t.Fatalf("Show() = %+v, want command at index 1", got)
	}
	if p := got.Command.Payload(); len(p) != 2 || p[0] != 0xE0 {
		t.Fatalf("command payload = % x", p)
	}
}

func TestMultiPageMenuTakesParkedCommand(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Command(0xAA).Tap(both)

	if got := NewMenu([]string{"x"}).Show(d); got != 0 {
		t.Fatalf("Menu.Show() = %d", got)
	}
	if d.Comm.Backlog() != 1 {
		t.Fatalf("backlog = %d, want 1", d.Comm.Backlog())
	}

	got := NewMultiPageMenu([]Page{NewTextPage([2]string{"a", ""}, false)}).Show(d)
	if !got.FromHost || got.Command.Payload()[0] != 0xAA {
		t.Fatalf("Show() = %+v, want parked command", got)
	}
}

func TestHScrollerClamps(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Taps(left, right, right, both)

	pages := []Page{NewTextPage([2]string{"first", ""}, false), NewTextPage([2]string{"second", ""}, false)}
	NewHScroller(pages).EventLoop(d)

	if labels := rig.Recorder.Labels(); len(labels) != 1 || labels[0] != "second" {
		t.Fatalf("labels = %q, want [second]", labels)
	}
	// Neither the resting nor the pressed right arrow is left on screen.
	uxtest.AssertRender(t, rig.FB, 114, 28, 12, 7, `
............
............
............
............
............
............
............
`)
}

func TestSingleMessageShowAndWait(t *testing.T) {
	d, rig := newDevice(t, layout.Regular)
	rig.Link.Readings(left, 0)

	Popup(d, "Done")
	if labels := rig.Recorder.Labels(); len(labels) != 1 || labels[0] != "Done" {
		t.Fatalf("labels = %q", labels)
	}
	if rig.Link.Remaining() != 0 {
		t.Fatalf("ShowAndWait returned before the release")
	}
}

func TestPageStyles(t *testing.T) {
	tests := []struct {
		name  string
		g     layout.Geometry
		page  Page
		check func(t *testing.T, rec *uxtest.Recorder)
	}{
		{"picture bold", layout.Regular, NewPictureBoldPage("Ready", bitmaps.IDLogo), func(t *testing.T, rec *uxtest.Recorder) {
			c, _ := rec.Label("Ready")
			if c.Y != 35 || c.FontID != 1 {
				t.Fatalf("label = %+v", c)
			}
			if !rec.HasIcon(bitmaps.IDLogo) {
				t.Fatalf("icon missing")
			}
		}},
		{"picture bold compact", layout.Compact, NewPictureBoldPage("Ready", bitmaps.IDLogo), func(t *testing.T, rec *uxtest.Recorder) {
			c, _ := rec.Label("Ready")
			if c.Y != 32-8-2 {
				t.Fatalf("label y = %d", c.Y)
			}
		}},
		{"picture normal", layout.Regular, NewPictureNormalPage([2]string{"a", "b"}, bitmaps.IDCheck), func(t *testing.T, rec *uxtest.Recorder) {
			a, _ := rec.Label("a")
			b, _ := rec.Label("b")
			if a.Y != 28 || b.Y != 38 {
				t.Fatalf("ys = %d, %d", a.Y, b.Y)
			}
		}},
		{"picture normal compact", layout.Compact, NewPictureNormalPage([2]string{"a", "b"}, bitmaps.IDCheck), func(t *testing.T, rec *uxtest.Recorder) {
			a, _ := rec.Label("a")
			if a.X != 41 {
				t.Fatalf("x = %d, want 41", a.X)
			}
		}},
		{"bold normal", layout.Regular, NewTextPage([2]string{"Version", "1.0"}, true), func(t *testing.T, rec *uxtest.Recorder) {
			v, _ := rec.Label("Version")
			n, _ := rec.Label("1.0")
			if v.Y != 23 || v.FontID != 1 || n.Y != 33 || n.FontID != 0 {
				t.Fatalf("labels = %+v / %+v", v, n)
			}
		}},
		{"normal", layout.Regular, NewTextPage([2]string{"x", "y"}, false), func(t *testing.T, rec *uxtest.Recorder) {
			if labels := rec.Labels(); len(labels) != 2 {
				t.Fatalf("labels = %q", labels)
			}
			if rec.HasIcon(bitmaps.IDLogo) || len(rec.Icons()) != 0 {
				t.Fatalf("text page drew icons")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := uxtest.NewRig(t, tt.g)
			tt.page.Place(rig.Screen)
			tt.check(t, rig.Recorder)
		})
	}
}

var _ bagl.Backend = (*uxtest.Recorder)(nil)
