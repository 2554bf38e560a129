package uxtest

import (
	"strings"
	"testing"

	"nanoux/hal"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Render draws the visible area of a framebuffer as text, '#' for lit and
// '.' for dark, one line per row.
func Render(fb hal.Framebuffer, x, y, w, h int) string {
	var sb strings.Builder
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if hal.PixelAt(buf, stride, col, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// AssertRender fails tb with a character diff when the rendered region of
// fb differs from want. Leading and trailing blank lines of want are
// ignored.
func AssertRender(tb testing.TB, fb hal.Framebuffer, x, y, w, h int, want string) {
	tb.Helper()
	want = strings.TrimLeft(want, "\n")
	got := Render(fb, x, y, w, h)
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	tb.Fatalf("screen mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}
