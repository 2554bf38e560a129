package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"nanoux/hal"
	"nanoux/ux/fonts"

	"tinygo.org/x/tinyfont"
)

// fault logs a recovered panic line by line and paints it on the display,
// bypassing the widget stack.
func (s *system) fault(value any, stack []byte) {
	s.log.WriteLineString(fmt.Sprintf("Nano UX fault: %v", value))
	var frames []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		s.log.WriteLineString(line)
		frames = append(frames, strings.TrimSpace(line))
	}

	disp := s.h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	lines := []string{"FAULT", fmt.Sprint(value)}
	if len(frames) > 0 {
		lines = append(lines, frames...)
	} else {
		lines = append(lines, "stack: unavailable")
	}
	drawFault(fb, lines)
}

func drawFault(fb hal.Framebuffer, lines []string) {
	fb.Clear(false)
	d := faultDisplay{fb: fb}
	font := fonts.Regular
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	cols := int16(fb.Width()) / int16(outboxWidth)
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+fonts.Height > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y+fonts.Height-1, chunk, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
			y += fonts.Height
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

type faultDisplay struct {
	fb hal.Framebuffer
}

func (d faultDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d faultDisplay) SetPixel(x, y int16, c color.RGBA) {
	if int(x) >= d.fb.Width() || int(y) >= d.fb.Height() {
		return
	}
	hal.SetPixelAt(d.fb.Buffer(), d.fb.StrideBytes(), int(x), int(y), c.R|c.G|c.B != 0)
}

func (d faultDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
