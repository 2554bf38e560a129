//go:build !tinygo

package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"nanoux/hal"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/image/bmp"
)

// frame returns the last presented frame of fb, or its back buffer when fb
// cannot snapshot.
func frame(fb hal.Framebuffer) []byte {
	if s, ok := fb.(hal.Snapshotter); ok {
		return s.Snapshot(nil)
	}
	return append([]byte(nil), fb.Buffer()...)
}

// Image converts the current frame of fb to a grayscale image.
func Image(fb hal.Framebuffer) *image.Gray {
	buf := frame(fb)
	img := image.NewGray(image.Rect(0, 0, fb.Width(), fb.Height()))
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if hal.PixelAt(buf, fb.StrideBytes(), x, y) {
				img.SetGray(x, y, color.Gray{Y: 0xFF})
			}
		}
	}
	return img
}

// WriteSnapshot encodes the current frame of fb as a BMP.
func WriteSnapshot(w io.Writer, fb hal.Framebuffer) error {
	return bmp.Encode(w, Image(fb))
}

// SaveSnapshot writes the current frame of fb to a BMP file at path.
func SaveSnapshot(path string, fb hal.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := WriteSnapshot(f, fb); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	return f.Close()
}

// Dump prints the current frame of fb inside a border, two pixel rows per
// text row. The border follows the printed width of the rows, which
// depends on how the terminal measures block characters.
func Dump(w io.Writer, fb hal.Framebuffer) error {
	out := termenv.NewOutput(w)
	buf := frame(fb)
	stride := fb.StrideBytes()

	var rows []string
	var widths []int
	inner := 0
	for y := 0; y < fb.Height(); y += 2 {
		var row strings.Builder
		for x := 0; x < fb.Width(); x++ {
			top := hal.PixelAt(buf, stride, x, y)
			bottom := y+1 < fb.Height() && hal.PixelAt(buf, stride, x, y+1)
			row.WriteRune(halfBlock(top, bottom))
		}
		styled := out.String(row.String()).
			Foreground(out.Color("#f0f0f0")).
			Background(out.Color("#101010")).
			String()
		n := ansi.PrintableRuneWidth(styled)
		rows = append(rows, styled)
		widths = append(widths, n)
		inner = max(inner, n)
	}

	// The rule character may itself be two cells wide.
	dash := max(ansi.PrintableRuneWidth("─"), 1)
	rule := strings.Repeat("─", (inner+dash-1)/dash)
	inner = ansi.PrintableRuneWidth(rule)

	var b strings.Builder
	b.WriteString("┌" + rule + "┐\n")
	for i, row := range rows {
		b.WriteString("│" + row + strings.Repeat(" ", max(inner-widths[i], 0)) + "│\n")
	}
	b.WriteString("└" + rule + "┘\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
