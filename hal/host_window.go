//go:build !tinygo && cgo

package hal

import (
	"image"

	"nanoux/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
}

// RunWindow starts a desktop window that displays the framebuffer and maps
// the arrow keys to the two buttons (Down or Space presses both).
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	h := newHostHAL(cfg.Width, cfg.Height)
	h.serial = nil
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(buildinfo.Banner("nanoux"))
	ebiten.SetWindowSize(h.fb.Width()*cfg.Scale, h.fb.Height()*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.btn.set(windowButtonMask())
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func windowButtonMask() uint8 {
	var mask uint8
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		mask |= 0x1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		mask |= 0x2
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		mask = 0x3
	}
	return mask
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	g.scratch = fb.Snapshot(g.scratch)

	dst := g.img.Pix
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v byte = 0x10
			if PixelAt(g.scratch, fb.StrideBytes(), x, y) {
				v = 0xF0
			}
			j := (y*w + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.Width(), g.h.fb.Height()
}
