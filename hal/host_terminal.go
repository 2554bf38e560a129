//go:build !tinygo

package hal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Width  int
	Height int
	Hz     int
}

var (
	termStyleLit  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xf0f0f0)).Background(tcell.NewHexColor(0x101010))
	termStyleHelp = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x808080))
)

const termHelp = "<- left  -> right  space/down both  esc quit"

// RunTerminal renders the framebuffer in the terminal with half-block cells
// (one cell = two vertical pixels). Terminals report key presses but not
// releases, so each key is delivered as a full press/release tap.
// It blocks until Esc/Ctrl-C or until the app step fails.
func RunTerminal(newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer s.Fini()

	h := newHostHAL(cfg.Width, cfg.Height)
	// Stdin belongs to tcell in this mode.
	h.serial = nil
	h.logger.w = nil
	step := newApp(h)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var scratch []byte
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyLeft:
					h.btn.tap(0x1)
				case tcell.KeyRight:
					h.btn.tap(0x2)
				case tcell.KeyDown, tcell.KeyEnter:
					h.btn.tap(0x3)
				case tcell.KeyRune:
					if ev.Rune() == ' ' {
						h.btn.tap(0x3)
					}
				}
			}
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			scratch = h.fb.Snapshot(scratch)
			drawTerminal(s, h.fb, scratch)
		}
	}
}

func drawTerminal(s tcell.Screen, fb *MonoFramebuffer, frame []byte) {
	w, h, stride := fb.Width(), fb.Height(), fb.StrideBytes()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := PixelAt(frame, stride, x, y)
			bottom := PixelAt(frame, stride, x, y+1)
			r := ' '
			switch {
			case top && bottom:
				r = '█'
			case top:
				r = '▀'
			case bottom:
				r = '▄'
			}
			s.SetContent(x, y/2, r, nil, termStyleLit)
		}
	}
	row := (h + 1) / 2
	for i, r := range termHelp {
		s.SetContent(i, row+1, r, nil, termStyleHelp)
	}
	s.Show()
}
