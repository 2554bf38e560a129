//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// AfterRun, if set, observes the HAL once the loop has stopped
	// (e.g. to export the final screen).
	AfterRun func(HAL)
}

// RunHeadless runs the UI without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(cfg.Width, cfg.Height)
	step := newApp(h)
	if cfg.AfterRun != nil {
		defer cfg.AfterRun(h)
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func newHostHAL(width, height int) *hostHAL {
	if width <= 0 {
		width = HostScreenWidth
	}
	if height <= 0 {
		height = HostScreenHeight
	}
	return NewWithSize(width, height).(*hostHAL)
}
