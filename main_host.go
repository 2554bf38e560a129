//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"nanoux/app"
	"nanoux/hal"
	"nanoux/ux/layout"
)

func main() {
	var (
		cfg          hal.HeadlessConfig
		tui          bool
		backend      string
		compact      bool
		scenarioPath string
		snapshotPath string
		dump         bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&tui, "tui", false, "Render the screen in the terminal.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&backend, "backend", app.BackendBlit, "Display backend: blit or descriptor.")
	flag.BoolVar(&compact, "compact", false, "Use the 128x32 screen.")
	flag.StringVar(&scenarioPath, "scenario", "", "YAML scenario file.")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write the final headless screen to this BMP file.")
	flag.BoolVar(&dump, "dump", false, "Print the final headless screen.")
	flag.Parse()

	appCfg := app.Config{Backend: backend, Compact: compact}
	sc, err := app.LoadScenario(scenarioPath)
	if err != nil {
		fail(err)
	}
	sc.Apply(&appCfg)
	if appCfg.Backend != app.BackendBlit && appCfg.Backend != app.BackendDescriptor {
		fail(fmt.Errorf("unknown backend %q", appCfg.Backend))
	}

	g := layout.Regular
	if appCfg.Compact {
		g = layout.Compact
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	switch {
	case cfg.Enabled:
		cfg.Width, cfg.Height = g.Width, g.Height
		cfg.AfterRun = func(h hal.HAL) {
			fb := h.Display().Framebuffer()
			if snapshotPath != "" {
				if err := app.SaveSnapshot(snapshotPath, fb); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
			if dump {
				_ = app.Dump(os.Stdout, fb)
			}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, cfg)
		if errors.Is(err, context.Canceled) {
			return
		}
	case tui:
		err = hal.RunTerminal(newApp, hal.TerminalConfig{Width: g.Width, Height: g.Height})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Width: g.Width, Height: g.Height})
	}
	if err != nil && !errors.Is(err, app.ErrQuit) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
