package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"nanoux/hal"
	"nanoux/ux/bagl"
	"nanoux/ux/layout"
	"nanoux/ux/seph"
	"nanoux/ux/seproxy"
	"nanoux/ux/ui"
)

// ErrQuit is returned by the step function once the dashboard was left
// through its Quit page.
var ErrQuit = errors.New("app: quit")

const (
	BackendBlit       = "blit"
	BackendDescriptor = "descriptor"
)

type Config struct {
	// Backend selects how widgets reach the display: "blit" draws into the
	// framebuffer directly, "descriptor" sends every component through the
	// frame protocol. Empty means blit.
	Backend  string
	Compact  bool
	TickerMs uint16
	Scenario *Scenario
}

type system struct {
	h     hal.HAL
	log   hal.Logger
	cfg   Config
	proxy *seproxy.Proxy
	dev   *ui.Device
	texts Texts

	script *player
	done   chan error
}

// New starts the dashboard with the default config and returns the step
// function the host runner calls on every tick.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s := newSystem(h, cfg)
	s.start()
	return s.step
}

// Run starts the dashboard and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	s := newSystem(h, Config{TickerMs: 100})
	s.start()
	err := <-s.done
	s.log.WriteLineString(fmt.Sprintf("app: stopped: %v", err))
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	log := h.Logger()
	if log == nil {
		log = hal.NopLogger{}
	}

	proxy := seproxy.FromHAL(h)
	ch := seph.NewChannel(proxy, log)

	g := layout.Regular
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			g = layout.Geometry{Width: fb.Width(), Height: fb.Height()}
		}
	}

	var backend bagl.Backend
	switch {
	case cfg.Backend == BackendDescriptor || proxy.Backend() == nil:
		backend = bagl.NewDescriptorBackend(ch, log)
	default:
		backend = proxy.Backend()
	}

	s := &system{
		h:     h,
		log:   log,
		cfg:   cfg,
		proxy: proxy,
		dev:   ui.NewDevice(bagl.NewScreen(backend, g, log), seph.NewComm(ch, log), log),
		texts: DefaultTexts(),
		done:  make(chan error, 1),
	}
	if sc := cfg.Scenario; sc != nil {
		s.texts = sc.Texts.Or(s.texts)
		s.script = newPlayer(sc.actions)
	}
	log.WriteLineString(fmt.Sprintf("app: %s backend, %s screen", backendName(cfg.Backend), g))
	return s
}

func backendName(b string) string {
	if b == "" {
		return BackendBlit
	}
	return b
}

func (s *system) start() {
	if ser := s.h.Serial(); ser != nil {
		go func() {
			if err := s.proxy.ReadCommands(ser); err != nil {
				s.log.WriteLineString(fmt.Sprintf("app: serial: %v", err))
			}
		}()
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.fault(r, debug.Stack())
				s.done <- fmt.Errorf("app: panic: %v", r)
			}
		}()
		if s.cfg.TickerMs > 0 {
			if err := seph.SetTicker(s.dev.Comm.Transport(), s.cfg.TickerMs); err != nil {
				s.log.WriteLineString(fmt.Sprintf("app: ticker: %v", err))
			}
		}
		s.dashboard()
		s.done <- ErrQuit
	}()
}

// step feeds the scenario and reports how the UI goroutine ended, once it
// has.
func (s *system) step() error {
	select {
	case err := <-s.done:
		s.done <- err
		return err
	default:
	}
	if s.script != nil {
		s.script.advance(s.proxy, s.log)
	}
	return nil
}
