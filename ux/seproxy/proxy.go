// Package seproxy plays the co-processor side of the frame protocol inside
// the same program: it turns HAL button readings, host command lines and
// ticks into event frames, and renders display status frames into the HAL
// framebuffer.
package seproxy

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"nanoux/hal"
	"nanoux/ux/bagl"
	"nanoux/ux/seph"
)

var (
	ErrClosed    = errors.New("seproxy: closed")
	ErrQueueFull = errors.New("seproxy: inject queue full")
)

const injectDepth = 16

// Config wires a Proxy to its inputs. Any channel may be nil.
type Config struct {
	Framebuffer hal.Framebuffer
	Buttons     <-chan uint8
	Ticks       <-chan uint64
	Logger      hal.Logger
}

// Proxy implements seph.Link. Send and Recv must be called from a single
// goroutine; Press, InjectCommand and Close are safe from any goroutine.
type Proxy struct {
	blit    *bagl.BlitBackend
	log     hal.Logger
	buttons <-chan uint8
	ticks   <-chan uint64
	inject  chan seph.Frame
	done    chan struct{}
	closing sync.Once

	responses seph.Mailbox
	tickerMs  uint64
	lastTick  uint64
	drawn     uint64
}

// New returns a Proxy for cfg.
func New(cfg Config) *Proxy {
	log := cfg.Logger
	if log == nil {
		log = hal.NopLogger{}
	}
	p := &Proxy{
		log:     log,
		buttons: cfg.Buttons,
		ticks:   cfg.Ticks,
		inject:  make(chan seph.Frame, injectDepth),
		done:    make(chan struct{}),
	}
	if cfg.Framebuffer != nil {
		p.blit = bagl.NewBlitBackend(cfg.Framebuffer)
	}
	return p
}

// FromHAL returns a Proxy over the display, buttons and clock of h.
func FromHAL(h hal.HAL) *Proxy {
	cfg := Config{Logger: h.Logger()}
	if d := h.Display(); d != nil {
		cfg.Framebuffer = d.Framebuffer()
	}
	if b := h.Buttons(); b != nil {
		cfg.Buttons = b.Events()
	}
	if t := h.Time(); t != nil {
		cfg.Ticks = t.Ticks()
	}
	return New(cfg)
}

// Backend returns the renderer used for display status frames, or nil
// without a framebuffer.
func (p *Proxy) Backend() *bagl.BlitBackend { return p.blit }

// Drawn returns how many display records have been rendered.
func (p *Proxy) Drawn() uint64 { return p.drawn }

func (p *Proxy) Send(frame []byte) error {
	tag, payload, err := seph.Split(frame)
	if err != nil {
		return err
	}

	switch tag {
	case seph.TagGeneralStatus:
		return nil

	case seph.TagDisplayStatus:
		if err := p.render(payload); err != nil {
			p.log.WriteLineString(fmt.Sprintf("seproxy: display: %v", err))
		}
		p.respond(seph.TagDisplayProcessed)
		return nil

	case seph.TagSetTicker:
		if len(payload) < 2 {
			return fmt.Errorf("seproxy: set ticker: %w", seph.ErrShortFrame)
		}
		p.tickerMs = uint64(payload[0])<<8 | uint64(payload[1])
		p.lastTick = 0
		return nil

	default:
		p.log.WriteLineString("seproxy: ignoring " + tag.String())
		return nil
	}
}

func (p *Proxy) render(payload []byte) error {
	c, text, err := bagl.UnmarshalComponent(payload)
	if err != nil {
		return err
	}
	if p.blit == nil {
		return nil
	}
	if err := p.blit.Draw(&c, string(text)); err != nil {
		return err
	}
	p.drawn++
	return p.blit.Update()
}

func (p *Proxy) respond(tag seph.Tag) {
	var b [seph.HeaderBytes]byte
	n, _ := seph.Encode(b[:], tag)
	if !p.responses.TrySend(b[:n]) {
		p.log.WriteLineString("seproxy: response queue full, dropped " + tag.String())
	}
}

// Recv returns queued responses first, then waits for a button reading, an
// injected frame or a due ticker event. A zero timeout waits forever.
func (p *Proxy) Recv(buf []byte, timeout time.Duration) (int, error) {
	if f, ok := p.responses.TryRecv(); ok {
		return copy(buf, f.Bytes()), nil
	}

	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	for {
		select {
		case m, ok := <-p.buttons:
			if !ok {
				p.buttons = nil
				continue
			}
			return seph.EncodeButtonPush(buf, m)

		case f := <-p.inject:
			return copy(buf, f.Bytes()), nil

		case seq, ok := <-p.ticks:
			if !ok {
				p.ticks = nil
				continue
			}
			if p.tickerMs == 0 {
				continue
			}
			if p.lastTick == 0 {
				p.lastTick = seq
				continue
			}
			if seq-p.lastTick < p.tickerMs {
				continue
			}
			p.lastTick = seq
			return seph.Encode(buf, seph.TagTicker)

		case <-expired:
			return 0, seph.ErrTimeout

		case <-p.done:
			return 0, ErrClosed
		}
	}
}

// Press injects a raw button reading, as if the buttons changed state.
func (p *Proxy) Press(mask uint8) bool {
	var b [seph.HeaderBytes + 1]byte
	n, _ := seph.EncodeButtonPush(b[:], mask)
	return p.injectFrame(b[:n])
}

// InjectCommand queues a command frame carrying apdu.
func (p *Proxy) InjectCommand(apdu []byte) error {
	var b [seph.MaxFrameBytes]byte
	n, err := seph.Encode(b[:], seph.TagCommandAPDU, apdu)
	if err != nil {
		return err
	}
	if !p.injectFrame(b[:n]) {
		return ErrQueueFull
	}
	return nil
}

func (p *Proxy) injectFrame(b []byte) bool {
	var f seph.Frame
	f.Set(b)
	select {
	case p.inject <- f:
		return true
	default:
		return false
	}
}

// Close wakes a blocked Recv, and fails every later one, with ErrClosed.
func (p *Proxy) Close() {
	p.closing.Do(func() { close(p.done) })
}
