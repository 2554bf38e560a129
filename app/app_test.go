package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"nanoux/hal"
	"nanoux/ux/seph"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"golang.org/x/image/bmp"
)

type logSink struct {
	mu    sync.Mutex
	lines []string
}

func (l *logSink) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *logSink) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *logSink) has(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if line == s {
			return true
		}
	}
	return false
}

type testSerial struct {
	mu  sync.Mutex
	out bytes.Buffer
}

func (s *testSerial) Read([]byte) (int, error) { return 0, io.EOF }

func (s *testSerial) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}

func (s *testSerial) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

type testHAL struct {
	log    *logSink
	fb     *hal.MonoFramebuffer
	serial *testSerial
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{log: &logSink{}, fb: hal.NewMonoFramebuffer(w, h), serial: &testSerial{}}
}

func (h *testHAL) Logger() hal.Logger           { return h.log }
func (h *testHAL) Display() hal.Display         { return h }
func (h *testHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *testHAL) Buttons() hal.Buttons         { return nil }
func (h *testHAL) Serial() hal.Serial           { return h.serial }
func (h *testHAL) Time() hal.Time               { return nil }

func mustScenario(t *testing.T, doc string) *Scenario {
	t.Helper()
	sc, err := ParseScenario([]byte(doc))
	if err != nil {
		t.Fatalf("ParseScenario() err = %v", err)
	}
	return sc
}

func run(t *testing.T, step func() error) error {
	t.Helper()
	for i := 0; i < 5000; i++ {
		if err := step(); err != nil {
			return err
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("dashboard did not finish")
	return nil
}

const quitSteps = `
  - press: left
  - press: both
`

func TestQuitFromDashboard(t *testing.T) {
	for _, backend := range []string{BackendBlit, BackendDescriptor} {
		t.Run(backend, func(t *testing.T) {
			h := newTestHAL(128, 64)
			cfg := Config{Backend: backend}
			mustScenario(t, "steps:"+quitSteps).Apply(&cfg)

			if err := run(t, NewWithConfig(h, cfg)); !errors.Is(err, ErrQuit) {
				t.Fatalf("step() err = %v, want ErrQuit", err)
			}
			if h.fb.Presented() == 0 {
				t.Fatalf("nothing presented")
			}
			if !h.log.has("app: " + backend + " backend, 128x64 screen") {
				t.Fatalf("log = %q", h.log.lines)
			}
		})
	}
}

func TestHostCommands(t *testing.T) {
	tests := []struct {
		name  string
		steps string
		want  string
		log   string
	}{
		{
			name:  "approved",
			steps: "  - command: E0 02 00 00\n  - press: both\n",
			want:  "9000\n",
			log:   "app: command approved=true",
		},
		{
			name:  "rejected",
			steps: "  - command: E0 02 00 00\n  - press: left\n  - press: both\n",
			want:  "6985\n",
			log:   "app: command approved=false",
		},
		{
			name:  "version",
			steps: "  - command: E0 01 00 00\n",
			want:  "6465769000\n",
		},
		{
			name:  "unknown instruction",
			steps: "  - command: E0 7F 00 00\n",
			want:  "6D00\n",
			log:   "app: unknown instruction 7F",
		},
		{
			name:  "too short",
			steps: "  - command: E0 02\n",
			want:  "6700\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHAL(128, 64)
			var cfg Config
			mustScenario(t, "steps:\n"+tt.steps+"  - wait: 5"+quitSteps).Apply(&cfg)

			if err := run(t, NewWithConfig(h, cfg)); !errors.Is(err, ErrQuit) {
				t.Fatalf("step() err = %v, want ErrQuit", err)
			}
			if got := h.serial.String(); got != tt.want {
				t.Fatalf("serial = %q, want %q", got, tt.want)
			}
			if tt.log != "" && !h.log.has(tt.log) {
				t.Fatalf("log = %q, want %q", h.log.lines, tt.log)
			}
		})
	}
}

func TestReviewFlow(t *testing.T) {
	h := newTestHAL(128, 32)
	var cfg Config
	mustScenario(t, `
texts:
  review: ["Pay 1", "to bob"]
steps:
  - press: right
  - press: right
  - press: right
  - press: both
  - press: right
  - press: right
  - press: both
  - press: right
`+quitSteps).Apply(&cfg)

	if err := run(t, NewWithConfig(h, cfg)); !errors.Is(err, ErrQuit) {
		t.Fatalf("step() err = %v, want ErrQuit", err)
	}
	if !h.log.has("app: review approved=true") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestSettingsReset(t *testing.T) {
	h := newTestHAL(128, 64)
	var cfg Config
	mustScenario(t, `
steps:
  - press: left
  - press: left
  - press: both
  - press: both
  - press: both
  - press: left
`+quitSteps).Apply(&cfg)

	if err := run(t, NewWithConfig(h, cfg)); !errors.Is(err, ErrQuit) {
		t.Fatalf("step() err = %v, want ErrQuit", err)
	}
	if !h.log.has("app: reset Display") {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestParseScenario(t *testing.T) {
	sc := mustScenario(t, `
compact: true
backend: descriptor
ticker_ms: 250
texts:
  ready: Hello
steps:
  - press: both
  - command: "e0 01 00 00"
  - wait: 3
`)
	if len(sc.actions) != 4 {
		t.Fatalf("actions = %d, want 4", len(sc.actions))
	}
	if sc.actions[0].mask != 3 || sc.actions[1].mask != 0 || sc.actions[3].wait != 3 {
		t.Fatalf("actions = %+v", sc.actions)
	}

	var cfg Config
	sc.Apply(&cfg)
	if !cfg.Compact || cfg.Backend != BackendDescriptor || cfg.TickerMs != 250 || cfg.Scenario != sc {
		t.Fatalf("Apply() cfg = %+v", cfg)
	}
	if got := sc.Texts.Or(DefaultTexts()); got.Ready != "Hello" || got.Approve != DefaultTexts().Approve {
		t.Fatalf("Or() = %+v", got)
	}

	for _, doc := range []string{
		"backend: vga",
		"steps:\n  - press: up",
		"steps:\n  - command: xyz",
		"steps:\n  - press: left\n    wait: 2",
		"steps:\n  - {}",
		"steps: [",
	} {
		if _, err := ParseScenario([]byte(doc)); err == nil {
			t.Fatalf("ParseScenario(%q) err = nil", doc)
		}
	}
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario("")
	if sc != nil || err != nil {
		t.Fatalf("LoadScenario(\"\") = %v, %v", sc, err)
	}

	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte("compact: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if sc, err = LoadScenario(path); err != nil || !sc.Compact {
		t.Fatalf("LoadScenario() = %+v, %v", sc, err)
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file loaded")
	}
}

func TestPlayerRetriesWhenQueueFull(t *testing.T) {
	h := newTestHAL(128, 64)
	s := newSystem(h, Config{})
	for s.proxy.Press(1) {
	}

	p := newPlayer([]action{{kind: actPress, mask: 2}})
	p.advance(s.proxy, s.log)
	if len(p.actions) != 1 {
		t.Fatalf("action consumed while the queue was full")
	}

	var buf [seph.MaxFrameBytes]byte
	if _, err := s.proxy.Recv(buf[:], time.Second); err != nil {
		t.Fatal(err)
	}
	p.advance(s.proxy, s.log)
	if len(p.actions) != 0 {
		t.Fatalf("action not played after the queue drained")
	}
}

func TestFault(t *testing.T) {
	h := newTestHAL(128, 64)
	s := &system{h: h, log: h.log}
	s.fault("boom", []byte("goroutine 1 [running]:\n\tnanoux/app/dashboard.go:42\n"))

	if !h.log.has("Nano UX fault: boom") || !h.log.has("\tnanoux/app/dashboard.go:42") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if h.fb.Presented() != 1 {
		t.Fatalf("presented = %d, want 1", h.fb.Presented())
	}
	if snap := h.fb.Snapshot(nil); bytes.Equal(snap, make([]byte, len(snap))) {
		t.Fatalf("fault screen is blank")
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s      string
		n      int16
		prefix string
		rest   string
	}{
		{"hello", 10, "hello", ""},
		{"hello world", 5, "hello", " world"},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		prefix, rest := takeRunes(tt.s, tt.n)
		if prefix != tt.prefix || rest != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q", tt.s, tt.n, prefix, rest)
		}
	}
}

func litFramebuffer() *hal.MonoFramebuffer {
	fb := hal.NewMonoFramebuffer(16, 4)
	hal.SetPixelAt(fb.Buffer(), fb.StrideBytes(), 3, 0, true)
	hal.SetPixelAt(fb.Buffer(), fb.StrideBytes(), 5, 2, true)
	hal.SetPixelAt(fb.Buffer(), fb.StrideBytes(), 5, 3, true)
	_ = fb.Present()
	return fb
}

func TestDump(t *testing.T) {
	var b bytes.Buffer
	if err := Dump(&b, litFramebuffer()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Dump() wrote %d lines, want 4:\n%s", len(lines), b.String())
	}
	if !strings.ContainsRune(lines[1], '▀') || !strings.ContainsRune(lines[2], '█') {
		t.Fatalf("Dump() =\n%s", b.String())
	}
}

func TestDumpBorderFollowsCellWidth(t *testing.T) {
	for _, eastAsian := range []bool{false, true} {
		prev := runewidth.DefaultCondition.EastAsianWidth
		runewidth.DefaultCondition.EastAsianWidth = eastAsian

		var b bytes.Buffer
		err := Dump(&b, litFramebuffer())
		runewidth.DefaultCondition.EastAsianWidth = prev
		if err != nil {
			t.Fatal(err)
		}

		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		want := ansi.PrintableRuneWidth(lines[0])
		for i, line := range lines {
			if got := ansi.PrintableRuneWidth(line); got != want {
				t.Fatalf("eastAsian=%v: line %d is %d cells, border is %d:\n%s", eastAsian, i, got, want, b.String())
			}
		}
	}
}

func TestWriteSnapshot(t *testing.T) {
	var b bytes.Buffer
	if err := WriteSnapshot(&b, litFramebuffer()); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(&b)
	if err != nil {
		t.Fatalf("bmp.Decode() err = %v", err)
	}
	if r, _, _, _ := img.At(3, 0).RGBA(); r == 0 {
		t.Fatalf("pixel (3,0) dark")
	}
	if r, _, _, _ := img.At(4, 0).RGBA(); r != 0 {
		t.Fatalf("pixel (4,0) lit")
	}
}
