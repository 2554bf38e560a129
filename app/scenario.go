package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"nanoux/hal"
	"nanoux/ux/seproxy"

	"gopkg.in/yaml.v3"
)

// Scenario is the optional YAML file that reshapes a run: screen size,
// backend, demo texts and a script of button taps and host commands played
// one per tick.
type Scenario struct {
	Compact  bool   `yaml:"compact,omitempty"`
	Backend  string `yaml:"backend,omitempty"`
	TickerMs uint16 `yaml:"ticker_ms,omitempty"`
	Texts    Texts  `yaml:"texts"`
	Steps    []Step `yaml:"steps"`

	actions []action
}

// Step is one scripted input. Exactly one field is set.
type Step struct {
	Press   string `yaml:"press,omitempty"`
	Command string `yaml:"command,omitempty"`
	Wait    int    `yaml:"wait,omitempty"`
}

// LoadScenario reads the scenario at path. An empty path yields nil.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	switch sc.Backend {
	case "", BackendBlit, BackendDescriptor:
	default:
		return nil, fmt.Errorf("scenario: unknown backend %q", sc.Backend)
	}
	for i, st := range sc.Steps {
		a, err := st.compile()
		if err != nil {
			return nil, fmt.Errorf("scenario step %d: %w", i+1, err)
		}
		sc.actions = append(sc.actions, a...)
	}
	return &sc, nil
}

// Apply copies the scenario's settings into cfg.
func (sc *Scenario) Apply(cfg *Config) {
	if sc == nil {
		return
	}
	cfg.Scenario = sc
	if sc.Compact {
		cfg.Compact = true
	}
	if sc.Backend != "" {
		cfg.Backend = sc.Backend
	}
	if sc.TickerMs != 0 {
		cfg.TickerMs = sc.TickerMs
	}
}

var errStep = errors.New("step needs exactly one of press, command, wait")

var pressMasks = map[string]uint8{
	"left":  1,
	"right": 2,
	"both":  3,
}

type actionKind uint8

const (
	actPress actionKind = iota
	actCommand
	actWait
)

type action struct {
	kind actionKind
	mask uint8
	apdu []byte
	wait int
}

func (st Step) compile() ([]action, error) {
	set := 0
	if st.Press != "" {
		set++
	}
	if st.Command != "" {
		set++
	}
	if st.Wait > 0 {
		set++
	}
	if set != 1 {
		return nil, errStep
	}

	switch {
	case st.Press != "":
		mask, ok := pressMasks[strings.ToLower(st.Press)]
		if !ok {
			return nil, fmt.Errorf("unknown button %q", st.Press)
		}
		// A tap: the reading goes up to mask, then back to zero.
		return []action{{kind: actPress, mask: mask}, {kind: actPress}}, nil
	case st.Command != "":
		apdu, err := seproxy.ParseCommandLine(st.Command)
		if err != nil {
			return nil, err
		}
		return []action{{kind: actCommand, apdu: apdu}}, nil
	default:
		return []action{{kind: actWait, wait: st.Wait}}, nil
	}
}

// player plays actions into a proxy, at most one per tick.
type player struct {
	actions []action
	idle    int
}

func newPlayer(actions []action) *player {
	return &player{actions: actions}
}

func (p *player) advance(px *seproxy.Proxy, log hal.Logger) {
	if p.idle > 0 {
		p.idle--
		return
	}
	if len(p.actions) == 0 {
		return
	}

	a := p.actions[0]
	switch a.kind {
	case actPress:
		if !px.Press(a.mask) {
			return
		}
	case actCommand:
		if err := px.InjectCommand(a.apdu); err != nil {
			if errors.Is(err, seproxy.ErrQueueFull) {
				return
			}
			log.WriteLineString(fmt.Sprintf("app: scenario: %v", err))
		}
	case actWait:
		p.idle = a.wait
	}
	p.actions = p.actions[1:]
}
