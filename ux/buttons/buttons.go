// Package buttons classifies raw two-button readings into discrete
// press/release events.
//
// Only full releases are observable: releasing one of two held buttons
// produces nothing until the other one is released too.
package buttons

// Mask is a 2-bit button reading: bit0 = left held, bit1 = right held.
type Mask uint8

const (
	Left  Mask = 1 << 0
	Right Mask = 1 << 1
	Both       = Left | Right
)

// Event is one discrete interaction derived from a reading change.
type Event uint8

const (
	None Event = iota
	LeftPress
	RightPress
	BothPress
	LeftRelease
	RightRelease
	BothRelease
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case LeftPress:
		return "left_press"
	case RightPress:
		return "right_press"
	case BothPress:
		return "both_press"
	case LeftRelease:
		return "left_release"
	case RightRelease:
		return "right_release"
	case BothRelease:
		return "both_release"
	default:
		return "unknown"
	}
}

// IsRelease reports whether e ends a press cycle.
func (e Event) IsRelease() bool {
	return e == LeftRelease || e == RightRelease || e == BothRelease
}

// Step feeds one reading into the accumulated state and returns the event
// it produces, if any.
//
// The state ORs in every bit seen since the last full release and resets to
// zero exactly when the reading is zero. Press events fire on the first
// detection of a single button from idle, and BothPress fires the first time
// both buttons read as held, whatever was held before.
func Step(state *Mask, reading Mask) (Event, bool) {
	reading &= Both
	old := *state

	if reading == 0 {
		*state = 0
		switch old {
		case Left:
			return LeftRelease, true
		case Right:
			return RightRelease, true
		case Both:
			return BothRelease, true
		}
		return None, false
	}

	*state = old | reading
	switch {
	case reading == Both && old != Both:
		return BothPress, true
	case old == 0 && reading == Left:
		return LeftPress, true
	case old == 0 && reading == Right:
		return RightPress, true
	}
	return None, false
}

// State is the per-invocation button register owned by one active screen.
type State struct {
	mask Mask
}

// Step is Step applied to the state's own register.
func (s *State) Step(reading Mask) (Event, bool) {
	return Step(&s.mask, reading)
}

// Mask returns the accumulated held-state.
func (s *State) Mask() Mask { return s.mask }
