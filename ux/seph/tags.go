// Package seph speaks the framed protocol between the UI and the
// co-processor that owns the buttons, the host link and (on some devices)
// the display.
//
// Every frame is tag (u8) | length (u16 big-endian) | payload. The UI sends
// a status frame and then receives exactly one event in response.
package seph

// Tag identifies the frame type carried in byte 0.
type Tag uint8

const (
	// Events, received.
	TagButtonPush       Tag = 0x05
	TagDisplayProcessed Tag = 0x0D
	TagTicker           Tag = 0x0E
	TagCommandAPDU      Tag = 0x16

	// Commands, sent without waiting for an event.
	TagSetTicker Tag = 0x4E

	// Statuses, sent; each one is answered by one event.
	TagGeneralStatus Tag = 0x60
	TagDisplayStatus Tag = 0x65
)

// IsStatus reports whether sending a frame with this tag arms the
// status-pending flag.
func (t Tag) IsStatus() bool {
	return t >= 0x60 && t <= 0x6F
}

func (t Tag) String() string {
	switch t {
	case TagButtonPush:
		return "button_push"
	case TagDisplayProcessed:
		return "display_processed"
	case TagTicker:
		return "ticker"
	case TagCommandAPDU:
		return "command_apdu"
	case TagSetTicker:
		return "set_ticker"
	case TagGeneralStatus:
		return "general_status"
	case TagDisplayStatus:
		return "display_status"
	default:
		return "unknown"
	}
}
