package app

import (
	"fmt"

	"nanoux/internal/buildinfo"
	"nanoux/ux/bitmaps"
	"nanoux/ux/seph"
	"nanoux/ux/seproxy"
	"nanoux/ux/ui"
)

// Texts are the user-visible strings a scenario may replace.
type Texts struct {
	Ready   string   `yaml:"ready"`
	Message string   `yaml:"message"`
	Review  []string `yaml:"review"`
	Approve string   `yaml:"approve"`
}

func DefaultTexts() Texts {
	return Texts{
		Ready:   "Nano UX ready",
		Message: "Two buttons drive every screen: left and right move, both together select.",
		Review:  []string{"Send 0.25", "to nano1qx8", "fee 0.001"},
		Approve: "Approve command?",
	}
}

// Or fills the empty fields of t from def.
func (t Texts) Or(def Texts) Texts {
	if t.Ready == "" {
		t.Ready = def.Ready
	}
	if t.Message == "" {
		t.Message = def.Message
	}
	if len(t.Review) == 0 {
		t.Review = def.Review
	}
	if t.Approve == "" {
		t.Approve = def.Approve
	}
	return t
}

// Dashboard pages, in order.
const (
	pageReady = iota
	pageVersion
	pageMessage
	pageReview
	pageSettings
	pageQuit
)

func (s *system) pages() []ui.Page {
	return []ui.Page{
		pageReady:    ui.NewPictureBoldPage(s.texts.Ready, bitmaps.IDLogo),
		pageVersion:  ui.NewTextPage([2]string{"Version", buildinfo.Short()}, true),
		pageMessage:  ui.NewTextPage([2]string{"Show", "message"}, false),
		pageReview:   ui.NewPictureNormalPage([2]string{"Review", "transaction"}, bitmaps.IDCheck),
		pageSettings: ui.NewTextPage([2]string{"Settings", ""}, false),
		pageQuit:     ui.NewPictureNormalPage([2]string{"Quit", ""}, bitmaps.IDBack),
	}
}

func (s *system) dashboard() {
	menu := ui.NewMultiPageMenu(s.pages())
	for {
		r := menu.Show(s.dev)
		if r.FromHost {
			s.command(&r.Command)
			continue
		}

		switch r.Index {
		case pageMessage:
			ui.NewMessageScroller(s.texts.Message).EventLoop(s.dev)
		case pageReview:
			ok := ui.NewMessageValidator(s.texts.Review, []string{"Approve"}, []string{"Reject"}).Ask(s.dev)
			s.log.WriteLineString(fmt.Sprintf("app: review approved=%t", ok))
			if ok {
				ui.Popup(s.dev, "Approved")
			} else {
				ui.Popup(s.dev, "Rejected")
			}
		case pageSettings:
			s.settings()
		case pageQuit:
			s.dev.ClearScreen()
			return
		}
	}
}

var settingsItems = []string{"Display", "Ticker", "Help", "Back"}

func (s *system) settings() {
	switch item := settingsItems[ui.NewMenu(settingsItems).Show(s.dev)]; item {
	case "Help":
		ui.NewHScroller([]ui.Page{
			ui.NewTextPage([2]string{"Left/Right", "move"}, true),
			ui.NewTextPage([2]string{"Both", "select"}, true),
			ui.NewTextPage([2]string{"Host", "commands wait"}, true),
		}).EventLoop(s.dev)
	case "Back":
	default:
		if ui.NewValidator("Reset " + item + "?").Ask(s.dev) {
			s.log.WriteLineString("app: reset " + item)
			ui.Popup(s.dev, item+" reset")
		}
	}
}

// Command instructions understood by the dashboard. An APDU is
// CLA INS P1 P2 [Lc data].
const (
	insVersion = 0x01
	insApprove = 0x02
)

var (
	swOK          = []byte{0x90, 0x00}
	swDenied      = []byte{0x69, 0x85}
	swWrongLength = []byte{0x67, 0x00}
	swUnknownIns  = []byte{0x6D, 0x00}
)

func (s *system) command(f *seph.Frame) {
	apdu := f.Payload()
	if len(apdu) < 4 {
		s.respond(swWrongLength)
		return
	}

	switch ins := apdu[1]; ins {
	case insVersion:
		s.respond(append([]byte(buildinfo.Short()), swOK...))
	case insApprove:
		ok := ui.NewValidator(s.texts.Approve).Ask(s.dev)
		s.log.WriteLineString(fmt.Sprintf("app: command approved=%t", ok))
		if ok {
			s.respond(swOK)
		} else {
			s.respond(swDenied)
		}
	default:
		s.log.WriteLineString(fmt.Sprintf("app: unknown instruction %02X", ins))
		s.respond(swUnknownIns)
	}
}

func (s *system) respond(resp []byte) {
	ser := s.h.Serial()
	if ser == nil {
		return
	}
	if err := seproxy.WriteResponse(ser, resp); err != nil {
		s.log.WriteLineString(fmt.Sprintf("app: respond: %v", err))
	}
}
