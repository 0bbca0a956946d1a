package casement

// Event identifies a kind of window or input event. Structural events
// (focus changes, clicks) and raw input events share the one enum; both
// travel exclusively through Window.WindowEvent and Window.ScreenEvent.
type Event uint8

const (
	EventFocusLost   Event = iota // previous focus holder is losing focus
	EventFocusGained              // window just received focus
	EventClick                    // knob click routed to the capture target
	EventEncUp                    // encoder turned clockwise; param = delta
	EventEncDown                  // encoder turned counter-clockwise; param = |delta|
	EventEncChange                // encoder moved; broadcast with the raw delta
	EventBtnDown                  // knob pressed; broadcast
	EventBtnUp                    // knob released; broadcast
	EventHold                     // knob held; delivered to the capture target only
)

// String returns the event name for debug traces.
func (e Event) String() string {
	switch e {
	case EventFocusLost:
		return "FocusLost"
	case EventFocusGained:
		return "FocusGained"
	case EventClick:
		return "Click"
	case EventEncUp:
		return "EncUp"
	case EventEncDown:
		return "EncDown"
	case EventEncChange:
		return "EncChange"
	case EventBtnDown:
		return "BtnDown"
	case EventBtnUp:
		return "BtnUp"
	case EventHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// BtnState is the sampled state of the physical knob button.
type BtnState uint8

const (
	BtnPressed  BtnState = iota // button went down
	BtnReleased                 // button came up
	BtnHeld                     // button crossed the hold threshold while down
)

// Sound identifies a feedback sound played through the Sounder collaborator.
type Sound uint8

const (
	SoundButtonEcho Sound = iota // short confirmation on knob release
	SoundPrompt                  // attention prompt for dialogs
	SoundAlert                   // error or warning
)
