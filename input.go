package casement

// Physical input enters the GUI through exactly two operations: EncoderEvent
// for rotary deltas and KnobEvent for button transitions. Both run on the
// GUI task; they are sampling injection points, not thread-safe mailboxes.

// EncoderEvent handles a rotary encoder delta. A zero delta is a complete
// no-op. Otherwise the motion controller is notified, EventEncChange is
// broadcast into the active screen tree (sender nil, param the raw delta),
// and the capture target, if any, receives EventEncUp with the delta or
// EventEncDown with its magnitude. Any non-trivial delta resets the
// inactivity timeout. Returns true when the delta was consumed.
func (g *GUI) EncoderEvent(diff int) bool {
	if diff == 0 {
		return false
	}
	if g.motion != nil {
		g.motion.NotifyEncoderMove()
	}
	capture := g.CapturedWindow()
	g.screens.ScreenEvent(nil, EventEncChange, diff)
	if capture != nil {
		if diff > 0 {
			capture.WindowEvent(capture, EventEncUp, diff)
		} else {
			capture.WindowEvent(capture, EventEncDown, -diff)
		}
	}
	g.screens.ResetTimeout()
	return true
}

// KnobEvent handles a knob button transition.
//
// Pressed broadcasts EventBtnDown. Released plays the confirmation echo,
// broadcasts EventBtnUp, and delivers EventClick to the capture target
// unless a preceding Held consumed the gesture; the suppress latch always
// clears on release. Held sets the latch and delivers EventHold directly to
// the capture target, bypassing the broadcast. The latch is what keeps a
// long press from also firing a click.
func (g *GUI) KnobEvent(state BtnState) bool {
	if g.motion != nil {
		g.motion.NotifyKnobClick()
	}
	capture := g.CapturedWindow()

	switch state {
	case BtnPressed:
		g.screens.ScreenEvent(nil, EventBtnDown, 0)
	case BtnReleased:
		if g.sound != nil {
			g.sound.Play(SoundButtonEcho)
		}
		g.screens.ScreenEvent(nil, EventBtnUp, 0)
		if !g.suppressClick && capture != nil {
			capture.WindowEvent(capture, EventClick, 0)
		}
		g.suppressClick = false
	case BtnHeld:
		g.suppressClick = true
		if capture != nil {
			capture.WindowEvent(capture, EventHold, 0)
		}
	}

	g.screens.ResetTimeout()
	return true
}
