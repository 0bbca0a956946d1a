package casement

import "testing"

// --- Recording collaborators ---

type fillCall struct {
	rect  Rect
	color Color
}

type fakeDisplay struct {
	fills []fillCall
}

func (d *fakeDisplay) FillRect(r Rect, c Color) {
	d.fills = append(d.fills, fillCall{rect: r, color: c})
}

type fakeSounder struct {
	played []Sound
}

func (s *fakeSounder) Play(snd Sound) {
	s.played = append(s.played, snd)
}

type fakeMotion struct {
	encoderMoves int
	knobClicks   int
}

func (m *fakeMotion) NotifyEncoderMove() { m.encoderMoves++ }
func (m *fakeMotion) NotifyKnobClick()   { m.knobClicks++ }

// --- Test GUI construction ---

type testRig struct {
	gui     *GUI
	display *fakeDisplay
	sound   *fakeSounder
	motion  *fakeMotion
}

func newTestGUI(t *testing.T) *testRig {
	t.Helper()
	rig := &testRig{
		display: &fakeDisplay{},
		sound:   &fakeSounder{},
		motion:  &fakeMotion{},
	}
	rig.gui = New(Config{
		Display: rig.display,
		Sound:   rig.sound,
		Motion:  rig.motion,
	})
	return rig
}

// openScreen builds a root frame covering the full 320x240 panel and pushes
// it as the active screen.
func (rig *testRig) openScreen(t *testing.T) *Window {
	t.Helper()
	root := NewFrame(rig.gui, nil, Rect{X: 0, Y: 0, Width: 320, Height: 240})
	rig.gui.Screens().Open(root)
	return root
}

// --- Event recording ---

type eventRecord struct {
	sender *Window
	event  Event
	param  int
}

// recordEvents attaches an OnEvent hook that logs deliveries without
// consuming them.
func recordEvents(w *Window, log *[]eventRecord) {
	w.OnEvent = func(_, sender *Window, ev Event, param int) bool {
		*log = append(*log, eventRecord{sender: sender, event: ev, param: param})
		return false
	}
}

// countEvents returns how many records match the given event.
func countEvents(log []eventRecord, ev Event) int {
	n := 0
	for _, r := range log {
		if r.event == ev {
			n++
		}
	}
	return n
}
