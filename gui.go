package casement

// Display is the only drawing primitive the core needs. Concrete widgets
// draw through richer backends; the core itself just fills backgrounds.
type Display interface {
	FillRect(r Rect, c Color)
}

// Sounder plays feedback sounds. Fire-and-forget.
type Sounder interface {
	Play(s Sound)
}

// MotionNotifier tells the motion controller about physical input, so it
// can wake from idle states. Fire-and-forget.
type MotionNotifier interface {
	NotifyEncoderMove()
	NotifyKnobClick()
}

// Config carries the collaborators a GUI is wired to. Any field may be nil;
// the corresponding notifications are then skipped.
type Config struct {
	Display Display
	Sound   Sounder
	Motion  MotionNotifier
	Debug   bool
}

// GUI is the single-task context that the original design kept in global
// singletons: the focused window, the screen stack, the redraw request
// flag, and the input latches. All window tree mutation and event dispatch
// happen on the one goroutine that drives Update and Draw; nothing here is
// safe for concurrent use.
type GUI struct {
	display Display
	sound   Sounder
	motion  MotionNotifier

	screens Screens
	focused *Window
	redraw  bool

	// suppressClick is set by a Held gesture so the following release does
	// not also fire a click.
	suppressClick bool

	slides []*Window
	script *Script

	themeCh    chan *Theme
	themeApply func(*Theme)
	watchStop  func()

	debug bool
}

// New creates a GUI context wired to the given collaborators.
func New(cfg Config) *GUI {
	g := &GUI{
		display: cfg.Display,
		sound:   cfg.Sound,
		motion:  cfg.Motion,
	}
	g.screens.gui = g
	g.screens.ResetTimeout()
	g.SetDebugMode(cfg.Debug)
	return g
}

// Screens returns the screen stack manager.
func (g *GUI) Screens() *Screens { return &g.screens }

// FocusedWindow returns the window holding focus, or nil.
func (g *GUI) FocusedWindow() *Window { return g.focused }

// ResetFocus clears the focus pointer without notifying anyone.
func (g *GUI) ResetFocus() { g.focused = nil }

// CapturedWindow derives the window that currently owns physical input: the
// active screen, provided its visible flag is set. Capture is never stored.
// Dialogs do not claim capture by virtue of being dialogs, and a popup can
// hide a window without stealing its input routing; only the visible flag
// matters here.
func (g *GUI) CapturedWindow() *Window {
	scr := g.screens.Current()
	if scr == nil || !scr.HasVisibleFlag() {
		return nil
	}
	return scr
}

// RequestRedraw flags that at least one window needs repainting. Draw
// clears the flag.
func (g *GUI) RequestRedraw() { g.redraw = true }

// RedrawNeeded reports whether a redraw pass is pending.
func (g *GUI) RedrawNeeded() bool { return g.redraw }

// Draw repaints the active screen tree through the Display and clears the
// redraw request. Windows that are still valid skip themselves.
func (g *GUI) Draw() {
	if scr := g.screens.Current(); scr != nil {
		scr.Draw()
	}
	// Cleared after the walk: container repaints re-invalidate their
	// children mid-pass, and those children are drawn in the same pass.
	g.redraw = false
}

// Update advances one tick of GUI-side time: scripted input, window slide
// animations, pending theme reloads, and the inactivity sweep. dt is the
// tick duration in seconds.
func (g *GUI) Update(dt float64) {
	if g.script != nil {
		g.script.step(g)
	}
	g.updateSlides(float32(dt))
	g.drainThemeReloads()
	g.screens.sweepTimeout()
}

// SetScript attaches a scripted input sequence, replayed one step per
// Update call. Pass nil to detach.
func (g *GUI) SetScript(s *Script) { g.script = s }

// SetDebugMode toggles debug tracing and tree sanity checks.
func (g *GUI) SetDebugMode(enabled bool) {
	g.debug = enabled
	globalDebug = enabled
}
