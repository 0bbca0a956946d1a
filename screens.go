package casement

import "time"

// Screens owns the stack of top-level screens. The top of the stack is the
// active screen: the root of the tree that receives broadcasts and derives
// the capture target. Screens also tracks the inactivity timeout that every
// structural change and physical input resets.
type Screens struct {
	gui   *GUI
	stack []*Window

	lastActivity time.Time
	menuTimeout  time.Duration
}

// Open pushes root as the new active screen and invalidates it.
func (s *Screens) Open(root *Window) {
	s.stack = append(s.stack, root)
	root.Invalidate(Rect{})
	s.ResetTimeout()
}

// Close disposes the active screen and pops it. The screen below, if any,
// is invalidated so it repaints in full.
func (s *Screens) Close() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	top.Dispose()
	if cur := s.Current(); cur != nil {
		cur.Invalidate(Rect{})
	}
	s.ResetTimeout()
}

// CloseSerial closes every stacked screen flagged to close on serial print,
// keeping the rest of the stack in order. Strong dialogs survive.
func (s *Screens) CloseSerial() {
	kept := s.stack[:0]
	for _, scr := range s.stack {
		if scr.ClosedOnSerialPrint() && scr.Type() != WindowStrongDialog {
			scr.Dispose()
			continue
		}
		kept = append(kept, scr)
	}
	for i := len(kept); i < len(s.stack); i++ {
		s.stack[i] = nil
	}
	s.stack = kept
	if cur := s.Current(); cur != nil {
		cur.Invalidate(Rect{})
	}
	s.ResetTimeout()
}

// Current returns the active screen, or nil when the stack is empty.
func (s *Screens) Current() *Window {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of stacked screens.
func (s *Screens) Depth() int { return len(s.stack) }

// ScreenEvent broadcasts an event into the active screen tree.
func (s *Screens) ScreenEvent(sender *Window, ev Event, param int) {
	if cur := s.Current(); cur != nil {
		cur.ScreenEvent(sender, ev, param)
	}
}

// ResetTimeout restarts the inactivity clock.
func (s *Screens) ResetTimeout() { s.lastActivity = time.Now() }

// IdleFor returns the time since the last activity.
func (s *Screens) IdleFor() time.Duration { return time.Since(s.lastActivity) }

// SetMenuTimeout arms the inactivity sweep: once the GUI is idle for d, the
// active screen is closed if it opted in via SetCloseOnTimeout. Zero
// disables the sweep.
func (s *Screens) SetMenuTimeout(d time.Duration) { s.menuTimeout = d }

// sweepTimeout closes the active screen when the menu timeout elapsed.
// Called from GUI.Update.
func (s *Screens) sweepTimeout() {
	if s.menuTimeout <= 0 {
		return
	}
	cur := s.Current()
	if cur == nil || !cur.ClosedOnTimeout() {
		return
	}
	if s.IdleFor() >= s.menuTimeout {
		s.Close()
	}
}
