package casement

// Container (frame) behavior. A frame is any window whose child-list head is
// live: it rebroadcasts screen events, widens invalidation to departing
// children, repaints its background before its children, and routes encoder
// and click events among its enabled children.

// FirstChild returns the head of the child list, or nil.
func (w *Window) FirstChild() *Window { return w.child }

// NumChildren counts the windows registered to this container.
func (w *Window) NumChildren() int {
	n := 0
	for c := w.child; c != nil; c = c.next {
		n++
	}
	return n
}

// HasChild reports whether win is registered directly to this container.
func (w *Window) HasChild(win *Window) bool {
	for c := w.child; c != nil; c = c.next {
		if c == win {
			return true
		}
	}
	return false
}

// firstEnabledChild returns the first enabled child, or nil.
func (w *Window) firstEnabledChild() *Window {
	for c := w.child; c != nil; c = c.next {
		if c.IsEnabled() {
			return c
		}
	}
	return nil
}

// prevEnabledChild returns the last enabled child before win. The sibling
// chain is forward-only, so this is a forward scan that remembers the most
// recent enabled window seen.
func (w *Window) prevEnabledChild(win *Window) *Window {
	var prev *Window
	for c := w.child; c != nil && c != win; c = c.next {
		if c.IsEnabled() {
			prev = c
		}
	}
	return prev
}

// FocusFirst focuses the first enabled child. Returns false when the
// container has none.
func (w *Window) FocusFirst() bool {
	c := w.firstEnabledChild()
	if c == nil {
		return false
	}
	c.SetFocus()
	return true
}

// FocusNext moves focus to the next enabled child after the current focus
// holder. When nothing inside this container is focused, the first enabled
// child takes focus. Returns false when no candidate exists.
func (w *Window) FocusNext() bool {
	cur := w.gui.focused
	if cur == nil || cur.parent != w {
		return w.FocusFirst()
	}
	next := cur.NextEnabled()
	if next == nil {
		return false
	}
	next.SetFocus()
	return true
}

// FocusPrev moves focus to the nearest enabled child before the current
// focus holder. Counterpart of FocusNext.
func (w *Window) FocusPrev() bool {
	cur := w.gui.focused
	if cur == nil || cur.parent != w {
		return w.FocusFirst()
	}
	prev := w.prevEnabledChild(cur)
	if prev == nil {
		return false
	}
	prev.SetFocus()
	return true
}

// containerEvent is the default event behavior for containers: encoder
// steps walk the focus across enabled children, and a click routed to the
// container is handed to the focused descendant. Returns true when the
// event was consumed.
func (w *Window) containerEvent(sender *Window, ev Event, param int) bool {
	switch ev {
	case EventEncUp:
		moved := false
		for i := 0; i < param; i++ {
			if !w.FocusNext() {
				break
			}
			moved = true
		}
		return moved
	case EventEncDown:
		moved := false
		for i := 0; i < param; i++ {
			if !w.FocusPrev() {
				break
			}
			moved = true
		}
		return moved
	case EventClick:
		// Route the click to the focused direct child. Events the child
		// itself forwarded back up are not re-routed.
		f := w.gui.focused
		if f != nil && f != sender && f.parent == w {
			f.WindowEvent(sender, EventClick, param)
			return true
		}
	}
	return false
}

// drawContainer repaints the container background when invalid, then draws
// every child. Repainting the background wipes child content, so visible
// children are re-invalidated first.
func (w *Window) drawContainer() {
	if !w.IsVisible() {
		return
	}
	repainted := false
	if w.flags.invalid && !w.rect.IsEmpty() {
		w.unconditionalDraw()
		w.flags.invalid = false
		repainted = true
	}
	for c := w.child; c != nil; c = c.next {
		if repainted && c.IsVisible() {
			c.Invalidate(Rect{})
		}
		c.Draw()
	}
}
