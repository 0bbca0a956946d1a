package casement

// Window is the base node of the GUI tree. A single flat struct covers every
// window kind: a type tag plus optional callback hooks replaces virtual
// dispatch, and container windows (frames) additionally link a child list.
//
// Geometry is stored in the parent's coordinate space. Parent, sibling, and
// child links are non-owning: whoever constructs a window decides where it
// lives and when it is disposed; the tree only records traversal order.
// The sibling chain is forward-only.
type Window struct {
	gui    *GUI
	parent *Window
	next   *Window
	child  *Window // head of the child list; used by container windows only

	rect      Rect
	typ       WindowType
	container bool
	flags     windowFlags

	backColor Color
	scheme    *ColorScheme

	slide    *slideAnim
	disposed bool

	// OnEvent, when set, sees every event delivered to this window before
	// the default behavior. Return true to consume the event.
	OnEvent func(w *Window, sender *Window, ev Event, param int) bool

	// OnDraw, when set, replaces the default background fill.
	OnDraw func(w *Window, d Display)

	// OnChildVisibilityChanged fires on a container when a direct child's
	// visible flag toggles.
	OnChildVisibilityChanged func(w, child *Window)
}

// newWindow builds a window with the shared defaults and registers it into
// the parent. A fresh window is visible and invalid. It starts disabled
// unless it closes on click; call Enable to make it focusable. Registration
// failure (child rect does not fit) leaves the window parentless; callers
// that need the verdict use RegisterSubWin directly.
func newWindow(g *GUI, parent *Window, rect Rect, typ WindowType, closeOnClick bool) *Window {
	w := &Window{
		gui:       g,
		rect:      rect,
		typ:       typ,
		backColor: ColorBack,
	}
	w.flags.closeOnClick = closeOnClick
	w.flags.enabled = closeOnClick
	// Do not go through Show here: there is no parent to notify yet.
	w.flags.visible = true
	w.flags.invalid = true
	g.RequestRedraw()
	if parent != nil {
		parent.RegisterSubWin(w)
	}
	return w
}

// NewWindow creates a plain leaf window.
func NewWindow(g *GUI, parent *Window, rect Rect) *Window {
	return newWindow(g, parent, rect, WindowNormal, false)
}

// NewFrame creates a container window that owns a child list.
func NewFrame(g *GUI, parent *Window, rect Rect) *Window {
	w := newWindow(g, parent, rect, WindowNormal, false)
	w.container = true
	return w
}

// NewDialog creates a modal dialog container.
func NewDialog(g *GUI, parent *Window, rect Rect, closeOnClick bool) *Window {
	w := newWindow(g, parent, rect, WindowDialog, closeOnClick)
	w.container = true
	return w
}

// NewStrongDialog creates a modal dialog that survives timeout and serial
// close sweeps.
func NewStrongDialog(g *GUI, parent *Window, rect Rect) *Window {
	w := newWindow(g, parent, rect, WindowStrongDialog, false)
	w.container = true
	return w
}

// NewPopup creates a transient overlay container. Popups can hide windows
// behind them but never claim input capture.
func NewPopup(g *GUI, parent *Window, rect Rect) *Window {
	w := newWindow(g, parent, rect, WindowPopup, false)
	w.container = true
	return w
}

// --- State queries ---

// IsVisible reports whether the window is visible and not hidden behind a
// modal dialog.
func (w *Window) IsVisible() bool {
	return w.flags.visible && !w.flags.hiddenBehindDialog
}

// HasVisibleFlag reports the raw visible flag, ignoring dialog occlusion.
func (w *Window) HasVisibleFlag() bool { return w.flags.visible }

// IsHiddenBehindDialog reports whether a modal overlay is occluding the window.
func (w *Window) IsHiddenBehindDialog() bool { return w.flags.hiddenBehindDialog }

// IsEnabled reports whether the window may take focus and receive interaction.
func (w *Window) IsEnabled() bool { return w.flags.enabled }

// IsInvalid reports whether the window needs redrawing.
func (w *Window) IsInvalid() bool { return w.flags.invalid }

// IsFocused reports whether this window holds the GUI-wide focus.
func (w *Window) IsFocused() bool { return w.gui.focused == w }

// HasTimer reports whether a GUI timer is attached to this window.
func (w *Window) HasTimer() bool { return w.flags.hasTimer }

// Type returns the window's fixed type tag.
func (w *Window) Type() WindowType { return w.typ }

// IsDialog reports whether the window is a dialog of either strength.
func (w *Window) IsDialog() bool {
	return w.typ == WindowDialog || w.typ == WindowStrongDialog
}

// IsContainer reports whether the window owns a child list.
func (w *Window) IsContainer() bool { return w.container }

// ClosedOnTimeout reports whether the inactivity sweep may close this screen.
func (w *Window) ClosedOnTimeout() bool { return w.flags.timeoutClose }

// ClosedOnSerialPrint reports whether a serial print closes this screen.
func (w *Window) ClosedOnSerialPrint() bool { return w.flags.serialClose }

// HasEnforcedCapture reports whether the window captures input even while
// not visible.
func (w *Window) HasEnforcedCapture() bool { return w.flags.enforceCapture }

// IsCapturable reports whether the window is eligible to receive routed
// physical input.
func (w *Window) IsCapturable() bool { return w.IsVisible() || w.flags.enforceCapture }

// IsCaptured reports whether this window is the current capture target.
func (w *Window) IsCaptured() bool { return w.gui.CapturedWindow() == w }

// IsShadowed reports whether the window draws with the disabled look.
func (w *Window) IsShadowed() bool { return w.flags.shadow }

// IsDisposed reports whether Dispose has run on this window.
func (w *Window) IsDisposed() bool { return w.disposed }

// --- Flag setters ---

// Enable makes the window eligible for focus.
func (w *Window) Enable() { w.flags.enabled = true }

// Disable removes the window from focus eligibility.
func (w *Window) Disable() { w.flags.enabled = false }

// SetHasTimer marks a GUI timer as attached.
func (w *Window) SetHasTimer() { w.flags.hasTimer = true }

// ClrHasTimer clears the timer mark.
func (w *Window) ClrHasTimer() { w.flags.hasTimer = false }

// SetEnforceCapture keeps the window capturable while hidden.
func (w *Window) SetEnforceCapture() { w.flags.enforceCapture = true }

// ClrEnforceCapture reverts SetEnforceCapture.
func (w *Window) ClrEnforceCapture() { w.flags.enforceCapture = false }

// SetCloseOnTimeout lets the inactivity sweep close this screen.
func (w *Window) SetCloseOnTimeout() { w.flags.timeoutClose = true }

// SetCloseOnSerialPrint lets a serial print close this screen.
func (w *Window) SetCloseOnSerialPrint() { w.flags.serialClose = true }

// SetRelativeSubwins makes this window's origin the reference frame for its
// children's rectangles. Propagated to children at registration time.
func (w *Window) SetRelativeSubwins() { w.flags.relativeSubwins = true }

// HasRelativeSubwins reports whether children use this window's origin as
// their coordinate frame.
func (w *Window) HasRelativeSubwins() bool { return w.flags.relativeSubwins }

// --- Visibility ---

// Show sets the visible flag. Idempotent; invalidates and notifies the
// parent only on an actual change. Skips invalidation while hidden behind a
// dialog, which would flicker.
func (w *Window) Show() {
	if w.flags.visible {
		return
	}
	w.flags.visible = true
	if !w.flags.hiddenBehindDialog {
		w.Invalidate(Rect{})
	}
	w.notifyVisibilityChange()
}

// Hide clears the visible flag. Idempotent, same notification rules as Show.
func (w *Window) Hide() {
	if !w.flags.visible {
		return
	}
	w.flags.visible = false
	if !w.flags.hiddenBehindDialog {
		w.Invalidate(Rect{})
	}
	w.notifyVisibilityChange()
}

func (w *Window) notifyVisibilityChange() {
	p := w.parent
	if p != nil && p.OnChildVisibilityChanged != nil {
		p.OnChildVisibilityChanged(p, w)
	}
}

// ShowAfterDialog clears the dialog-occlusion flag. Always invalidates:
// the window content under the departed dialog is stale.
func (w *Window) ShowAfterDialog() {
	if !w.flags.hiddenBehindDialog {
		return
	}
	w.flags.hiddenBehindDialog = false
	w.Invalidate(Rect{})
}

// HideBehindDialog sets the dialog-occlusion flag. Always invalidates; only
// part of the window may end up behind the dialog, so validating instead
// would be unsafe with stacked dialogs.
func (w *Window) HideBehindDialog() {
	if w.flags.hiddenBehindDialog {
		return
	}
	w.flags.hiddenBehindDialog = true
	w.Invalidate(Rect{})
}

// Shadow switches the window to the disabled look. Invalidates on change.
func (w *Window) Shadow() {
	if w.flags.shadow {
		return
	}
	w.flags.shadow = true
	w.Invalidate(Rect{})
}

// Unshadow reverts Shadow. Invalidates on change.
func (w *Window) Unshadow() {
	if !w.flags.shadow {
		return
	}
	w.flags.shadow = false
	w.Invalidate(Rect{})
}

// --- Dirty tracking ---

// Validate clears the needs-redraw flag when region is empty (meaning the
// whole window) or intersects the window's rectangle. Containers propagate
// the same test to every child.
func (w *Window) Validate(region Rect) {
	if region.IsEmpty() || w.rect.HasIntersection(region) {
		w.flags.invalid = false
		w.validate(region)
	}
}

// Invalidate marks the window as needing redraw under the same region test
// as Validate and requests a global redraw pass.
func (w *Window) Invalidate(region Rect) {
	if region.IsEmpty() || w.rect.HasIntersection(region) {
		w.invalidate(region)
		w.gui.RequestRedraw()
	}
}

func (w *Window) invalidate(region Rect) {
	w.flags.invalid = true
	if w.container {
		for c := w.child; c != nil; c = c.next {
			c.Invalidate(region)
		}
	}
}

func (w *Window) validate(region Rect) {
	if w.container {
		for c := w.child; c != nil; c = c.next {
			c.Validate(region)
		}
	}
}

// --- Background color ---

// BackColor resolves the background: through the shared scheme (keyed by
// focus and shadow state) when one is set, otherwise the literal color.
func (w *Window) BackColor() Color {
	if w.flags.schemeBackground && w.scheme != nil {
		return w.scheme.Get(w.IsFocused(), w.IsShadowed())
	}
	return w.backColor
}

// SetBackColor stores a literal background color and drops any scheme.
func (w *Window) SetBackColor(c Color) {
	w.backColor = c
	w.flags.schemeBackground = false
	w.Invalidate(Rect{})
}

// SetBackScheme points the background at a shared color scheme.
func (w *Window) SetBackScheme(s *ColorScheme) {
	w.scheme = s
	w.flags.schemeBackground = true
	w.Invalidate(Rect{})
}

// --- Focus ---

// SetFocus moves the GUI-wide focus to this window. No-op when the window
// is not visible, not enabled, or already focused. The previous holder is
// invalidated and told EventFocusLost; this window is invalidated and told
// EventFocusGained. Neither notification is forwarded to ancestors.
func (w *Window) SetFocus() {
	if !w.IsVisible() || !w.flags.enabled {
		return
	}
	if w.gui.focused == w {
		return
	}
	if prev := w.gui.focused; prev != nil {
		prev.Invalidate(Rect{})
		prev.WindowEvent(prev, EventFocusLost, 0)
	}
	w.gui.focused = w
	w.Invalidate(Rect{})
	w.WindowEvent(w, EventFocusGained, 0)
	w.gui.RequestRedraw()
}

// --- Geometry ---

// Rect returns the window rectangle, passed through the parent's coordinate
// transform. Each level applies only its immediate parent's transform; the
// parent's own Rect already incorporates the levels above it.
func (w *Window) Rect() Rect {
	if w.parent != nil {
		return w.parent.TransformRect(w.rect)
	}
	return w.rect
}

// RawRect returns the stored rectangle with no transformation.
func (w *Window) RawRect() Rect { return w.rect }

// SetRect stores rc after passing it through the parent's transform.
func (w *Window) SetRect(rc Rect) {
	if w.parent != nil {
		w.rect = w.parent.TransformRect(rc)
		return
	}
	w.rect = rc
}

// SetRawRect stores rc directly, bypassing the transform chain.
func (w *Window) SetRawRect(rc Rect) { w.rect = rc }

// TransformRect maps rc through this window's coordinate system: windows
// with relative subwindows shift rc into their absolute frame, all others
// clip rc to their own rectangle. Transforms and clipping compose through
// the tree this way.
func (w *Window) TransformRect(rc Rect) Rect {
	this := w.Rect()
	if w.flags.relativeSubwins {
		return rc.Transform(this)
	}
	return rc.Intersection(this)
}

// RepositionTop moves the window's top edge to y, keeping its size.
func (w *Window) RepositionTop(y int) { w.rect = w.rect.WithTop(y) }

// RepositionLeft moves the window's left edge to x, keeping its size.
func (w *Window) RepositionLeft(x int) { w.rect = w.rect.WithLeft(x) }

// ResizeWidth sets the window's width, keeping its origin.
func (w *Window) ResizeWidth(width int) { w.rect = w.rect.WithWidth(width) }

// ResizeHeight sets the window's height, keeping its origin.
func (w *Window) ResizeHeight(height int) { w.rect = w.rect.WithHeight(height) }

// ShiftNextTo slides the window by its own extent along the direction.
func (w *Window) ShiftNextTo(dir ShiftDir) {
	w.Shift(dir, w.rect.CalculateShift(dir))
}

// Shift moves the window by an explicit distance and invalidates it.
func (w *Window) Shift(dir ShiftDir, distance int) {
	w.rect = w.rect.ShiftedBy(dir, distance)
	w.Invalidate(Rect{})
}

// --- Tree links ---

// Parent returns the window's parent, or nil for a root.
func (w *Window) Parent() *Window { return w.parent }

// Next returns the next sibling in the parent's child list.
func (w *Window) Next() *Window { return w.next }

// NextEnabled returns the nearest following sibling that is enabled.
func (w *Window) NextEnabled() *Window {
	for c := w.next; c != nil; c = c.next {
		if c.IsEnabled() {
			return c
		}
	}
	return nil
}

// IsChildOf reports whether win is an ancestor of this window.
func (w *Window) IsChildOf(win *Window) bool {
	for p := w.parent; p != nil; p = p.parent {
		if p == win {
			return true
		}
	}
	return false
}

// --- Registration ---

// RegisterSubWin attaches win as a child. Fails (returns false) when win's
// rectangle does not fit inside this window's rectangle, when this window
// is not a container, or when win is already registered elsewhere. A
// parent with relative subwindows propagates that mode to the child. Any
// structural change resets the inactivity timeout.
func (w *Window) RegisterSubWin(win *Window) bool {
	if globalDebug {
		debugCheckDisposed(w, "RegisterSubWin (parent)")
		debugCheckDisposed(win, "RegisterSubWin (child)")
	}
	this := w.Rect()
	child := win.Rect()
	if w.flags.relativeSubwins {
		// The child's rect is parent-relative; judge the fit where it
		// will actually land.
		child.X += this.X
		child.Y += this.Y
	}
	if !this.Contains(child) {
		return false
	}
	if w.flags.relativeSubwins {
		win.SetRelativeSubwins()
	}
	w.gui.screens.ResetTimeout()
	ok := w.registerSubWin(win)
	if globalDebug && ok {
		debugCheckTreeDepth(win)
	}
	return ok
}

// UnregisterSubWin detaches win. No-op when win's parent is not this window
// (double unregister is absorbed). The invalidation region widens to the
// departing child's rectangle before unlinking.
func (w *Window) UnregisterSubWin(win *Window) {
	if win.parent != w {
		return
	}
	w.addInvalidationRect(win.Rect())
	w.unregisterSubWin(win)
	w.gui.screens.ResetTimeout()
}

// registerSubWin splices win onto the tail of the child list. Plain windows
// have no children, so the base case fails.
func (w *Window) registerSubWin(win *Window) bool {
	if !w.container || win.parent != nil {
		return false
	}
	win.parent = w
	win.next = nil
	if w.child == nil {
		w.child = win
		return true
	}
	last := w.child
	for last.next != nil {
		last = last.next
	}
	last.next = win
	return true
}

// unregisterSubWin splices win out of the child list.
func (w *Window) unregisterSubWin(win *Window) {
	if !w.container {
		return
	}
	if w.child == win {
		w.child = win.next
	} else {
		for c := w.child; c != nil; c = c.next {
			if c.next == win {
				c.next = win.next
				break
			}
		}
	}
	win.next = nil
	win.parent = nil
}

// addInvalidationRect records a region that needs repainting after a child
// departs. Plain windows cannot store a region, so the whole window goes
// invalid; containers run the region through the normal test.
func (w *Window) addInvalidationRect(rc Rect) {
	if w.container {
		w.Invalidate(rc)
		return
	}
	if !w.rect.IsEmpty() {
		w.Invalidate(Rect{})
	}
}

// --- Drawing ---

// Draw repaints the window if it is invalid. An invisible-but-invalid
// window is still marked valid so it is not revisited every pass.
func (w *Window) Draw() {
	if w.container {
		w.drawContainer()
		return
	}
	if w.flags.invalid && !w.rect.IsEmpty() {
		if w.IsVisible() {
			w.unconditionalDraw()
		}
		w.Validate(Rect{})
	}
}

// unconditionalDraw paints the window regardless of dirty state: the OnDraw
// hook when set, otherwise a background fill.
func (w *Window) unconditionalDraw() {
	if w.OnDraw != nil {
		w.OnDraw(w, w.gui.display)
		return
	}
	if w.gui.display != nil {
		w.gui.display.FillRect(w.Rect(), w.BackColor())
	}
}

// --- Event funnel ---

// WindowEvent is one of the two public entry points for all event delivery.
// Every window-to-window notification goes through here, which keeps the
// debug trace complete.
func (w *Window) WindowEvent(sender *Window, ev Event, param int) {
	debugTraceEvent("WindowEvent", w, sender, ev, param)
	w.windowEvent(sender, ev, param)
}

// ScreenEvent is the broadcast entry point: containers rebroadcast to every
// child, plain windows forward to their own WindowEvent.
func (w *Window) ScreenEvent(sender *Window, ev Event, param int) {
	debugTraceEvent("ScreenEvent", w, sender, ev, param)
	w.screenEvent(sender, ev, param)
}

func (w *Window) screenEvent(sender *Window, ev Event, param int) {
	if w.container {
		for c := w.child; c != nil; c = c.next {
			c.ScreenEvent(sender, ev, param)
		}
		return
	}
	w.WindowEvent(sender, ev, param)
}

func (w *Window) windowEvent(sender *Window, ev Event, param int) {
	if w.OnEvent != nil && w.OnEvent(w, sender, ev, param) {
		return
	}
	if w.container && w.containerEvent(sender, ev, param) {
		return
	}
	if ev == EventClick && w.parent != nil {
		if w.flags.closeOnClick {
			w.gui.screens.Close()
		} else {
			w.parent.WindowEvent(w, ev, param)
		}
	}
}

// --- Disposal ---

// Dispose tears the window down: descendants are disposed first, the
// GUI-wide focus is cleared if this window held it, the window deregisters
// from its parent, and the inactivity timeout resets. Safe to call twice.
func (w *Window) Dispose() {
	if w.disposed {
		return
	}
	for c := w.child; c != nil; {
		next := c.next
		c.parent = nil // skip the unregister walk; the whole subtree goes
		c.next = nil
		c.Dispose()
		c = next
	}
	w.child = nil
	if w.gui.focused == w {
		w.gui.focused = nil
	}
	w.gui.removeSlide(w)
	if w.parent != nil {
		w.parent.UnregisterSubWin(w)
	}
	w.gui.screens.ResetTimeout()
	w.disposed = true
}
