package casement

import (
	"testing"
	"time"
)

// --- Stack basics ---

func TestOpenCloseStack(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()

	if scr.Current() != nil || scr.Depth() != 0 {
		t.Fatal("fresh stack should be empty")
	}

	first := rig.openScreen(t)
	second := rig.openScreen(t)
	if scr.Current() != second || scr.Depth() != 2 {
		t.Fatal("the most recent screen is active")
	}

	// The buried screen keeps its place.
	scr.Close()
	if scr.Current() != first {
		t.Error("closing the top reveals the screen below")
	}
	if !second.IsDisposed() {
		t.Error("a closed screen is disposed")
	}
	if !first.IsInvalid() {
		t.Error("the revealed screen repaints in full")
	}

	scr.Close()
	if scr.Current() != nil {
		t.Error("closing the last screen empties the stack")
	}

	// Close on an empty stack is absorbed.
	scr.Close()
}

func TestOpenInvalidatesNewScreen(t *testing.T) {
	rig := newTestGUI(t)
	root := NewFrame(rig.gui, nil, Rect{Width: 320, Height: 240})
	root.Validate(Rect{})

	rig.gui.Screens().Open(root)
	if !root.IsInvalid() {
		t.Error("an opened screen must paint itself")
	}
}

// --- Serial close sweep ---

func TestCloseSerialSweepsOptedInScreens(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()

	base := rig.openScreen(t)

	transient := NewFrame(rig.gui, nil, Rect{Width: 320, Height: 240})
	transient.SetCloseOnSerialPrint()
	scr.Open(transient)

	strong := NewStrongDialog(rig.gui, nil, Rect{X: 40, Y: 40, Width: 240, Height: 160})
	strong.SetCloseOnSerialPrint()
	scr.Open(strong)

	keeper := NewFrame(rig.gui, nil, Rect{Width: 320, Height: 240})
	scr.Open(keeper)

	scr.CloseSerial()

	if scr.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", scr.Depth())
	}
	if !transient.IsDisposed() {
		t.Error("an opted-in screen is swept")
	}
	if strong.IsDisposed() {
		t.Error("a strong dialog survives the sweep even when opted in")
	}
	if base.IsDisposed() || keeper.IsDisposed() {
		t.Error("screens without the flag are untouched")
	}
	if scr.Current() != keeper {
		t.Error("the sweep keeps stack order")
	}
	if !keeper.IsInvalid() {
		t.Error("the active screen repaints after the sweep")
	}
}

func TestCloseSerialOnEmptyStack(t *testing.T) {
	rig := newTestGUI(t)
	rig.gui.Screens().CloseSerial()
	if rig.gui.Screens().Depth() != 0 {
		t.Error("empty stack stays empty")
	}
}

// --- Inactivity timeout ---

func TestTimeoutSweepClosesOptedInScreen(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()
	base := rig.openScreen(t)

	menu := rig.openScreen(t)
	menu.SetCloseOnTimeout()
	scr.SetMenuTimeout(30 * time.Second)

	// Recent activity: nothing happens.
	rig.gui.Update(1.0 / 60)
	if scr.Current() != menu {
		t.Fatal("an active menu stays open")
	}

	scr.lastActivity = time.Now().Add(-time.Minute)
	rig.gui.Update(1.0 / 60)
	if scr.Current() != base {
		t.Error("an idle menu times out to the screen below")
	}
	if !menu.IsDisposed() {
		t.Error("the timed-out screen is disposed")
	}
}

func TestTimeoutSweepSkipsUnflaggedScreens(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()
	home := rig.openScreen(t)
	scr.SetMenuTimeout(30 * time.Second)

	scr.lastActivity = time.Now().Add(-time.Hour)
	rig.gui.Update(1.0 / 60)
	if scr.Current() != home {
		t.Error("screens without the flag never time out")
	}
}

func TestTimeoutSweepDisabledByDefault(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()
	menu := rig.openScreen(t)
	menu.SetCloseOnTimeout()

	scr.lastActivity = time.Now().Add(-time.Hour)
	rig.gui.Update(1.0 / 60)
	if scr.Current() != menu {
		t.Error("a zero menu timeout disables the sweep")
	}
}

func TestStructuralChangesResetIdleClock(t *testing.T) {
	rig := newTestGUI(t)
	scr := rig.gui.Screens()
	root := rig.openScreen(t)

	scr.lastActivity = time.Now().Add(-time.Hour)
	NewWindow(rig.gui, root, Rect{Width: 50, Height: 20})
	if scr.IdleFor() > time.Minute {
		t.Error("registering a window counts as activity")
	}
}
