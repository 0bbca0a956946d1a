package casement

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSlideToSnapsOnZeroDuration(t *testing.T) {
	rig := newTestGUI(t)
	w := NewWindow(rig.gui, nil, Rect{X: 10, Y: 10, Width: 50, Height: 20})
	w.Validate(Rect{})

	w.SlideTo(100, 40, 0, ease.Linear)
	if w.RawRect().X != 100 || w.RawRect().Y != 40 {
		t.Errorf("RawRect = %+v, want snapped to (100, 40)", w.RawRect())
	}
	if w.IsSliding() {
		t.Error("a snap is not a slide")
	}
	if !w.IsInvalid() {
		t.Error("moving the window invalidates it")
	}
}

func TestSlideToAnimatesLinearly(t *testing.T) {
	rig := newTestGUI(t)
	w := NewWindow(rig.gui, nil, Rect{X: 0, Y: 0, Width: 50, Height: 20})
	w.Validate(Rect{})

	w.SlideTo(100, 60, 1.0, ease.Linear)
	if !w.IsSliding() {
		t.Fatal("slide should be in progress")
	}

	rig.gui.Update(0.5)
	if w.RawRect().X != 50 || w.RawRect().Y != 30 {
		t.Errorf("midpoint RawRect = %+v, want (50, 30)", w.RawRect())
	}
	if !w.IsInvalid() {
		t.Error("each movement step invalidates")
	}

	rig.gui.Update(0.5)
	if w.RawRect().X != 100 || w.RawRect().Y != 60 {
		t.Errorf("final RawRect = %+v, want (100, 60)", w.RawRect())
	}
	if w.IsSliding() {
		t.Error("a finished slide detaches")
	}

	// Further ticks leave the window alone.
	w.Validate(Rect{})
	rig.gui.Update(0.5)
	if w.IsInvalid() {
		t.Error("no residual movement after completion")
	}
}

func TestSlideToReplacesSlideInProgress(t *testing.T) {
	rig := newTestGUI(t)
	w := NewWindow(rig.gui, nil, Rect{X: 0, Y: 0, Width: 50, Height: 20})

	w.SlideTo(100, 0, 1.0, ease.Linear)
	rig.gui.Update(0.5)

	// Retarget from the halfway point.
	w.SlideTo(0, 0, 1.0, ease.Linear)
	rig.gui.Update(1.0)
	if w.RawRect().X != 0 {
		t.Errorf("X = %d, want back at 0", w.RawRect().X)
	}
	if w.IsSliding() {
		t.Error("replacement slide should also finish")
	}
}

func TestDisposeCancelsSlide(t *testing.T) {
	rig := newTestGUI(t)
	root := rig.openScreen(t)
	w := NewWindow(rig.gui, root, Rect{X: 0, Y: 0, Width: 50, Height: 20})

	w.SlideTo(100, 0, 1.0, ease.Linear)
	w.Dispose()
	if len(rig.gui.slides) != 0 {
		t.Error("disposal should drop the window from the slide list")
	}

	// The tick after disposal must not touch the dead window.
	rig.gui.Update(0.5)
	if w.RawRect().X != 0 {
		t.Error("a disposed window does not move")
	}
}
