package casement

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// slideAnim holds the active tweens moving a window's origin.
type slideAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// SlideTo animates the window's stored origin to (x, y) over duration
// seconds. The rect is rounded to whole pixels each step and the window is
// invalidated whenever it moved. A non-positive duration snaps immediately.
// Starting a new slide replaces any slide in progress.
func (w *Window) SlideTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		w.rect.X = x
		w.rect.Y = y
		w.slide = nil
		w.gui.removeSlide(w)
		w.Invalidate(Rect{})
		return
	}
	w.slide = &slideAnim{
		tweenX: gween.New(float32(w.rect.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(w.rect.Y), float32(y), duration, easeFn),
	}
	w.gui.addSlide(w)
}

// IsSliding reports whether a slide animation is in progress.
func (w *Window) IsSliding() bool { return w.slide != nil }

func (g *GUI) addSlide(w *Window) {
	for _, s := range g.slides {
		if s == w {
			return
		}
	}
	g.slides = append(g.slides, w)
}

func (g *GUI) removeSlide(w *Window) {
	for i, s := range g.slides {
		if s == w {
			copy(g.slides[i:], g.slides[i+1:])
			g.slides[len(g.slides)-1] = nil
			g.slides = g.slides[:len(g.slides)-1]
			return
		}
	}
}

// updateSlides advances every active slide by dt seconds. Called from
// GUI.Update.
func (g *GUI) updateSlides(dt float32) {
	for i := 0; i < len(g.slides); i++ {
		w := g.slides[i]
		anim := w.slide
		if anim == nil {
			continue
		}
		moved := false
		if !anim.doneX {
			v, done := anim.tweenX.Update(dt)
			nx := int(math.Round(float64(v)))
			if nx != w.rect.X {
				w.rect.X = nx
				moved = true
			}
			anim.doneX = done
		}
		if !anim.doneY {
			v, done := anim.tweenY.Update(dt)
			ny := int(math.Round(float64(v)))
			if ny != w.rect.Y {
				w.rect.Y = ny
				moved = true
			}
			anim.doneY = done
		}
		if moved {
			w.Invalidate(Rect{})
		}
		if anim.doneX && anim.doneY {
			w.slide = nil
			g.removeSlide(w)
			i--
		}
	}
}
