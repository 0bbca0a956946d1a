package casement

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBack is the default window background.
var ColorBack = Color{0, 0, 0, 1}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a standard 8-bit color for display submission.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorScheme is a shared lookup table from a window's (focused, shadowed)
// state to a concrete color. Windows reference a scheme rather than copying
// it, so editing a scheme in place affects every window that points at it.
// The scheme carries no invalidation bookkeeping: after swapping or editing
// a scheme, invalidate the affected windows manually.
type ColorScheme struct {
	Normal          Color
	Focused         Color
	Shadowed        Color
	FocusedShadowed Color
}

// Get resolves the color for the given focus and shadow state.
func (s *ColorScheme) Get(focused, shadowed bool) Color {
	switch {
	case focused && shadowed:
		return s.FocusedShadowed
	case focused:
		return s.Focused
	case shadowed:
		return s.Shadowed
	default:
		return s.Normal
	}
}
