package casement

import (
	"image/color"
	"testing"
)

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.RGBA
	}{
		{"black", ColorBack, color.RGBA{0, 0, 0, 255}},
		{"white", ColorWhite, color.RGBA{255, 255, 255, 255}},
		{"half red", Color{R: 0.5, A: 1}, color.RGBA{127, 0, 0, 255}},
		{"clamped high", Color{R: 2, G: 1.5, A: 1}, color.RGBA{255, 255, 0, 255}},
		{"clamped low", Color{R: -1, A: 1}, color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := tt.in.toRGBA(); got != tt.want {
			t.Errorf("%s: toRGBA() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestColorSchemeGet(t *testing.T) {
	s := &ColorScheme{
		Normal:          Color{R: 1},
		Focused:         Color{G: 1},
		Shadowed:        Color{B: 1},
		FocusedShadowed: Color{R: 1, B: 1},
	}
	if s.Get(false, false) != s.Normal {
		t.Error("unfocused unshadowed should be normal")
	}
	if s.Get(true, false) != s.Focused {
		t.Error("focused should win over normal")
	}
	if s.Get(false, true) != s.Shadowed {
		t.Error("shadowed should win over normal")
	}
	if s.Get(true, true) != s.FocusedShadowed {
		t.Error("both states should use the combined entry")
	}
}
