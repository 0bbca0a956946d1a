package casement

import "testing"

const themeYAML = `
schemes:
  button:
    normal: "#000000"
    focused: "#ff6a00"
    shadowed: "#141414"
    focusedShadowed: "#804000"
  label:
    normal: "#ffffff"
`

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme([]byte(themeYAML))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if len(theme.Names()) != 2 {
		t.Fatalf("Names = %v, want 2 schemes", theme.Names())
	}

	button, err := theme.Scheme("button")
	if err != nil {
		t.Fatalf("Scheme(button): %v", err)
	}
	if button.Focused != (Color{R: 1, G: float64(0x6a) / 255, B: 0, A: 1}) {
		t.Errorf("focused = %+v", button.Focused)
	}
	if button.Get(true, true) != button.FocusedShadowed {
		t.Error("Get(true, true) should resolve focusedShadowed")
	}
}

func TestLoadThemeMissingStatesFallBackToNormal(t *testing.T) {
	theme, err := LoadTheme([]byte(themeYAML))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	label, err := theme.Scheme("label")
	if err != nil {
		t.Fatalf("Scheme(label): %v", err)
	}
	white := Color{R: 1, G: 1, B: 1, A: 1}
	if label.Normal != white || label.Focused != white || label.Shadowed != white {
		t.Errorf("all states should fall back to normal, got %+v", label)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no schemes", "schemes: {}"},
		{"missing normal", "schemes:\n  x:\n    focused: \"#fff\""},
		{"bad color", "schemes:\n  x:\n    normal: \"#zzz\""},
		{"not yaml", "{{{"},
	}
	for _, tc := range cases {
		if _, err := LoadTheme([]byte(tc.data)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestThemeUnknownScheme(t *testing.T) {
	theme, err := LoadTheme([]byte(themeYAML))
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if _, err := theme.Scheme("missing"); err == nil {
		t.Error("unknown scheme should error")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"#000000", Color{A: 1}, true},
		{"#ff0000", Color{R: 1, A: 1}, true},
		{"#00ff0080", Color{G: 1, A: float64(0x80) / 255}, true},
		{"ff0000", Color{R: 1, A: 1}, true}, // '#' optional
		{"#ff00", Color{}, false},
		{"#gggggg", Color{}, false},
		{"", Color{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("ParseHexColor(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
