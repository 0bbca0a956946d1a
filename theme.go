package casement

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a set of named color schemes loaded from YAML. Scheme pointers
// are stable for the lifetime of the Theme, so windows can hold them across
// lookups.
//
// File format:
//
//	schemes:
//	  button:
//	    normal: "#1e1e28"
//	    focused: "#ff6a00"
//	    shadowed: "#14141c"
//	    focusedShadowed: "#804000"
//
// Colors are "#RGB", "#RRGGBB", or "#RRGGBBAA" hex strings. Omitted states
// fall back to normal.
type Theme struct {
	schemes map[string]*ColorScheme
}

type themeFile struct {
	Schemes map[string]schemeSpec `yaml:"schemes"`
}

type schemeSpec struct {
	Normal          string `yaml:"normal"`
	Focused         string `yaml:"focused"`
	Shadowed        string `yaml:"shadowed"`
	FocusedShadowed string `yaml:"focusedShadowed"`
}

// LoadTheme parses YAML theme data.
func LoadTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if len(file.Schemes) == 0 {
		return nil, fmt.Errorf("parse theme: no schemes")
	}
	t := &Theme{schemes: make(map[string]*ColorScheme, len(file.Schemes))}
	for name, spec := range file.Schemes {
		scheme, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("parse theme: scheme %q: %w", name, err)
		}
		t.schemes[name] = scheme
	}
	return t, nil
}

// Scheme returns the named color scheme.
func (t *Theme) Scheme(name string) (*ColorScheme, error) {
	s, ok := t.schemes[name]
	if !ok {
		return nil, fmt.Errorf("theme: unknown scheme %q", name)
	}
	return s, nil
}

// Names returns the scheme names present in the theme.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.schemes))
	for name := range t.schemes {
		names = append(names, name)
	}
	return names
}

func (s schemeSpec) build() (*ColorScheme, error) {
	if s.Normal == "" {
		return nil, fmt.Errorf("missing normal color")
	}
	normal, err := ParseHexColor(s.Normal)
	if err != nil {
		return nil, err
	}
	scheme := &ColorScheme{Normal: normal, Focused: normal, Shadowed: normal, FocusedShadowed: normal}
	if s.Focused != "" {
		if scheme.Focused, err = ParseHexColor(s.Focused); err != nil {
			return nil, err
		}
	}
	if s.Shadowed != "" {
		if scheme.Shadowed, err = ParseHexColor(s.Shadowed); err != nil {
			return nil, err
		}
	}
	if s.FocusedShadowed != "" {
		if scheme.FocusedShadowed, err = ParseHexColor(s.FocusedShadowed); err != nil {
			return nil, err
		}
	}
	return scheme, nil
}

// ParseHexColor parses "#RGB", "#RRGGBB", or "#RRGGBBAA" into a Color.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	var r, g, b, a uint64
	a = 0xff
	var err error
	switch len(hex) {
	case 3:
		if r, err = strconv.ParseUint(strings.Repeat(hex[0:1], 2), 16, 8); err == nil {
			if g, err = strconv.ParseUint(strings.Repeat(hex[1:2], 2), 16, 8); err == nil {
				b, err = strconv.ParseUint(strings.Repeat(hex[2:3], 2), 16, 8)
			}
		}
	case 6, 8:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err == nil {
			if g, err = strconv.ParseUint(hex[2:4], 16, 8); err == nil {
				if b, err = strconv.ParseUint(hex[4:6], 16, 8); err == nil && len(hex) == 8 {
					a, err = strconv.ParseUint(hex[6:8], 16, 8)
				}
			}
		}
	default:
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	if err != nil {
		return Color{}, fmt.Errorf("bad color %q", s)
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}
