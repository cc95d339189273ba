// Package display builds display processors: functions that turn raw field
// values into presentable text and color, parameterized by a resolved field
// configuration and a theme.
package display

import "strings"

// Theme maps named colors to concrete hex values
type Theme struct {
	Name     string
	Palette  map[string]string
	Fallback string
}

// DefaultTheme returns the builtin dark theme
func DefaultTheme() *Theme {
	return &Theme{
		Name: "dark",
		Palette: map[string]string{
			"green":  "#73bf69",
			"yellow": "#fade2a",
			"orange": "#ff9830",
			"red":    "#f2495c",
			"blue":   "#5794f2",
			"purple": "#b877d9",
			"text":   "#ccccdc",
		},
		Fallback: "#808080",
	}
}

// LightTheme returns the builtin light theme
func LightTheme() *Theme {
	return &Theme{
		Name: "light",
		Palette: map[string]string{
			"green":  "#56a64b",
			"yellow": "#f2cc0c",
			"orange": "#ff780a",
			"red":    "#e02f44",
			"blue":   "#3274d9",
			"purple": "#a352cc",
			"text":   "#2c3235",
		},
		Fallback: "#9fa7b3",
	}
}

// ThemeByName resolves a theme name, falling back to the default theme for
// unknown names.
func ThemeByName(name string) *Theme {
	if name == "light" {
		return LightTheme()
	}
	return DefaultTheme()
}

// Color resolves a color reference. Hex values pass through untouched;
// named colors resolve via the palette with a theme fallback.
func (t *Theme) Color(ref string) string {
	if ref == "" {
		return t.Fallback
	}
	if strings.HasPrefix(ref, "#") {
		return ref
	}
	if hex, ok := t.Palette[ref]; ok {
		return hex
	}
	return t.Fallback
}
