package ember

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme carries palette and dimension overrides loaded from a TOML
// file. Zero values mean "keep the built-in default", so a theme file
// only lists what it changes.
type Theme struct {
	Name       string          `toml:"name"`
	Colors     ThemeColors     `toml:"colors"`
	Dimensions ThemeDimensions `toml:"dimensions"`
}

// ThemeColors lists palette overrides as "#RRGGBB" or "#RRGGBBAA"
// strings.
type ThemeColors struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
	Danger    string `toml:"danger"`
	Success   string `toml:"success"`
	Warning   string `toml:"warning"`
	Text      string `toml:"text"`
	TextMuted string `toml:"text_muted"`
	Panel     string `toml:"panel"`
	Border    string `toml:"border"`
}

// ThemeDimensions lists sizing overrides in logical pixels.
type ThemeDimensions struct {
	Padding      float64 `toml:"padding"`
	Spacing      float64 `toml:"spacing"`
	CornerRadius float64 `toml:"corner_radius"`
	FontSize     float64 `toml:"font_size"`
}

// LoadTheme reads a TOML theme file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes TOML theme data and validates its color fields.
func ParseTheme(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	for name, v := range map[string]string{
		"primary":    t.Colors.Primary,
		"secondary":  t.Colors.Secondary,
		"danger":     t.Colors.Danger,
		"success":    t.Colors.Success,
		"warning":    t.Colors.Warning,
		"text":       t.Colors.Text,
		"text_muted": t.Colors.TextMuted,
		"panel":      t.Colors.Panel,
		"border":     t.Colors.Border,
	} {
		if v == "" {
			continue
		}
		if _, err := ParseColor(v); err != nil {
			return nil, fmt.Errorf("theme color %s: %w", name, err)
		}
	}
	return &t, nil
}

// Color resolves a named palette entry against the theme, falling back
// to the built-in default when the theme does not override it.
func (t *Theme) Color(name string, fallback Color) Color {
	var v string
	switch name {
	case "primary":
		v = t.Colors.Primary
	case "secondary":
		v = t.Colors.Secondary
	case "danger":
		v = t.Colors.Danger
	case "success":
		v = t.Colors.Success
	case "warning":
		v = t.Colors.Warning
	case "text":
		v = t.Colors.Text
	case "text_muted":
		v = t.Colors.TextMuted
	case "panel":
		v = t.Colors.Panel
	case "border":
		v = t.Colors.Border
	}
	if v == "" {
		return fallback
	}
	c, err := ParseColor(v)
	if err != nil {
		return fallback
	}
	return c
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a Color. Missing
// alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}
