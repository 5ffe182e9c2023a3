package chart

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ContrastColor picks black or white text for a "#RRGGBB" background.
// Anything that is not a six digit hex colour gets white.
func ContrastColor(hex string) string {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") || !isHexDigits(hex[1:]) {
		return "#FFFFFF"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#FFFFFF"
	}
	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if luminance > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

// isHexDigits reports whether s is made of hex digits only. colorful.Hex
// stops scanning at the first bad digit without an error.
func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Tier is a formulary access tier and its chart colour.
type Tier struct {
	Name  string
	Color string
}

// TierColors is the access tier palette, most restrictive first.
var TierColors = []Tier{
	{"Restrictive tier", "#32190A"},
	{"Non-preferred", "#BA5422"},
	{"Non-preferred with interventions", "#EB6620"},
	{"Preferred with interventions", "#EE8045"},
	{"Preferred", "#FCC9B1"},
}

// TierNames returns the tier names in palette order.
func TierNames() []string {
	names := make([]string, len(TierColors))
	for i, t := range TierColors {
		names[i] = t.Name
	}
	return names
}

// TierColor looks up a tier colour. Bar datasets spell the intervention
// tiers in the singular, so both spellings resolve.
func TierColor(name string) (string, bool) {
	if strings.HasSuffix(name, "with intervention") {
		name += "s"
	}
	for _, t := range TierColors {
		if t.Name == name {
			return t.Color, true
		}
	}
	return "", false
}

// Palette maps a series name to a "#RRGGBB" colour.
type Palette func(name string) string

// TierPalette colours series by access tier, falling back to the darkest tier.
func TierPalette(name string) string {
	if c, ok := TierColor(name); ok {
		return c
	}
	return TierColors[0].Color
}

// MapPalette colours series from a fixed map, with fallback for unknown names.
func MapPalette(colors map[string]string, fallback string) Palette {
	return func(name string) string {
		if c, ok := colors[name]; ok {
			return c
		}
		return fallback
	}
}
