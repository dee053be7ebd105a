package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is spec.md §3's "RGBA|None" value: None means "terminal
// default", carried as a distinct state rather than a sentinel RGBA
// value so a transparent foreground/background is never confused with
// opaque black.
type Color struct {
	IsSet bool
	RGBA  RGBA
}

// RGBA is a 32-bit color with an opacity channel combined at render time
// with the node's own `opacity` prop.
type RGBA struct {
	R, G, B, A uint8
}

// NoneColor is the terminal-default sentinel.
func NoneColor() Color { return Color{} }

// SetColor wraps an RGBA as a present Color.
func SetColor(c RGBA) Color { return Color{IsSet: true, RGBA: c} }

// RGB builds an opaque RGBA.
func RGB(r, g, b uint8) RGBA { return RGBA{R: r, G: g, B: b, A: 255} }

// ParseColor coerces a loosely-typed prop value into a Color: nil/""
// becomes None, a "#rrggbb" or "#rgb" hex string parses to opaque RGBA,
// "rgba(r,g,b,a)" parses all four channels.
func ParseColor(v interface{}) (Color, error) {
	if v == nil {
		return NoneColor(), nil
	}
	s, ok := v.(string)
	if !ok {
		return Color{}, fmt.Errorf("style: color prop must be a string, got %T", v)
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return NoneColor(), nil
	}
	if strings.HasPrefix(s, "#") {
		rgba, err := parseHex(s[1:])
		if err != nil {
			return Color{}, err
		}
		return SetColor(rgba), nil
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		rgba, err := parseRGBAFunc(s[len("rgba(") : len(s)-1])
		if err != nil {
			return Color{}, err
		}
		return SetColor(rgba), nil
	}
	return Color{}, fmt.Errorf("style: unrecognized color %q", s)
}

func parseHex(hex string) (RGBA, error) {
	expand := func(c byte) string { return string([]byte{c, c}) }
	switch len(hex) {
	case 3:
		hex = expand(hex[0]) + expand(hex[1]) + expand(hex[2])
	case 6:
	default:
		return RGBA{}, fmt.Errorf("style: hex color must be 3 or 6 digits, got %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("style: invalid hex color %q: %w", hex, err)
	}
	return RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}

func parseRGBAFunc(body string) (RGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 4 {
		return RGBA{}, fmt.Errorf("style: rgba() needs 4 components, got %d", len(parts))
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGBA{}, fmt.Errorf("style: invalid rgba() component %q: %w", p, err)
		}
		vals[i] = n
	}
	return RGBA{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2]), A: uint8(vals[3])}, nil
}
