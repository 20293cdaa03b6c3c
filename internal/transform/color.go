package transform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"textforge/pkg/errors"
)

// Color is the canonical parsed form of a color, serialized to JSON by the
// parse-color adapter.
type Color struct {
	Hex string  `json:"hex"`
	R   int     `json:"r"`
	G   int     `json:"g"`
	B   int     `json:"b"`
	H   float64 `json:"h"`
	S   float64 `json:"s"`
	L   float64 `json:"l"`
}

var rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)

// HexToRGB converts "#rrggbb" (or the short "#rgb" form) to "rgb(r, g, b)".
func HexToRGB(s string) (string, error) {
	r, g, b, err := parseHex(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b), nil
}

// RGBToHex converts "rgb(r, g, b)" to "#rrggbb".
func RGBToHex(s string) (string, error) {
	r, g, b, err := parseRGB(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

// HexToHSL converts "#rrggbb" to "hsl(h, s%, l%)".
func HexToHSL(s string) (string, error) {
	r, g, b, err := parseHex(s)
	if err != nil {
		return "", err
	}
	h, sat, l := rgbToHSL(r, g, b)
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, sat, l), nil
}

// ParseColor accepts a hex or rgb() color and returns its canonical parsed
// form. The adapter layer serializes the result to JSON.
func ParseColor(s string) (Color, error) {
	input := strings.TrimSpace(strings.ToLower(s))
	var r, g, b int
	var err error
	switch {
	case strings.HasPrefix(input, "#"):
		r, g, b, err = parseHex(input)
	case strings.HasPrefix(input, "rgb"):
		r, g, b, err = parseRGB(input)
	default:
		err = errors.NewTransformErrorf("unrecognized color format %q", strings.TrimSpace(s))
	}
	if err != nil {
		return Color{}, err
	}
	h, sat, l := rgbToHSL(r, g, b)
	return Color{
		Hex: fmt.Sprintf("#%02x%02x%02x", r, g, b),
		R:   r, G: g, B: b,
		H: math.Round(h), S: math.Round(sat), L: math.Round(l),
	}, nil
}

func parseHex(s string) (int, int, int, error) {
	hexStr := strings.TrimPrefix(strings.TrimSpace(strings.ToLower(s)), "#")
	if len(hexStr) == 3 {
		hexStr = string([]byte{hexStr[0], hexStr[0], hexStr[1], hexStr[1], hexStr[2], hexStr[2]})
	}
	if len(hexStr) != 6 {
		return 0, 0, 0, errors.NewTransformError("invalid hex color, expected #rgb or #rrggbb")
	}
	n, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return 0, 0, 0, errors.NewTransformError("invalid hex color, expected #rgb or #rrggbb")
	}
	return int(n >> 16), int(n >> 8 & 0xff), int(n & 0xff), nil
}

func parseRGB(s string) (int, int, int, error) {
	m := rgbPattern.FindStringSubmatch(strings.TrimSpace(strings.ToLower(s)))
	if m == nil {
		return 0, 0, 0, errors.NewTransformError("invalid rgb color, expected rgb(r, g, b)")
	}
	vals := make([]int, 3)
	for i, part := range m[1:] {
		n, _ := strconv.Atoi(part)
		if n > 255 {
			return 0, 0, 0, errors.NewTransformErrorf("rgb component %d out of range", n)
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], nil
}

func rgbToHSL(r, g, b int) (h, s, l float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	case bf:
		h = (rf-gf)/d + 4
	}
	return h * 60, s * 100, l * 100
}
