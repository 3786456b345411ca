package csscolor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB converts a hex color string like "#f9e6e1" to its
// "rgb(r, g, b)" form.
//
// It performs no validation: a channel that cannot be sliced out of the
// input or parsed as hex comes out as zero, so invalid input yields garbage
// output rather than an error. Callers needing safety must check IsHexCode
// first.
func HexToRGB(s string) string {
	bare := strings.TrimPrefix(s, "#")
	c := Color{
		R: hexByteAt(bare, 0),
		G: hexByteAt(bare, 2),
		B: hexByteAt(bare, 4),
	}
	return c.RGB()
}

// hexByteAt parses the two hex digits at offset i, or returns 0 if they are
// missing or unparseable.
func hexByteAt(s string, i int) uint8 {
	if len(s) < i+2 {
		return 0
	}
	v, err := strconv.ParseUint(s[i:i+2], 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// RGBToHSL converts an "rgb(r, g, b)" string to its "hsl(h, s%, l%)" form.
//
// The input must satisfy IsRGBCode; anything else fails with
// ErrInvalidFormat carrying the offending string. Components above 255 pass
// the format check and flow into the math unchanged. Hue and lightness are
// rounded to the nearest integer (half away from zero); saturation is
// truncated.
func RGBToHSL(s string) (string, error) {
	if !IsRGBCode(s) {
		return "", fmt.Errorf("%q is not a valid rgb code: %w", s, ErrInvalidFormat)
	}
	r, g, b, err := splitRGB(s)
	if err != nil {
		return "", err
	}
	return rgbToHSL(r, g, b).String(), nil
}

// HexToHSL converts a hex color string to its "hsl(h, s%, l%)" form.
// It fails with ErrInvalidFormat if s does not satisfy IsHexCode.
func HexToHSL(s string) (string, error) {
	if !IsHexCode(s) {
		return "", fmt.Errorf("%q is not a valid hex code: %w", s, ErrInvalidFormat)
	}
	return RGBToHSL(HexToRGB(s))
}

// RGBToHex converts an "rgb(r, g, b)" string to its "#rrggbb" form.
// It fails with ErrInvalidFormat if s does not satisfy IsRGBCode.
// Components above 255 wrap when narrowed to a channel byte.
func RGBToHex(s string) (string, error) {
	if !IsRGBCode(s) {
		return "", fmt.Errorf("%q is not a valid rgb code: %w", s, ErrInvalidFormat)
	}
	r, g, b, err := splitRGB(s)
	if err != nil {
		return "", err
	}
	c := Color{R: uint8(r), G: uint8(g), B: uint8(b)}
	return c.Hex(), nil
}

// HSLToRGB converts an "hsl(h, s%, l%)" string to its "rgb(r, g, b)" form.
// It fails with ErrInvalidFormat if s does not satisfy IsHSLCode.
func HSLToRGB(s string) (string, error) {
	if !IsHSLCode(s) {
		return "", fmt.Errorf("%q is not a valid hsl code: %w", s, ErrInvalidFormat)
	}
	rawH, rawS, rawL, err := SplitHSL(s)
	if err != nil {
		return "", err
	}
	hue, err := parseComponent(rawH)
	if err != nil {
		return "", err
	}
	sat, err := parseComponent(rawS)
	if err != nil {
		return "", err
	}
	light, err := parseComponent(rawL)
	if err != nil {
		return "", err
	}
	return hslToRGB(hue, sat, light).RGB(), nil
}

// SplitHSL splits an hsl() string into its three raw components, exactly as
// written: "hsl(130, 50%, 30%)" yields "130", " 50%", " 30%". No trimming
// or normalization is applied, and the text before the parentheses is not
// checked, making this suitable for structural inspection of the string.
// It fails with ErrMalformedStructure when a parenthesis is missing or the
// inner segment does not hold exactly three comma-separated fields.
func SplitHSL(s string) (h, sat, l string, err error) {
	_, after, ok := strings.Cut(s, "(")
	if !ok {
		return "", "", "", fmt.Errorf("no opening parenthesis in %q: %w", s, ErrMalformedStructure)
	}
	inner, _, ok := strings.Cut(after, ")")
	if !ok {
		return "", "", "", fmt.Errorf("no closing parenthesis in %q: %w", s, ErrMalformedStructure)
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("expected 3 components in %q, got %d: %w", s, len(parts), ErrMalformedStructure)
	}
	return parts[0], parts[1], parts[2], nil
}

// splitRGB extracts the three integer components of an rgb() string. A
// component that fails to parse is reported as ErrInvalidFormat rather than
// flowing into the math; after the IsRGBCode gate this cannot happen, but
// the tokenizer does not depend on being gated.
func splitRGB(s string) (r, g, b int, err error) {
	inner := strings.ToLower(s)
	for _, cut := range []string{"rgb", "(", ")"} {
		inner = strings.ReplaceAll(inner, cut, "")
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 components in %q, got %d: %w", s, len(parts), ErrInvalidFormat)
	}
	var vals [3]int
	for i, part := range parts {
		v, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("component %q in %q: %w", part, s, ErrInvalidFormat)
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], nil
}

// parseComponent parses one raw hsl() component, tolerating surrounding
// whitespace and a trailing percent sign.
func parseComponent(raw string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("component %q: %w", raw, ErrInvalidFormat)
	}
	return v, nil
}

// rgbToHSL converts integer RGB channels to an HSL value. Channels are
// normalized to [0, 1]; hue is derived from whichever channel is the
// maximum, checked red first, then green, then blue.
func rgbToHSL(ri, gi, bi int) HSL {
	r := float64(ri) / 255.0
	g := float64(gi) / 255.0
	b := float64(bi) / 255.0

	min := math.Min(math.Min(r, g), b)
	max := math.Max(math.Max(r, g), b)
	l := (max + min) / 2.0

	var h, s float64
	if max == min {
		h = 0
		s = 0 // Achromatic
	} else {
		d := max - min
		if l > 0.5 {
			s = d / (2.0 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6.0
			}
		case g:
			h = (b-r)/d + 2.0
		case b:
			h = (r-g)/d + 4.0
		}
		h /= 6.0
	}

	// Saturation is truncated, not rounded: 2/3 must come out as 66%.
	return HSL{
		H: int(math.Round(h * 360.0)),
		S: int(s * 100.0),
		L: int(math.Round(l * 100.0)),
	}
}

// hslToRGB converts hue degrees and saturation/lightness percentages to an
// RGB color.
func hslToRGB(hue, sat, light int) Color {
	h := float64(hue) / 360.0
	s := float64(sat) / 100.0
	l := float64(light) / 100.0

	var r, g, b float64
	if s == 0 { // Achromatic
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1.0 + s)
		} else {
			q = l + s - l*s
		}
		p := 2.0*l - q

		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}

	// Out-of-range components pass the format check, so the channels are
	// clamped before narrowing.
	return Color{
		R: uint8(math.Round(clamp01(r) * 255.0)),
		G: uint8(math.Round(clamp01(g) * 255.0)),
		B: uint8(math.Round(clamp01(b) * 255.0)),
	}
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1.0
	}
	if t > 1 {
		t -= 1.0
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
