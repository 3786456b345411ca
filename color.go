// Package csscolor validates and converts color values written in the three
// conventional CSS string forms: hex ("#rrggbb"), RGB ("rgb(r, g, b)") and
// HSL ("hsl(h, s%, l%)"). All operations work on in-memory strings and
// values; there is no I/O and no shared state.
package csscolor

import (
	"fmt"
	"strings"
)

// Color represents an RGB color. The R, G, B uint8 fields are the source of truth;
// all output formats are derived from them.
type Color struct {
	R, G, B uint8
}

// HSL represents a color as hue in degrees, saturation percent and
// lightness percent.
type HSL struct {
	H, S, L int
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
// The leading # is optional and hex digits may be upper or lower case.
func ParseHex(s string) (Color, error) {
	bare := strings.TrimPrefix(s, "#")
	if len(bare) != 6 {
		return Color{}, fmt.Errorf("hex color %q must have 6 hex digits: %w", s, ErrInvalidFormat)
	}
	var r, g, b uint8
	_, err := fmt.Sscanf(bare, "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return Color{}, fmt.Errorf("hex color %q: %w", s, ErrInvalidFormat)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String returns the color as an hsl() string, e.g. "hsl(13, 66%, 93%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}
