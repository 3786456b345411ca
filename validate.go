package csscolor

import "regexp"

// Format patterns for the three string representations. Matching is
// case-insensitive for both the function keywords and hex digits. The RGB
// and HSL patterns accept any 1-3 digit component, so values above 255 (or
// 360/100) still pass; see IsRGBCode.
var (
	hexPattern = regexp.MustCompile(`(?i)^#[0-9a-f]{6}$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgb\((\d{1,3},\s?){2}\d{1,3}\)$`)
	hslPattern = regexp.MustCompile(`(?i)^hsl\((\d{1,3},\s?)(\d{1,3}%,\s?)(\d{1,3}%)\)$`)
)

// IsHexCode reports whether s is a hex color code: a # followed by exactly
// six hex digits. Shorthand forms like "#fff" are not accepted.
func IsHexCode(s string) bool {
	return hexPattern.MatchString(s)
}

// IsRGBCode reports whether s is an rgb() color string with three 1-3 digit
// components, each optionally preceded by whitespace after its comma.
//
// The check is purely syntactic: components above 255, such as
// "rgb(256, 0, 0)", are accepted. Callers needing range enforcement must
// check the parsed values themselves.
func IsRGBCode(s string) bool {
	return rgbPattern.MatchString(s)
}

// IsHSLCode reports whether s is an hsl() color string: a bare 1-3 digit
// hue followed by percent-suffixed saturation and lightness. The percent
// signs are required; "hsl(13,66,93)" does not match.
func IsHSLCode(s string) bool {
	return hslPattern.MatchString(s)
}
