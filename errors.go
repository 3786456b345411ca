package csscolor

import "errors"

// Errors returned by the validation and conversion functions. Failures are
// whole-call: no function returns a partial result alongside an error.
var (
	// ErrInvalidFormat indicates the input does not match the expected
	// pattern for its claimed representation.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrMalformedStructure indicates the input lacks the expected
	// delimiters, such as an hsl() string without parentheses.
	ErrMalformedStructure = errors.New("malformed color string")
)
