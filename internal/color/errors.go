package color

import "errors"

// ErrInvalidColor is returned for strings that are not 3 or 6 hex digits.
var ErrInvalidColor = errors.New("color: invalid hex color")
