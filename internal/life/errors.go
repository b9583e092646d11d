package life

import "errors"

// ErrUnknownMode is returned when a cell type name is not big, small or braille.
var ErrUnknownMode = errors.New("life: unknown cell type")

// ErrInvalidSize is returned for a terminal size with a negative dimension.
var ErrInvalidSize = errors.New("life: invalid terminal size")
