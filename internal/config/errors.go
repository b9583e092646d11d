package config

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme is returned for theme names missing from Themes.
var ErrUnknownTheme = errors.New("config: unknown theme")

// ArgumentError wraps an invalid setting with the option name and offending value.
type ArgumentError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid value '%s' for %s: %v", e.Value, e.Name, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
