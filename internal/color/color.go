// Package color parses hex color strings and produces 24-bit SGR escapes.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Parse reads "rrggbb" or "rgb", with an optional leading or trailing '#'.
// Short forms shift each digit into the high nibble, so "8a8" is (0x80, 0xa0, 0x80).
func Parse(s string) (RGB, error) {
	hex := strings.TrimSuffix(strings.TrimPrefix(s, "#"), "#")

	switch len(hex) {
	case 6:
		var c [3]uint8
		for i := range c {
			v, err := parseByte(hex[i*2 : i*2+2])
			if err != nil {
				return RGB{}, fmt.Errorf("%w: '%s'", ErrInvalidColor, s)
			}
			c[i] = v
		}
		return RGB{R: c[0], G: c[1], B: c[2]}, nil
	case 3:
		var c [3]uint8
		for i := range c {
			v, err := parseByte(hex[i : i+1])
			if err != nil {
				return RGB{}, fmt.Errorf("%w: '%s'", ErrInvalidColor, s)
			}
			c[i] = v << 4
		}
		return RGB{R: c[0], G: c[1], B: c[2]}, nil
	default:
		return RGB{}, fmt.Errorf("%w: '%s'", ErrInvalidColor, s)
	}
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) RGB {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Foreground returns the truecolor SGR sequence selecting c as foreground.
func (c RGB) Foreground() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Background returns the truecolor SGR sequence selecting c as background.
func (c RGB) Background() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}
