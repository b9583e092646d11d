// Package terminal queries terminal dimensions.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when the output is not attached to a terminal.
var ErrNoTerminal = errors.New("terminal: output is not a terminal")

// Size is a terminal resolution in character cells.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Sizer reports the current terminal size.
type Sizer interface {
	Size() (Size, error)
}

// FD queries the size of the terminal behind a file descriptor.
type FD int

// Stdout returns a Sizer for the process's standard output.
func Stdout() FD {
	return FD(os.Stdout.Fd())
}

func (fd FD) Size() (Size, error) {
	if !term.IsTerminal(int(fd)) {
		return Size{}, ErrNoTerminal
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil {
		return Size{}, fmt.Errorf("terminal: get size: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}

// Fixed always reports the same size. Used for headless runs.
type Fixed Size

func (f Fixed) Size() (Size, error) {
	return Size(f), nil
}

// Func adapts a function to a Sizer.
type Func func() (Size, error)

func (f Func) Size() (Size, error) { return f() }
