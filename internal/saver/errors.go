package saver

import "fmt"

// RenderError reports a failed write of a frame to the output.
type RenderError struct {
	Frame   int
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("saver: write frame %d: %v", e.Frame, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
