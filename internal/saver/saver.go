// Package saver drives the tick, render and sleep loop of the screensaver.
package saver

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/san-kum/goool/internal/life"
	"github.com/san-kum/goool/internal/render"
)

const (
	cursorHome  = "\x1b[1;1H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	resetAttrs  = "\x1b[0m"
)

// Observer is notified after every tick, before the frame is written.
type Observer interface {
	OnTick(frame int, outcome life.Outcome, b *life.Board)
}

type Config struct {
	Delay time.Duration
	// Frames stops the loop after this many frames; zero or less runs until ctx ends.
	Frames int
}

type Saver struct {
	board     *life.Board
	renderer  *render.Renderer
	out       io.Writer
	observers []Observer
}

func New(board *life.Board, renderer *render.Renderer, out io.Writer) *Saver {
	return &Saver{
		board:    board,
		renderer: renderer,
		out:      out,
	}
}

func (s *Saver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run draws frames until ctx is done or cfg.Frames is reached. Cancellation is
// only observed while sleeping between frames and is not an error. A failed
// write stops the loop with a *RenderError.
func (s *Saver) Run(ctx context.Context, cfg Config) (err error) {
	w := bufio.NewWriter(s.out)

	if _, err := io.WriteString(w, hideCursor+clearScreen); err != nil {
		return &RenderError{Frame: 0, Wrapped: err}
	}
	defer func() {
		_, werr := io.WriteString(w, resetAttrs+showCursor+"\n")
		if ferr := w.Flush(); ferr != nil {
			werr = ferr
		}
		if werr != nil && err == nil {
			err = &RenderError{Frame: -1, Wrapped: werr}
		}
	}()

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for frame := 1; ; frame++ {
		w.WriteString(cursorHome)

		outcome := s.board.Advance()
		for _, obs := range s.observers {
			obs.OnTick(frame, outcome, s.board)
		}

		if err := s.renderer.WriteFrame(w, s.board.Cells()); err != nil {
			return &RenderError{Frame: frame, Wrapped: err}
		}
		if err := w.Flush(); err != nil {
			return &RenderError{Frame: frame, Wrapped: err}
		}

		if cfg.Frames > 0 && frame >= cfg.Frames {
			return nil
		}

		timer.Reset(cfg.Delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
