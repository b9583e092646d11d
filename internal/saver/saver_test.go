package saver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/goool/internal/color"
	"github.com/san-kum/goool/internal/life"
	"github.com/san-kum/goool/internal/render"
	"github.com/san-kum/goool/internal/terminal"
)

type recorder struct {
	frames   []int
	outcomes []life.Outcome
}

func (r *recorder) OnTick(frame int, outcome life.Outcome, b *life.Board) {
	r.frames = append(r.frames, frame)
	r.outcomes = append(r.outcomes, outcome)
}

// flakyWriter accepts the first ok writes and fails afterwards.
type flakyWriter struct {
	ok     int
	writes int
}

func (f *flakyWriter) Write(p []byte) (int, error) {
	f.writes++
	if f.writes > f.ok {
		return 0, errors.New("terminal gone")
	}
	return len(p), nil
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("stdout closed") }

var _ = Describe("Saver", func() {
	var (
		board *life.Board
		out   *bytes.Buffer
		s     *Saver
	)

	BeforeEach(func() {
		var err error
		board, err = life.New(life.Small, terminal.Fixed{Width: 10, Height: 3}, 1)
		Expect(err).NotTo(HaveOccurred())
		out = &bytes.Buffer{}
		s = New(board, render.New(life.Small, render.Colors{}), out)
	})

	It("draws the requested number of frames", func() {
		rec := &recorder{}
		s.AddObserver(rec)

		Expect(s.Run(context.Background(), Config{Frames: 3})).To(Succeed())

		Expect(rec.frames).To(Equal([]int{1, 2, 3}))
		Expect(strings.Count(out.String(), cursorHome)).To(Equal(3))
	})

	It("hides the cursor first and restores it last", func() {
		Expect(s.Run(context.Background(), Config{Frames: 1})).To(Succeed())

		Expect(out.String()).To(HavePrefix(hideCursor + clearScreen + cursorHome))
		Expect(out.String()).To(HaveSuffix(resetAttrs + showCursor + "\n"))
	})

	It("writes the rendered board after the cursor reset", func() {
		Expect(s.Run(context.Background(), Config{Frames: 1})).To(Succeed())

		frame := render.New(life.Small, render.Colors{}).Render(board.Cells())
		Expect(out.String()).To(ContainSubstring(cursorHome + frame))
	})

	It("includes color escapes when configured", func() {
		alive := color.RGB{R: 255}
		s = New(board, render.New(life.Small, render.Colors{Alive: &alive}), out)

		Expect(s.Run(context.Background(), Config{Frames: 1})).To(Succeed())
		Expect(out.String()).To(ContainSubstring("\x1b[38;2;255;0;0m"))
	})

	It("stops cleanly when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		done := make(chan error, 1)
		go func() { done <- s.Run(ctx, Config{Delay: time.Hour}) }()

		Eventually(done).Should(Receive(BeNil()))
		Expect(strings.Count(out.String(), cursorHome)).To(Equal(1))
	})

	It("reports write failures as render errors", func() {
		s = New(board, render.New(life.Small, render.Colors{}), brokenWriter{})

		err := s.Run(context.Background(), Config{Frames: 5})

		var renderErr *RenderError
		Expect(errors.As(err, &renderErr)).To(BeTrue())
		Expect(renderErr.Frame).To(Equal(1))
		Expect(err.Error()).To(ContainSubstring("stdout closed"))
	})

	It("treats a negative frame limit as unlimited", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(s.Run(ctx, Config{Frames: -1, Delay: time.Hour})).To(Succeed())
		Expect(strings.Count(out.String(), cursorHome)).To(Equal(1))
	})

	It("reports a failed cursor restore after the last frame", func() {
		w := &flakyWriter{ok: 1}
		s = New(board, render.New(life.Small, render.Colors{}), w)

		err := s.Run(context.Background(), Config{Frames: 1})

		var renderErr *RenderError
		Expect(errors.As(err, &renderErr)).To(BeTrue())
		Expect(renderErr.Frame).To(Equal(-1))
		Expect(err.Error()).To(ContainSubstring("terminal gone"))
	})
})
