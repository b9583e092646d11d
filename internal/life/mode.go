package life

import (
	"fmt"

	"github.com/san-kum/goool/internal/terminal"
	"github.com/spf13/pflag"
)

// Mode selects how many cells are packed into one terminal character.
type Mode int

const (
	// Big draws one cell as two characters.
	Big Mode = iota
	// Small draws two vertically stacked cells per character.
	Small
	// Braille draws a 2x4 block of cells per character.
	Braille
)

var _ pflag.Value = (*Mode)(nil)

var modeNames = map[Mode]string{
	Big:     "big",
	Small:   "small",
	Braille: "braille",
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{Big, Small, Braille}
}

// ParseMode looks up a mode by its flag name.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *Mode) Type() string { return "cell-type" }

// Dimensions returns the grid width and height that fill a terminal of the
// given size in mode m.
func Dimensions(size terminal.Size, m Mode) (width, height int) {
	w, h := size.Width, size.Height
	switch m {
	case Big:
		return w / 2, h
	case Small:
		return w, h * 2
	case Braille:
		return w * 2, h * 4
	default:
		panic(fmt.Sprintf("life: invalid mode %d", int(m)))
	}
}
