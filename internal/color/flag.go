package color

import "github.com/spf13/pflag"

var _ pflag.Value = (*Flag)(nil)

// Flag is an optional color flag value. Color is nil until Set succeeds.
type Flag struct {
	Color *RGB
}

func (f *Flag) String() string {
	if f.Color == nil {
		return ""
	}
	return f.Color.Hex()
}

func (f *Flag) Set(s string) error {
	c, err := Parse(s)
	if err != nil {
		return err
	}
	f.Color = &c
	return nil
}

func (f *Flag) Type() string { return "hex" }
