package config

import (
	"sort"

	"github.com/san-kum/goool/internal/color"
)

// Theme pairs a live cell color with a background.
type Theme struct {
	Name  string
	Alive color.RGB
	Dead  color.RGB
}

// Available themes
var Themes = []Theme{
	{Name: "cyberpunk", Alive: color.MustParse("#ff00ff"), Dead: color.MustParse("#0a0a0a")},
	{Name: "retro", Alive: color.MustParse("#00ff00"), Dead: color.MustParse("#001100")},
	{Name: "minimal", Alive: color.MustParse("#ffffff"), Dead: color.MustParse("#000000")},
	{Name: "ocean", Alive: color.MustParse("#00a8cc"), Dead: color.MustParse("#001a33")},
	{Name: "sunset", Alive: color.MustParse("#ff6b6b"), Dead: color.MustParse("#2d1b2e")},
	{Name: "sand", Alive: color.MustParse("#e7c27d"), Dead: color.MustParse("#182020")},
}

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames returns the sorted theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	sort.Strings(names)
	return names
}
