package yamlfold

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/yamlfold/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName:    ansi.PaletteJQDefault,
	"jq":                  ansi.PaletteJQDefault,
	"catppuccin-mocha":    ansi.PaletteCatppuccinMocha,
	"doom-dracula":        ansi.PaletteDoomDracula,
	"doom-gruvbox":        ansi.PaletteDoomGruvbox,
	"doom-iosvkem":        ansi.PaletteDoomIosvkem,
	"doom-nord":           ansi.PaletteDoomNord,
	"gruvbox-light":       ansi.PaletteGruvboxLight,
	"monokai-vibrant":     ansi.PaletteMonokaiVibrant,
	"one-dark-aurora":     ansi.PaletteOneDarkAurora,
	"outrun-electric":     ansi.PaletteOutrunElectric,
	"solarized-nightfall": ansi.PaletteSolarizedNightfall,
	"synthwave84":         ansi.PaletteSynthwave84,
	"tokyo-night":         ansi.PaletteTokyoNight,
	"default-16":          ansi.PaletteDefault, // pslog classic
	"classic":             ansi.PaletteDefault, // pslog classic
	"pslog":               ansi.PaletteDefault,
}

// ColorPalette holds the escape sequences wrapped around each token class
// of the output. The zero value prints without colour.
type ColorPalette struct {
	Key       string
	String    string
	Number    string
	Bool      string
	Null      string
	Indicator string
	Comment   string
	Anchor    string
	Added     string
	Removed   string
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// CheckPalette reports whether name is a known palette.
func CheckPalette(name string) error {
	_, err := resolvePalette(name, false)
	return err
}

// resolvePalette returns the ColorPalette for name, defaulting to
// paletteDefaultName when name is empty. The special palette name "none"
// disables colouring. If enableColor is false we return a no-color palette
// regardless of the selection (still validating the name).
func resolvePalette(name string, enableColor bool) (ColorPalette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = paletteDefaultName
	}

	if name == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[name]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(), nil
	}
	return colorPaletteFromAnsi(ap), nil
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	indicator := ap.Indicator
	if indicator == "" {
		indicator = ap.Nil
	}
	comment := ap.Comment
	if comment == "" {
		comment = indicator
	}

	return ColorPalette{
		Key:       ap.Key,
		String:    ap.String,
		Number:    ap.Num,
		Bool:      ap.Bool,
		Null:      ap.Nil,
		Indicator: indicator,
		Comment:   comment,
		Anchor:    ap.Anchor,
		Added:     ap.Added,
		Removed:   ap.Removed,
	}
}

// NoColorPalette disables all styling while keeping the rendering path shared.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

func (c ColorPalette) enabled() bool {
	return c != ColorPalette{}
}
