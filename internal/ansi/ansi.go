// Package ansi provides ANSI escape sequences and palette presets for YAML
// highlighting. The colour values are derived from pkt.systems/pslog/ansi
// (MIT License); only the data yamlfold renders is kept.
package ansi

// Base ANSI escape codes.
const (
	Reset         = "\x1b[0m"
	Bold          = "\x1b[1m"
	Faint         = "\x1b[90m"
	Red           = "\x1b[31m"
	Green         = "\x1b[32m"
	Yellow        = "\x1b[33m"
	Blue          = "\x1b[34m"
	Magenta       = "\x1b[35m"
	Cyan          = "\x1b[36m"
	BrightRed     = "\x1b[1;31m"
	BrightGreen   = "\x1b[1;32m"
	BrightBlue    = "\x1b[1;34m"
	BrightMagenta = "\x1b[1;35m"
)

// Palette assigns an escape sequence to each YAML token class. An empty
// field leaves that class uncoloured.
type Palette struct {
	// Key colours mapping keys.
	Key string
	// String, Num, Bool and Nil colour scalar values by resolved kind.
	String string
	Num    string
	Bool   string
	Nil    string
	// Indicator colours structural characters: ':', '-', '?', brackets,
	// braces, commas, block scalar headers and document markers.
	Indicator string
	// Comment colours '#' comments.
	Comment string
	// Anchor colours anchors, aliases and explicit tags.
	Anchor string
	// Added and Removed colour diff lines.
	Added   string
	Removed string
}

// PaletteJQDefault mirrors jq's default JQ_COLORS:
// 0;90:null, 0;39:false, 0;39:true, 0;39:numbers, 0;32:strings,
// 1;39:arrays, 1;39:objects, 1;34:keys.
var PaletteJQDefault = Palette{
	Key:       "\x1b[1;34m",
	String:    "\x1b[0;32m",
	Num:       "\x1b[0;39m",
	Bool:      "\x1b[0;39m",
	Nil:       "\x1b[0;90m",
	Indicator: "\x1b[1;39m",
	Comment:   "\x1b[0;90m",
	Anchor:    "\x1b[0;36m",
	Added:     Green,
	Removed:   Red,
}

// PaletteDefault is the pslog default (16-colour friendly).
var PaletteDefault = Palette{
	Key:       Cyan,
	String:    BrightBlue,
	Num:       Magenta,
	Bool:      Yellow,
	Nil:       Faint,
	Indicator: Faint,
	Comment:   Faint,
	Anchor:    BrightMagenta,
	Added:     BrightGreen,
	Removed:   BrightRed,
}

// PaletteOutrunElectric delivers an outrun electric palette with neon pinks and blues.
var PaletteOutrunElectric = Palette{
	Key:       "\x1b[38;5;201m",
	String:    "\x1b[38;5;81m",
	Num:       "\x1b[38;5;99m",
	Bool:      "\x1b[38;5;69m",
	Nil:       "\x1b[38;5;60m",
	Indicator: "\x1b[38;5;60m",
	Comment:   "\x1b[38;5;117m",
	Anchor:    "\x1b[38;5;33m",
	Added:     "\x1b[38;5;45m",
	Removed:   "\x1b[38;5;205m",
}

// PaletteDoomIosvkem mirrors doom-emacs' iosvkem theme with dusky oranges and seafoam greens.
var PaletteDoomIosvkem = Palette{
	Key:       "\x1b[38;5;222m",
	String:    "\x1b[38;5;216m",
	Num:       "\x1b[38;5;109m",
	Bool:      "\x1b[38;5;151m",
	Nil:       "\x1b[38;5;244m",
	Indicator: "\x1b[38;5;244m",
	Comment:   "\x1b[38;5;242m",
	Anchor:    "\x1b[38;5;114m",
	Added:     "\x1b[38;5;114m",
	Removed:   "\x1b[38;5;203m",
}

// PaletteDoomGruvbox echoes doom-gruvbox colours with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Key:       "\x1b[38;5;214m",
	String:    "\x1b[38;5;178m",
	Num:       "\x1b[38;5;108m",
	Bool:      "\x1b[38;5;142m",
	Nil:       "\x1b[38;5;101m",
	Indicator: "\x1b[38;5;101m",
	Comment:   "\x1b[38;5;137m",
	Anchor:    "\x1b[38;5;172m",
	Added:     "\x1b[38;5;107m",
	Removed:   "\x1b[38;5;167m",
}

// PaletteDoomDracula mirrors doom-dracula with pink, purple, and cyan accents.
var PaletteDoomDracula = Palette{
	Key:       "\x1b[38;5;219m",
	String:    "\x1b[38;5;141m",
	Num:       "\x1b[38;5;111m",
	Bool:      "\x1b[38;5;81m",
	Nil:       "\x1b[38;5;240m",
	Indicator: "\x1b[38;5;95m",
	Comment:   "\x1b[38;5;95m",
	Anchor:    "\x1b[38;5;147m",
	Added:     "\x1b[38;5;117m",
	Removed:   "\x1b[38;5;204m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Key:       "\x1b[38;5;153m",
	String:    "\x1b[38;5;152m",
	Num:       "\x1b[38;5;109m",
	Bool:      "\x1b[38;5;115m",
	Nil:       "\x1b[38;5;245m",
	Indicator: "\x1b[38;5;245m",
	Comment:   "\x1b[38;5;109m",
	Anchor:    "\x1b[38;5;110m",
	Added:     "\x1b[38;5;117m",
	Removed:   "\x1b[38;5;210m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues, violets, and warm highlights.
var PaletteTokyoNight = Palette{
	Key:       "\x1b[38;5;69m",
	String:    "\x1b[38;5;110m",
	Num:       "\x1b[38;5;176m",
	Bool:      "\x1b[38;5;117m",
	Nil:       "\x1b[38;5;244m",
	Indicator: "\x1b[38;5;244m",
	Comment:   "\x1b[38;5;109m",
	Anchor:    "\x1b[38;5;74m",
	Added:     "\x1b[38;5;111m",
	Removed:   "\x1b[38;5;210m",
}

// PaletteSolarizedNightfall adapts Solarized Night with teal highlights and amber warnings.
var PaletteSolarizedNightfall = Palette{
	Key:       "\x1b[38;5;37m",
	String:    "\x1b[38;5;86m",
	Num:       "\x1b[38;5;61m",
	Bool:      "\x1b[38;5;65m",
	Nil:       "\x1b[38;5;239m",
	Indicator: "\x1b[38;5;239m",
	Comment:   "\x1b[38;5;244m",
	Anchor:    "\x1b[38;5;33m",
	Added:     "\x1b[38;5;36m",
	Removed:   "\x1b[38;5;160m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha with soft pastels and rosewater highlights.
var PaletteCatppuccinMocha = Palette{
	Key:       "\x1b[38;5;217m",
	String:    "\x1b[38;5;183m",
	Num:       "\x1b[38;5;147m",
	Bool:      "\x1b[38;5;152m",
	Nil:       "\x1b[38;5;244m",
	Indicator: "\x1b[38;5;244m",
	Comment:   "\x1b[38;5;110m",
	Anchor:    "\x1b[38;5;182m",
	Added:     "\x1b[38;5;150m",
	Removed:   "\x1b[38;5;211m",
}

// PaletteGruvboxLight is a Gruvbox light variant with warm browns and turquoise hints.
var PaletteGruvboxLight = Palette{
	Key:       "\x1b[38;5;130m",
	String:    "\x1b[38;5;108m",
	Num:       "\x1b[38;5;66m",
	Bool:      "\x1b[38;5;142m",
	Nil:       "\x1b[38;5;180m",
	Indicator: "\x1b[38;5;180m",
	Comment:   "\x1b[38;5;180m",
	Anchor:    "\x1b[38;5;136m",
	Added:     "\x1b[38;5;73m",
	Removed:   "\x1b[38;5;167m",
}

// PaletteMonokaiVibrant supplies a Monokai-inspired mix of neon yellows and minty greens.
var PaletteMonokaiVibrant = Palette{
	Key:       "\x1b[38;5;229m",
	String:    "\x1b[38;5;121m",
	Num:       "\x1b[38;5;198m",
	Bool:      "\x1b[38;5;118m",
	Nil:       "\x1b[38;5;59m",
	Indicator: "\x1b[38;5;59m",
	Comment:   "\x1b[38;5;103m",
	Anchor:    "\x1b[38;5;141m",
	Added:     "\x1b[38;5;121m",
	Removed:   "\x1b[38;5;197m",
}

// PaletteOneDarkAurora reflects the One Dark Aurora theme with cyan, violet, and crimson tones.
var PaletteOneDarkAurora = Palette{
	Key:       "\x1b[38;5;110m",
	String:    "\x1b[38;5;147m",
	Num:       "\x1b[38;5;141m",
	Bool:      "\x1b[38;5;115m",
	Nil:       "\x1b[38;5;59m",
	Indicator: "\x1b[38;5;59m",
	Comment:   "\x1b[38;5;109m",
	Anchor:    "\x1b[38;5;75m",
	Added:     "\x1b[38;5;38m",
	Removed:   "\x1b[38;5;203m",
}

// PaletteSynthwave84 channels synthwave aesthetics with glowing magentas, cyans, and gold accents.
var PaletteSynthwave84 = Palette{
	Key:       "\x1b[38;5;198m",
	String:    "\x1b[38;5;51m",
	Num:       "\x1b[38;5;207m",
	Bool:      "\x1b[38;5;219m",
	Nil:       "\x1b[38;5;102m",
	Indicator: "\x1b[38;5;102m",
	Comment:   "\x1b[38;5;69m",
	Anchor:    "\x1b[38;5;45m",
	Added:     "\x1b[38;5;81m",
	Removed:   "\x1b[38;5;205m",
}
