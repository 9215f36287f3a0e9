package yamlfold

import "github.com/go-kit/log"

// Options controls folding and rendering. Options is a plain value: build
// one with DefaultOptions and adjust the copy.
type Options struct {
	// Width is both the folding threshold and the wrap column for folded
	// scalars and flow collections. A string longer than Width characters
	// is folded. The zero value folds every non-empty string, so start from
	// DefaultOptions. A negative Width folds every string and never wraps.
	Width int
	// Indent is the mapping indentation step. Zero keeps the input's step,
	// or two spaces when the input has no nested mapping to measure.
	Indent int
	// Sequences places block sequences nested under mapping keys.
	Sequences SequenceIndent
	// Palette names the colour scheme used when Color is set. Empty selects
	// "default"; "none" disables colouring.
	Palette string
	// Color enables ANSI highlighting of the output.
	Color bool
	// Logger receives debug output. Nil discards it.
	Logger log.Logger
}

// DefaultOptions returns the configuration used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Sequences: SequenceAuto,
		Palette:   paletteDefaultName,
	}
}

func (o Options) logger() log.Logger {
	if o.Logger == nil {
		return log.NewNopLogger()
	}
	return o.Logger
}
