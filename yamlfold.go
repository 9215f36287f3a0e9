package yamlfold

import (
	"io"
	"strconv"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"
)

// ParseWidth resolves the width from the positional command line arguments:
// none selects DefaultWidth, one must be an integer.
func ParseWidth(args []string) (int, error) {
	switch len(args) {
	case 0:
		return DefaultWidth, nil
	case 1:
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, &ArgumentError{Arg: args[0], Err: errors.New("width must be an integer")}
		}
		return width, nil
	}
	return 0, &ArgumentError{Arg: args[1], Err: errors.Errorf("expected at most one width argument, got %d", len(args))}
}

// Format loads in, folds every qualifying string scalar and renders the
// result. Input without any document, such as a file holding only
// comments, is returned unchanged.
func Format(in []byte, opts Options) ([]byte, error) {
	logger := opts.logger()
	docs, err := LoadBytes(in)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		level.Debug(logger).Log("msg", "no documents in input")
		return append([]byte(nil), in...), nil
	}
	for i, doc := range docs {
		level.Debug(logger).Log("msg", "folding document", "document", i, "scalars", countFolds(doc.Root, opts.Width))
	}
	return Marshal(FoldDocuments(docs, opts.Width), opts)
}

// FormatStream reads r to the end, formats it and writes the result to w.
// Nothing is written unless formatting succeeds.
func FormatStream(w io.Writer, r io.Reader, opts Options) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	out, err := Format(in, opts)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

// Verify checks that out holds the same data as in: the same number of
// documents, each with the same node structure, resolved tags, scalar
// values, anchors and aliases. Styles, comments and layout are ignored, and
// so is the spelling of null.
func Verify(in, out []byte) error {
	want, err := loadNodes(in, false)
	if err != nil {
		return err
	}
	got, err := loadNodes(out, false)
	if err != nil {
		return &SerializeError{Err: errors.Wrap(err, "reload output")}
	}
	if len(got) != len(want) {
		return &SerializeError{Err: errors.Errorf("output has %d documents, input has %d", len(got), len(want))}
	}
	for i := range want {
		if !sameData(want[i], got[i]) {
			return &SerializeError{Err: errors.Errorf("document %d: output data differs from input", i)}
		}
	}
	return nil
}

func sameData(a, b *yaml.Node) bool {
	if a.Kind != b.Kind || a.Anchor != b.Anchor || len(a.Content) != len(b.Content) {
		return false
	}
	switch a.Kind {
	case yaml.ScalarNode:
		if a.ShortTag() != b.ShortTag() {
			return false
		}
		return a.ShortTag() == "!!null" || a.Value == b.Value
	case yaml.AliasNode:
		return a.Value == b.Value
	case yaml.MappingNode, yaml.SequenceNode:
		if a.ShortTag() != b.ShortTag() {
			return false
		}
	}
	for i := range a.Content {
		if !sameData(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}
