package yamlfold

import (
	"errors"
)

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

// countingWriter records how many writes reached it.
type countingWriter struct {
	writes int
	n      int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	w.n += len(p)
	return len(p), nil
}

// bogus is a Node outside the closed set, for error paths.
type bogus struct {
	Meta
}

func str(value string) *Scalar {
	return &Scalar{Kind: KindString, Value: value}
}

func folded(value string) *Scalar {
	return &Scalar{Kind: KindString, Style: StyleFolded, Value: value}
}

func doc(root Node) []*Document {
	return []*Document{{Root: root}}
}
