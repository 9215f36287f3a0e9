package yamlfold

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the wrap column used when none is given.
const DefaultWidth = 88

// ShouldFold reports whether a string value qualifies for the folded block
// style: it spans lines, or it is longer than width. Length is counted in
// characters of the decoded value, so a value of exactly width characters
// stays as it is.
func ShouldFold(value string, width int) bool {
	return strings.Contains(value, "\n") || utf8.RuneCountInString(value) > width
}

// Fold returns n with every qualifying string scalar restyled as folded.
// Collections are rebuilt rather than modified, keys are left alone and
// every other node is returned as is, so n itself is never changed.
//
// Block scalars cannot appear inside flow collections, so a flow
// collection ending up with a folded value is switched to block style.
func Fold(n Node, width int) Node {
	switch v := n.(type) {
	case *Mapping:
		out := *v
		out.Pairs = make([]Pair, len(v.Pairs))
		for i, p := range v.Pairs {
			out.Pairs[i] = Pair{Key: p.Key, Value: Fold(p.Value, width)}
			if out.Flow && needsBlock(out.Pairs[i].Value) {
				out.Flow = false
			}
		}
		return &out
	case *Sequence:
		out := *v
		out.Items = make([]Node, len(v.Items))
		for i, item := range v.Items {
			out.Items[i] = Fold(item, width)
			if out.Flow && needsBlock(out.Items[i]) {
				out.Flow = false
			}
		}
		return &out
	case *Scalar:
		if v.Kind != KindString || v.Style == StyleFolded || !ShouldFold(v.Value, width) {
			return v
		}
		out := *v
		out.Style = StyleFolded
		return &out
	case *Alias:
		return v
	case nil:
		return nil
	}
	panic(fmt.Sprintf("yamlfold: unexpected node type %T", n))
}

// needsBlock reports whether n can only be written in block context.
func needsBlock(n Node) bool {
	switch v := n.(type) {
	case *Scalar:
		return v.Style.IsBlock() && blockRepresentable(v.Style, v.Value)
	case *Mapping:
		return !v.Flow && len(v.Pairs) > 0
	case *Sequence:
		return !v.Flow && len(v.Items) > 0
	}
	return false
}

// FoldDocuments applies Fold to the root of every document.
func FoldDocuments(docs []*Document, width int) []*Document {
	out := make([]*Document, len(docs))
	for i, d := range docs {
		folded := *d
		folded.Root = Fold(d.Root, width)
		out[i] = &folded
	}
	return out
}

// countFolds reports how many string scalars in n would be restyled by Fold.
func countFolds(n Node, width int) int {
	switch v := n.(type) {
	case *Mapping:
		total := 0
		for _, p := range v.Pairs {
			total += countFolds(p.Value, width)
		}
		return total
	case *Sequence:
		total := 0
		for _, item := range v.Items {
			total += countFolds(item, width)
		}
		return total
	case *Scalar:
		if v.Kind == KindString && v.Style != StyleFolded && ShouldFold(v.Value, width) {
			return 1
		}
		return 0
	case *Alias, nil:
		return 0
	}
	panic(fmt.Sprintf("yamlfold: unexpected node type %T", n))
}
