package yamlfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detect(t *testing.T, in string) Layout {
	t.Helper()
	docs, err := LoadBytes([]byte(in))
	require.NoError(t, err)
	return DetectLayout(docs)
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Layout
	}{
		{"flat", "a: 1\nb: 2\n", Layout{Indent: 2, Sequences: SequenceIndented}},
		{"two spaces", "a:\n  b: 1\n", Layout{Indent: 2, Sequences: SequenceIndented}},
		{"four spaces", "a:\n    b: 1\n", Layout{Indent: 4, Sequences: SequenceIndented}},
		{"compact sequence", "a:\n- 1\n", Layout{Indent: 2, Sequences: SequenceCompact}},
		{"sequence step without mappings", "a:\n    - 1\n", Layout{Indent: 4, Sequences: SequenceIndented}},
		{"mapping step wins", "a:\n    - 1\nb:\n  c: 1\n", Layout{Indent: 2, Sequences: SequenceIndented}},
		{"inside sequence items", "- a:\n      b: 1\n", Layout{Indent: 4, Sequences: SequenceIndented}},
		{"flow is ignored", "a: {b: 1}\nc: [1]\n", Layout{Indent: 2, Sequences: SequenceIndented}},
		{"later document", "a: 1\n---\nb:\n   c: 1\n", Layout{Indent: 3, Sequences: SequenceIndented}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detect(t, tt.in))
		})
	}
}

func TestDetectLayoutBuiltTree(t *testing.T) {
	root := &Mapping{Pairs: []Pair{{Key: str("a"), Value: &Mapping{Pairs: []Pair{{Key: str("b"), Value: str("c")}}}}}}
	assert.Equal(t, Layout{Indent: 2, Sequences: SequenceIndented}, DetectLayout([]*Document{nil, {Root: root}}))
}

func TestDetectLayoutNilKeys(t *testing.T) {
	inner := &Mapping{Pairs: []Pair{{Key: nil, Value: str("c")}}}
	root := &Mapping{Pairs: []Pair{
		{Key: nil, Value: str("v")},
		{Key: &Scalar{Kind: KindString, Value: "a", Meta: Meta{Line: 1, Column: 1}}, Value: inner},
	}}
	assert.NotPanics(t, func() {
		assert.Equal(t, Layout{Indent: 2, Sequences: SequenceIndented}, DetectLayout(doc(root)))
	})
}

func TestResolveLayout(t *testing.T) {
	docs, err := LoadBytes([]byte("a:\n    b:\n    - 1\n"))
	require.NoError(t, err)

	assert.Equal(t, Layout{Indent: 4, Sequences: SequenceCompact}, resolveLayout(Options{}, docs))
	assert.Equal(t, Layout{Indent: 2, Sequences: SequenceCompact}, resolveLayout(Options{Indent: 2}, docs))
	assert.Equal(t, Layout{Indent: 4, Sequences: SequenceIndented}, resolveLayout(Options{Sequences: SequenceIndented}, docs))
	assert.Equal(t, Layout{Indent: 3, Sequences: SequenceIndented}, resolveLayout(Options{Indent: 3, Sequences: SequenceIndented}, nil))
}

func TestParseSequenceIndent(t *testing.T) {
	for name, want := range map[string]SequenceIndent{
		"":         SequenceAuto,
		"auto":     SequenceAuto,
		"Indented": SequenceIndented,
		"indent":   SequenceIndented,
		" compact": SequenceCompact,
	} {
		got, err := ParseSequenceIndent(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseSequenceIndent("sideways")
	require.Error(t, err)

	for _, s := range []SequenceIndent{SequenceAuto, SequenceIndented, SequenceCompact} {
		got, err := ParseSequenceIndent(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	assert.Equal(t, "unknown", SequenceIndent(42).String())
}
