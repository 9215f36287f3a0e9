package yamlfold

import (
	"fmt"
	"strings"
)

// SequenceIndent selects where a block sequence nested under a mapping key
// places its dashes.
type SequenceIndent int

const (
	// SequenceAuto follows the input, falling back to SequenceIndented.
	SequenceAuto SequenceIndent = iota
	// SequenceIndented indents the dashes one step past the key.
	SequenceIndented
	// SequenceCompact counts "- " as part of the indentation, so with a
	// two space step the dashes sit in the key's column.
	SequenceCompact
)

func (s SequenceIndent) String() string {
	switch s {
	case SequenceAuto:
		return "auto"
	case SequenceIndented:
		return "indented"
	case SequenceCompact:
		return "compact"
	}
	return "unknown"
}

// ParseSequenceIndent parses the names returned by SequenceIndent.String.
func ParseSequenceIndent(name string) (SequenceIndent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return SequenceAuto, nil
	case "indented", "indent":
		return SequenceIndented, nil
	case "compact":
		return SequenceCompact, nil
	}
	return SequenceAuto, fmt.Errorf("unknown sequence indentation %q (use one of: auto, indented, compact)", name)
}

const defaultIndent = 2

// Layout is the resolved block indentation used when dumping.
type Layout struct {
	// Indent is the mapping indentation step, always at least 1. Steps
	// outside 2 to 9 are clamped when dumping.
	Indent int
	// Sequences is never SequenceAuto.
	Sequences SequenceIndent
}

// DetectLayout infers the indentation step and sequence placement from the
// source positions recorded on docs. Trees without positions, or without a
// nested block collection to measure, yield two spaces and indented
// sequences. Sequences count as compact when their dashes sit left of one
// full step past the key, where "- " is taken as part of the indentation.
func DetectLayout(docs []*Document) Layout {
	var d detector
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		d.walk(doc.Root)
		if d.done() {
			break
		}
	}
	l := Layout{Indent: d.step, Sequences: SequenceIndented}
	if l.Indent <= 0 {
		l.Indent = defaultIndent
		if d.seqSeen && d.seqOffset > 0 {
			l.Indent = d.seqOffset
		}
	}
	if d.seqSeen && d.seqOffset < l.Indent {
		l.Sequences = SequenceCompact
	}
	return l
}

// resolveLayout applies explicit options over the detected layout.
func resolveLayout(opts Options, docs []*Document) Layout {
	l := Layout{Indent: opts.Indent, Sequences: opts.Sequences}
	if l.Indent > 0 && l.Sequences != SequenceAuto {
		return l
	}
	detected := DetectLayout(docs)
	if l.Indent <= 0 {
		l.Indent = detected.Indent
	}
	if l.Sequences == SequenceAuto {
		l.Sequences = detected.Sequences
	}
	return l
}

type detector struct {
	step int
	// seqOffset is how far right of its key the first nested block
	// sequence puts its dashes.
	seqOffset int
	seqSeen   bool
}

func (d *detector) done() bool {
	return d.step > 0 && d.seqSeen
}

func (d *detector) walk(n Node) {
	if d.done() {
		return
	}
	switch v := n.(type) {
	case *Mapping:
		if v.Flow {
			return
		}
		for _, p := range v.Pairs {
			d.pair(p)
			d.walk(p.Value)
			if d.done() {
				return
			}
		}
	case *Sequence:
		if v.Flow {
			return
		}
		for _, item := range v.Items {
			d.walk(item)
			if d.done() {
				return
			}
		}
	}
}

func (d *detector) pair(p Pair) {
	if p.Key == nil {
		return
	}
	k := MetaOf(p.Key)
	if k.Line == 0 {
		return
	}
	switch v := p.Value.(type) {
	case *Mapping:
		if v.Flow || len(v.Pairs) == 0 || v.Pairs[0].Key == nil || d.step > 0 {
			return
		}
		first := MetaOf(v.Pairs[0].Key)
		if first.Line > k.Line && first.Column > k.Column {
			d.step = first.Column - k.Column
		}
	case *Sequence:
		if v.Flow || len(v.Items) == 0 || d.seqSeen || v.Line <= k.Line || v.Column < k.Column {
			return
		}
		d.seqOffset = v.Column - k.Column
		d.seqSeen = true
	}
}
