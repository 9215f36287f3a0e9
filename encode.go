package yamlfold

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"
)

// Marshal renders docs as a YAML stream.
func Marshal(docs []*Document, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, docs, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode renders docs to w. Scalar styles, comments, anchors, explicit tags,
// directives, collection styles, key order and the empty lines between
// block entries are taken from the tree. Folded scalars, plain and quoted
// scalars and flow collections wrap once past opts.Width. The output is
// produced in full before anything is written, so a failing tree writes
// nothing.
func Encode(w io.Writer, docs []*Document, opts Options) error {
	pal, err := resolvePalette(opts.Palette, opts.Color)
	if err != nil {
		return err
	}
	nodes := make([]*yaml.Node, len(docs))
	for i, doc := range docs {
		if doc == nil {
			return &SerializeError{Err: errors.Errorf("document %d is nil", i)}
		}
		if nodes[i], err = documentNode(doc); err != nil {
			return &SerializeError{Err: errors.Wrapf(err, "document %d", i)}
		}
	}
	layout := resolveLayout(opts, docs)
	level.Debug(opts.logger()).Log("msg", "encoding", "documents", len(docs), "indent", layout.Indent, "sequences", layout.Sequences, "width", opts.Width, "color", pal.enabled())

	buf := acquireBuffer()
	defer releaseBuffer(buf)
	dumpOpts := dumpOptions(opts.Width, layout)
	for i, doc := range docs {
		if err := writeDocument(buf, i, doc, nodes[i], dumpOpts); err != nil {
			return &SerializeError{Err: errors.Wrapf(err, "document %d", i)}
		}
	}
	out := buf.Bytes()
	if pal.enabled() {
		out = colorize(out, pal)
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

// dumpOptions maps the width and layout onto the dumper. The dumper only
// supports steps of 2 to 9 spaces, and wraps at 80 columns when the width
// is not larger than two steps. A negative width never wraps.
func dumpOptions(width int, l Layout) []yaml.Option {
	return []yaml.Option{
		yaml.WithIndent(min(max(l.Indent, 2), 9)),
		yaml.WithCompactSeqIndent(l.Sequences == SequenceCompact),
		yaml.WithLineWidth(width),
		yaml.WithUnicode(true),
	}
}

// writeDocument appends one document to buf. Documents after the first,
// documents with directives and empty documents get an explicit "---";
// directives after the first document are preceded by "...".
func writeDocument(buf *bytes.Buffer, i int, doc *Document, yn *yaml.Node, opts []yaml.Option) error {
	directives := doc.Version != "" || len(doc.Tags) > 0
	if directives {
		if i > 0 {
			buf.WriteString("...\n")
		}
		if doc.Version != "" {
			fmt.Fprintf(buf, "%%YAML %s\n", doc.Version)
		}
		for _, td := range doc.Tags {
			fmt.Fprintf(buf, "%%TAG %s %s\n", td.Handle, td.Prefix)
		}
	}
	if i > 0 || directives || isEmptyNode(doc.Root) {
		buf.WriteString("---\n")
	}
	out, err := yaml.Dump(yn, opts...)
	if err != nil {
		return err
	}
	buf.Write(restoreEmptyLines(doc.Root, out))
	return nil
}

// isEmptyNode reports whether n renders as nothing at all.
func isEmptyNode(n Node) bool {
	if n == nil {
		return true
	}
	s, ok := n.(*Scalar)
	if !ok {
		return false
	}
	return s.Style == StylePlain && s.Value == "" && s.Anchor == "" && s.Tag == "" &&
		s.HeadComment == "" && s.LineComment == "" && s.FootComment == ""
}

func documentNode(doc *Document) (*yaml.Node, error) {
	root, err := dumpNode(doc.Root, false, false)
	if err != nil {
		return nil, err
	}
	return &yaml.Node{
		Kind:        yaml.DocumentNode,
		HeadComment: doc.HeadComment,
		FootComment: doc.FootComment,
		Content:     []*yaml.Node{root},
	}, nil
}

var implicitTags = [...]string{
	KindString:    "!!str",
	KindInt:       "!!int",
	KindFloat:     "!!float",
	KindBool:      "!!bool",
	KindNull:      "!!null",
	KindTimestamp: "!!timestamp",
	KindBinary:    "!!binary",
	KindMerge:     "!!merge",
	KindTagged:    "",
}

// dumpNode converts n for the dumper. flow is set inside flow collections
// and key for mapping keys, where an empty null has to be spelled "~".
// Tags the source did not spell out are left for the dumper to drop again,
// which also quotes a plain string that would load as another type.
func dumpNode(n Node, flow, key bool) (*yaml.Node, error) {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: nullValue("", flow || key)}, nil
	}
	m := n.meta()
	yn := &yaml.Node{
		Anchor:      m.Anchor,
		HeadComment: m.HeadComment,
		LineComment: m.LineComment,
		FootComment: m.FootComment,
	}
	if m.Tag != "" {
		yn.Tag = m.Tag
		yn.Style |= yaml.TaggedStyle
	}

	switch v := n.(type) {
	case *Scalar:
		yn.Kind = yaml.ScalarNode
		yn.Value = v.Value
		if m.Tag == "" && int(v.Kind) >= 0 && int(v.Kind) < len(implicitTags) {
			yn.Tag = implicitTags[v.Kind]
		}
		if v.Kind == KindNull && v.Style == StylePlain {
			yn.Value = nullValue(v.Value, flow || key)
		}
		yn.Style |= dumpStyle(v)
	case *Alias:
		if v.Name == "" {
			return nil, errors.New("alias without anchor name")
		}
		yn.Kind = yaml.AliasNode
		yn.Value = v.Name
	case *Mapping:
		yn.Kind = yaml.MappingNode
		flow = flow || v.Flow
		if v.Flow {
			yn.Style |= yaml.FlowStyle
		}
		yn.Content = make([]*yaml.Node, 0, 2*len(v.Pairs))
		for _, p := range v.Pairs {
			if p.Key == nil {
				return nil, errors.New("mapping key is nil")
			}
			k, err := dumpNode(p.Key, flow, true)
			if err != nil {
				return nil, err
			}
			val, err := dumpNode(p.Value, flow, false)
			if err != nil {
				return nil, err
			}
			yn.Content = append(yn.Content, k, val)
		}
	case *Sequence:
		yn.Kind = yaml.SequenceNode
		flow = flow || v.Flow
		if v.Flow {
			yn.Style |= yaml.FlowStyle
		}
		yn.Content = make([]*yaml.Node, 0, len(v.Items))
		for _, item := range v.Items {
			if item == nil {
				return nil, errors.New("sequence item is nil")
			}
			c, err := dumpNode(item, flow, false)
			if err != nil {
				return nil, err
			}
			yn.Content = append(yn.Content, c)
		}
	default:
		return nil, errors.Errorf("unsupported node type %T", n)
	}
	return yn, nil
}

// nullValue keeps an empty null visible where the dumper would otherwise
// quote the empty string.
func nullValue(value string, visible bool) string {
	if value == "" && visible {
		return "~"
	}
	return value
}

// dumpStyle returns the dumper style for s. Block styles, and plain values
// spanning lines, fall back to double quotes when a block scalar would not
// load back to the same value.
func dumpStyle(s *Scalar) yaml.Style {
	switch s.Style {
	case StyleSingleQuoted:
		return yaml.SingleQuotedStyle
	case StyleDoubleQuoted:
		return yaml.DoubleQuotedStyle
	case StyleLiteral, StyleFolded:
		if !blockRepresentable(s.Style, s.Value) {
			return yaml.DoubleQuotedStyle
		}
		if s.Style == StyleFolded {
			return yaml.FoldedStyle
		}
		return yaml.LiteralStyle
	}
	if strings.Contains(s.Value, "\n") && !blockRepresentable(StyleLiteral, s.Value) {
		return yaml.DoubleQuotedStyle
	}
	return 0
}

// restoreEmptyLines puts back the empty lines recorded on the block
// entries of root into out, the dumped document holding root. The dumper
// writes no empty lines of its own except after foot comments, so an
// entry whose line, or head comment, already follows one is left alone.
func restoreEmptyLines(root Node, out []byte) []byte {
	if !hasEmptyLines(root) {
		return out
	}
	docs, err := loadNodes(out, false)
	if err != nil || len(docs) != 1 || len(docs[0].Content) == 0 {
		return out
	}
	marked := make(map[int]bool)
	markEmptyLines(root, docs[0].Content[0], marked)

	lines := strings.SplitAfter(string(out), "\n")
	insert := make(map[int]bool, len(marked))
	for line := range marked {
		if line < 2 || line > len(lines) {
			continue
		}
		start := commentBlockStart(lines, line-1)
		if start > 0 && !isEmptyLine(lines[start-1]) {
			insert[start] = true
		}
	}
	if len(insert) == 0 {
		return out
	}
	var b bytes.Buffer
	b.Grow(len(out) + len(insert))
	for i, line := range lines {
		if insert[i] {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	return b.Bytes()
}

func hasEmptyLines(n Node) bool {
	switch v := n.(type) {
	case *Mapping:
		for _, p := range v.Pairs {
			if p.Key != nil && p.Key.meta().EmptyLineBefore || hasEmptyLines(p.Value) {
				return true
			}
		}
	case *Sequence:
		for _, item := range v.Items {
			if item != nil && item.meta().EmptyLineBefore || hasEmptyLines(item) {
				return true
			}
		}
	}
	return false
}

// markEmptyLines records the output line of every flagged entry of n,
// walking yn, the reloaded output, alongside.
func markEmptyLines(n Node, yn *yaml.Node, marked map[int]bool) {
	switch v := n.(type) {
	case *Mapping:
		if yn.Kind != yaml.MappingNode || len(yn.Content) != 2*len(v.Pairs) {
			return
		}
		for i, p := range v.Pairs {
			if p.Key.meta().EmptyLineBefore {
				marked[yn.Content[2*i].Line] = true
			}
			markEmptyLines(p.Value, yn.Content[2*i+1], marked)
		}
	case *Sequence:
		if yn.Kind != yaml.SequenceNode || len(yn.Content) != len(v.Items) {
			return
		}
		for i, item := range v.Items {
			if item.meta().EmptyLineBefore {
				marked[yn.Content[i].Line] = true
			}
			markEmptyLines(item, yn.Content[i], marked)
		}
	}
}
