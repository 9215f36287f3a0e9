package yamlfold

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"
)

// Load reads r to the end and parses every document in it. Nothing is
// returned unless the whole stream parses.
func Load(r io.Reader) ([]*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return LoadBytes(data)
}

// LoadBytes parses every document in data. Comments, key order, anchors,
// explicit tags, directives, scalar styles and the empty lines between
// block entries are kept on the returned tree.
func LoadBytes(data []byte) ([]*Document, error) {
	nodes, err := loadNodes(data, true)
	if err != nil {
		return nil, err
	}
	c := converter{lines: strings.Split(string(data), "\n")}
	var (
		docs    []*Document
		pending *yaml.Stream
	)
	for _, yn := range nodes {
		if yn.Kind == yaml.StreamNode {
			pending = yn.Stream
			continue
		}
		doc, err := c.document(yn)
		if err != nil {
			return nil, err
		}
		directives(doc, pending)
		pending = nil
		docs = append(docs, doc)
		c.doc++
	}
	return docs, nil
}

// loadNodes returns the raw node of every document in data. With streams
// set the stream nodes carrying the directives of the next document are
// returned as well.
func loadNodes(data []byte, streams bool) ([]*yaml.Node, error) {
	opts := []yaml.Option{yaml.WithUniqueKeys(true)}
	if streams {
		opts = append(opts, yaml.WithStreamNodes(true))
	}
	loader, err := yaml.NewLoader(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create loader")
	}
	var nodes []*yaml.Node
	doc := 0
	for {
		var yn yaml.Node
		err := loader.Load(&yn)
		if errors.Is(err, io.EOF) {
			return nodes, nil
		}
		if err != nil {
			return nil, newParseError(doc, err)
		}
		if yn.Kind != yaml.StreamNode {
			doc++
		}
		nodes = append(nodes, &yn)
	}
}

func directives(doc *Document, s *yaml.Stream) {
	if s == nil {
		return
	}
	if s.Version != nil {
		doc.Version = fmt.Sprintf("%d.%d", s.Version.Major, s.Version.Minor)
	}
	for _, td := range s.TagDirectives {
		doc.Tags = append(doc.Tags, TagDirective{Handle: td.Handle, Prefix: td.Prefix})
	}
}

type converter struct {
	doc   int
	lines []string
}

func (c *converter) document(yn *yaml.Node) (*Document, error) {
	if yn.Kind != yaml.DocumentNode {
		root, err := c.node(yn)
		if err != nil {
			return nil, err
		}
		return &Document{Root: root}, nil
	}
	d := &Document{HeadComment: yn.HeadComment, FootComment: yn.FootComment}
	if len(yn.Content) > 0 {
		root, err := c.node(yn.Content[0])
		if err != nil {
			return nil, err
		}
		d.Root = root
	}
	return d, nil
}

func (c *converter) node(yn *yaml.Node) (Node, error) {
	m := Meta{
		Anchor:      yn.Anchor,
		HeadComment: yn.HeadComment,
		LineComment: yn.LineComment,
		FootComment: yn.FootComment,
		Line:        yn.Line,
		Column:      yn.Column,
	}
	if yn.Style&yaml.TaggedStyle != 0 {
		m.Tag = yn.Tag
	}

	switch yn.Kind {
	case yaml.MappingNode:
		flow := yn.Style&yaml.FlowStyle != 0
		mp := &Mapping{Meta: m, Flow: flow, Pairs: make([]Pair, 0, len(yn.Content)/2)}
		seen := make(map[string]struct{}, len(yn.Content)/2)
		for i := 0; i+1 < len(yn.Content); i += 2 {
			kn := yn.Content[i]
			if id, ok := keyIdentity(kn); ok {
				if _, dup := seen[id]; dup {
					return nil, &ParseError{Doc: c.doc, Line: kn.Line, Err: errors.Errorf("duplicate key %q", kn.Value)}
				}
				seen[id] = struct{}{}
			}
			k, err := c.node(kn)
			if err != nil {
				return nil, err
			}
			if !flow {
				k.meta().EmptyLineBefore = c.emptyLineBefore(kn.Line)
			}
			v, err := c.node(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			mp.Pairs = append(mp.Pairs, Pair{Key: k, Value: v})
		}
		return mp, nil
	case yaml.SequenceNode:
		flow := yn.Style&yaml.FlowStyle != 0
		seq := &Sequence{Meta: m, Flow: flow, Items: make([]Node, 0, len(yn.Content))}
		for _, item := range yn.Content {
			n, err := c.node(item)
			if err != nil {
				return nil, err
			}
			if !flow {
				n.meta().EmptyLineBefore = c.emptyLineBefore(item.Line)
			}
			seq.Items = append(seq.Items, n)
		}
		return seq, nil
	case yaml.ScalarNode:
		return &Scalar{Meta: m, Kind: kindOf(yn), Style: styleOf(yn.Style), Value: yn.Value}, nil
	case yaml.AliasNode:
		return &Alias{Meta: m, Name: yn.Value}, nil
	}
	return nil, &ParseError{Doc: c.doc, Line: yn.Line, Err: errors.Errorf("unexpected node kind %d", yn.Kind)}
}

func (c *converter) emptyLineBefore(line int) bool {
	if line < 1 || line > len(c.lines) {
		return false
	}
	start := commentBlockStart(c.lines, line-1)
	return start > 0 && isEmptyLine(c.lines[start-1])
}

// commentBlockStart returns the index of the first line of the comment
// block directly above lines[i], written at the same indentation, or i when
// there is none.
func commentBlockStart(lines []string, i int) int {
	indent := leadingSpaces(lines[i])
	for i > 0 {
		prev := lines[i-1]
		if leadingSpaces(prev) != indent || !strings.HasPrefix(prev[indent:], "#") {
			break
		}
		i--
	}
	return i
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func isEmptyLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// keyIdentity returns a comparable identity for scalar keys, built from the
// decoded value so that spellings of the same value ("0x10" and "16", "~"
// and "null") collide. Merge keys may repeat and are skipped.
func keyIdentity(kn *yaml.Node) (string, bool) {
	if kn.Kind != yaml.ScalarNode || kn.ShortTag() == "!!merge" {
		return "", false
	}
	var v any
	if err := kn.Decode(&v); err != nil {
		return "", false
	}
	return fmt.Sprintf("%s\x00%T\x00%v", kn.ShortTag(), v, v), true
}

func kindOf(yn *yaml.Node) ScalarKind {
	switch yn.ShortTag() {
	case "!!str":
		return KindString
	case "!!int":
		return KindInt
	case "!!float":
		return KindFloat
	case "!!bool":
		return KindBool
	case "!!null":
		return KindNull
	case "!!timestamp":
		return KindTimestamp
	case "!!binary":
		return KindBinary
	case "!!merge":
		return KindMerge
	}
	return KindTagged
}

func styleOf(s yaml.Style) Style {
	switch {
	case s&yaml.DoubleQuotedStyle != 0:
		return StyleDoubleQuoted
	case s&yaml.SingleQuotedStyle != 0:
		return StyleSingleQuoted
	case s&yaml.LiteralStyle != 0:
		return StyleLiteral
	case s&yaml.FoldedStyle != 0:
		return StyleFolded
	}
	return StylePlain
}
