package yamlfold

// Node is one of *Mapping, *Sequence, *Scalar or *Alias. The set is closed:
// every type switch over Node in this package lists all four and panics on
// anything else.
type Node interface {
	meta() *Meta
}

// Meta carries the presentation details the loader keeps for every node.
// Tag is only set when the source spelled the tag out; implicit tags are
// reflected in Scalar.Kind instead.
type Meta struct {
	Anchor      string
	Tag         string
	HeadComment string
	LineComment string
	FootComment string
	// EmptyLineBefore is set on block mapping keys and block sequence items
	// separated from what precedes them, head comment included, by an
	// empty line.
	EmptyLineBefore bool
	// Line and Column are 1-based source positions, zero for built nodes.
	Line   int
	Column int
}

func (m *Meta) meta() *Meta { return m }

// MetaOf returns the presentation details of n.
func MetaOf(n Node) *Meta {
	return n.meta()
}

// Mapping is an ordered set of key/value pairs.
type Mapping struct {
	Meta
	Flow  bool
	Pairs []Pair
}

// Pair is one mapping entry.
type Pair struct {
	Key   Node
	Value Node
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	Meta
	Flow  bool
	Items []Node
}

// Scalar is a leaf value. Value is the decoded text, never the source
// spelling, so Style can change without touching the data.
type Scalar struct {
	Meta
	Kind  ScalarKind
	Style Style
	Value string
}

// Alias refers back to an anchored node.
type Alias struct {
	Meta
	Name string
}

// Document is one YAML document of a stream. Root is nil for a document
// that holds nothing but comments.
type Document struct {
	HeadComment string
	FootComment string
	// Version is the %YAML directive, such as "1.2", or empty.
	Version string
	// Tags holds the %TAG directives in source order.
	Tags []TagDirective
	Root Node
}

// TagDirective is one %TAG line.
type TagDirective struct {
	Handle string
	Prefix string
}

// ScalarKind is the resolved type of a scalar.
type ScalarKind int

const (
	KindString ScalarKind = iota
	KindInt
	KindFloat
	KindBool
	KindNull
	KindTimestamp
	KindBinary
	KindMerge
	// KindTagged marks scalars carrying an application specific tag.
	KindTagged
)

var kindNames = [...]string{
	KindString:    "string",
	KindInt:       "int",
	KindFloat:     "float",
	KindBool:      "bool",
	KindNull:      "null",
	KindTimestamp: "timestamp",
	KindBinary:    "binary",
	KindMerge:     "merge",
	KindTagged:    "tagged",
}

func (k ScalarKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Style is the presentation of a scalar.
type Style int

const (
	StylePlain Style = iota
	StyleSingleQuoted
	StyleDoubleQuoted
	StyleLiteral
	StyleFolded
)

var styleNames = [...]string{
	StylePlain:        "plain",
	StyleSingleQuoted: "single-quoted",
	StyleDoubleQuoted: "double-quoted",
	StyleLiteral:      "literal",
	StyleFolded:       "folded",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "unknown"
	}
	return styleNames[s]
}

// IsBlock reports whether s is one of the block scalar styles.
func (s Style) IsBlock() bool {
	return s == StyleLiteral || s == StyleFolded
}
