package yamlfold

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"pkt.systems/yamlfold/internal/ansi"
)

var yamlLexer = lexers.Get("yaml")

// colorize highlights rendered YAML with pal. Only escape sequences are
// added: stripping them gives text back. Text the lexer cannot handle is
// returned uncoloured.
func colorize(text []byte, pal ColorPalette) []byte {
	if len(text) == 0 || yamlLexer == nil {
		return text
	}
	it, err := yamlLexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, string(text))
	if err != nil {
		return text
	}
	var b bytes.Buffer
	b.Grow(2 * len(text))
	for tok := it(); tok != chroma.EOF; tok = it() {
		paint(&b, pal.token(tok), tok.Value)
	}
	if b.Len() < len(text) {
		return text
	}
	return b.Bytes()
}

// paint writes text with every line's content wrapped in color. Indentation,
// trailing blanks and line breaks stay outside the escapes.
func paint(b *bytes.Buffer, color, text string) {
	if color == "" {
		b.WriteString(text)
		return
	}
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		core := strings.TrimLeft(seg, " \t")
		b.WriteString(seg[:len(seg)-len(core)])
		trimmed := strings.TrimRight(core, " \t")
		if trimmed != "" {
			b.WriteString(color)
			b.WriteString(trimmed)
			b.WriteString(ansi.Reset)
		}
		b.WriteString(core[len(trimmed):])
	}
}

// token returns the escape sequence for a lexer token.
func (c ColorPalette) token(t chroma.Token) string {
	switch typ := t.Type; {
	case typ == chroma.NameTag:
		return c.Key
	case typ == chroma.CommentPreproc:
		return c.Anchor
	case typ.InCategory(chroma.Comment):
		return c.Comment
	case typ == chroma.KeywordConstant:
		if isNullWord(strings.TrimSpace(t.Value)) {
			return c.Null
		}
		return c.Bool
	case typ.InSubCategory(chroma.LiteralNumber):
		return c.Number
	case typ.InCategory(chroma.Literal):
		return c.String
	case typ == chroma.Punctuation, typ == chroma.NameNamespace:
		return c.Indicator
	case typ == chroma.Text:
		v := strings.TrimSpace(t.Value)
		switch {
		case isNullWord(v):
			return c.Null
		case strings.Trim(v, "-?{}") == "":
			return c.Indicator
		}
		return c.String
	}
	return ""
}

func isNullWord(s string) bool {
	switch s {
	case "~", "null", "Null", "NULL":
		return true
	}
	return false
}
