package yamlfold

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v4"
)

// ArgumentError reports an unusable command line argument.
type ArgumentError struct {
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// ParseError reports input that is not well-formed YAML. Doc is the
// zero-based index of the failing document in the stream and Line the
// 1-based input line, or 0 when the parser did not report one.
type ParseError struct {
	Doc  int
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse document %d: line %d: %v", e.Doc, e.Line, e.Err)
	}
	return fmt.Sprintf("parse document %d: %v", e.Doc, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SerializeError reports a tree that cannot be rendered.
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize: %v", e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

var yamlLineRE = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)

// newParseError keeps the line of a loader error as a field. Errors that
// carry no position are kept as they are, unless their text uses the
// "yaml: line N: msg" form.
func newParseError(doc int, err error) *ParseError {
	var le *yaml.LoadError
	if errors.As(err, &le) && le.Mark.Line > 0 {
		msg := le.Message
		if le.ContextMsg != "" {
			msg = le.ContextMsg + ": " + msg
		}
		return &ParseError{Doc: doc, Line: le.Mark.Line, Err: errors.New(msg)}
	}
	m := yamlLineRE.FindStringSubmatch(err.Error())
	if m == nil {
		return &ParseError{Doc: doc, Err: err}
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return &ParseError{Doc: doc, Err: err}
	}
	return &ParseError{Doc: doc, Line: line, Err: errors.New(m[2])}
}
