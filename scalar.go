package yamlfold

import "strings"

// blockRepresentable reports whether value survives a round trip through a
// block scalar of the given style as the emitter writes it. Line breaks
// other than LF are normalised by parsers, spaces before a break or at the
// very end are not allowed, and block scalars cannot escape anything.
//
// The emitter only spells out the indentation of content starting with a
// space, and then relative to its own indentation step, so a first line
// starting with white space is refused. Folded content also refuses any
// line starting with white space, since the emitter wraps such lines and
// loses the breaks around them, and kept trailing breaks after text, which
// the emitter doubles.
func blockRepresentable(style Style, value string) bool {
	if value == "" || strings.HasSuffix(value, " ") || strings.Contains(value, " \n") {
		return false
	}
	for _, r := range value {
		if r == '\n' || r == '\t' {
			continue
		}
		if !printable(r) || r == '\r' || r == 0x85 || r == 0x2028 || r == 0x2029 {
			return false
		}
	}
	lines := strings.Split(value, "\n")
	if style == StyleFolded {
		for _, line := range lines {
			if startsBlank(line) {
				return false
			}
		}
		return !strings.HasSuffix(value, "\n\n") || strings.Trim(value, "\n") == ""
	}
	for _, line := range lines {
		if line != "" {
			return !startsBlank(line)
		}
	}
	return true
}

func startsBlank(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// printable is the YAML c-printable set minus the byte order mark.
func printable(r rune) bool {
	switch {
	case r == 0x0a, r == 0x85:
		return true
	case r >= 0x20 && r <= 0x7e:
		return true
	case r >= 0xa0 && r <= 0xd7ff:
		return true
	case r >= 0xe000 && r <= 0xfffd:
		return r != 0xfeff
	case r >= 0x10000 && r <= 0x10ffff:
		return true
	}
	return false
}
