package yamlfold

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"pkt.systems/yamlfold/internal/ansi"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// Diff returns a unified line diff from before to after, labelled with the
// given names, or nil when both are equal. With opts.Color set, added and
// removed lines are coloured from opts.Palette.
func Diff(beforeName, afterName string, before, after []byte, opts Options) ([]byte, error) {
	if bytes.Equal(before, after) {
		return nil, nil
	}
	pal, err := resolvePalette(opts.Palette, opts.Color)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []diffLine
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			lines = append(lines, diffLine{op: d.Type, text: text})
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeName, afterName)
	for _, h := range hunks(lines) {
		writeHunk(&buf, lines, h, pal)
	}
	return buf.Bytes(), nil
}

// splitLines splits s after every line break. A final line without a break
// is marked the way diff(1) marks it.
func splitLines(s string) []string {
	var out []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			out = append(out, s+"\n\\ No newline at end of file")
			break
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
	return out
}

type hunk struct {
	start, end int // lines[start:end]
}

// hunks groups changed lines with their context, merging groups whose
// context overlaps.
func hunks(lines []diffLine) []hunk {
	var out []hunk
	for i, l := range lines {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		start := max(i-diffContext, 0)
		end := min(i+1+diffContext, len(lines))
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, end)
			continue
		}
		out = append(out, hunk{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, lines []diffLine, h hunk, pal ColorPalette) {
	// 1-based line numbers of the hunk's first line on each side
	oldLine, newLine := 1, 1
	for _, l := range lines[:h.start] {
		if l.op != diffmatchpatch.DiffInsert {
			oldLine++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newLine++
		}
	}
	oldCount, newCount := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != diffmatchpatch.DiffInsert {
			oldCount++
		}
		if l.op != diffmatchpatch.DiffDelete {
			newCount++
		}
	}
	header := fmt.Sprintf("@@ -%s +%s @@", hunkRange(oldLine, oldCount), hunkRange(newLine, newCount))
	writeColored(buf, pal.Indicator, header)

	for _, l := range lines[h.start:h.end] {
		switch l.op {
		case diffmatchpatch.DiffDelete:
			writeColored(buf, pal.Removed, "-"+l.text)
		case diffmatchpatch.DiffInsert:
			writeColored(buf, pal.Added, "+"+l.text)
		default:
			writeColored(buf, "", " "+l.text)
		}
	}
}

func hunkRange(line, count int) string {
	if count == 0 {
		line--
	}
	if count == 1 {
		return fmt.Sprint(line)
	}
	return fmt.Sprintf("%d,%d", line, count)
}

func writeColored(buf *bytes.Buffer, color, line string) {
	if color != "" {
		buf.WriteString(color)
		buf.WriteString(line)
		buf.WriteString(ansi.Reset)
	} else {
		buf.WriteString(line)
	}
	buf.WriteByte('\n')
}
