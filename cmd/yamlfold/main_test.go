package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runWith(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

const longInput = "a: \"this is a very long single line string exceeding twenty chars\"\n"

func TestRunWidthArgument(t *testing.T) {
	t.Parallel()

	r := runWith(t, longInput, "20")
	require.Equal(t, 0, r.code, r.stderr)
	want := "a: >-\n" +
		"  this is a very long\n" +
		"  single line string exceeding\n" +
		"  twenty chars\n"
	assert.Equal(t, want, r.stdout)
	assert.Empty(t, r.stderr)
}

func TestRunNegativeWidth(t *testing.T) {
	t.Parallel()

	want := "a: >-\n  short\n"
	for _, args := range [][]string{
		{"-5"},
		{"--", "-5"},
		{"-v", "-5"},
		{"-5", "--indent", "2"},
		{"--indent", "2", "-5"},
	} {
		r := runWith(t, "a: short\n", args...)
		require.Equal(t, 0, r.code, "args %q: %s", args, r.stderr)
		assert.Equal(t, want, r.stdout, "args %q", args)
	}

	r := runWith(t, "a: 1\n", "--indent", "-1")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "--indent must be between 0 and 9")
}

func TestRunDefaultWidth(t *testing.T) {
	t.Parallel()

	r := runWith(t, longInput)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, longInput, r.stdout)

	r = runWith(t, "a: \"line one\\nline two\"\n")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a: >-\n  line one\n\n  line two\n", r.stdout)
}

func TestRunBadWidth(t *testing.T) {
	t.Parallel()

	r := runWith(t, longInput, "abc")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Equal(t, "yamlfold: invalid argument \"abc\": width must be an integer\n", r.stderr)

	r = runWith(t, longInput, "10", "20")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "at most one width argument")
}

func TestRunParseError(t *testing.T) {
	t.Parallel()

	r := runWith(t, "a: [1, 2\n")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.True(t, strings.HasPrefix(r.stderr, "yamlfold: <stdin>: parse document 0"), r.stderr)

	r = runWith(t, "a: 1\na: 2\n")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "duplicate key")
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	r := runWith(t, "a: 1\n", "--check")
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stdout)

	r = runWith(t, longInput, "-c", "20")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "input is not formatted")
}

func TestRunDiff(t *testing.T) {
	t.Parallel()

	r := runWith(t, "a: \"x\\ny\"\n", "--diff")
	require.Equal(t, 0, r.code, r.stderr)
	want := "--- input\n" +
		"+++ formatted\n" +
		"@@ -1 +1,4 @@\n" +
		"-a: \"x\\ny\"\n" +
		"+a: >-\n" +
		"+  x\n" +
		"+\n" +
		"+  y\n"
	assert.Equal(t, want, r.stdout)

	r = runWith(t, "a: 1\n", "-d")
	assert.Equal(t, 0, r.code)
	assert.Empty(t, r.stdout)
}

func TestRunVerifyAndVerbose(t *testing.T) {
	t.Parallel()

	r := runWith(t, longInput, "--verify", "-v", "20")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "a: >-\n")
	assert.Contains(t, r.stderr, "level=debug")
	assert.Contains(t, r.stderr, "output verified")
}

func TestRunLayoutFlags(t *testing.T) {
	t.Parallel()

	in := "outer:\n  items:\n    - \"x\\ny\"\n"
	r := runWith(t, in, "--indent", "4", "--seq-indent", "compact")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "outer:\n    items:\n      - >-\n        x\n\n        y\n", r.stdout)
}

func TestRunColor(t *testing.T) {
	t.Parallel()

	r := runWith(t, "a: 1\n", "--color")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "\x1b[")

	r = runWith(t, "a: 1\n", "--color", "--palette", "none")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a: 1\n", r.stdout)

	r = runWith(t, "a: 1\n", "--no-color")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Equal(t, "a: 1\n", r.stdout)

	r = runWith(t, "a: 1\n", "--check", "--color")
	assert.Equal(t, 0, r.code, "colour does not affect --check")
}

func TestRunListPalettes(t *testing.T) {
	t.Parallel()

	r := runWith(t, "", "--list-palettes")
	assert.Equal(t, 0, r.code)
	names := strings.Split(strings.TrimSpace(r.stdout), "\n")
	assert.Contains(t, names, "none")
	assert.Contains(t, names, "default")
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	r := runWith(t, "", "--help")
	assert.Equal(t, 0, r.code)
	assert.True(t, strings.HasPrefix(r.stdout, "Usage: yamlfold [flags] [width]\n"), r.stdout)
	assert.Contains(t, r.stdout, "--list-palettes")
	assert.Contains(t, r.stdout, `"--"`)
	assert.Empty(t, r.stderr)
}

func TestRunUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--bogus"}, "unknown flag: --bogus"},
		{"color conflict", []string{"--color", "--no-color"}, "mutually exclusive"},
		{"diff and check", []string{"--diff", "--check"}, "mutually exclusive"},
		{"indent range", []string{"--indent", "12"}, "--indent must be between 0 and 9"},
		{"palette", []string{"--palette", "mauve"}, `unknown palette "mauve"`},
		{"sequence indent", []string{"--seq-indent", "sideways"}, "unknown sequence indentation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runWith(t, "a: 1\n", tt.args...)
			assert.Equal(t, 2, r.code)
			assert.Empty(t, r.stdout)
			assert.Contains(t, r.stderr, tt.want)
		})
	}
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, errors.New("read err")
}

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("write err")
}

func TestRunIOErrors(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run(nil, errReader{}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "read input: read err")

	stderr.Reset()
	assert.Equal(t, 1, run(nil, strings.NewReader("a: 1\n"), errWriter{}, &stderr))
	assert.Contains(t, stderr.String(), "write error")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, useColor(&config{}, &buf))
	assert.True(t, useColor(&config{color: true}, &buf))
	assert.False(t, useColor(&config{noColor: true}, &buf))
}

func TestWidthArgs(t *testing.T) {
	var cfg config
	flagSet := pflag.NewFlagSet("yamlfold", pflag.ContinueOnError)
	cfg.registerFlags(flagSet)

	tests := []struct {
		args []string
		want []string
	}{
		{nil, []string{"--"}},
		{[]string{"20"}, []string{"--", "20"}},
		{[]string{"-5"}, []string{"--", "-5"}},
		{[]string{"-v", "-5"}, []string{"-v", "--", "-5"}},
		{[]string{"--indent", "4", "-5"}, []string{"--indent", "4", "--", "-5"}},
		{[]string{"--palette", "none", "-3"}, []string{"--palette", "none", "--", "-3"}},
		{[]string{"--indent=4", "-5"}, []string{"--indent=4", "--", "-5"}},
		{[]string{"-5", "--", "-x"}, []string{"--", "-5", "-x"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, widthArgs(flagSet, tt.args), "args %q", tt.args)
	}
}
