package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"pkt.systems/yamlfold"
)

const usageWidth = 78

const description = `yamlfold reads a YAML stream from standard input and writes it to standard output with every string that contains a line break, or is longer than width characters, restyled as a folded block scalar (">"). Comments, key order, quoting, anchors and tags are kept, and the data loaded from the output equals the data loaded from the input. Width defaults to 88 and also sets the column folded text wraps at.`

type config struct {
	indent       int
	seqIndent    string
	color        bool
	noColor      bool
	palette      string
	listPalettes bool
	diff         bool
	check        bool
	verify       bool
	verbose      bool
	help         bool
}

func (c *config) registerFlags(f *pflag.FlagSet) {
	f.IntVar(&c.indent, "indent", 0, "mapping indentation step; 0 keeps the input's (2 when it has none)")
	f.StringVar(&c.seqIndent, "seq-indent", "auto", "block sequences under a key: auto, indented or compact")
	f.BoolVar(&c.color, "color", false, "colorize output even when stdout is not a TTY")
	f.BoolVar(&c.noColor, "no-color", false, "disable colorized output, even when writing to a TTY")
	f.StringVar(&c.palette, "palette", "default", "color palette (see --list-palettes)")
	f.BoolVar(&c.listPalettes, "list-palettes", false, "print the available palettes and exit")
	f.BoolVarP(&c.diff, "diff", "d", false, "print a diff between input and output instead of the output")
	f.BoolVarP(&c.check, "check", "c", false, "print nothing; exit 1 when the input is not already formatted")
	f.BoolVar(&c.verify, "verify", false, "fail unless the output loads to the same data as the input")
	f.BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
	f.BoolVarP(&c.help, "help", "h", false, "show help")
}

func (c *config) validate() error {
	if c.indent < 0 || c.indent > 9 {
		return errors.Errorf("--indent must be between 0 and 9, got %d", c.indent)
	}
	if c.color && c.noColor {
		return errors.New("--color and --no-color are mutually exclusive")
	}
	if c.diff && c.check {
		return errors.New("--diff and --check are mutually exclusive")
	}
	if _, err := yamlfold.ParseSequenceIndent(c.seqIndent); err != nil {
		return err
	}
	return yamlfold.CheckPalette(c.palette)
}

func (c *config) options(width int, color bool, logger log.Logger) yamlfold.Options {
	opts := yamlfold.DefaultOptions()
	opts.Width = width
	opts.Indent = c.indent
	opts.Sequences, _ = yamlfold.ParseSequenceIndent(c.seqIndent)
	opts.Palette = c.palette
	opts.Color = color
	opts.Logger = logger
	return opts
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	flagSet := pflag.NewFlagSet("yamlfold", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printUsage(stderr, flagSet) }
	cfg.registerFlags(flagSet)

	if err := flagSet.Parse(widthArgs(flagSet, args)); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "yamlfold: %s\n", err)
		printUsage(stderr, flagSet)
		return 2
	}
	if cfg.help {
		printUsage(stdout, flagSet)
		return 0
	}
	if cfg.listPalettes {
		for _, name := range yamlfold.PaletteNames() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "yamlfold: %s\n", err)
		return 2
	}

	width, err := yamlfold.ParseWidth(flagSet.Args())
	if err != nil {
		report(stderr, err)
		return 1
	}

	logger := newLogger(stderr, cfg.verbose)
	opts := cfg.options(width, useColor(&cfg, stdout), logger)

	in, err := io.ReadAll(stdin)
	if err != nil {
		report(stderr, errors.Wrap(err, "read input"))
		return 1
	}

	plain := opts
	plain.Color = false
	out, err := yamlfold.Format(in, plain)
	if err != nil {
		report(stderr, err)
		return 1
	}
	if cfg.verify {
		if err := yamlfold.Verify(in, out); err != nil {
			report(stderr, err)
			return 1
		}
		level.Debug(logger).Log("msg", "output verified")
	}

	switch {
	case cfg.check:
		if !bytes.Equal(in, out) {
			level.Info(logger).Log("msg", "input is not formatted", "width", width)
			return 1
		}
		return 0
	case cfg.diff:
		d, err := yamlfold.Diff("input", "formatted", in, out, opts)
		if err != nil {
			report(stderr, err)
			return 1
		}
		out = d
	case opts.Color:
		if out, err = yamlfold.Format(in, opts); err != nil {
			report(stderr, err)
			return 1
		}
	}

	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "yamlfold: write error: %v\n", err)
		return 1
	}
	return 0
}

func report(w io.Writer, err error) {
	var (
		argErr   *yamlfold.ArgumentError
		parseErr *yamlfold.ParseError
		serErr   *yamlfold.SerializeError
	)
	switch {
	case errors.As(err, &argErr):
		fmt.Fprintf(w, "yamlfold: %s\n", argErr)
	case errors.As(err, &parseErr):
		fmt.Fprintf(w, "yamlfold: <stdin>: %s\n", parseErr)
	case errors.As(err, &serErr):
		fmt.Fprintf(w, "yamlfold: %s\n", serErr)
	default:
		fmt.Fprintf(w, "yamlfold: %s\n", err)
	}
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	allow := level.AllowInfo()
	if verbose {
		allow = level.AllowDebug()
	}
	return level.NewFilter(log.With(logger, "caller", log.DefaultCaller), allow)
}

type fder interface {
	Fd() uintptr
}

func useColor(cfg *config, w io.Writer) bool {
	switch {
	case cfg.noColor:
		return false
	case cfg.color:
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// widthArgs moves negative integers given as the width behind "--" so the
// flag parser does not take them for shorthand flags. Values of flags that
// take one are left in place.
func widthArgs(f *pflag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return joinArgs(flags, append(positional, args[i+1:]...))
		case isNegativeInt(arg):
			positional = append(positional, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if takesValue(f, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	return joinArgs(flags, positional)
}

func joinArgs(flags, positional []string) []string {
	out := make([]string, 0, len(flags)+len(positional)+1)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeInt(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	_, err := strconv.Atoi(arg)
	return err == nil
}

// takesValue reports whether arg is a flag whose value is the next argument.
func takesValue(f *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var flag *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag = f.Lookup(name)
	} else if len(arg) == 2 {
		flag = f.ShorthandLookup(arg[1:])
	}
	return flag != nil && flag.NoOptDefVal == ""
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: yamlfold [flags] [width]\n\n%s\n\nA negative width never wraps; it may also be given after \"--\".\n\nFlags:\n%s",
		wordwrap.WrapString(description, usageWidth), flagSet.FlagUsagesWrapped(usageWidth))
}
