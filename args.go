// Winhex - hex dump viewer with search highlighting
// args.go - Command line parsing and flag conflict checks
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ColorMode controls when highlighted cells are styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	// ErrNoFile indicates that no input file was named
	ErrNoFile = errors.New("no input file given")

	// ErrConflictingFlags indicates that two mutually exclusive flags were both set
	ErrConflictingFlags = errors.New("conflicting flags")
)

// Args represents parsed command line arguments
type Args struct {
	File     string
	Width    int
	Height   int
	NoLimit  bool
	UTF8     bool
	Offset   int
	FindText string
	FindHex  string
	Format   InputFormat
	Color    ColorMode

	// Search is nil unless --find-text or --find-hex was given
	Search Matcher
}

// offsetValue parses decimal or 0x-prefixed hexadecimal byte offsets
type offsetValue int

func (o *offsetValue) String() string { return strconv.Itoa(int(*o)) }

func (o *offsetValue) Set(s string) error {
	n, err := parseOffset(s)
	if err != nil {
		return err
	}
	*o = offsetValue(n)
	return nil
}

func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	n, err := strconv.ParseUint(s, base, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return int(n), nil
}

func newFlagSet(args *Args) *flag.FlagSet {
	fs := flag.NewFlagSet("winhex", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&args.Width, "width", DefaultWidth, "bytes per row")
	fs.IntVar(&args.Height, "height", DefaultHeight, "rows per page, or rows of context per match")
	fs.BoolVar(&args.NoLimit, "no-limit", false, "dump the entire file without prompting")
	fs.BoolVar(&args.UTF8, "utf8", false, "show the hex columns only")
	fs.Var((*offsetValue)(&args.Offset), "offset", "starting byte offset (decimal or 0x hex)")
	fs.StringVar(&args.FindText, "find-text", "", "highlight occurrences of a text string")
	fs.StringVar(&args.FindHex, "find-hex", "", "highlight occurrences of hex byte values, e.g. \"de ad be ef\"")
	fs.StringVar((*string)(&args.Format), "format", string(FormatBinary), "input format: binary, hex, quoted or asciihex")
	fs.StringVar((*string)(&args.Color), "color", string(ColorAuto), "highlight styling: auto, always or never")

	return fs
}

// ParseArgs parses command line arguments; flags may appear before or after the file name
func ParseArgs(argv []string) (Args, error) {
	var args Args
	fs := newFlagSet(&args)

	rest := argv
	for {
		if err := fs.Parse(rest); err != nil {
			return Args{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		if args.File != "" {
			return Args{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
		}
		args.File = fs.Arg(0)
		rest = fs.Args()[1:]
	}

	if args.File == "" {
		return Args{}, ErrNoFile
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["height"] && set["no-limit"] {
		return Args{}, fmt.Errorf("%w: --height and --no-limit", ErrConflictingFlags)
	}
	if set["find-text"] && set["find-hex"] {
		return Args{}, fmt.Errorf("%w: --find-text and --find-hex", ErrConflictingFlags)
	}
	if args.UTF8 && (set["find-text"] || set["find-hex"]) {
		return Args{}, fmt.Errorf("%w: --utf8 cannot be combined with a search", ErrConflictingFlags)
	}

	if args.Width < 1 {
		return Args{}, fmt.Errorf("--width must be at least 1, got %d", args.Width)
	}
	if args.Height < 1 {
		return Args{}, fmt.Errorf("--height must be at least 1, got %d", args.Height)
	}
	if _, err := GetFormatDecoder(args.Format); err != nil {
		return Args{}, err
	}
	switch args.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Args{}, fmt.Errorf("invalid color mode '%s'. Must be one of: auto, always, never", args.Color)
	}

	switch {
	case set["find-text"]:
		args.Search = TextMatcher{Text: args.FindText}
	case set["find-hex"]:
		m, err := NewHexMatcher(args.FindHex)
		if err != nil {
			return Args{}, err
		}
		args.Search = m
	}

	return args, nil
}

// printUsage writes the usage text and flag defaults to w
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  winhex [flags] <file>")
	fmt.Fprintln(w, "Flags:")
	fs := newFlagSet(&Args{})
	fs.SetOutput(w)
	fs.PrintDefaults()
}
