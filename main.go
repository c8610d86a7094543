// Winhex - hex dump viewer with search highlighting
// main.go - Main entry point
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes one invocation and returns the process exit status.
// Unreadable files and bad offsets are reported and end the run normally.
func run(argv []string, stdin io.Reader, stdout io.Writer) int {
	args, err := ParseArgs(argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return 0
		}
		fmt.Fprintf(stdout, "Error: %v\n", err)
		printUsage(stdout)
		return 2
	}

	buffer, err := LoadBuffer(args.File, args.Format)
	if err != nil {
		fmt.Fprintf(stdout, "File \"%s\" could not be read successfully: %v\n", args.File, err)
		return 0
	}

	if err := validateInput(args, buffer); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 0
	}

	doc := &Document{Buffer: buffer, Args: args, Style: NewHighlightStyle(args.Color)}
	doc.Print(stdout, NewPager(stdin, stdout))
	return 0
}
