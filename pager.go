// Winhex - hex dump viewer with search highlighting
// pager.go - Continue/stop decision point between pages of output
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PagerState is the position of the pager in its render loop
type PagerState int

const (
	// StateRendering means rows may be printed
	StateRendering PagerState = iota
	// StateAwaitingContinue means a prompt was written and an answer is pending
	StateAwaitingContinue
	// StateStopped means the user declined or input ended; nothing more is printed
	StateStopped
)

func (s PagerState) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateAwaitingContinue:
		return "awaiting-continue"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Prompts
const (
	PromptNextRows  = "Show the next set of bytes [y/n]?"
	PromptNextMatch = "Show the next match [y/n]?"
)

// Pager asks the user whether to keep going once a page is full
type Pager struct {
	in    *bufio.Reader
	out   io.Writer
	state PagerState
}

// NewPager creates a pager reading answers from in and writing prompts to out
func NewPager(in io.Reader, out io.Writer) *Pager {
	return &Pager{in: bufio.NewReader(in), out: out, state: StateRendering}
}

// State returns the current pager state
func (p *Pager) State() PagerState {
	return p.state
}

// Pause writes prompt and blocks for one line of input. It returns true when
// the answer is y or yes (any case); any other answer, or end of input, stops
// the pager for good.
func (p *Pager) Pause(prompt string) bool {
	if p.state == StateStopped {
		return false
	}

	p.state = StateAwaitingContinue
	fmt.Fprintln(p.out, prompt)

	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		p.state = StateStopped
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		p.state = StateRendering
		return true
	default:
		p.state = StateStopped
		return false
	}
}
