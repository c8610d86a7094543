// Winhex - hex dump viewer with search highlighting
// matcher.go - Text and hex byte-sequence matchers
// Dual-licensed under MIT and Apache 2.0

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Matcher locates pattern occurrences in a buffer
type Matcher interface {
	// MatchPattern returns every occurrence in ascending offset order
	MatchPattern(buffer []byte) []MatchRange
	// HighlightLocation reports the columns this matcher's hits mark
	HighlightLocation() HighlightLocation
}

// TextMatcher finds an exact, case-sensitive byte substring
type TextMatcher struct {
	Text string
}

// MatchPattern finds every occurrence of the UTF-8 bytes of Text
func (m TextMatcher) MatchPattern(buffer []byte) []MatchRange {
	return findAll(buffer, []byte(m.Text))
}

// HighlightLocation marks the decoded text column only
func (m TextMatcher) HighlightLocation() HighlightLocation {
	return LocationText
}

// HexMatcher finds a contiguous sequence of byte values
type HexMatcher struct {
	Values []byte
}

// NewHexMatcher parses a hex pattern such as "de ad be ef" into a HexMatcher
func NewHexMatcher(pattern string) (HexMatcher, error) {
	values, err := ParseHexValues(pattern)
	if err != nil {
		return HexMatcher{}, err
	}
	return HexMatcher{Values: values}, nil
}

// MatchPattern finds every occurrence of Values
func (m HexMatcher) MatchPattern(buffer []byte) []MatchRange {
	return findAll(buffer, m.Values)
}

// HighlightLocation marks the hex byte column only
func (m HexMatcher) HighlightLocation() HighlightLocation {
	return LocationData
}

// findAll reports each start position where needle occurs, overlaps included.
// An empty needle matches nothing.
func findAll(buffer, needle []byte) []MatchRange {
	var matches []MatchRange
	if len(needle) == 0 {
		return matches
	}

	for start := 0; start+len(needle) <= len(buffer); {
		i := bytes.Index(buffer[start:], needle)
		if i < 0 {
			break
		}
		matches = append(matches, MatchRange{Offset: start + i, Length: len(needle)})
		start += i + 1
	}

	return matches
}

// ParseHexValues parses byte pairs separated by whitespace or commas.
// Each token may carry a 0x prefix and hold several pairs ("dead", "0xbe").
func ParseHexValues(pattern string) ([]byte, error) {
	tokens := strings.FieldsFunc(pattern, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty hex pattern")
	}

	var values []byte
	for i, token := range tokens {
		digits := token
		if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
			digits = digits[2:]
		}
		if len(digits)%2 != 0 {
			return nil, fmt.Errorf("invalid hex value %q at position %d: odd number of digits", token, i)
		}

		decoded, err := hex.DecodeString(digits)
		if err != nil {
			return nil, fmt.Errorf("invalid hex value %q at position %d: %v", token, i, err)
		}
		values = append(values, decoded...)
	}

	return values, nil
}
