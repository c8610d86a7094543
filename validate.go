// Winhex - hex dump viewer with search highlighting
// validate.go - Checks run against the loaded buffer before any output
// Dual-licensed under MIT and Apache 2.0

package main

import "fmt"

// ValidationError reports an offset that lies outside the buffer
type ValidationError struct {
	Offset int
	Size   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the file offset: %d, is too large, max size is: %d", e.Offset, e.Size)
}

// validateInput rejects configurations that cannot be rendered against buffer
func validateInput(args Args, buffer []byte) error {
	if args.Offset >= len(buffer) {
		return &ValidationError{Offset: args.Offset, Size: len(buffer)}
	}
	return nil
}
