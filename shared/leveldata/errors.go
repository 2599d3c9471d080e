package leveldata

import (
	"errors"
	"fmt"
)

// ErrMalformedLevel matches every MalformedLevelError via errors.Is.
var ErrMalformedLevel = errors.New("malformed level")

// MalformedLevelError describes why a map was rejected. Line and Column are
// zero-based; they are -1 when the problem has no single location.
type MalformedLevelError struct {
	Reason string
	Line   int
	Column int
	Char   rune
}

func (e *MalformedLevelError) Error() string {
	switch {
	case e.Char != 0:
		return fmt.Sprintf("malformed level: %s '%c' at %d, %d", e.Reason, e.Char, e.Column, e.Line)
	case e.Line >= 0:
		return fmt.Sprintf("malformed level: %s (line %d)", e.Reason, e.Line+1)
	}
	return "malformed level: " + e.Reason
}

func (e *MalformedLevelError) Is(target error) bool {
	return target == ErrMalformedLevel
}

func malformed(reason string) *MalformedLevelError {
	return &MalformedLevelError{Reason: reason, Line: -1, Column: -1}
}
