package choice

import (
	"errors"
	"fmt"
)

var (
	ErrPatternParse     = errors.New("choice: malformed pattern")
	ErrInvalidRange     = errors.New("choice: range minimum must be less than maximum")
	ErrNoSeparator      = errors.New("choice: message has no choice separator")
	ErrNoFallbackChoice = errors.New("choice: no choice matched and no fallback choice exists")
)

// ParseError describes a segment that could not be turned into a Choice.
type ParseError struct {
	Segment  string
	Position int
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("choice %d %q: %v", e.Position, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
