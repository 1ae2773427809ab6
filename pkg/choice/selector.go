package choice

import "strconv"

// Kind identifies the form of a Selector.
type Kind uint8

const (
	KindExact Kind = iota
	KindRange
	KindAtLeast
	KindAtMost
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindRange:
		return "range"
	case KindAtLeast:
		return "at_least"
	case KindAtMost:
		return "at_most"
	default:
		return "unknown"
	}
}

// Selector is a predicate over an integer value. The zero value is Exact(0).
type Selector struct {
	kind Kind
	min  int
	max  int
}

// Exact matches only n.
func Exact(n int) Selector {
	return Selector{kind: KindExact, min: n, max: n}
}

// Range matches min <= value <= max. It returns ErrInvalidRange unless min < max.
func Range(min, max int) (Selector, error) {
	if min >= max {
		return Selector{}, ErrInvalidRange
	}
	return Selector{kind: KindRange, min: min, max: max}, nil
}

// AtLeast matches value >= min.
func AtLeast(min int) Selector {
	return Selector{kind: KindAtLeast, min: min}
}

// AtMost matches value <= max.
func AtMost(max int) Selector {
	return Selector{kind: KindAtMost, max: max}
}

// Kind returns the selector form.
func (s Selector) Kind() Kind { return s.kind }

// Bounds returns the lower and upper bound. Unused bounds are zero.
func (s Selector) Bounds() (min, max int) { return s.min, s.max }

// Match reports whether value satisfies the selector.
func (s Selector) Match(value int) bool {
	switch s.kind {
	case KindExact:
		return value == s.min
	case KindRange:
		return s.min <= value && value <= s.max
	case KindAtLeast:
		return value >= s.min
	case KindAtMost:
		return value <= s.max
	default:
		return false
	}
}

// String renders the selector in pattern syntax, e.g. "{1}", "[2,5]", "[6,*]", "[*,-1]".
func (s Selector) String() string {
	switch s.kind {
	case KindRange:
		return "[" + strconv.Itoa(s.min) + "," + strconv.Itoa(s.max) + "]"
	case KindAtLeast:
		return "[" + strconv.Itoa(s.min) + ",*]"
	case KindAtMost:
		return "[*," + strconv.Itoa(s.max) + "]"
	default:
		return "{" + strconv.Itoa(s.min) + "}"
	}
}

func (s Selector) validate() error {
	if s.kind == KindRange && s.min >= s.max {
		return ErrInvalidRange
	}
	return nil
}
