// Package choice parses and evaluates choice messages: pluralization-style
// text variants selected by a single integer.
//
// A message is split on "|" into segments. Each segment may carry a
// pattern, usually at its start, that decides when it applies:
//
//	{N}        value == N
//	[MIN,MAX]  MIN <= value <= MAX (MIN must be less than MAX)
//	[MIN,*]    value >= MIN
//	[*,MAX]    value <= MAX
//
// Integers are signed decimals. A segment without a pattern applies when the
// value equals the segment's position, so "none|one|two" works without any
// annotation.
//
// # Usage
//
//	set, err := choice.Parse("{0} zero|{1} one|[2,5] a few|[6,*] many")
//	if err != nil {
//		return err // ErrPatternParse or ErrInvalidRange
//	}
//	text, _ := set.Select(4) // "a few"
//
// # Selection
//
// Select scans choices in author order and returns the first match, so specific
// patterns must be written before broad ones. When nothing matches, the second
// choice is returned regardless of its selector. A Set with fewer than two
// choices and no match yields ErrNoFallbackChoice.
//
// Set and Choice are immutable and safe for concurrent use.
package choice
