package choice

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Choice pairs a Selector with the text shown when it matches.
type Choice struct {
	selector Selector
	text     string
}

// NewChoice validates the selector and returns an immutable Choice.
func NewChoice(sel Selector, text string) (Choice, error) {
	if err := sel.validate(); err != nil {
		return Choice{}, err
	}
	return Choice{selector: sel, text: text}, nil
}

// Selector returns the predicate governing the choice.
func (c Choice) Selector() Selector { return c.selector }

// Text returns the display text with the pattern removed.
func (c Choice) Text() string { return c.text }

// Match reports whether the choice applies to value.
func (c Choice) Match(value int) bool { return c.selector.Match(value) }

// String renders the choice as a message segment.
func (c Choice) String() string {
	return c.selector.String() + " " + c.text
}

type choiceJSON struct {
	Kind Kind   `json:"kind"`
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Text string `json:"text"`
}

func (c Choice) MarshalJSON() ([]byte, error) {
	return json.Marshal(choiceJSON{
		Kind: c.selector.kind,
		Min:  c.selector.min,
		Max:  c.selector.max,
		Text: c.text,
	})
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	var v choiceJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Kind > KindAtMost {
		return errors.Join(ErrPatternParse, errors.New("unknown selector kind "+strconv.Itoa(int(v.Kind))))
	}
	parsed, err := NewChoice(Selector{kind: v.Kind, min: v.Min, max: v.Max}, v.Text)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// pattern is one entry of the parser's priority list.
type pattern struct {
	re    *regexp.Regexp
	build func(groups []string) (Selector, error)
}

// Tried in order; the first form found anywhere in the segment wins.
var patterns = []pattern{
	{
		re: regexp.MustCompile(`\{(-?\d+)\}`),
		build: func(g []string) (Selector, error) {
			n, err := parseInt(g[1])
			if err != nil {
				return Selector{}, err
			}
			return Exact(n), nil
		},
	},
	{
		re: regexp.MustCompile(`\[(-?\d+),(-?\d+)\]`),
		build: func(g []string) (Selector, error) {
			lo, err := parseInt(g[1])
			if err != nil {
				return Selector{}, err
			}
			hi, err := parseInt(g[2])
			if err != nil {
				return Selector{}, err
			}
			// Validated in NewChoice.
			return Selector{kind: KindRange, min: lo, max: hi}, nil
		},
	},
	{
		re: regexp.MustCompile(`\[(-?\d+),\*\]`),
		build: func(g []string) (Selector, error) {
			n, err := parseInt(g[1])
			if err != nil {
				return Selector{}, err
			}
			return AtLeast(n), nil
		},
	},
	{
		re: regexp.MustCompile(`\[\*,(-?\d+)\]`),
		build: func(g []string) (Selector, error) {
			n, err := parseInt(g[1])
			if err != nil {
				return Selector{}, err
			}
			return AtMost(n), nil
		},
	},
}

// bracketed catches segments that start with a pattern-like group none of the forms accepted.
var bracketed = regexp.MustCompile(`^\s*(\{[^}]*\}|\[[^\]]*\])`)

// ParseChoice converts one message segment into a Choice. position is the
// segment's zero-based index in its message; a segment without a pattern
// becomes Exact(position) and keeps its text verbatim. The pattern may appear
// anywhere in the segment: "apples {1}" is Exact(1) with text "apples".
func ParseChoice(segment string, position int) (Choice, error) {
	for _, p := range patterns {
		loc := p.re.FindStringSubmatchIndex(segment)
		if loc == nil {
			continue
		}

		groups := make([]string, len(loc)/2)
		for i := range groups {
			groups[i] = segment[loc[2*i]:loc[2*i+1]]
		}

		sel, err := p.build(groups)
		if err != nil {
			return Choice{}, &ParseError{Segment: segment, Position: position, Err: err}
		}

		c, err := NewChoice(sel, strings.TrimSpace(p.re.ReplaceAllString(segment, "")))
		if err != nil {
			return Choice{}, &ParseError{Segment: segment, Position: position, Err: err}
		}
		return c, nil
	}

	if bracketed.MatchString(segment) {
		return Choice{}, &ParseError{Segment: segment, Position: position, Err: ErrPatternParse}
	}

	return Choice{selector: Exact(position), text: segment}, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Join(ErrPatternParse, err)
	}
	return n, nil
}
