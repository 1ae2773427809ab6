package choice

import (
	"encoding/json"
	"slices"
	"strings"
)

// Separator splits a message into choice segments.
const Separator = "|"

// Set is an ordered list of choices parsed from one message.
// Order matters: Select returns the first match.
type Set struct {
	choices []Choice
}

// HasChoices reports whether message contains at least one separator.
func HasChoices(message string) bool {
	return strings.Contains(message, Separator)
}

// Parse splits message on Separator and parses every segment with its index.
// The first malformed segment aborts parsing; no choice is silently dropped.
func Parse(message string) (*Set, error) {
	if !HasChoices(message) {
		return nil, ErrNoSeparator
	}

	segments := strings.Split(message, Separator)
	choices := make([]Choice, 0, len(segments))
	for i, segment := range segments {
		c, err := ParseChoice(segment, i)
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}

	return &Set{choices: choices}, nil
}

// NewSet builds a Set from already constructed choices.
func NewSet(choices ...Choice) *Set {
	return &Set{choices: slices.Clone(choices)}
}

// Len returns the number of choices.
func (s *Set) Len() int { return len(s.choices) }

// Choices returns a copy of the choices in author order.
func (s *Set) Choices() []Choice { return slices.Clone(s.choices) }

// Select returns the text of the first choice matching value.
// When nothing matches, the second choice is returned whatever its selector.
func (s *Set) Select(value int) (string, error) {
	for _, c := range s.choices {
		if c.Match(value) {
			return c.text, nil
		}
	}
	if len(s.choices) < 2 {
		return "", ErrNoFallbackChoice
	}
	return s.choices[1].text, nil
}

// String renders the set back into message form using canonical patterns.
func (s *Set) String() string {
	parts := make([]string, len(s.choices))
	for i, c := range s.choices {
		parts[i] = c.String()
	}
	return strings.Join(parts, Separator)
}

func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.choices)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var choices []Choice
	if err := json.Unmarshal(data, &choices); err != nil {
		return err
	}
	s.choices = choices
	return nil
}
