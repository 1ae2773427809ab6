package choice_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/choice"
)

func TestSelectorMatch(t *testing.T) {
	t.Parallel()

	t.Run("exact matches only its value", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{-3, 0, 1, 42} {
			sel := choice.Exact(n)
			for v := -5; v <= 50; v++ {
				require.Equal(t, v == n, sel.Match(v), "Exact(%d).Match(%d)", n, v)
			}
		}
	})

	t.Run("range is inclusive on both ends", func(t *testing.T) {
		t.Parallel()
		sel, err := choice.Range(2, 5)
		require.NoError(t, err)
		for v := -2; v <= 8; v++ {
			require.Equal(t, v >= 2 && v <= 5, sel.Match(v), "value %d", v)
		}
	})

	t.Run("range rejects min >= max", func(t *testing.T) {
		t.Parallel()
		for _, tc := range [][2]int{{5, 2}, {3, 3}, {0, -1}} {
			_, err := choice.Range(tc[0], tc[1])
			require.ErrorIs(t, err, choice.ErrInvalidRange)
		}
	})

	t.Run("at least and at most", func(t *testing.T) {
		t.Parallel()
		atLeast := choice.AtLeast(-1)
		atMost := choice.AtMost(-1)
		for v := -10; v <= 10; v++ {
			require.Equal(t, v >= -1, atLeast.Match(v))
			require.Equal(t, v <= -1, atMost.Match(v))
		}
	})
}

func TestSelectorString(t *testing.T) {
	t.Parallel()

	rng, err := choice.Range(-2, 7)
	require.NoError(t, err)

	tests := []struct {
		name     string
		selector choice.Selector
		expected string
	}{
		{name: "exact", selector: choice.Exact(3), expected: "{3}"},
		{name: "negative exact", selector: choice.Exact(-1), expected: "{-1}"},
		{name: "range", selector: rng, expected: "[-2,7]"},
		{name: "at least", selector: choice.AtLeast(6), expected: "[6,*]"},
		{name: "at most", selector: choice.AtMost(-1), expected: "[*,-1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.selector.String())

			parsed, err := choice.ParseChoice(tt.selector.String()+" text", 9)
			require.NoError(t, err)
			require.Equal(t, tt.selector, parsed.Selector())
			require.Equal(t, "text", parsed.Text())
		})
	}
}

func TestParseChoice(t *testing.T) {
	t.Parallel()

	rng := func(lo, hi int) choice.Selector {
		s, err := choice.Range(lo, hi)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name     string
		segment  string
		position int
		selector choice.Selector
		text     string
	}{
		{name: "exact", segment: "{0} zero", selector: choice.Exact(0), text: "zero"},
		{name: "negative exact", segment: "{-4}minus four", selector: choice.Exact(-4), text: "minus four"},
		{name: "range", segment: "[2,5] between two and five", selector: rng(2, 5), text: "between two and five"},
		{name: "negative range", segment: "[-5,-2] below", selector: rng(-5, -2), text: "below"},
		{name: "at least", segment: "[6,*] greater than six", selector: choice.AtLeast(6), text: "greater than six"},
		{name: "at most", segment: "[*,-1]value is minus", selector: choice.AtMost(-1), text: "value is minus"},
		{name: "leading whitespace", segment: "  {1}  one  ", selector: choice.Exact(1), text: "one"},
		{name: "placeholder right after pattern", segment: "[3,5]:rank位(敢闘賞)", selector: rng(3, 5), text: ":rank位(敢闘賞)"},
		{name: "positional fallback", segment: "second", position: 1, selector: choice.Exact(1), text: "second"},
		{name: "positional keeps whitespace", segment: " two ", position: 2, selector: choice.Exact(2), text: " two "},
		{name: "pattern after text", segment: "zero {0}", position: 2, selector: choice.Exact(0), text: "zero"},
		{name: "pattern inside text", segment: "between [2,5] apples", selector: rng(2, 5), text: "between  apples"},
		{name: "at least after text", segment: "many [2,*]", position: 2, selector: choice.AtLeast(2), text: "many"},
		{name: "empty text", segment: "{7}", selector: choice.Exact(7), text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := choice.ParseChoice(tt.segment, tt.position)
			require.NoError(t, err)
			assert.Equal(t, tt.selector, c.Selector())
			assert.Equal(t, tt.text, c.Text())
		})
	}
}

func TestParseChoiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		err     error
	}{
		{name: "inverted range", segment: "[5,2] second choice", err: choice.ErrInvalidRange},
		{name: "empty range", segment: "[3,3] nothing", err: choice.ErrInvalidRange},
		{name: "two values in braces", segment: "{1,9}failed data", err: choice.ErrPatternParse},
		{name: "single value in brackets", segment: "[10]failed data 2", err: choice.ErrPatternParse},
		{name: "non numeric", segment: "{x} text", err: choice.ErrPatternParse},
		{name: "open on both ends", segment: "[*,*] all", err: choice.ErrPatternParse},
		{name: "spaces inside pattern", segment: "[2, 5] text", err: choice.ErrPatternParse},
		{name: "overflow", segment: "{99999999999999999999999} big", err: choice.ErrPatternParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := choice.ParseChoice(tt.segment, 1)
			require.ErrorIs(t, err, tt.err)

			var perr *choice.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.segment, perr.Segment)
			require.Equal(t, 1, perr.Position)
		})
	}
}

func TestNewChoice(t *testing.T) {
	t.Parallel()

	c, err := choice.NewChoice(choice.AtLeast(2), "many")
	require.NoError(t, err)
	require.True(t, c.Match(3))
	require.False(t, c.Match(1))
	require.Equal(t, "[2,*] many", c.String())
}

func TestChoiceJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes what it encodes", func(t *testing.T) {
		t.Parallel()
		original, err := choice.ParseChoice("[2,5] few", 0)
		require.NoError(t, err)

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded choice.Choice
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, original, decoded)
	})

	t.Run("rejects invalid range", func(t *testing.T) {
		t.Parallel()
		var decoded choice.Choice
		err := json.Unmarshal([]byte(`{"kind":1,"min":5,"max":2,"text":"x"}`), &decoded)
		require.ErrorIs(t, err, choice.ErrInvalidRange)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()
		var decoded choice.Choice
		err := json.Unmarshal([]byte(`{"kind":9,"min":0,"max":0,"text":"x"}`), &decoded)
		require.ErrorIs(t, err, choice.ErrPatternParse)
	})
}
