package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

func TestReplace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		params   []i18n.Param
		expected string
	}{
		{
			name:     "no placeholders",
			text:     "Hello, World!",
			params:   []i18n.Param{i18n.P("name", "John")},
			expected: "Hello, World!",
		},
		{
			name:     "no params",
			text:     "Hello, :name!",
			expected: "Hello, :name!",
		},
		{
			name:     "single placeholder",
			text:     "Hello, :name!",
			params:   []i18n.Param{i18n.P("name", "John")},
			expected: "Hello, John!",
		},
		{
			name:     "repeated placeholder",
			text:     ":n + :n = :sum",
			params:   []i18n.Param{i18n.P("n", 2), i18n.P("sum", 4)},
			expected: "2 + 2 = 4",
		},
		{
			name:     "unbound placeholder remains unchanged",
			text:     "Hello, :name! Your ID is :id.",
			params:   []i18n.Param{i18n.P("name", "Bob")},
			expected: "Hello, Bob! Your ID is :id.",
		},
		{
			name:     "longest name wins",
			text:     "value1 = :value1, value = :value",
			params:   []i18n.Param{i18n.P("value", "a"), i18n.P("value1", "b")},
			expected: "value1 = b, value = a",
		},
		{
			name:     "name followed by letters",
			text:     ":rankth",
			params:   []i18n.Param{i18n.P("rank", 4)},
			expected: "4th",
		},
		{
			name:     "name followed by non-ascii text",
			text:     ":rank位(敢闘賞)",
			params:   []i18n.Param{i18n.P("rank", 3)},
			expected: "3位(敢闘賞)",
		},
		{
			name:     "values are not rescanned",
			text:     ":a and :b",
			params:   []i18n.Param{i18n.P("a", ":b"), i18n.P("b", "B")},
			expected: ":b and B",
		},
		{
			name:     "last duplicate wins",
			text:     "x = :x",
			params:   []i18n.Param{i18n.P("x", 1), i18n.P("x", 2)},
			expected: "x = 2",
		},
		{
			name:     "empty name is ignored",
			text:     "a : b",
			params:   []i18n.Param{i18n.P("", "nope")},
			expected: "a : b",
		},
		{
			name:     "lone colons",
			text:     "time: 12:30 :",
			params:   []i18n.Param{i18n.P("time", "t")},
			expected: "time: 12:30 :",
		},
		{
			name:     "various value types",
			text:     ":i :f :b :nil",
			params:   []i18n.Param{i18n.P("i", 42), i18n.P("f", 123.45), i18n.P("b", true), i18n.P("nil", nil)},
			expected: "42 123.45 true <nil>",
		},
		{
			name:     "placeholder at end",
			text:     "Total: :count",
			params:   []i18n.Param{i18n.P("count", 7)},
			expected: "Total: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.Replace(tt.text, tt.params...))
		})
	}
}

func TestReplaceIdempotentWithoutPlaceholders(t *testing.T) {
	t.Parallel()

	params := []i18n.Param{i18n.P("value", "v")}
	once := i18n.Replace("argument replace test value = :value", params...)
	require.Equal(t, once, i18n.Replace(once, params...))
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	params := i18n.FromMap(i18n.M{"b": 2, "a": 1, "c": 3})
	require.Equal(t, []i18n.Param{i18n.P("a", 1), i18n.P("b", 2), i18n.P("c", 3)}, params)
	require.Empty(t, i18n.FromMap(nil))
}
