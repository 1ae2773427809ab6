package i18n

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// M is a convenience map for building parameters, see FromMap.
type M map[string]any

// Param binds a value to a ":name" placeholder.
type Param struct {
	Name  string
	Value any
}

// P creates a Param.
func P(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// FromMap converts m into params ordered by name.
func FromMap(m M) []Param {
	params := make([]Param, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		params = append(params, Param{Name: name, Value: m[name]})
	}
	return params
}

// Replace substitutes ":name" placeholders in text with the string form of
// the bound values.
//
// The text is scanned once. At every ':' the longest bound name that prefixes
// the following text wins, so ":value1" prefers "value1" over "value". Names
// match as prefixes, not as whole identifier tokens: with only "rank" bound,
// ":rankth" renders as "4th" for rank 4. Replacement output is never
// rescanned, and for duplicate names the last binding wins. Unbound
// placeholders are kept.
//
// Example:
//
//	Replace("value = :value", P("value", 10)) // "value = 10"
func Replace(text string, params ...Param) string {
	if len(params) == 0 || !strings.Contains(text, ":") {
		return text
	}

	values := make(map[string]string, len(params))
	names := make([]string, 0, len(params))
	for _, p := range params {
		if p.Name == "" {
			continue
		}
		if _, ok := values[p.Name]; !ok {
			names = append(names, p.Name)
		}
		values[p.Name] = fmt.Sprint(p.Value)
	}
	if len(names) == 0 {
		return text
	}

	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	var b strings.Builder
	b.Grow(len(text))

	for {
		i := strings.IndexByte(text, ':')
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}

		b.WriteString(text[:i])
		rest := text[i+1:]

		matched := false
		for _, name := range names {
			if strings.HasPrefix(rest, name) {
				b.WriteString(values[name])
				text = rest[len(name):]
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(':')
			text = rest
		}
	}
}
