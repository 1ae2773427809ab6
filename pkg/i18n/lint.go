package i18n

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/lingo/pkg/choice"
)

// LintIssue reports a choice message that fails to parse.
type LintIssue[L comparable] struct {
	Err  error
	Key  string
	Lang L
}

func (li LintIssue[L]) String() string {
	return fmt.Sprintf("%s [%v]: %v", li.Key, li.Lang, li.Err)
}

// Lint parses every choice message in db and reports the failures ordered by
// key and language.
func Lint[L comparable](db *MapDatabase[L]) []LintIssue[L] {
	var issues []LintIssue[L]

	for _, key := range db.Keys() {
		rec, _ := db.Record(key)

		var found []LintIssue[L]
		for lang, text := range rec.All() {
			if !choice.HasChoices(text) {
				continue
			}
			if _, err := choice.Parse(text); err != nil {
				found = append(found, LintIssue[L]{Key: key, Lang: lang, Err: err})
			}
		}
		slices.SortFunc(found, func(a, b LintIssue[L]) int {
			return strings.Compare(fmt.Sprint(a.Lang), fmt.Sprint(b.Lang))
		})
		issues = append(issues, found...)
	}

	return issues
}
