package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keywords returns search words drawn from the entry's tasks, skills and
// learning note, in that order: lower-cased, split on anything that is not a
// letter or digit, at least minLen runes long, de-duplicated keeping the first
// occurrence, and capped at max words. The result is never nil.
func (e *SiteDiaryEntry) Keywords(minLen, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{})

	add := func(text string) bool {
		words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, w := range words {
			if len(out) >= max {
				return false
			}
			if utf8.RuneCountInString(w) < minLen {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
		return len(out) < max
	}

	sources := make([]string, 0, len(e.TasksCompleted)+len(e.SkillsPractised)+1)
	sources = append(sources, e.TasksCompleted...)
	sources = append(sources, e.SkillsPractised...)
	if e.WhatILearned != nil {
		sources = append(sources, *e.WhatILearned)
	}

	for _, s := range sources {
		if !add(s) {
			break
		}
	}
	return out
}
