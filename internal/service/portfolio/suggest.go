package portfolio

import (
	"strings"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

// ExtractKeywords returns the search keywords for an entry.
func (s *Service) ExtractKeywords(entry *domain.SiteDiaryEntry) []string {
	return entry.Keywords(s.opts.MinKeywordLen, s.opts.MaxKeywords)
}

// Preselect returns a copy of suggestions with the initial selection applied.
//
// With an analysis, matches at or above minConfidence select every suggestion
// with the same (unit code, AC text) or whose AC text contains the match's
// short AC code. If nothing ends up selected, or there is no analysis at all,
// the first fallback suggestions are selected instead.
func Preselect(suggestions []domain.SuggestedAC, analysis *domain.EntryAnalysis, minConfidence, fallback int) []domain.SuggestedAC {
	out := make([]domain.SuggestedAC, len(suggestions))
	copy(out, suggestions)
	for i := range out {
		out[i].Selected = false
	}

	selected := 0
	if analysis != nil {
		matches := analysis.ConfidentMatches(minConfidence)
		for i := range out {
			if matchesAny(out[i], matches) {
				out[i].Selected = true
				selected++
			}
		}
	}

	if selected == 0 {
		for i := 0; i < len(out) && i < fallback; i++ {
			out[i].Selected = true
		}
	}
	return out
}

func matchesAny(s domain.SuggestedAC, matches []domain.ACMatch) bool {
	for _, m := range matches {
		if s.UnitCode == m.UnitCode && s.ACText == m.ACText {
			return true
		}
		if m.ACCode != "" && strings.Contains(s.ACText, m.ACCode) {
			return true
		}
	}
	return false
}

// ToggleSuggestion flips the selection of suggestion i in place.
// It reports false when i is out of range.
func ToggleSuggestion(suggestions []domain.SuggestedAC, i int) bool {
	if i < 0 || i >= len(suggestions) {
		return false
	}
	suggestions[i].Selected = !suggestions[i].Selected
	return true
}

// SelectedOnly returns the selected suggestions in order.
func SelectedOnly(suggestions []domain.SuggestedAC) []domain.SuggestedAC {
	out := make([]domain.SuggestedAC, 0, len(suggestions))
	for _, s := range suggestions {
		if s.Selected {
			out = append(out, s)
		}
	}
	return out
}
