package analysis

import (
	"fmt"
	"strings"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

func buildPrompt(entry *domain.SiteDiaryEntry, qual *domain.Qualification, candidates []domain.SuggestedAC) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Site: %s\n", entry.SiteName)
	fmt.Fprintf(&b, "Date: %s\n", entry.Date.Format("2006-01-02"))
	if len(entry.TasksCompleted) > 0 {
		fmt.Fprintf(&b, "Tasks completed: %s\n", strings.Join(entry.TasksCompleted, "; "))
	}
	if len(entry.SkillsPractised) > 0 {
		fmt.Fprintf(&b, "Skills practised: %s\n", strings.Join(entry.SkillsPractised, "; "))
	}
	if entry.WhatILearned != nil {
		fmt.Fprintf(&b, "What I learned: %s\n", *entry.WhatILearned)
	}

	var list strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&list, "- Unit %s (%s): %s\n", c.UnitCode, c.UnitTitle, c.ACText)
	}
	if list.Len() == 0 {
		list.WriteString("(none found, use your knowledge of the qualification)\n")
	}

	return fmt.Sprintf(`You are an assessor for UK electrical apprenticeships.

The apprentice is working towards %s (%s).

Diary entry:
%s
Candidate assessment criteria:
%s
Decide which assessment criteria this entry provides evidence for.

Output ONLY a valid JSON object matching this exact schema:
{
  "summary": "<one or two sentences describing the evidence>",
  "matches": [
    {"unit_code": "<unit code>", "ac_code": "<short AC code such as 2.3>", "ac_text": "<full criterion text>", "confidence": <0-100>}
  ]
}

Rules:
- Prefer criteria from the candidate list and copy their text exactly
- confidence is an integer from 0 to 100
- Return an empty matches array when nothing fits
- Output ONLY the JSON, no markdown, no explanations`, qual.Code, qual.Title, b.String(), list.String())
}
