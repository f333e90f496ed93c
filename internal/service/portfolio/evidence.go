package portfolio

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/elecmate/apprentice-backend/internal/domain"
)

const defaultPhotoType = "image/jpeg"

// buildItem maps a diary entry and its chosen criteria onto a new portfolio item.
func buildItem(entry *domain.SiteDiaryEntry, selected []domain.SuggestedAC) *domain.PortfolioItem {
	photos := photoMeta(entry.Photos)

	return &domain.PortfolioItem{
		Title:                 fmt.Sprintf("Site diary: %s (%s)", entry.SiteName, entry.Date.Format("2 Jan 2006")),
		Description:           describe(entry),
		Category:              domain.PortfolioCategorySiteDiary,
		SkillsDemonstrated:    append([]string{}, entry.SkillsPractised...),
		ReflectionNotes:       deref(entry.WhatILearned),
		AssessmentCriteriaMet: criteriaMet(selected),
		LearningOutcomesMet:   outcomesMet(selected),
		StorageURLs:           photos,
		Status:                domain.PortfolioStatusCompleted,
		DateCompleted:         entry.Date,
		EvidenceCount:         len(photos) + 1,
		Tags:                  []string{domain.PortfolioCategorySiteDiary},
		SourceDiaryID:         &entry.ID,
	}
}

func describe(entry *domain.SiteDiaryEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Work carried out at %s", entry.SiteName)
	if len(entry.TasksCompleted) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(entry.TasksCompleted, ", "))
	}
	b.WriteString(".")
	if entry.Supervisor != nil {
		fmt.Fprintf(&b, " Supervisor: %s.", *entry.Supervisor)
	}
	if entry.IssuesOrQuestions != nil {
		fmt.Fprintf(&b, " Issues raised: %s", *entry.IssuesOrQuestions)
	}
	return b.String()
}

func criteriaMet(selected []domain.SuggestedAC) []string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		out = append(out, fmt.Sprintf("Unit %s: %s", s.UnitCode, s.ACText))
	}
	return out
}

// outcomesMet de-duplicates learning outcome text, keeping first-seen order.
func outcomesMet(selected []domain.SuggestedAC) []string {
	out := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		lo := strings.TrimSpace(s.LOText)
		if lo == "" {
			continue
		}
		if _, ok := seen[lo]; ok {
			continue
		}
		seen[lo] = struct{}{}
		out = append(out, lo)
	}
	return out
}

// photoMeta derives a file name and MIME type from each photo URL.
func photoMeta(urls []string) []domain.PhotoMeta {
	out := make([]domain.PhotoMeta, 0, len(urls))
	for i, raw := range urls {
		name := ""
		if u, err := url.Parse(raw); err == nil {
			name = path.Base(u.Path)
		}
		if name == "" || name == "." || name == "/" {
			name = fmt.Sprintf("photo-%d", i+1)
		}

		typ := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
		if typ == "" {
			typ = defaultPhotoType
		}
		if semi := strings.IndexByte(typ, ';'); semi >= 0 {
			typ = typ[:semi]
		}

		out = append(out, domain.PhotoMeta{URL: raw, Name: name, Type: typ})
	}
	return out
}

// LinkedNotice is the success message shown after evidence is created.
func LinkedNotice(criteria int) domain.Notice {
	n := domain.Notice{Title: "Added to Portfolio", Variant: domain.NoticeDefault}
	switch {
	case criteria == 1:
		n.Description = "Linked to 1 assessment criterion"
	case criteria > 1:
		n.Description = fmt.Sprintf("Linked to %d assessment criteria", criteria)
	default:
		n.Description = "Diary entry saved as portfolio evidence"
	}
	return n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
