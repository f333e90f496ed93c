// Package sheet drives the diary entry detail sheet: a single-goroutine state
// machine over one entry covering the two-tap delete and the
// add-to-portfolio workflow. A Sheet must not be shared between goroutines.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elecmate/apprentice-backend/internal/domain"
	"github.com/elecmate/apprentice-backend/internal/service/portfolio"
)

// State is the sheet's current mode.
type State int

const (
	Viewing State = iota
	DeleteArmed
	Searching
	Picking
	Creating
	Linked
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case DeleteArmed:
		return "delete_armed"
	case Searching:
		return "searching"
	case Picking:
		return "picking"
	case Creating:
		return "creating"
	case Linked:
		return "linked"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when an action is not allowed in the
// current state.
var ErrInvalidTransition = errors.New("sheet: invalid transition")

// ErrDeleted is returned for any action after the entry was deleted.
var ErrDeleted = errors.New("sheet: entry deleted")

type workflow interface {
	StartAddToPortfolio(ctx context.Context, entryID uuid.UUID) (*portfolio.StartResult, error)
	CreateFromEntry(ctx context.Context, input portfolio.CreateInput) (*portfolio.CreateResult, error)
}

// DeleteFunc removes the entry. It is called at most once per armed sheet.
type DeleteFunc func(ctx context.Context, entryID uuid.UUID) error

// Sheet is the detail sheet for one diary entry.
type Sheet struct {
	entry    *domain.SiteDiaryEntry
	flow     workflow
	onDelete DeleteFunc

	phase       State
	armed       bool
	deleted     bool
	suggestions []domain.SuggestedAC
	notice      *domain.Notice
}

// New creates a sheet for entry. flow and onDelete may be nil for a
// read-only sheet.
func New(entry *domain.SiteDiaryEntry, flow workflow, onDelete DeleteFunc) *Sheet {
	s := &Sheet{
		entry:    entry,
		flow:     flow,
		onDelete: onDelete,
		phase:    Viewing,
	}
	if entry.IsLinked() {
		s.phase = Linked
	}
	return s
}

// State returns the current state. An armed delete is reported over the
// resting Viewing or Linked state.
func (s *Sheet) State() State {
	if s.armed {
		return DeleteArmed
	}
	return s.phase
}

// Entry returns the entry as the sheet currently sees it.
func (s *Sheet) Entry() *domain.SiteDiaryEntry { return s.entry }

// Suggestions returns the picker list. It is empty outside Picking.
func (s *Sheet) Suggestions() []domain.SuggestedAC { return s.suggestions }

// Notice returns the last toast raised by an action, if any.
func (s *Sheet) Notice() *domain.Notice { return s.notice }

// TapDelete arms the delete on the first tap. A second tap while armed calls
// the delete function exactly once and disarms, whatever its result.
// It reports whether the entry was deleted.
func (s *Sheet) TapDelete(ctx context.Context) (bool, error) {
	if s.deleted {
		return false, ErrDeleted
	}
	if s.phase != Viewing && s.phase != Linked {
		return false, fmt.Errorf("%w: delete while %s", ErrInvalidTransition, s.phase)
	}

	if !s.armed {
		s.armed = true
		return false, nil
	}

	s.armed = false
	if s.onDelete == nil {
		return false, fmt.Errorf("%w: sheet is read-only", ErrInvalidTransition)
	}
	if err := s.onDelete(ctx, s.entry.ID); err != nil {
		s.notice = errorNotice("Failed to delete diary entry")
		return false, err
	}

	s.deleted = true
	s.notice = &domain.Notice{Title: "Entry deleted", Description: "Diary entry removed", Variant: domain.NoticeDefault}
	return true, nil
}

// Close resets an armed delete.
func (s *Sheet) Close() {
	s.armed = false
}

// TapAddToPortfolio starts the workflow. It lands in Picking when suggestions
// are offered, or Linked when the item was created straight away.
// On failure the sheet stays in Viewing.
func (s *Sheet) TapAddToPortfolio(ctx context.Context) error {
	if err := s.ready(Viewing); err != nil {
		return err
	}

	s.armed = false
	s.phase = Searching
	res, err := s.flow.StartAddToPortfolio(ctx, s.entry.ID)
	if err != nil {
		s.phase = Viewing
		s.notice = failureNotice(err)
		return err
	}

	switch res.Stage {
	case portfolio.StageCreated:
		s.link(res.Created)
	default:
		s.suggestions = res.Suggestions
		s.phase = Picking
	}
	return nil
}

// Toggle flips suggestion i while picking.
func (s *Sheet) Toggle(i int) error {
	if err := s.ready(Picking); err != nil {
		return err
	}
	if !portfolio.ToggleSuggestion(s.suggestions, i) {
		return fmt.Errorf("%w: suggestion %d out of range", ErrInvalidTransition, i)
	}
	return nil
}

// Confirm creates the portfolio item from the selected suggestions.
// On failure the sheet returns to Picking with the selection intact.
func (s *Sheet) Confirm(ctx context.Context) error {
	if err := s.ready(Picking); err != nil {
		return err
	}

	s.phase = Creating
	res, err := s.flow.CreateFromEntry(ctx, portfolio.CreateInput{
		EntryID:  s.entry.ID,
		Selected: portfolio.SelectedOnly(s.suggestions),
	})
	if err != nil {
		s.phase = Picking
		s.notice = failureNotice(err)
		return err
	}

	s.link(res)
	return nil
}

// Cancel discards the picker and returns to Viewing.
func (s *Sheet) Cancel() error {
	if err := s.ready(Picking); err != nil {
		return err
	}
	s.suggestions = nil
	s.phase = Viewing
	return nil
}

func (s *Sheet) ready(want State) error {
	if s.deleted {
		return ErrDeleted
	}
	if s.phase != want {
		return fmt.Errorf("%w: need %s, have %s", ErrInvalidTransition, want, s.phase)
	}
	if s.flow == nil {
		return fmt.Errorf("%w: sheet is read-only", ErrInvalidTransition)
	}
	return nil
}

func (s *Sheet) link(res *portfolio.CreateResult) {
	id := res.Item.ID
	entry := *s.entry
	entry.LinkedPortfolioID = &id
	s.entry = &entry

	s.suggestions = nil
	s.phase = Linked
	n := res.Notice
	s.notice = &n
}

func failureNotice(err error) *domain.Notice {
	if errors.Is(err, domain.ErrAlreadyLinked) {
		return errorNotice("This entry is already in your portfolio")
	}
	return errorNotice("Failed to add to portfolio")
}

func errorNotice(desc string) *domain.Notice {
	return &domain.Notice{Title: "Error", Description: desc, Variant: domain.NoticeDestructive}
}

// View is the render projection of a sheet.
type View struct {
	EntryID            uuid.UUID            `json:"entryId"`
	Date               time.Time            `json:"date"`
	SiteName           string               `json:"siteName"`
	Supervisor         *string              `json:"supervisor,omitempty"`
	TasksCompleted     []string             `json:"tasksCompleted"`
	SkillsPractised    []string             `json:"skillsPractised"`
	WhatILearned       *string              `json:"whatILearned,omitempty"`
	IssuesOrQuestions  *string              `json:"issuesOrQuestions,omitempty"`
	MoodLabel          string               `json:"moodLabel,omitempty"`
	MoodEmoji          string               `json:"moodEmoji,omitempty"`
	Photos             []string             `json:"photos"`
	State              string               `json:"state"`
	DeleteArmed        bool                 `json:"deleteArmed"`
	ShowAddToPortfolio bool                 `json:"showAddToPortfolio"`
	ShowLinkedBadge    bool                 `json:"showLinkedBadge"`
	ShowAnalysis       bool                 `json:"showAnalysis"`
	LinkedPortfolioID  *uuid.UUID           `json:"linkedPortfolioId,omitempty"`
	Suggestions        []domain.SuggestedAC `json:"suggestions,omitempty"`
	SelectedCount      int                  `json:"selectedCount"`
	Notice             *domain.Notice       `json:"notice,omitempty"`
}

// View projects the sheet for rendering. Once the entry is linked the
// add-to-portfolio control and the analysis panel are hidden and the linked
// badge is shown instead.
func (s *Sheet) View() View {
	e := s.entry
	v := View{
		EntryID:           e.ID,
		Date:              e.Date,
		SiteName:          e.SiteName,
		Supervisor:        e.Supervisor,
		TasksCompleted:    e.TasksCompleted,
		SkillsPractised:   e.SkillsPractised,
		WhatILearned:      e.WhatILearned,
		IssuesOrQuestions: e.IssuesOrQuestions,
		Photos:            e.Photos,
		State:             s.State().String(),
		DeleteArmed:       s.armed,
		LinkedPortfolioID: e.LinkedPortfolioID,
		Suggestions:       s.suggestions,
		Notice:            s.notice,
	}

	if e.MoodRating != nil {
		v.MoodLabel, _ = domain.MoodLabel(*e.MoodRating)
		v.MoodEmoji, _ = domain.MoodEmoji(*e.MoodRating)
	}

	linked := e.IsLinked()
	v.ShowLinkedBadge = linked
	v.ShowAddToPortfolio = !linked && !s.deleted
	v.ShowAnalysis = !linked

	for _, sg := range s.suggestions {
		if sg.Selected {
			v.SelectedCount++
		}
	}
	return v
}
