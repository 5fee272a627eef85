package wizard

import (
	"fmt"
	"time"

	"venuehub/internal/domain/draft"
	"venuehub/internal/domain/flow"
)

// ToDraft snapshots s under id. Completed steps are those before the
// current index; the current step counts as remaining.
func ToDraft(id string, ownerID int64, s State, now time.Time) (*draft.Draft, error) {
	if !s.valid() {
		return nil, ErrInvalidState
	}
	answers, err := EncodeAnswers(s.Answers)
	if err != nil {
		return nil, err
	}

	steps := s.Flow.Steps
	completed := make([]string, 0, s.Index)
	for _, k := range steps[:s.Index] {
		completed = append(completed, k.Label())
	}
	remaining := make([]string, 0, len(steps)-s.Index)
	for _, k := range steps[s.Index:] {
		remaining = append(remaining, k.Label())
	}

	title := s.Flow.Label
	if t, ok := s.Answers[flow.StepTitle].(TitleAnswer); ok && t.Title != "" {
		title = t.Title
	}

	return &draft.Draft{
		ID:              id,
		OwnerID:         ownerID,
		Title:           title,
		Category:        string(s.Category),
		CurrentIndex:    s.Index,
		ProgressPercent: s.Index * 100 / len(steps),
		CompletedSteps:  completed,
		RemainingSteps:  remaining,
		Answers:         answers,
		LastUpdated:     now.UTC(),
	}, nil
}

// FromDraft rebuilds the state a draft was saved from.
func (e *Engine) FromDraft(d *draft.Draft) (State, error) {
	answers, err := DecodeAnswers(d.Answers)
	if err != nil {
		return State{}, fmt.Errorf("draft %s: %w", d.ID, err)
	}
	return e.Restore(flow.Category(d.Category), d.CurrentIndex, answers)
}
