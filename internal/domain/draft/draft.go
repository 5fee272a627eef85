package draft

import (
	"encoding/json"
	"time"
)

// Draft is a resumable snapshot of an in-progress listing wizard.
type Draft struct {
	ID              string                     `json:"id"`
	OwnerID         int64                      `json:"owner_id"`
	Title           string                     `json:"title"`
	Category        string                     `json:"category"`
	CurrentIndex    int                        `json:"current_index"`
	ProgressPercent int                        `json:"progress_percent"`
	CompletedSteps  []string                   `json:"completed_steps"`
	RemainingSteps  []string                   `json:"remaining_steps"`
	Answers         map[string]json.RawMessage `json:"answers"`
	LastUpdated     time.Time                  `json:"last_updated"`
}

// Summary is the list view of a draft, without answers.
type Summary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	ProgressPercent int       `json:"progress_percent"`
	CompletedSteps  []string  `json:"completed_steps"`
	RemainingSteps  []string  `json:"remaining_steps"`
	LastUpdated     time.Time `json:"last_updated"`
}

func (d *Draft) Summary() Summary {
	return Summary{
		ID:              d.ID,
		Title:           d.Title,
		Category:        d.Category,
		ProgressPercent: d.ProgressPercent,
		CompletedSteps:  d.CompletedSteps,
		RemainingSteps:  d.RemainingSteps,
		LastUpdated:     d.LastUpdated,
	}
}
