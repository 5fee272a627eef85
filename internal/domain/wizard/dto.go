package wizard

import (
	"venuehub/internal/domain/flow"
	"venuehub/internal/domain/listing"
)

type StartRequest struct {
	Category string `json:"category" binding:"required"`
}

// View is what the client renders for one wizard session.
type View struct {
	ID          string                  `json:"id"`
	Category    flow.Category           `json:"category"`
	Pricing     flow.PricingKind        `json:"pricing"`
	Steps       []flow.StepKey          `json:"steps"`
	Index       int                     `json:"index"`
	CurrentStep flow.StepKey            `json:"current_step"`
	StepLabel   string                  `json:"step_label"`
	Inputs      []string                `json:"inputs"`
	Progress    float64                 `json:"progress"`
	CanAdvance  bool                    `json:"can_advance"`
	Answers     map[flow.StepKey]Answer `json:"answers"`
	DraftSaved  bool                    `json:"draft_saved"`
}

// Outcome is the result of a navigation call. Wizard is nil once the
// session has ended (exit or completion).
type Outcome struct {
	Transition string           `json:"transition"`
	Wizard     *View            `json:"wizard,omitempty"`
	Listing    *listing.Listing `json:"listing,omitempty"`
}

type StepInfo struct {
	Key    flow.StepKey `json:"key"`
	Label  string       `json:"label"`
	Inputs []string     `json:"inputs"`
}

type CategoryResponse struct {
	Category flow.Category    `json:"category"`
	Label    string           `json:"label"`
	Pricing  flow.PricingKind `json:"pricing"`
	Steps    []StepInfo       `json:"steps"`
}

func newCategoryResponse(d flow.Definition) CategoryResponse {
	steps := make([]StepInfo, 0, len(d.Steps))
	for _, k := range d.Steps {
		def, _ := Definition(k)
		steps = append(steps, StepInfo{Key: k, Label: k.Label(), Inputs: def.Inputs})
	}
	return CategoryResponse{Category: d.Category, Label: d.Label, Pricing: d.Pricing, Steps: steps}
}
