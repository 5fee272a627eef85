package flow

// Category is the property/venue type chosen at the start of a wizard.
type Category string

const (
	CategoryHouse          Category = "house"
	CategoryApartment      Category = "apartment"
	CategoryGuesthouse     Category = "guesthouse"
	CategoryHotel          Category = "hotel"
	CategoryWeddingHall    Category = "wedding_hall"
	CategoryConferenceHall Category = "conference_hall"
	CategoryPartyHall      Category = "party_hall"
)

// PricingKind decides how a venue created from the flow is priced.
type PricingKind string

const (
	PricingNightly PricingKind = "nightly"
	PricingHourly  PricingKind = "hourly"
)

// Definition is the fixed, ordered step sequence for one category.
type Definition struct {
	Category Category    `json:"category" yaml:"category"`
	Label    string      `json:"label" yaml:"label"`
	Pricing  PricingKind `json:"pricing" yaml:"pricing"`
	Steps    []StepKey   `json:"steps" yaml:"steps"`
}

// Len returns the number of steps.
func (d Definition) Len() int { return len(d.Steps) }

// IndexOf returns the position of key in the flow, or -1.
func (d Definition) IndexOf(key StepKey) int {
	for i, s := range d.Steps {
		if s == key {
			return i
		}
	}
	return -1
}

// Contains reports whether key is part of the flow.
func (d Definition) Contains(key StepKey) bool { return d.IndexOf(key) >= 0 }

func (d Definition) clone() Definition {
	steps := make([]StepKey, len(d.Steps))
	copy(steps, d.Steps)
	d.Steps = steps
	return d
}
