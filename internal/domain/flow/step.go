package flow

// StepKey names one wizard step. Keys are stable for the lifetime of a flow.
type StepKey string

const (
	StepPrivacy         StepKey = "privacy"
	StepLocation        StepKey = "location"
	StepBasics          StepKey = "basics"
	StepOccupancy       StepKey = "occupancy"
	StepDescribe        StepKey = "describe"
	StepPhotos          StepKey = "photos"
	StepTitle           StepKey = "title"
	StepFinish          StepKey = "finish"
	StepSetPrice        StepKey = "setPrice"
	StepSetWeekendPrice StepKey = "setWeekendPrice"
	StepDiscounts       StepKey = "discounts"

	// Hall categories only.
	StepCapacity      StepKey = "capacity"
	StepSetHourlyRate StepKey = "setHourlyRate"
)

var stepLabels = map[StepKey]string{
	StepPrivacy:         "Type of place",
	StepLocation:        "Location",
	StepBasics:          "Basics",
	StepOccupancy:       "Who else might be there",
	StepDescribe:        "Amenities",
	StepPhotos:          "Photos",
	StepTitle:           "Title",
	StepFinish:          "Finish up",
	StepSetPrice:        "Price",
	StepSetWeekendPrice: "Weekend price",
	StepDiscounts:       "Discounts",
	StepCapacity:        "Capacity",
	StepSetHourlyRate:   "Hourly rate",
}

// Known reports whether k is a step the platform knows how to render and validate.
func (k StepKey) Known() bool {
	_, ok := stepLabels[k]
	return ok
}

// Label is the human-readable name shown in draft summaries.
func (k StepKey) Label() string {
	if l, ok := stepLabels[k]; ok {
		return l
	}
	return string(k)
}
