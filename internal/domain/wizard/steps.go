package wizard

import (
	"bytes"
	"encoding/json"
	"fmt"

	"venuehub/internal/domain/flow"
	"venuehub/internal/domain/pricing"
)

// StepDefinition is the static description of one step.
type StepDefinition struct {
	Key   flow.StepKey
	Label string
	// Inputs names the fields the step collects, for clients that render forms generically.
	Inputs []string
	Rule   Rule
	// OnEnter may seed answers when the step becomes current.
	OnEnter func(answers map[flow.StepKey]Answer)

	decode func(json.RawMessage) (Answer, error)
}

var definitions = map[flow.StepKey]StepDefinition{
	flow.StepPrivacy:   define(flow.StepPrivacy, []string{"option"}, requireAnswer, decodeAs[PrivacyAnswer]),
	flow.StepLocation:  define(flow.StepLocation, []string{"address"}, requireAnswer, decodeAs[LocationAnswer]),
	flow.StepBasics:    define(flow.StepBasics, []string{"guests", "bedrooms", "beds", "has_lock"}, requireAnswer, decodeAs[BasicsAnswer]),
	flow.StepOccupancy: define(flow.StepOccupancy, []string{"option"}, requireAnswer, decodeAs[OccupancyAnswer]),
	flow.StepDescribe:  define(flow.StepDescribe, []string{"amenities"}, requireAnswer, decodeAs[DescribeAnswer]),
	flow.StepPhotos:    define(flow.StepPhotos, []string{"photos"}, requireAnswer, decodeAs[PhotosAnswer]),
	flow.StepTitle:     define(flow.StepTitle, []string{"title"}, requireAnswer, decodeAs[TitleAnswer]),
	flow.StepFinish:    define(flow.StepFinish, nil, optionalAnswer, decodeAs[FinishAnswer]),
	flow.StepSetPrice:  define(flow.StepSetPrice, []string{"amount"}, requireAnswer, decodeAs[PriceAnswer]),
	flow.StepSetWeekendPrice: withOnEnter(
		define(flow.StepSetWeekendPrice, []string{"amount"}, requireAnswer, decodeAs[WeekendPriceAnswer]),
		suggestWeekendPrice,
	),
	flow.StepDiscounts:     define(flow.StepDiscounts, []string{"discounts"}, optionalAnswer, decodeAs[DiscountsAnswer]),
	flow.StepCapacity:      define(flow.StepCapacity, []string{"max_guests"}, requireAnswer, decodeAs[CapacityAnswer]),
	flow.StepSetHourlyRate: define(flow.StepSetHourlyRate, []string{"amount"}, requireAnswer, decodeAs[HourlyRateAnswer]),
}

// Definition returns the static definition of key.
func Definition(key flow.StepKey) (StepDefinition, bool) {
	d, ok := definitions[key]
	return d, ok
}

func define(key flow.StepKey, inputs []string, rule Rule, decode func(json.RawMessage) (Answer, error)) StepDefinition {
	return StepDefinition{Key: key, Label: key.Label(), Inputs: inputs, Rule: rule, decode: decode}
}

func withOnEnter(d StepDefinition, fn func(map[flow.StepKey]Answer)) StepDefinition {
	d.OnEnter = fn
	return d
}

// suggestWeekendPrice pre-fills the weekend price from the weekday price
// using the same rule the booking quote falls back to.
func suggestWeekendPrice(answers map[flow.StepKey]Answer) {
	if _, ok := answers[flow.StepSetWeekendPrice]; ok {
		return
	}
	p, ok := answers[flow.StepSetPrice].(PriceAnswer)
	if !ok || !Valid(p) {
		return
	}
	answers[flow.StepSetWeekendPrice] = WeekendPriceAnswer{Amount: pricing.WeekendRate(p.Amount, nil)}
}

func decodeAs[T Answer](raw json.RawMessage) (Answer, error) {
	var v T
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidAnswerShape)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAnswerShape, err)
	}
	return v, nil
}
