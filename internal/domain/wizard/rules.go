package wizard

import (
	"math"
	"slices"
	"strings"
)

// Rule decides whether a step's stored answer lets the user move on.
// A nil answer means the step was never answered.
type Rule func(Answer) bool

// Valid applies the rule of a's own variant.
func Valid(a Answer) bool {
	switch v := a.(type) {
	case PrivacyAnswer:
		return slices.Contains(PrivacyOptions, v.Option)
	case LocationAnswer:
		return strings.TrimSpace(v.Address) != ""
	case BasicsAnswer:
		return v.Guests >= 1 && v.Bedrooms >= 1 && v.Beds >= 1 && v.HasLock != nil
	case OccupancyAnswer:
		return slices.Contains(OccupancyOptions, v.Option)
	case DescribeAnswer:
		return len(v.Amenities) >= 1
	case PhotosAnswer:
		return len(v.Photos) >= MinPhotos
	case TitleAnswer:
		return strings.TrimSpace(v.Title) != ""
	case FinishAnswer:
		return true
	case PriceAnswer:
		return positive(v.Amount)
	case WeekendPriceAnswer:
		return positive(v.Amount)
	case DiscountsAnswer:
		return true
	case CapacityAnswer:
		return v.MaxGuests >= 1
	case HourlyRateAnswer:
		return positive(v.Amount)
	default:
		return false
	}
}

// requireAnswer is the rule for steps that need an explicit answer.
func requireAnswer(a Answer) bool {
	return a != nil && Valid(a)
}

// optionalAnswer is the rule for steps that may be skipped without input.
func optionalAnswer(a Answer) bool {
	return a == nil || Valid(a)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
