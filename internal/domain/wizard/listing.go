package wizard

import (
	"venuehub/internal/domain/flow"
	"venuehub/internal/domain/listing"
)

// Flatten turns the answers of a finished wizard into a listing payload.
// Steps the flow does not contain leave their fields zero.
func Flatten(s State) listing.Payload {
	p := listing.Payload{
		Category: string(s.Category),
		Pricing:  string(s.Flow.Pricing),
	}

	for _, a := range s.Answers {
		switch a := a.(type) {
		case PrivacyAnswer:
			p.Privacy = a.Option
		case LocationAnswer:
			p.Address = a.Address
		case BasicsAnswer:
			p.Guests, p.Bedrooms, p.Beds, p.HasLock = a.Guests, a.Bedrooms, a.Beds, a.HasLock
		case OccupancyAnswer:
			p.Occupancy = a.Option
		case DescribeAnswer:
			p.Amenities = a.Amenities
		case PhotosAnswer:
			p.Photos = a.Photos
		case TitleAnswer:
			p.Title = a.Title
		case PriceAnswer:
			p.Price = floatPtr(a.Amount)
		case WeekendPriceAnswer:
			p.WeekendPrice = floatPtr(a.Amount)
		case DiscountsAnswer:
			p.Discounts = a.Discounts
		case CapacityAnswer:
			p.Capacity = a.MaxGuests
		case HourlyRateAnswer:
			p.HourlyRate = floatPtr(a.Amount)
		}
	}

	if p.Capacity == 0 && p.Guests > 0 && s.Flow.Pricing == flow.PricingNightly {
		p.Capacity = p.Guests
	}
	return p
}

func floatPtr(v float64) *float64 { return &v }
