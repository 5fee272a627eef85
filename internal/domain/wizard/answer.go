package wizard

import (
	"strings"
	"unicode/utf8"

	"venuehub/internal/domain/flow"
)

const (
	MinPhotos      = 5
	MaxPhotos      = 10
	MaxTitleLength = 32
)

// Answer is the payload collected by one step. The set of implementations is
// closed: every variant belongs to exactly one StepKey.
type Answer interface {
	Step() flow.StepKey
	normalize() Answer
}

var (
	PrivacyOptions   = []string{"entire_place", "private_room", "shared_room"}
	OccupancyOptions = []string{"me", "family", "other_guests", "roommates"}
)

type PrivacyAnswer struct {
	Option string `json:"option"`
}

type LocationAnswer struct {
	Address string `json:"address"`
}

// BasicsAnswer.HasLock is nil until the host answers the lock question.
type BasicsAnswer struct {
	Guests   int   `json:"guests"`
	Bedrooms int   `json:"bedrooms"`
	Beds     int   `json:"beds"`
	HasLock  *bool `json:"has_lock"`
}

type OccupancyAnswer struct {
	Option string `json:"option"`
}

type DescribeAnswer struct {
	Amenities []string `json:"amenities"`
}

// PhotosAnswer holds opaque image references returned by ingestion.
type PhotosAnswer struct {
	Photos []string `json:"photos"`
}

type TitleAnswer struct {
	Title string `json:"title"`
}

// FinishAnswer is the acknowledgement of the "finish up" interstitial.
type FinishAnswer struct{}

type PriceAnswer struct {
	Amount float64 `json:"amount"`
}

type WeekendPriceAnswer struct {
	Amount float64 `json:"amount"`
}

type DiscountsAnswer struct {
	Discounts []string `json:"discounts"`
}

type CapacityAnswer struct {
	MaxGuests int `json:"max_guests"`
}

type HourlyRateAnswer struct {
	Amount float64 `json:"amount"`
}

func (PrivacyAnswer) Step() flow.StepKey      { return flow.StepPrivacy }
func (LocationAnswer) Step() flow.StepKey     { return flow.StepLocation }
func (BasicsAnswer) Step() flow.StepKey       { return flow.StepBasics }
func (OccupancyAnswer) Step() flow.StepKey    { return flow.StepOccupancy }
func (DescribeAnswer) Step() flow.StepKey     { return flow.StepDescribe }
func (PhotosAnswer) Step() flow.StepKey       { return flow.StepPhotos }
func (TitleAnswer) Step() flow.StepKey        { return flow.StepTitle }
func (FinishAnswer) Step() flow.StepKey       { return flow.StepFinish }
func (PriceAnswer) Step() flow.StepKey        { return flow.StepSetPrice }
func (WeekendPriceAnswer) Step() flow.StepKey { return flow.StepSetWeekendPrice }
func (DiscountsAnswer) Step() flow.StepKey    { return flow.StepDiscounts }
func (CapacityAnswer) Step() flow.StepKey     { return flow.StepCapacity }
func (HourlyRateAnswer) Step() flow.StepKey   { return flow.StepSetHourlyRate }

func (a PrivacyAnswer) normalize() Answer {
	a.Option = strings.TrimSpace(a.Option)
	return a
}

func (a LocationAnswer) normalize() Answer { return a }

func (a BasicsAnswer) normalize() Answer {
	if a.HasLock != nil {
		v := *a.HasLock
		a.HasLock = &v
	}
	return a
}

func (a OccupancyAnswer) normalize() Answer {
	a.Option = strings.TrimSpace(a.Option)
	return a
}

func (a DescribeAnswer) normalize() Answer {
	a.Amenities = uniqueNonEmpty(a.Amenities)
	return a
}

// Photos beyond MaxPhotos are dropped silently.
func (a PhotosAnswer) normalize() Answer {
	n := len(a.Photos)
	if n > MaxPhotos {
		n = MaxPhotos
	}
	photos := make([]string, n)
	copy(photos, a.Photos[:n])
	a.Photos = photos
	return a
}

// Titles longer than MaxTitleLength runes are cut, not rejected.
func (a TitleAnswer) normalize() Answer {
	a.Title = truncateRunes(a.Title, MaxTitleLength)
	return a
}

func (a FinishAnswer) normalize() Answer       { return a }
func (a PriceAnswer) normalize() Answer        { return a }
func (a WeekendPriceAnswer) normalize() Answer { return a }

func (a DiscountsAnswer) normalize() Answer {
	a.Discounts = uniqueNonEmpty(a.Discounts)
	return a
}

func (a CapacityAnswer) normalize() Answer   { return a }
func (a HourlyRateAnswer) normalize() Answer { return a }

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

func uniqueNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
