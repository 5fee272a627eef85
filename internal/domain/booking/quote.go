package booking

import (
	"fmt"
	"time"

	"venuehub/internal/domain/pricing"
	"venuehub/internal/domain/venue"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

type Contact struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

// Request is the booking form as the guest filled it in. StartTime and
// EndTime are "15:04" clocks and only used for hourly venues.
type Request struct {
	VenueID         int64   `json:"venue_id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time,omitempty"`
	EndTime         string  `json:"end_time,omitempty"`
	GuestCount      int     `json:"guest_count"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Contact         Contact `json:"contact"`
}

type Quote struct {
	BasePrice     float64 `json:"base_price"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
	Hours         float64 `json:"hours,omitempty"`
	WeekendRate   bool    `json:"weekend_rate"`
}

// Calculator prices booking requests. It is stateless apart from its clock.
type Calculator struct {
	loc *time.Location
	now func() time.Time
}

func NewCalculator(loc *time.Location, now func() time.Time) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calculator{loc: loc, now: now}
}

func (c *Calculator) Location() *time.Location { return c.loc }

// Quote validates req against v and prices it.
func (c *Calculator) Quote(v *venue.Venue, req Request) (Quote, error) {
	if req.GuestCount > v.Capacity {
		return Quote{}, fmt.Errorf("%w: %d guests, capacity %d", ErrCapacityExceeded, req.GuestCount, v.Capacity)
	}
	if req.GuestCount < 1 {
		return Quote{}, ErrInvalidGuestCount
	}

	date, err := c.parseDate(req.Date)
	if err != nil {
		return Quote{}, err
	}
	if date.Before(c.today()) {
		return Quote{}, ErrDateInPast
	}

	var q Quote
	if v.IsHourly() {
		start, end, err := c.parseRange(date, req.StartTime, req.EndTime)
		if err != nil {
			return Quote{}, err
		}
		if v.HourlyRate == nil || *v.HourlyRate <= 0 {
			return Quote{}, ErrVenueUnpriced
		}
		q.Hours = end.Sub(start).Hours()
		q.BasePrice = pricing.Round(*v.HourlyRate * q.Hours)
	} else {
		if v.Price <= 0 {
			return Quote{}, ErrVenueUnpriced
		}
		q.BasePrice = pricing.Round(v.Price)
		if pricing.IsWeekend(date) {
			q.BasePrice = v.WeekendRate()
			q.WeekendRate = true
		}
	}

	q.ServiceCharge = pricing.ServiceCharge(q.BasePrice)
	q.Total = pricing.Round(q.BasePrice + q.ServiceCharge)
	return q, nil
}

// Window returns the time span a request occupies: the clock range for
// hourly venues, the whole night for nightly ones.
func (c *Calculator) Window(v *venue.Venue, req Request) (time.Time, time.Time, error) {
	date, err := c.parseDate(req.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if v.IsHourly() {
		return c.parseRange(date, req.StartTime, req.EndTime)
	}
	return date, date.AddDate(0, 0, 1), nil
}

func (c *Calculator) today() time.Time {
	n := c.now().In(c.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Calculator) parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, c.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func (c *Calculator) parseRange(date time.Time, from, to string) (time.Time, time.Time, error) {
	start, err1 := time.ParseInLocation(clockLayout, from, c.loc)
	end, err2 := time.ParseInLocation(clockLayout, to, c.loc)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: times must be HH:MM", ErrInvalidTimeRange)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidTimeRange
	}

	at := func(clock time.Time) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, c.loc)
	}
	return at(start), at(end), nil
}
