package venue

// Response adds the derived weekend rate so clients show the same price the
// quote will charge.
type Response struct {
	Venue
	WeekendRate float64 `json:"weekend_rate,omitempty"`
}

func NewResponse(v Venue) Response {
	r := Response{Venue: v}
	if !v.IsHourly() {
		r.WeekendRate = v.WeekendRate()
	}
	return r
}

type ListResponse struct {
	Venues []Response `json:"venues"`
	Total  int64      `json:"total"`
}
