package notification

// BookingConfirmed is published once a reservation is confirmed.
type BookingConfirmed struct {
	UserID        int64   `json:"user_id"`
	ReservationID string  `json:"reservation_id"`
	BookingID     int64   `json:"booking_id"`
	VenueID       int64   `json:"venue_id"`
	VenueName     string  `json:"venue_name"`
	Date          string  `json:"date"`
	TimeRange     string  `json:"time_range"`
	Total         float64 `json:"total"`
}
