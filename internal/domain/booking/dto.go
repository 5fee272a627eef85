package booking

type QuoteRequest struct {
	VenueID    int64  `json:"venue_id" binding:"required,gt=0"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	GuestCount int    `json:"guest_count"`
}

func (q QuoteRequest) toRequest() Request {
	return Request{
		VenueID:    q.VenueID,
		Date:       q.Date,
		StartTime:  q.StartTime,
		EndTime:    q.EndTime,
		GuestCount: q.GuestCount,
	}
}

type StartReservationRequest struct {
	VenueID int64 `json:"venue_id" binding:"required,gt=0"`
}

type DetailsRequest struct {
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	GuestCount      int     `json:"guest_count"`
	SpecialRequests string  `json:"special_requests"`
	Contact         Contact `json:"contact"`
}

func (d DetailsRequest) toRequest() Request {
	return Request{
		Date:            d.Date,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		GuestCount:      d.GuestCount,
		SpecialRequests: d.SpecialRequests,
		Contact:         d.Contact,
	}
}

type PaymentMethodRequest struct {
	Method PaymentMethod `json:"method"`
}
