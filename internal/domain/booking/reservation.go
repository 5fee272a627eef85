package booking

import (
	"time"

	"venuehub/internal/domain/venue"
	"venuehub/internal/pkg/validator"
)

type Phase string

const (
	PhaseCollectingDetails Phase = "collecting_details"
	PhaseAwaitingPayment   Phase = "awaiting_payment"
	PhaseConfirmed         Phase = "confirmed"
	PhaseFailed            Phase = "failed"
)

type PaymentMethod string

const (
	PaymentESewa      PaymentMethod = "esewa"
	PaymentKhalti     PaymentMethod = "khalti"
	PaymentConnectIPS PaymentMethod = "connectips"
	PaymentCash       PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentESewa, PaymentKhalti, PaymentConnectIPS, PaymentCash:
		return true
	}
	return false
}

type Confirmation struct {
	BookingID   int64     `json:"booking_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// Reservation is the two-phase booking state machine. Methods either apply
// fully or return an error and leave the reservation as it was.
type Reservation struct {
	ID            string        `json:"id"`
	OwnerID       int64         `json:"owner_id"`
	Venue         venue.Venue   `json:"venue"`
	Phase         Phase         `json:"phase"`
	Request       Request       `json:"request"`
	Quote         *Quote        `json:"quote,omitempty"`
	QuoteErr      string        `json:"quote_error,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	Confirmation  *Confirmation `json:"confirmation,omitempty"`
	FailureReason string        `json:"failure_reason,omitempty"`
}

func NewReservation(id string, ownerID int64, v venue.Venue) *Reservation {
	return &Reservation{
		ID:      id,
		OwnerID: ownerID,
		Venue:   v,
		Phase:   PhaseCollectingDetails,
		Request: Request{VenueID: v.ID, GuestCount: 1},
	}
}

// UpdateDetails replaces the request and refreshes the preview quote. A
// request that does not price yet is kept; the reason is in QuoteErr.
func (r *Reservation) UpdateDetails(calc *Calculator, req Request) error {
	if r.Phase != PhaseCollectingDetails {
		return ErrInvalidPhase
	}
	req.VenueID = r.Venue.ID
	r.Request = req

	q, err := calc.Quote(&r.Venue, req)
	if err != nil {
		r.Quote = nil
		r.QuoteErr = err.Error()
		return nil
	}
	r.Quote = &q
	r.QuoteErr = ""
	return nil
}

// Submit moves to AwaitingPayment once the request prices and the contact
// details are complete.
func (r *Reservation) Submit(calc *Calculator) error {
	if r.Phase != PhaseCollectingDetails {
		return ErrInvalidPhase
	}

	q, err := calc.Quote(&r.Venue, r.Request)
	if err != nil {
		return err
	}
	if fields := validator.Validate(&r.Request.Contact); fields != nil {
		return &ContactError{Fields: fields}
	}

	r.Quote = &q
	r.QuoteErr = ""
	r.Phase = PhaseAwaitingPayment
	return nil
}

func (r *Reservation) SelectPayment(m PaymentMethod) error {
	if r.Phase != PhaseAwaitingPayment {
		return ErrInvalidPhase
	}
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	r.PaymentMethod = m
	return nil
}

// Edit goes back to CollectingDetails, dropping the payment method.
func (r *Reservation) Edit() error {
	if r.Phase != PhaseAwaitingPayment {
		return ErrInvalidPhase
	}
	r.Phase = PhaseCollectingDetails
	r.PaymentMethod = ""
	return nil
}

// BeginConfirm checks that confirm may be attempted. It does not change
// the phase; the outcome is recorded by CompleteConfirm or FailConfirm.
func (r *Reservation) BeginConfirm() error {
	if r.Phase != PhaseAwaitingPayment {
		return ErrInvalidPhase
	}
	if r.PaymentMethod == "" {
		return ErrPaymentMethodRequired
	}
	if r.Quote == nil {
		return ErrInvalidPhase
	}
	return nil
}

func (r *Reservation) CompleteConfirm(c Confirmation) error {
	if err := r.BeginConfirm(); err != nil {
		return err
	}
	r.Confirmation = &c
	r.FailureReason = ""
	r.Phase = PhaseConfirmed
	return nil
}

func (r *Reservation) FailConfirm(reason string) error {
	if err := r.BeginConfirm(); err != nil {
		return err
	}
	r.FailureReason = reason
	r.Phase = PhaseFailed
	return nil
}

// Retry re-enters AwaitingPayment after a failed confirmation. Request,
// quote and payment method are kept.
func (r *Reservation) Retry() error {
	if r.Phase != PhaseFailed {
		return ErrInvalidPhase
	}
	r.FailureReason = ""
	r.Phase = PhaseAwaitingPayment
	return nil
}

// TimeRange is the human form of the booked slot, for notifications.
func (r *Reservation) TimeRange() string {
	if r.Venue.IsHourly() {
		return r.Request.StartTime + "-" + r.Request.EndTime
	}
	return "overnight"
}
