package booking

import "errors"

var (
	// request validation
	ErrCapacityExceeded  = errors.New("guest count exceeds venue capacity")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrDateInPast        = errors.New("date is in the past")
	ErrInvalidDate       = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrVenueUnpriced     = errors.New("venue has no price for this booking type")
	ErrInvalidContact    = errors.New("invalid contact details")

	// reservation flow
	ErrPaymentMethodRequired = errors.New("payment method required")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPhase          = errors.New("action not allowed in current phase")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrOperationInFlight   = errors.New("another operation is still running")
	ErrConfirmationFailed  = errors.New("confirmation failed")
	ErrNotAvailable        = errors.New("venue not available for the requested time")
)

// ContactError lists the contact fields that failed validation.
type ContactError struct {
	Fields map[string]string
}

func (e *ContactError) Error() string { return ErrInvalidContact.Error() }

func (e *ContactError) Is(target error) bool { return target == ErrInvalidContact }
