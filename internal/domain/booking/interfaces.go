package booking

import (
	"context"

	"venuehub/internal/domain/notification"
	"venuehub/internal/domain/venue"
)

type VenueLookup interface {
	GetByID(ctx context.Context, id int64) (*venue.Venue, error)
}

// Confirmer performs the backend side of a confirmation.
type Confirmer interface {
	Confirm(ctx context.Context, r *Reservation) (Confirmation, error)
}

type Notifier interface {
	BookingConfirmed(ctx context.Context, e notification.BookingConfirmed) error
}
