package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuehub/internal/testutil"
)

func confirmedCandidate(id string, startTime, endTime string) *Reservation {
	r := NewReservation(id, 42, *hourlyVenue())
	r.Request = Request{
		VenueID:    2,
		Date:       "2026-11-12",
		StartTime:  startTime,
		EndTime:    endTime,
		GuestCount: 50,
		Contact:    Contact{Name: "Ram", Email: "ram@example.com", Phone: "9811111111"},
	}
	q, _ := newTestCalculator().Quote(&r.Venue, r.Request)
	r.Quote = &q
	r.Phase = PhaseAwaitingPayment
	r.PaymentMethod = PaymentKhalti
	return r
}

func TestRepositoryConfirmer_StoresBooking(t *testing.T) {
	db := testutil.OpenDB(t, &Booking{})
	c := NewRepositoryConfirmer(db, newTestCalculator())
	ctx := context.Background()

	conf, err := c.Confirm(ctx, confirmedCandidate("r-1", "10:00", "12:00"))
	require.NoError(t, err)
	assert.NotZero(t, conf.BookingID)

	list, err := c.ListByUser(ctx, 42)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "khalti", list[0].PaymentMethod)
	assert.Equal(t, 110.0, list[0].TotalPrice)
	assert.Equal(t, BookingConfirmed, list[0].Status)
}

func TestRepositoryConfirmer_RejectsOverlap(t *testing.T) {
	db := testutil.OpenDB(t, &Booking{})
	c := NewRepositoryConfirmer(db, newTestCalculator())
	ctx := context.Background()

	_, err := c.Confirm(ctx, confirmedCandidate("r-1", "10:00", "12:00"))
	require.NoError(t, err)

	_, err = c.Confirm(ctx, confirmedCandidate("r-2", "11:00", "13:00"))
	assert.ErrorIs(t, err, ErrNotAvailable)

	_, err = c.Confirm(ctx, confirmedCandidate("r-3", "12:00", "13:00"))
	assert.NoError(t, err, "back-to-back slots do not overlap")
}

func TestRepositoryConfirmer_RetryIsIdempotent(t *testing.T) {
	db := testutil.OpenDB(t, &Booking{})
	c := NewRepositoryConfirmer(db, newTestCalculator())
	ctx := context.Background()

	first, err := c.Confirm(ctx, confirmedCandidate("r-1", "10:00", "12:00"))
	require.NoError(t, err)
	second, err := c.Confirm(ctx, confirmedCandidate("r-1", "10:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, first.BookingID, second.BookingID)

	list, err := c.ListByUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
