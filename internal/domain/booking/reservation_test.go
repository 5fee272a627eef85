package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() Request {
	return Request{
		Date:       "2026-11-14",
		GuestCount: 2,
		Contact:    Contact{Name: "Sita Sharma", Email: "sita@example.com", Phone: "9800000000"},
	}
}

func awaitingPayment(t *testing.T) *Reservation {
	t.Helper()
	r := NewReservation("r-1", 42, *nightlyVenue())
	require.NoError(t, r.UpdateDetails(newTestCalculator(), validRequest()))
	require.NoError(t, r.Submit(newTestCalculator()))
	require.Equal(t, PhaseAwaitingPayment, r.Phase)
	return r
}

func TestReservation_UpdateDetailsPreviewsQuote(t *testing.T) {
	r := NewReservation("r-1", 42, *nightlyVenue())
	calc := newTestCalculator()

	req := validRequest()
	req.VenueID = 999
	require.NoError(t, r.UpdateDetails(calc, req))
	require.NotNil(t, r.Quote)
	assert.Equal(t, 132.0, r.Quote.Total)
	assert.Equal(t, int64(1), r.Request.VenueID, "venue is fixed by the reservation")

	req.GuestCount = 10
	require.NoError(t, r.UpdateDetails(calc, req))
	assert.Nil(t, r.Quote)
	assert.Contains(t, r.QuoteErr, "capacity")
	assert.Equal(t, PhaseCollectingDetails, r.Phase)
}

// One guest too many keeps the reservation collecting details.
func TestReservation_SubmitCapacityExceeded(t *testing.T) {
	r := NewReservation("r-1", 42, *nightlyVenue())
	calc := newTestCalculator()

	req := validRequest()
	req.GuestCount = r.Venue.Capacity + 1
	require.NoError(t, r.UpdateDetails(calc, req))
	before := *r

	err := r.Submit(calc)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, PhaseCollectingDetails, r.Phase)
	assert.Equal(t, before, *r)
}

func TestReservation_SubmitValidatesContact(t *testing.T) {
	r := NewReservation("r-1", 42, *nightlyVenue())
	calc := newTestCalculator()

	req := validRequest()
	req.Contact.Email = "not-an-email"
	require.NoError(t, r.UpdateDetails(calc, req))

	err := r.Submit(calc)
	require.ErrorIs(t, err, ErrInvalidContact)

	var ce *ContactError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "email", ce.Fields["Email"])
	assert.Equal(t, PhaseCollectingDetails, r.Phase)
}

// Confirm needs a payment method; cash then confirms.
func TestReservation_ConfirmRequiresPaymentMethod(t *testing.T) {
	r := awaitingPayment(t)

	assert.ErrorIs(t, r.BeginConfirm(), ErrPaymentMethodRequired)
	assert.ErrorIs(t, r.CompleteConfirm(Confirmation{BookingID: 1}), ErrPaymentMethodRequired)
	assert.Equal(t, PhaseAwaitingPayment, r.Phase)

	require.NoError(t, r.SelectPayment(PaymentCash))
	require.NoError(t, r.CompleteConfirm(Confirmation{BookingID: 1}))
	assert.Equal(t, PhaseConfirmed, r.Phase)
	assert.Equal(t, int64(1), r.Confirmation.BookingID)
}

func TestReservation_SelectPayment(t *testing.T) {
	r := NewReservation("r-1", 42, *nightlyVenue())
	assert.ErrorIs(t, r.SelectPayment(PaymentKhalti), ErrInvalidPhase)

	r = awaitingPayment(t)
	assert.ErrorIs(t, r.SelectPayment("paypal"), ErrInvalidPaymentMethod)
	assert.Empty(t, r.PaymentMethod)

	for _, m := range []PaymentMethod{PaymentESewa, PaymentKhalti, PaymentConnectIPS, PaymentCash} {
		require.NoError(t, r.SelectPayment(m))
		assert.Equal(t, m, r.PaymentMethod)
	}
}

func TestReservation_EditClearsPaymentKeepsRequest(t *testing.T) {
	r := awaitingPayment(t)
	require.NoError(t, r.SelectPayment(PaymentESewa))

	require.NoError(t, r.Edit())
	assert.Equal(t, PhaseCollectingDetails, r.Phase)
	assert.Empty(t, r.PaymentMethod)
	assert.Equal(t, "2026-11-14", r.Request.Date)
	assert.Equal(t, "Sita Sharma", r.Request.Contact.Name)

	assert.ErrorIs(t, r.Edit(), ErrInvalidPhase)
}

func TestReservation_FailAndRetry(t *testing.T) {
	r := awaitingPayment(t)
	require.NoError(t, r.SelectPayment(PaymentConnectIPS))

	require.NoError(t, r.FailConfirm("gateway down"))
	assert.Equal(t, PhaseFailed, r.Phase)
	assert.Equal(t, "gateway down", r.FailureReason)

	assert.ErrorIs(t, r.SelectPayment(PaymentCash), ErrInvalidPhase)

	require.NoError(t, r.Retry())
	assert.Equal(t, PhaseAwaitingPayment, r.Phase)
	assert.Equal(t, PaymentConnectIPS, r.PaymentMethod, "retry only re-attempts the failed phase")
	assert.Empty(t, r.FailureReason)

	assert.ErrorIs(t, r.Retry(), ErrInvalidPhase)
}

func TestReservation_TerminalConfirmed(t *testing.T) {
	r := awaitingPayment(t)
	require.NoError(t, r.SelectPayment(PaymentCash))
	require.NoError(t, r.CompleteConfirm(Confirmation{BookingID: 9}))

	assert.ErrorIs(t, r.UpdateDetails(newTestCalculator(), validRequest()), ErrInvalidPhase)
	assert.ErrorIs(t, r.Submit(newTestCalculator()), ErrInvalidPhase)
	assert.ErrorIs(t, r.Edit(), ErrInvalidPhase)
	assert.ErrorIs(t, r.Retry(), ErrInvalidPhase)
	assert.ErrorIs(t, r.FailConfirm("late"), ErrInvalidPhase)
	assert.Equal(t, PhaseConfirmed, r.Phase)
}

func TestReservation_TimeRange(t *testing.T) {
	r := NewReservation("r", 1, *hourlyVenue())
	r.Request.StartTime, r.Request.EndTime = "10:00", "12:00"
	assert.Equal(t, "10:00-12:00", r.TimeRange())

	assert.Equal(t, "overnight", NewReservation("r", 1, *nightlyVenue()).TimeRange())
}
