package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venuehub/internal/domain/notification"
	"venuehub/internal/domain/venue"
)

const DefaultConfirmTimeout = 15 * time.Second

type session struct {
	mu   sync.Mutex
	busy bool
	res  Reservation
}

// Service holds open reservations in memory, one session per reservation.
// Each session allows a single operation at a time.
type Service struct {
	venues    VenueLookup
	calc      *Calculator
	confirmer Confirmer
	notifs    Notifier
	timeout   time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(venues VenueLookup, calc *Calculator, confirmer Confirmer, notifs Notifier, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultConfirmTimeout
	}
	return &Service{
		venues:    venues,
		calc:      calc,
		confirmer: confirmer,
		notifs:    notifs,
		timeout:   timeout,
		sessions:  make(map[string]*session),
	}
}

// Quote prices a request without opening a reservation.
func (s *Service) Quote(ctx context.Context, req Request) (Quote, error) {
	v, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		return Quote{}, err
	}
	return s.calc.Quote(v, req)
}

func (s *Service) Start(ctx context.Context, ownerID, venueID int64) (Reservation, error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return Reservation{}, err
	}

	r := NewReservation(uuid.NewString(), ownerID, *v)
	s.mu.Lock()
	s.sessions[r.ID] = &session{res: *r}
	s.mu.Unlock()
	return *r, nil
}

func (s *Service) Get(ownerID int64, id string) (Reservation, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return Reservation{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.res, nil
}

func (s *Service) UpdateDetails(ownerID int64, id string, req Request) (Reservation, error) {
	return s.apply(ownerID, id, func(r *Reservation) error { return r.UpdateDetails(s.calc, req) })
}

func (s *Service) Submit(ownerID int64, id string) (Reservation, error) {
	return s.apply(ownerID, id, func(r *Reservation) error { return r.Submit(s.calc) })
}

func (s *Service) SelectPayment(ownerID int64, id string, m PaymentMethod) (Reservation, error) {
	return s.apply(ownerID, id, func(r *Reservation) error { return r.SelectPayment(m) })
}

func (s *Service) Edit(ownerID int64, id string) (Reservation, error) {
	return s.apply(ownerID, id, (*Reservation).Edit)
}

func (s *Service) Retry(ownerID int64, id string) (Reservation, error) {
	return s.apply(ownerID, id, (*Reservation).Retry)
}

// Close discards the reservation. A confirmed booking stays booked.
func (s *Service) Close(ownerID int64, id string) error {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	busy := sess.busy
	sess.mu.Unlock()
	if busy {
		return ErrOperationInFlight
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Confirm calls the confirmation backend with the configured timeout. On
// backend failure the reservation moves to Failed and the returned error
// wraps ErrConfirmationFailed.
func (s *Service) Confirm(ctx context.Context, ownerID int64, id string) (Reservation, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return Reservation{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		res := sess.res
		sess.mu.Unlock()
		return res, ErrOperationInFlight
	}
	if err := sess.res.BeginConfirm(); err != nil {
		res := sess.res
		sess.mu.Unlock()
		return res, err
	}
	sess.busy = true
	snapshot := sess.res
	sess.mu.Unlock()

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	conf, cerr := s.confirmer.Confirm(cctx, &snapshot)
	cancel()

	sess.mu.Lock()
	sess.busy = false
	if cerr != nil {
		reason := cerr.Error()
		if errors.Is(cerr, context.DeadlineExceeded) {
			reason = "confirmation timed out"
		}
		_ = sess.res.FailConfirm(reason)
		res := sess.res
		sess.mu.Unlock()

		log.Warn().Err(cerr).Str("reservation_id", id).Msg("reservation confirmation failed")
		return res, fmt.Errorf("%w: %s", ErrConfirmationFailed, reason)
	}
	_ = sess.res.CompleteConfirm(conf)
	res := sess.res
	sess.mu.Unlock()

	log.Info().
		Str("reservation_id", id).
		Int64("booking_id", conf.BookingID).
		Int64("venue_id", res.Venue.ID).
		Msg("reservation confirmed")

	if s.notifs != nil {
		event := notification.BookingConfirmed{
			UserID:        ownerID,
			ReservationID: res.ID,
			BookingID:     conf.BookingID,
			VenueID:       res.Venue.ID,
			VenueName:     res.Venue.Name,
			Date:          res.Request.Date,
			TimeRange:     res.TimeRange(),
			Total:         res.Quote.Total,
		}
		go func(ctx context.Context) {
			_ = s.notifs.BookingConfirmed(ctx, event)
		}(context.WithoutCancel(ctx))
	}

	return res, nil
}

// apply runs fn on a copy of the reservation and stores it only on success.
func (s *Service) apply(ownerID int64, id string, fn func(*Reservation) error) (Reservation, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return Reservation{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.busy {
		return sess.res, ErrOperationInFlight
	}

	next := sess.res
	if err := fn(&next); err != nil {
		return sess.res, err
	}
	sess.res = next
	return next, nil
}

func (s *Service) session(ownerID int64, id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrReservationNotFound
	}

	sess.mu.Lock()
	owner := sess.res.OwnerID
	sess.mu.Unlock()
	if owner != ownerID {
		return nil, ErrReservationNotFound
	}
	return sess, nil
}

var _ VenueLookup = (*venue.Repository)(nil)
