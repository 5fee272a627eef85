package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service is the notification center: it stores inbox entries, pushes them
// to connected clients and forwards events to the bus. Push and bus are
// optional.
type Service struct {
	repo      *Repository
	pusher    Pusher
	publisher EventPublisher
	now       func() time.Time
}

func NewService(repo *Repository, pusher Pusher, publisher EventPublisher) *Service {
	return &Service{repo: repo, pusher: pusher, publisher: publisher, now: time.Now}
}

// BookingConfirmed fans the event out. Delivery problems on one channel do
// not stop the others; the first error is returned.
func (s *Service) BookingConfirmed(ctx context.Context, e BookingConfirmed) error {
	n := &Notification{
		UserID: e.UserID,
		Type:   TypeBookingConfirmed,
		Title:  "Booking confirmed",
		Body:   fmt.Sprintf("%s on %s (%s) is confirmed.", e.VenueName, e.Date, e.TimeRange),
		IsRead: false,
	}
	if err := n.SetData(e); err != nil {
		return err
	}

	var firstErr error
	if err := s.repo.Create(ctx, n); err != nil {
		log.Error().Err(err).Int64("user_id", e.UserID).Msg("store notification")
		firstErr = err
	} else if s.pusher != nil {
		s.pusher.SendToUser(e.UserID, &WSEvent{Type: EventNotification, Payload: n})
	}

	if s.publisher != nil {
		if err := s.publisher.PublishBookingConfirmed(ctx, e); err != nil {
			log.Error().Err(err).Str("reservation_id", e.ReservationID).Msg("publish booking confirmed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, int64, error) {
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("count unread notifications")
		return nil, 0, 0, err
	}
	return list, unread, total, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID, s.now().UTC())
}

// Cleanup deletes read notifications older than keep.
func (s *Service) Cleanup(ctx context.Context, keep time.Duration) (int64, error) {
	deleted, err := s.repo.DeleteReadBefore(ctx, s.now().Add(-keep))
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("old notifications cleaned up")
	}
	return deleted, nil
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, interval, keep time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Cleanup(ctx, keep); err != nil {
				log.Warn().Err(err).Msg("notification cleanup failed")
			}
		}
	}
}
