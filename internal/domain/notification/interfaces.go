package notification

import "context"

// EventPublisher sends events to the message bus.
type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, e BookingConfirmed) error
}

// Pusher delivers events to connected clients.
type Pusher interface {
	SendToUser(userID int64, event *WSEvent)
}
