package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

const SubjectBookingConfirmed = "bookings.confirmed"

// NATSPublisher forwards events to other services over NATS.
type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

func (p *NATSPublisher) PublishBookingConfirmed(_ context.Context, e BookingConfirmed) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.conn.Publish(SubjectBookingConfirmed, data); err != nil {
		return fmt.Errorf("publish %s: %w", SubjectBookingConfirmed, err)
	}
	return nil
}
