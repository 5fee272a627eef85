package booking

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed reservation as stored.
type Booking struct {
	ID              int64         `gorm:"column:id;primaryKey" json:"id"`
	ReservationID   string        `gorm:"column:reservation_id;uniqueIndex;size:36" json:"reservation_id"`
	VenueID         int64         `gorm:"column:venue_id;index:idx_bookings_venue_window" json:"venue_id"`
	UserID          int64         `gorm:"column:user_id;index" json:"user_id"`
	StartAt         time.Time     `gorm:"column:start_at;index:idx_bookings_venue_window" json:"start_at"`
	EndAt           time.Time     `gorm:"column:end_at" json:"end_at"`
	GuestCount      int           `gorm:"column:guest_count" json:"guest_count"`
	PaymentMethod   string        `gorm:"column:payment_method" json:"payment_method"`
	BasePrice       float64       `gorm:"column:base_price" json:"base_price"`
	ServiceCharge   float64       `gorm:"column:service_charge" json:"service_charge"`
	TotalPrice      float64       `gorm:"column:total_price" json:"total_price"`
	Status          BookingStatus `gorm:"column:status" json:"status"`
	ContactName     string        `gorm:"column:contact_name" json:"contact_name"`
	ContactEmail    string        `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone    string        `gorm:"column:contact_phone" json:"contact_phone"`
	SpecialRequests *string       `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`
	CreatedAt       time.Time     `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"column:updated_at" json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// RepositoryConfirmer stores the booking, refusing overlaps with existing
// confirmed bookings of the same venue.
type RepositoryConfirmer struct {
	db   *gorm.DB
	calc *Calculator
	now  func() time.Time
}

func NewRepositoryConfirmer(db *gorm.DB, calc *Calculator) *RepositoryConfirmer {
	return &RepositoryConfirmer{db: db, calc: calc, now: time.Now}
}

func (c *RepositoryConfirmer) Confirm(ctx context.Context, r *Reservation) (Confirmation, error) {
	start, end, err := c.calc.Window(&r.Venue, r.Request)
	if err != nil {
		return Confirmation{}, err
	}

	var notes *string
	if r.Request.SpecialRequests != "" {
		v := r.Request.SpecialRequests
		notes = &v
	}

	b := &Booking{
		ReservationID:   r.ID,
		VenueID:         r.Venue.ID,
		UserID:          r.OwnerID,
		StartAt:         start.UTC(),
		EndAt:           end.UTC(),
		GuestCount:      r.Request.GuestCount,
		PaymentMethod:   string(r.PaymentMethod),
		BasePrice:       r.Quote.BasePrice,
		ServiceCharge:   r.Quote.ServiceCharge,
		TotalPrice:      r.Quote.Total,
		Status:          BookingConfirmed,
		ContactName:     r.Request.Contact.Name,
		ContactEmail:    r.Request.Contact.Email,
		ContactPhone:    r.Request.Contact.Phone,
		SpecialRequests: notes,
	}

	err = c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A retried confirmation that already went through returns the same booking.
		var existing Booking
		res := tx.Where("reservation_id = ?", r.ID).Limit(1).Find(&existing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			*b = existing
			return nil
		}

		var cnt int64
		if err := tx.Model(&Booking{}).
			Where("venue_id = ?", b.VenueID).
			Where("status = ?", BookingConfirmed).
			Where("start_at < ? AND end_at > ?", b.EndAt, b.StartAt).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrNotAvailable
		}
		return tx.Create(b).Error
	})
	if err != nil {
		return Confirmation{}, err
	}

	return Confirmation{BookingID: b.ID, ConfirmedAt: c.now().UTC()}, nil
}

func (c *RepositoryConfirmer) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	var out []Booking
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC").
		Find(&out).Error
	return out, err
}
