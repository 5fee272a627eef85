package notification

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Type string

const (
	TypeBookingConfirmed Type = "booking_confirmed"
)

// Notification is one inbox entry of a user.
type Notification struct {
	ID        int64          `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64          `gorm:"column:user_id;index:idx_notifications_user_unread" json:"user_id"`
	Type      Type           `gorm:"column:type" json:"type"`
	Title     string         `gorm:"column:title" json:"title"`
	Body      string         `gorm:"column:body;type:text" json:"body,omitempty"`
	Data      datatypes.JSON `gorm:"column:data" json:"data,omitempty"`
	IsRead    bool           `gorm:"column:is_read;index:idx_notifications_user_unread" json:"is_read"`
	ReadAt    *time.Time     `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// SetData encodes data to JSON
func (n *Notification) SetData(data any) error {
	if data == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	n.Data = b
	return nil
}

func (n *Notification) MarkAsRead(at time.Time) {
	n.IsRead = true
	n.ReadAt = &at
}
