package listing

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Listing is a host listing created by a completed wizard.
type Listing struct {
	ID           string         `gorm:"column:id;primaryKey;size:36" json:"id"`
	OwnerID      int64          `gorm:"column:owner_id;index" json:"owner_id"`
	Slug         string         `gorm:"column:slug;uniqueIndex;size:96" json:"slug"`
	Title        string         `gorm:"column:title" json:"title"`
	Category     string         `gorm:"column:category;index" json:"category"`
	Pricing      string         `gorm:"column:pricing" json:"pricing"`
	Status       Status         `gorm:"column:status" json:"status"`
	Privacy      string         `gorm:"column:privacy" json:"privacy,omitempty"`
	Address      string         `gorm:"column:address" json:"address"`
	Guests       int            `gorm:"column:guests" json:"guests,omitempty"`
	Bedrooms     int            `gorm:"column:bedrooms" json:"bedrooms,omitempty"`
	Beds         int            `gorm:"column:beds" json:"beds,omitempty"`
	HasLock      *bool          `gorm:"column:has_lock" json:"has_lock,omitempty"`
	Occupancy    string         `gorm:"column:occupancy" json:"occupancy,omitempty"`
	Capacity     int            `gorm:"column:capacity" json:"capacity,omitempty"`
	Amenities    datatypes.JSON `gorm:"column:amenities" json:"amenities"`
	Photos       datatypes.JSON `gorm:"column:photos" json:"photos"`
	Discounts    datatypes.JSON `gorm:"column:discounts" json:"discounts"`
	Price        *float64       `gorm:"column:price" json:"price,omitempty"`
	WeekendPrice *float64       `gorm:"column:weekend_price" json:"weekend_price,omitempty"`
	HourlyRate   *float64       `gorm:"column:hourly_rate" json:"hourly_rate,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Listing) TableName() string { return "listings" }
