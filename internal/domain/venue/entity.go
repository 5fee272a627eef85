package venue

import (
	"time"

	"venuehub/internal/domain/pricing"
)

type PricingKind string

const (
	PricingNightly PricingKind = "nightly"
	PricingHourly  PricingKind = "hourly"
)

// Venue is a bookable property or hall.
type Venue struct {
	ID           int64       `gorm:"column:id;primaryKey" json:"id"`
	Name         string      `gorm:"column:name" json:"name"`
	Category     string      `gorm:"column:category;index" json:"category"`
	City         string      `gorm:"column:city;index" json:"city"`
	Address      string      `gorm:"column:address" json:"address"`
	Pricing      PricingKind `gorm:"column:pricing" json:"pricing"`
	Price        float64     `gorm:"column:price" json:"price"`
	WeekendPrice *float64    `gorm:"column:weekend_price" json:"weekend_price,omitempty"`
	HourlyRate   *float64    `gorm:"column:hourly_rate" json:"hourly_rate,omitempty"`
	Capacity     int         `gorm:"column:capacity" json:"capacity"`
	CreatedAt    time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

func (Venue) TableName() string { return "venues" }

func (v *Venue) IsHourly() bool { return v.Pricing == PricingHourly }

// WeekendRate is the nightly price on Friday and Saturday.
func (v *Venue) WeekendRate() float64 {
	return pricing.WeekendRate(v.Price, v.WeekendPrice)
}
