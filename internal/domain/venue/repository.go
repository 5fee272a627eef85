package venue

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Filter struct {
	Category string
	City     string
	Guests   int
	Limit    int
	Offset   int
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Venue, error) {
	var v Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *Repository) List(ctx context.Context, f Filter) ([]Venue, int64, error) {
	q := r.db.WithContext(ctx).Model(&Venue{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if city := strings.TrimSpace(f.City); city != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if f.Guests > 0 {
		q = q.Where("capacity >= ?", f.Guests)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Venue
	err := q.Order("id ASC").Limit(f.Limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

func (r *Repository) Create(ctx context.Context, v *Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}
