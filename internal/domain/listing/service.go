package listing

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const slugAttempts = 3

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new listing in draft status under a fresh id.
func (s *Service) Create(ctx context.Context, ownerID int64, p Payload) (*Listing, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrTitleMissing
	}

	l := &Listing{
		ID:           uuid.NewString(),
		OwnerID:      ownerID,
		Title:        title,
		Category:     p.Category,
		Pricing:      p.Pricing,
		Status:       StatusDraft,
		Privacy:      p.Privacy,
		Address:      strings.TrimSpace(p.Address),
		Guests:       p.Guests,
		Bedrooms:     p.Bedrooms,
		Beds:         p.Beds,
		HasLock:      p.HasLock,
		Occupancy:    p.Occupancy,
		Capacity:     p.Capacity,
		Amenities:    jsonList(p.Amenities),
		Photos:       jsonList(p.Photos),
		Discounts:    jsonList(p.Discounts),
		Price:        p.Price,
		WeekendPrice: p.WeekendPrice,
		HourlyRate:   p.HourlyRate,
	}

	base := slug.Make(title)
	if base == "" {
		base = "listing"
	}
	l.Slug = base

	for attempt := 1; ; attempt++ {
		err := s.repo.Create(ctx, l)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSlugTaken) || attempt == slugAttempts {
			return nil, err
		}
		l.Slug = base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}

	log.Info().
		Str("listing_id", l.ID).
		Int64("owner_id", ownerID).
		Str("category", l.Category).
		Msg("listing created")
	return l, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]Listing, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func jsonList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
