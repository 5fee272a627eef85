// Command seed fills the venues table with demo data. Existing venues and
// bookings are removed first.
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"venuehub/internal/app"
	"venuehub/internal/config"
	"venuehub/internal/database"
	"venuehub/internal/domain/venue"
	"venuehub/internal/logger"
)

func price(v float64) *float64 { return &v }

var venues = []venue.Venue{
	{Name: "Lakeside Cottage", Category: "house", City: "Pokhara", Address: "Lakeside Rd 6", Pricing: venue.PricingNightly, Price: 4500, Capacity: 6},
	{Name: "Thamel Loft", Category: "apartment", City: "Kathmandu", Address: "Chaksibari Marg", Pricing: venue.PricingNightly, Price: 3200, WeekendPrice: price(3600), Capacity: 3},
	{Name: "Bandipur Heritage Inn", Category: "guesthouse", City: "Bandipur", Address: "Bazaar Street", Pricing: venue.PricingNightly, Price: 2800, Capacity: 4},
	{Name: "Durbar View Hotel", Category: "hotel", City: "Bhaktapur", Address: "Taumadhi Square", Pricing: venue.PricingNightly, Price: 6000, WeekendPrice: price(7500), Capacity: 2},
	{Name: "Royal Banquet", Category: "wedding_hall", City: "Kathmandu", Address: "Baneshwor", Pricing: venue.PricingHourly, HourlyRate: price(15000), Capacity: 500},
	{Name: "Summit Conference Centre", Category: "conference_hall", City: "Lalitpur", Address: "Jawalakhel", Pricing: venue.PricingHourly, HourlyRate: price(8000), Capacity: 150},
	{Name: "Rooftop Party Deck", Category: "party_hall", City: "Pokhara", Address: "Damside", Pricing: venue.PricingHourly, HourlyRate: price(5000), Capacity: 80},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	if err := database.Migrate(db, app.Models()...); err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	log.Info().Msg("cleaning old data")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM venues")

	repo := venue.NewRepository(db)
	for i := range venues {
		v := venues[i]
		if err := repo.Create(context.Background(), &v); err != nil {
			log.Fatal().Err(err).Str("venue", v.Name).Msg("seed failed")
		}
		log.Info().Int64("id", v.ID).Str("name", v.Name).Str("pricing", string(v.Pricing)).Msg("venue created")
	}
	log.Info().Int("venues", len(venues)).Msg("seed completed")
}
