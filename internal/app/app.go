// Package app builds the service graph from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"venuehub/internal/config"
	"venuehub/internal/database"
	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/draft"
	"venuehub/internal/domain/flow"
	"venuehub/internal/domain/listing"
	"venuehub/internal/domain/notification"
	"venuehub/internal/domain/upload"
	"venuehub/internal/domain/venue"
	"venuehub/internal/domain/wizard"
	"venuehub/internal/messaging"
	"venuehub/internal/pkg/jwt"
	"venuehub/internal/router"
	"venuehub/internal/storage/kv"
)

const (
	notificationCleanupEvery = time.Hour
	notificationKeep         = 30 * 24 * time.Hour
)

// Models lists every table the application migrates.
func Models() []any {
	return []any{
		&kv.Entry{},
		&venue.Venue{},
		&listing.Listing{},
		&booking.Booking{},
		&notification.Notification{},
		&upload.Upload{},
	}
}

type App struct {
	Config        *config.Config
	DB            *gorm.DB
	JWT           *jwt.Service
	Router        *gin.Engine
	Notifications *notification.Service

	closers []func()
}

// New connects storage and messaging and wires every handler.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	a.DB = db
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}
	if err := database.Migrate(db, Models()...); err != nil {
		return nil, err
	}

	store, err := a.kvStore(ctx)
	if err != nil {
		return nil, err
	}
	images, err := imageStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var publisher notification.EventPublisher
	if cfg.NATSURL != "" {
		bus, err := messaging.Open(cfg.NATSURL)
		if err != nil {
			return nil, fmt.Errorf("open nats: %w", err)
		}
		a.closers = append(a.closers, bus.Close)
		publisher = notification.NewNATSPublisher(bus.Conn)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	a.JWT = jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := notification.NewHub()
	a.Notifications = notification.NewService(notification.NewRepository(db), hub, publisher)

	venues := venue.NewRepository(db)
	calc := booking.NewCalculator(loc, time.Now)
	confirmer := booking.NewRepositoryConfirmer(db, calc)
	bookings := booking.NewService(venues, calc, confirmer, a.Notifications, cfg.ConfirmTimeout)

	listings := listing.NewService(listing.NewRepository(db))
	uploads := upload.NewService(upload.NewRepository(db), images)
	wizards := wizard.NewService(wizard.NewEngine(flow.DefaultCatalog()), draft.NewKVStore(store), listings, uploads)

	opts := router.Options{JWT: a.JWT, CORSOrigins: cfg.CORSAllowedOrigins}
	if cfg.UploadBackend == config.UploadLocal {
		opts.StaticURL, opts.StaticDir = cfg.UploadBaseURL, cfg.UploadDir
	}
	a.Router = router.New(opts, router.Handlers{
		Venues:        venue.NewHandler(venues),
		Wizards:       wizard.NewHandler(wizards),
		Listings:      listing.NewHandler(listings),
		Bookings:      booking.NewHandler(bookings, confirmer),
		Uploads:       upload.NewHandler(uploads),
		Notifications: notification.NewHandler(a.Notifications, hub),
	})

	ok = true
	return a, nil
}

// RunBackground starts periodic jobs until ctx is done.
func (a *App) RunBackground(ctx context.Context) {
	go a.Notifications.RunCleanup(ctx, notificationCleanupEvery, notificationKeep)
}

// Close releases connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

func (a *App) kvStore(ctx context.Context) (kv.Store, error) {
	switch a.Config.KVBackend {
	case config.KVMemory:
		log.Warn().Msg("drafts are kept in memory and lost on restart")
		return kv.NewMemory(), nil
	case config.KVRedis:
		opts, err := redis.ParseURL(a.Config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		log.Info().Str("addr", opts.Addr).Msg("drafts stored in redis")
		return kv.NewRedisStore(client, "venuehub:", a.Config.DraftTTL), nil
	default:
		return kv.NewGormStore(a.DB), nil
	}
}

func imageStorage(ctx context.Context, cfg *config.Config) (upload.Storage, error) {
	if cfg.UploadBackend == config.UploadS3 {
		return upload.NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region)
	}
	return upload.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL), nil
}
