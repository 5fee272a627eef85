package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "change-me-jwt-secret"

	KVMemory = "memory"
	KVDB     = "db"
	KVRedis  = "redis"

	UploadLocal = "local"
	UploadS3    = "s3"
)

type Config struct {
	AppEnv             string        `mapstructure:"app_env"`
	HTTPAddr           string        `mapstructure:"http_addr"`
	DatabaseURL        string        `mapstructure:"database_url"`
	JWTSecret          string        `mapstructure:"jwt_secret"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
	KVBackend          string        `mapstructure:"kv_backend"`
	RedisURL           string        `mapstructure:"redis_url"`
	DraftTTL           time.Duration `mapstructure:"draft_ttl"`
	NATSURL            string        `mapstructure:"nats_url"`
	UploadBackend      string        `mapstructure:"upload_backend"`
	UploadDir          string        `mapstructure:"upload_dir"`
	UploadBaseURL      string        `mapstructure:"upload_base_url"`
	S3Bucket           string        `mapstructure:"s3_bucket"`
	S3Region           string        `mapstructure:"s3_region"`
	ConfirmTimeout     time.Duration `mapstructure:"confirm_timeout"`
	Timezone           string        `mapstructure:"timezone"`
	CORSAllowedOrigins string        `mapstructure:"cors_allowed_origins"`
	LogLevel           string        `mapstructure:"log_level"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg(".env loaded")
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	defaults := map[string]any{
		"app_env":              "dev",
		"http_addr":            ":8080",
		"database_url":         "venuehub.db",
		"jwt_secret":           defaultJWTSecret,
		"jwt_ttl":              "24h",
		"kv_backend":           KVDB,
		"redis_url":            "redis://localhost:6379/0",
		"draft_ttl":            "0s",
		"nats_url":             "",
		"upload_backend":       UploadLocal,
		"upload_dir":           "./uploads",
		"upload_base_url":      "/static",
		"s3_bucket":            "",
		"s3_region":            "us-east-1",
		"confirm_timeout":      "15s",
		"timezone":             "Asia/Kathmandu",
		"cors_allowed_origins": "",
		"log_level":            "info",
	}
	for k, val := range defaults {
		v.SetDefault(k, val)
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", k, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	normalize(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalize(cfg *Config) {
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.KVBackend = strings.ToLower(strings.TrimSpace(cfg.KVBackend))
	cfg.UploadBackend = strings.ToLower(strings.TrimSpace(cfg.UploadBackend))
}

// Location returns the configured time zone, used for "today" in quotes.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) IsProdLike() bool { return isProdLike(c.AppEnv) }

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.ConfirmTimeout <= 0 {
		return fmt.Errorf("CONFIRM_TIMEOUT must be > 0")
	}
	if cfg.DraftTTL < 0 {
		return fmt.Errorf("DRAFT_TTL must be >= 0")
	}

	switch cfg.KVBackend {
	case KVMemory, KVDB:
	case KVRedis:
		if cfg.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when KV_BACKEND=redis")
		}
	default:
		return fmt.Errorf("KV_BACKEND must be one of: memory, db, redis")
	}

	switch cfg.UploadBackend {
	case UploadLocal:
		if cfg.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR must not be empty")
		}
	case UploadS3:
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("UPLOAD_BACKEND must be one of: local, s3")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}
