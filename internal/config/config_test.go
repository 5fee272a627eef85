package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, KVDB, cfg.KVBackend)
	assert.Equal(t, UploadLocal, cfg.UploadBackend)
	assert.Equal(t, 15*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kathmandu", loc.String())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("KV_BACKEND", "Redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("CONFIRM_TIMEOUT", "3s")
	t.Setenv("UPLOAD_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "venue-photos")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, KVRedis, cfg.KVBackend)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, 3*time.Second, cfg.ConfirmTimeout)
	assert.Equal(t, "venue-photos", cfg.S3Bucket)
}

func TestLoad_Rejections(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown kv backend", env: map[string]string{"KV_BACKEND": "etcd"}},
		{name: "s3 without bucket", env: map[string]string{"UPLOAD_BACKEND": "s3"}},
		{name: "bad timeout", env: map[string]string{"CONFIRM_TIMEOUT": "0s"}},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{name: "prod with default secret", env: map[string]string{"APP_ENV": "production"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := load(viper.New())
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProdWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "s3cr3t-value")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
}
