package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "data/processed/Sheet1.csv", cfg.Dataset.Path)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Len(t, cfg.CORS.AllowedOrigins, 8)
	assert.Empty(t, cfg.Media.Dir)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATASET_PATH", "/srv/histbench.csv")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("STORAGE_BASE_URL", "https://cdn.example/media")
	t.Setenv("MEDIA_DIR", "/srv/media")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("LOG_LEVEL", "debug")

	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/histbench.csv", cfg.Dataset.Path)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://cdn.example/media", cfg.Storage.BaseURL)
	assert.Equal(t, "/srv/media", cfg.Media.Dir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 2*time.Hour, cfg.ParseTTLStringOrDefault("2h", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("soon", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("-5m", time.Minute))
}
