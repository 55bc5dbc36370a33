package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	CORS    CORSConfig
	Storage StorageConfig
	Media   MediaConfig
	Redis   RedisConfig
	Cache   CacheConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatasetConfig points at the CSV export of the benchmark sheet.
type DatasetConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// StorageConfig holds the public object storage prefix media links are built from.
type StorageConfig struct {
	BaseURL string
}

// MediaConfig controls where /media-info and /media-convert read files from.
// An empty Dir means files are fetched from Storage.BaseURL instead.
type MediaConfig struct {
	Dir          string
	FetchTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	ConversionTTL string `yaml:"conversion_ttl"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000", "http://127.0.0.1:3000",
	"http://localhost:3001", "http://127.0.0.1:3001",
	"http://localhost:3002", "http://127.0.0.1:3002",
	"http://localhost:3003", "http://127.0.0.1:3003",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("dataset.path", "data/processed/Sheet1.csv")
	v.SetDefault("cors.allowed_origins", defaultAllowedOrigins)
	v.SetDefault("storage.base_url", "https://histbench.oss-cn-beijing.aliyuncs.com/HistBench_complete")
	v.SetDefault("media.dir", "")
	v.SetDefault("media.fetch_timeout", 20)
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.conversion_ttl", "24h")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
}

// LoadConfig reads config.yaml (if present) and applies environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Dataset: DatasetConfig{
			Path: v.GetString("dataset.path"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
		Storage: StorageConfig{
			BaseURL: v.GetString("storage.base_url"),
		},
		Media: MediaConfig{
			Dir:          v.GetString("media.dir"),
			FetchTimeout: time.Duration(v.GetInt("media.fetch_timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			ConversionTTL: v.GetString("cache.conversion_ttl"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		config.Dataset.Path = path
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		config.CORS.AllowedOrigins = splitList(origins)
	}
	if baseURL := os.Getenv("STORAGE_BASE_URL"); baseURL != "" {
		config.Storage.BaseURL = baseURL
	}
	if dir := os.Getenv("MEDIA_DIR"); dir != "" {
		config.Media.Dir = dir
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseTTLStringOrDefault parses a duration string such as "24h", falling back to def
// when the string is empty or malformed.
func (c *Config) ParseTTLStringOrDefault(ttl string, def time.Duration) time.Duration {
	if ttl == "" {
		return def
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
