// README: Config loader with env defaults for HTTP, Redis, Maps, review and logging settings.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DistanceConfig struct {
	MapsAPIKey string
	CacheTTL   time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Distance DistanceConfig
	Review   struct {
		// DistanceOneWay is used for listed quotes, which carry no location.
		DistanceOneWay float64
	}
	Log struct {
		Level string
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	cfg.HTTP.Addr = envOrDefault("ALTERQUOTE_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = os.Getenv("ALTERQUOTE_REDIS_ADDR")
	cfg.Distance.MapsAPIKey = os.Getenv("ALTERQUOTE_MAPS_API_KEY")
	cfg.Distance.CacheTTL = envOrDefaultDuration("ALTERQUOTE_DISTANCE_CACHE_TTL", 24*time.Hour)
	cfg.Review.DistanceOneWay = envOrDefaultFloat("ALTERQUOTE_REVIEW_DISTANCE", 5.0)
	cfg.Log.Level = envOrDefault("LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
