package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-search-history/internal/common"
)

const (
	DefaultPort           = "5000"
	DefaultAllowedOrigin  = "http://localhost:5173"
	DefaultProviderURL    = "https://api.openweathermap.org/data/2.5/weather"
	DefaultHistoryURL     = "http://localhost:5000"
	defaultMongoDatabase  = "test"
	defaultHealthInterval = "1m"
	defaultStoreTimeout   = "5s"
	defaultHTTPTimeout    = "10s"
)

// ErrMissingAPIKey is returned by LoadClient when no provider key is available.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

// AppConfig configures the history service.
type AppConfig struct {
	Port string

	// StoreURI selects and addresses the store (mongodb://, sqlite://, memory://).
	// An empty value is not fatal: the service starts with an unavailable store.
	StoreURI      string
	MongoDatabase string
	StoreTimeout  time.Duration

	AllowedOrigin string

	OpenWeatherAPIKey string

	// HealthInterval controls how often the store is probed.
	HealthInterval time.Duration
}

// ClientConfig configures the interactive weather client.
type ClientConfig struct {
	OpenWeatherAPIKey string
	ProviderURL       string
	HistoryURL        string
	HTTPTimeout       time.Duration
}

// Load reads the history service configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	loadDotenv()
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", DefaultPort)
	cfg.StoreURI = os.Getenv("MONGODB_URI")
	cfg.MongoDatabase = getenvDefault("MONGODB_DATABASE", defaultMongoDatabase)
	cfg.AllowedOrigin = getenvDefault("ALLOWED_ORIGIN", DefaultAllowedOrigin)

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	if cfg.OpenWeatherAPIKey == "" {
		log.Printf("WARN: OPENWEATHER_API_KEY is not set")
	}

	var err error
	if cfg.HealthInterval, err = getenvDuration("HEALTH_INTERVAL", defaultHealthInterval); err != nil {
		return nil, err
	}
	if cfg.StoreTimeout, err = getenvDuration("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadClient reads the client configuration. bakedKey, when non-empty, wins
// over the environment; it is set at build time with -ldflags.
func LoadClient(bakedKey string) (*ClientConfig, error) {
	loadDotenv()
	cfg := &ClientConfig{}

	cfg.OpenWeatherAPIKey = common.FirstNonEmpty(bakedKey, os.Getenv("OPENWEATHER_API_KEY"))
	if cfg.OpenWeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg.ProviderURL = getenvDefault("OPENWEATHER_BASE_URL", DefaultProviderURL)
	cfg.HistoryURL = getenvDefault("HISTORY_SERVICE_URL", DefaultHistoryURL)

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotenv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
}

func getenvDefault(key, def string) string {
	return common.FirstNonEmpty(os.Getenv(key), def)
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}
