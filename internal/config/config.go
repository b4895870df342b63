package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Location store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LocationStore   string        `mapstructure:"LOCATION_STORE"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	DynamoDBTable   string        `mapstructure:"DYNAMODB_TABLE"`
	MemoryStoreTTL  time.Duration `mapstructure:"MEMORY_STORE_TTL"`
	PlacesAPIKey    string        `mapstructure:"PLACES_API_KEY"`
	GeocodeAPIKey   string        `mapstructure:"GEOCODE_API_KEY"`
	PlacesBaseURL   string        `mapstructure:"PLACES_BASE_URL"`
	GeocodeBaseURL  string        `mapstructure:"GEOCODE_BASE_URL"`
	ProviderTimeout time.Duration `mapstructure:"PROVIDER_TIMEOUT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	SearchRateLimit string        `mapstructure:"SEARCH_RATE_LIMIT"`
	DefaultRadius   int           `mapstructure:"DEFAULT_RADIUS"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
}

// RateLimit indicates how many requests are allowed within a given interval.
type RateLimit struct {
	Requests int
	Interval time.Duration
}

var defaults = map[string]any{
	"SERVER_ADDRESS":    ":8080",
	"GIN_MODE":          "release",
	"LOCATION_STORE":    StoreMemory,
	"DB_SOURCE":         "",
	"DYNAMODB_TABLE":    "session_locations",
	"MEMORY_STORE_TTL":  "24h",
	"PLACES_API_KEY":    "",
	"GEOCODE_API_KEY":   "",
	"PLACES_BASE_URL":   "https://places.googleapis.com/v1/places:searchNearby",
	"GEOCODE_BASE_URL":  "https://maps.googleapis.com/maps/api/place/textsearch/json",
	"PROVIDER_TIMEOUT":  "5s",
	"REQUEST_TIMEOUT":   "10s",
	"SHUTDOWN_TIMEOUT":  "10s",
	"SEARCH_RATE_LIMIT": "60/min",
	"DEFAULT_RADIUS":    5000,
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "json",
}

// LoadConfig reads app.env from path (if present), overlays environment variables and
// validates the result for the API server.
func LoadConfig(path string) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration without validating it. Tools that only need part of the
// settings, such as the importer, check what they use themselves.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if cfg.GeocodeAPIKey == "" {
		cfg.GeocodeAPIKey = cfg.PlacesAPIKey
	}
	cfg.LocationStore = strings.ToLower(strings.TrimSpace(cfg.LocationStore))

	return cfg, nil
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	if c.PlacesAPIKey == "" {
		return errors.New("config: PLACES_API_KEY is required")
	}
	switch c.LocationStore {
	case StoreMemory, StoreDynamoDB:
	case StorePostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required when LOCATION_STORE=postgres")
		}
	default:
		return fmt.Errorf("config: unsupported LOCATION_STORE %q", c.LocationStore)
	}
	if c.MemoryStoreTTL < 0 {
		return errors.New("config: MEMORY_STORE_TTL must not be negative")
	}
	if c.ProviderTimeout <= 0 || c.RequestTimeout <= 0 {
		return errors.New("config: PROVIDER_TIMEOUT and REQUEST_TIMEOUT must be positive")
	}
	if c.DefaultRadius <= 0 {
		return errors.New("config: DEFAULT_RADIUS must be positive")
	}
	if _, err := ParseRateLimit(c.SearchRateLimit); err != nil {
		return fmt.Errorf("config: invalid SEARCH_RATE_LIMIT: %w", err)
	}
	return nil
}

// SearchLimit returns the parsed SEARCH_RATE_LIMIT.
func (c Config) SearchLimit() RateLimit {
	rl, _ := ParseRateLimit(c.SearchRateLimit)
	return rl
}

// ParseRateLimit parses values such as "60/min". A request count of zero disables limiting.
func ParseRateLimit(value string) (RateLimit, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimit{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests < 0 {
		return RateLimit{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimit{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimit{Requests: requests, Interval: interval}, nil
}
