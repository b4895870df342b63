package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PLACES_API_KEY", "places-key")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, StoreMemory, cfg.LocationStore)
	assert.Equal(t, "places-key", cfg.GeocodeAPIKey)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5000, cfg.DefaultRadius)
	assert.Equal(t, 24*time.Hour, cfg.MemoryStoreTTL)
	assert.Equal(t, RateLimit{Requests: 60, Interval: time.Minute}, cfg.SearchLimit())
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	dir := writeEnvFile(t, "PLACES_API_KEY=file-key\nGEOCODE_API_KEY=geo-key\nPROVIDER_TIMEOUT=3s\nLOCATION_STORE=Postgres\nDB_SOURCE=postgres://localhost/finder\n")
	t.Setenv("PLACES_API_KEY", "")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "file-key", cfg.PlacesAPIKey)
	assert.Equal(t, "geo-key", cfg.GeocodeAPIKey)
	assert.Equal(t, 3*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, StorePostgres, cfg.LocationStore)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "missing api key", file: "LOCATION_STORE=memory\n"},
		{name: "unknown store", file: "PLACES_API_KEY=k\nLOCATION_STORE=redis\n"},
		{name: "postgres without dsn", file: "PLACES_API_KEY=k\nLOCATION_STORE=postgres\n"},
		{name: "bad rate limit", file: "PLACES_API_KEY=k\nSEARCH_RATE_LIMIT=fast\n"},
		{name: "non positive radius", file: "PLACES_API_KEY=k\nDEFAULT_RADIUS=0\n"},
		{name: "negative memory ttl", file: "PLACES_API_KEY=k\nMEMORY_STORE_TTL=-1h\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PLACES_API_KEY", "")
			_, err := LoadConfig(writeEnvFile(t, tt.file))
			assert.Error(t, err)
		})
	}
}

func TestParseRateLimit(t *testing.T) {
	tests := []struct {
		input    string
		expected RateLimit
		wantErr  bool
	}{
		{input: "5/min", expected: RateLimit{Requests: 5, Interval: time.Minute}},
		{input: "10 / s", expected: RateLimit{Requests: 10, Interval: time.Second}},
		{input: "100/hour", expected: RateLimit{Requests: 100, Interval: time.Hour}},
		{input: "0/min", expected: RateLimit{Requests: 0, Interval: time.Minute}},
		{input: "-1/min", wantErr: true},
		{input: "5/day", wantErr: true},
		{input: "5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rl, err := ParseRateLimit(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rl)
		})
	}
}

func TestLoad_SkipsValidation(t *testing.T) {
	dir := writeEnvFile(t, "LOCATION_STORE=postgres\nDB_SOURCE=postgres://localhost/finder\n")
	t.Setenv("PLACES_API_KEY", "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/finder", cfg.DBSource)
	assert.Error(t, cfg.Validate())
}
