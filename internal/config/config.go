package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultCity is queried when no city argument is given.
const DefaultCity = "Kyiv"

// ErrMissingAPIKey is fatal: without the credential no request can be made.
var ErrMissingAPIKey = errors.New("OpenWeatherMap API key not found: set the OPENWEATHERMAP_API_KEY environment variable")

// Config is the full environment surface of the tool. The credential is the
// only variable read.
type Config struct {
	APIKey string
}

// Load reads .env when present, then the process environment. It fails
// before any network work when the credential is absent or empty.
func Load() (*Config, error) {
	godotenv.Load()

	key := strings.TrimSpace(os.Getenv("OPENWEATHERMAP_API_KEY"))
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{APIKey: key}, nil
}
