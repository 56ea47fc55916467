// Package openweather provides a client for the OpenWeatherMap current weather API.
package openweather

import (
	"os"
	"time"
)

// Config holds configuration for the OpenWeatherMap API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.openweathermap.org")
	Units   string        // Measurement units ("metric", "imperial" or "standard")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads OpenWeatherMap configuration from environment variables.
// The API key is never hardcoded; an empty key makes every request fail
// with an authentication error from the service.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		BaseURL: os.Getenv("OPENWEATHER_BASE_URL"),
		Units:   os.Getenv("OPENWEATHER_UNITS"),
		Timeout: 10 * time.Second,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	return cfg
}
