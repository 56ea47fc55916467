// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"weather_app/internal/feature/weather/adapters/openweather"
	"weather_app/internal/feature/weather/usecase"
	"weather_app/internal/platform/cache"
	platformhttp "weather_app/internal/platform/http"
)

// NewWeatherRepository creates a fully configured OpenWeatherMap client.
// If Redis is available, the client is wrapped in a per-city response cache.
// Otherwise lookups always go to the external API.
func NewWeatherRepository(rdb *redis.Client) usecase.WeatherRepository {
	cfg := openweather.LoadConfig()
	httpClient := platformhttp.NewHTTPClient(cfg.Timeout)
	client := openweather.NewOpenWeatherClient(cfg, httpClient)

	if rdb == nil {
		return client
	}
	return cache.NewCachingWeatherRepository(rdb, 5*time.Minute, client, "weather")
}
