package weather

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather/openweathermap"
)

const tracerName = "github.com/namefreezers/weather-dashboard/internal/weather"

// BuildFetcher constructs the Fetcher used by both binaries:
// 1) the OpenWeatherMap client, bounded by cfg.RequestTimeout
// 2) wrapped in a span per lookup, exported only when tracing is configured
func BuildFetcher(cfg *config.Config, logger *zap.Logger) (Fetcher, error) {
	owm, err := openweathermap.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("openweathermap client: %w", err)
	}
	return NewTracingFetcher(owm, otel.Tracer(tracerName)), nil
}
