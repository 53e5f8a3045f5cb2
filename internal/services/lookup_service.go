package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// Sentinel errors for your HTTP handlers to inspect.
// Both are raised before any request reaches the provider.
var (
	// returned when no API key is configured
	ErrMissingAPIKey = errors.New("no weather API key configured")

	// returned when the city is empty or only whitespace
	ErrEmptyCity = errors.New("city must not be empty")
)

// LookupService defines the dashboard's one business operation.
type LookupService interface {
	Lookup(ctx context.Context, city string) (types.Reading, error)
}

type lookupService struct {
	fetcher weather.Fetcher
	apiKey  string
	logger  *zap.Logger
}

// NewLookupService wires up service dependencies.
func NewLookupService(fetcher weather.Fetcher, cfg *config.Config, logger *zap.Logger) LookupService {
	return &lookupService{fetcher: fetcher, apiKey: cfg.OpenWeatherMapOrgKey, logger: logger}
}

// Lookup validates the input, fetches the current weather once and logs the outcome.
// Provider failures come back unchanged as *types.FetchError.
func (s *lookupService) Lookup(ctx context.Context, city string) (types.Reading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return types.Reading{}, ErrEmptyCity
	}
	if s.apiKey == "" {
		s.logger.Error("weather lookup rejected", zap.String("city", city), zap.Error(ErrMissingAPIKey))
		return types.Reading{}, ErrMissingAPIKey
	}

	logger := s.logger.With(
		zap.String("lookup_id", uuid.NewString()),
		zap.String("city", city),
	)

	w, err := s.fetcher.FetchCurrent(ctx, types.Query{City: city, APIKey: s.apiKey})
	if err != nil {
		kind := types.KindOf(err)
		fields := []zap.Field{zap.String("kind", kind.String()), zap.Error(err)}
		if kind == types.KindNotFound {
			logger.Warn("weather lookup failed", fields...)
		} else {
			logger.Error("weather lookup failed", fields...)
		}
		return types.Reading{}, err
	}

	logger.Info("weather data retrieved",
		zap.Float64("temp", w.TemperatureCelsius),
		zap.Int("humidity", w.HumidityPercent),
		zap.String("desc", w.Conditions),
	)
	return w, nil
}
