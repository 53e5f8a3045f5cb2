package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL     = "http://api.openweathermap.org/data/2.5/weather"
	DefaultTimeout     = 10 * time.Second
	DefaultCity        = "London"
	DefaultPort        = "8080"
	DefaultServiceName = "weather-dashboard"
)

// Config holds all the environment‐driven settings for the application.
type Config struct {
	// Weather provider
	OpenWeatherMapOrgKey string
	OpenWeatherMapURL    string
	RequestTimeout       time.Duration

	// Dashboard
	DefaultCity string
	Port        string

	// Tracing. Disabled when ZipkinEndpoint is empty.
	ZipkinEndpoint string
	ServiceName    string
}

// Load reads settings from the environment, layered over a .env file in the
// working directory when one exists.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env file path. A missing file is not an error.
//
// The API key may be empty: the dashboard still starts and rejects every lookup
// until a key is configured.
func LoadFrom(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	v.SetDefault("OPENWEATHERMAP_BASE_URL", DefaultBaseURL)
	v.SetDefault("WEATHER_TIMEOUT", DefaultTimeout.String())
	v.SetDefault("DEFAULT_CITY", DefaultCity)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("SERVICE_NAME", DefaultServiceName)

	// Older deployments only set API_KEY.
	apiKey := strings.TrimSpace(v.GetString("OPENWEATHERMAP_ORG_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("API_KEY"))
	}

	timeoutStr := v.GetString("WEATHER_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT %q: %w", timeoutStr, err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT %q: must be positive", timeoutStr)
	}

	baseURL := v.GetString("OPENWEATHERMAP_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("OPENWEATHERMAP_BASE_URL must not be empty")
	}

	city := strings.TrimSpace(v.GetString("DEFAULT_CITY"))
	if city == "" {
		city = DefaultCity
	}

	return &Config{
		OpenWeatherMapOrgKey: apiKey,
		OpenWeatherMapURL:    baseURL,
		RequestTimeout:       timeout,

		DefaultCity: city,
		Port:        v.GetString("PORT"),

		ZipkinEndpoint: v.GetString("ZIPKIN_ENDPOINT"),
		ServiceName:    v.GetString("SERVICE_NAME"),
	}, nil
}
