package services

import (
	"errors"
	"fmt"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// UserMessage returns the fixed, non-technical text shown for a failed lookup.
func UserMessage(err error, city string) string {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return "Please configure an API key"
	case errors.Is(err, ErrEmptyCity):
		return "Please enter a city name"
	}

	switch types.KindOf(err) {
	case types.KindNotFound:
		return fmt.Sprintf("Oops, we were unable to find weather data for '%s'! Please try again later.", city)
	case types.KindUnreachable:
		return "Oops, the weather service seems to be down! Please try again later."
	case types.KindMalformedResponse:
		return "Oops, some weather data is missing. Please try again later."
	default:
		return "Oops, something went wrong on our end! Please try again later."
	}
}
