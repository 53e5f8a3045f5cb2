package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/namefreezers/weather-dashboard/internal/services"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// weatherRequest defines the expected query parameter for GET /api/weather
type weatherRequest struct {
	City string `form:"city" binding:"required"`
}

// weatherResponse is the body of a successful lookup
type weatherResponse struct {
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}

// WeatherHandler returns a Gin handler for GET /api/weather
func WeatherHandler(svc services.LookupService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1) Bind and validate the 'city' query parameter
		var req weatherRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			// 400 Invalid request
			c.JSON(http.StatusBadRequest, gin.H{"error": services.UserMessage(services.ErrEmptyCity, "")})
			return
		}

		// 2) Fetch current weather
		w, err := svc.Lookup(c.Request.Context(), req.City)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": services.UserMessage(err, req.City)})
			return
		}

		// 3) 200 Successful operation
		c.JSON(http.StatusOK, weatherResponse{
			Temperature: w.TemperatureCelsius,
			Humidity:    w.HumidityPercent,
			Description: w.Conditions,
		})
	}
}

// HealthHandler handles GET /healthz
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// statusFor maps a lookup error to the HTTP status of the JSON API.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyCity):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrMissingAPIKey):
		return http.StatusInternalServerError
	}

	switch types.KindOf(err) {
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindUnreachable:
		return http.StatusServiceUnavailable
	case types.KindMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
