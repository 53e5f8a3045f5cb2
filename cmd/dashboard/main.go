package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/handlers"
	"github.com/namefreezers/weather-dashboard/internal/services"
	"github.com/namefreezers/weather-dashboard/internal/telemetry"
	"github.com/namefreezers/weather-dashboard/internal/weather"
)

func main() {
	// 1) Load configuration from environment (and .env, if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// 2) Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.OpenWeatherMapOrgKey == "" {
		logger.Warn("OPENWEATHERMAP_ORG_API_KEY is not set, every lookup will be rejected")
	}

	// 3) Tracing (no-op unless ZIPKIN_ENDPOINT is set)
	shutdownTracing, err := telemetry.SetupTracing(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// 4) Build the weather fetcher
	weatherFetcher, err := weather.BuildFetcher(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize weather fetcher", zap.Error(err))
	}

	// 5) Wire up the lookup service
	lookupSvc := services.NewLookupService(weatherFetcher, cfg, logger)

	// 6) Set up Gin router and handlers
	router := gin.Default()
	router.Use(handlers.Tracing(otel.Tracer("github.com/namefreezers/weather-dashboard/internal/handlers")))
	router.SetHTMLTemplate(handlers.Templates())
	router.GET("/", handlers.DashboardHandler(lookupSvc, cfg.DefaultCity))
	router.GET("/healthz", handlers.HealthHandler())
	api := router.Group("/api")
	{
		api.GET("/weather", handlers.WeatherHandler(lookupSvc))
	}

	// 7) Start HTTP server
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting dashboard server",
			zap.String("address", addr),
			zap.String("defaultCity", cfg.DefaultCity),
			zap.Duration("timeout", cfg.RequestTimeout),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// 8) Shut down on signal, letting in-flight lookups finish
	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing shutdown failed", zap.Error(err))
	}
}
