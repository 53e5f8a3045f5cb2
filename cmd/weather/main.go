package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/services"
	"github.com/namefreezers/weather-dashboard/internal/telemetry"
	"github.com/namefreezers/weather-dashboard/internal/weather"
)

func main() {
	// 1) Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	city := flag.String("city", cfg.DefaultCity, "city to look up")
	flag.Parse()

	// 2) Init logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3) Tracing and fetcher
	shutdownTracing, err := telemetry.SetupTracing(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}

	weatherFetcher, err := weather.BuildFetcher(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize weather fetcher", zap.Error(err))
	}
	lookupSvc := services.NewLookupService(weatherFetcher, cfg, logger)

	// 4) One lookup, then flush spans before exiting
	ctx := context.Background()
	code := run(ctx, lookupSvc, *city, os.Stdout, os.Stderr)

	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("tracing shutdown failed", zap.Error(err))
	}
	_ = logger.Sync()
	os.Exit(code)
}

// run performs one lookup and prints the reading, or the fixed failure message.
// It returns the process exit code.
func run(ctx context.Context, svc services.LookupService, city string, stdout, stderr io.Writer) int {
	w, err := svc.Lookup(ctx, city)
	if err != nil {
		fmt.Fprintln(stderr, services.UserMessage(err, city))
		return 1
	}

	fmt.Fprintf(stdout, "Weather in %s\n", city)
	fmt.Fprintf(stdout, "Temperature: %v°C\n", w.TemperatureCelsius)
	fmt.Fprintf(stdout, "Humidity: %d%%\n", w.HumidityPercent)
	fmt.Fprintf(stdout, "Conditions: %s\n", w.Conditions)
	return 0
}
