package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/services"
	"github.com/namefreezers/weather-dashboard/internal/weather/openweathermap"
)

// newService wires the real client and service against a stub provider.
func newService(t *testing.T, apiKey string, status int, body string) (services.LookupService, *atomic.Int32) {
	t.Helper()
	requests := new(atomic.Int32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := openweathermap.NewClientWithHTTPClient(srv.URL, &http.Client{Timeout: time.Second}, zap.NewNop())
	return services.NewLookupService(client, &config.Config{OpenWeatherMapOrgKey: apiKey}, zap.NewNop()), requests
}

func TestRun_London(t *testing.T) {
	svc, _ := newService(t, "valid-key", http.StatusOK,
		`{"cod":200,"main":{"temp":15.2,"humidity":72},"weather":[{"description":"light rain"}]}`)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), svc, "London", &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr.String())
	}
	want := "Weather in London\nTemperature: 15.2°C\nHumidity: 72%\nConditions: light rain\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRun_Atlantis(t *testing.T) {
	svc, _ := newService(t, "valid-key", http.StatusOK, `{"cod":"404","message":"city not found"}`)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), svc, "Atlantis", &stdout, &stderr)
	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	want := "Oops, we were unable to find weather data for 'Atlantis'! Please try again later.\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	svc, requests := newService(t, "", http.StatusOK, `{}`)

	var stdout, stderr bytes.Buffer
	if code := run(context.Background(), svc, "London", &stdout, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if n := requests.Load(); n != 0 {
		t.Errorf("provider received %d requests, want 0", n)
	}
	if stderr.String() != "Please configure an API key\n" {
		t.Errorf("stderr = %q", stderr.String())
	}
}
