package weather

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// TracingFetcher decorates another Fetcher with one span per lookup.
type TracingFetcher struct {
	inner  Fetcher
	tracer trace.Tracer
}

// NewTracingFetcher wraps inner. The span carries the city and, on failure, the error kind.
func NewTracingFetcher(inner Fetcher, tracer trace.Tracer) *TracingFetcher {
	return &TracingFetcher{inner: inner, tracer: tracer}
}

func (t *TracingFetcher) FetchCurrent(ctx context.Context, q types.Query) (types.Reading, error) {
	ctx, span := t.tracer.Start(ctx, "weather.FetchCurrent",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("weather.city", q.City)),
	)
	defer span.End()

	w, err := t.inner.FetchCurrent(ctx, q)
	if err != nil {
		span.SetAttributes(attribute.String("weather.error_kind", types.KindOf(err).String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return w, err
	}

	span.SetAttributes(
		attribute.Float64("weather.temperature_c", w.TemperatureCelsius),
		attribute.Int("weather.humidity_pct", w.HumidityPercent),
	)
	return w, nil
}
