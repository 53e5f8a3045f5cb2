package weather

import (
	"context"

	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// Fetcher performs a single current-weather lookup.
// Failures are *types.FetchError values; match them with errors.Is against
// types.ErrNotFound, types.ErrUnreachable, types.ErrMalformedResponse or types.ErrUnexpected.
type Fetcher interface {
	FetchCurrent(ctx context.Context, q types.Query) (types.Reading, error)
}
