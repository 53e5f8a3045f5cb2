package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/weather/types"
)

// maxBodySize caps how much of a response is read. Real payloads are ~1 KiB.
const maxBodySize = 1 << 20

// Client queries the OpenWeatherMap current-weather endpoint.
// The API key travels with each Query, so one Client serves any key.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a Client from configuration, with cfg.RequestTimeout bounding each call.
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	if _, err := url.ParseRequestURI(cfg.OpenWeatherMapURL); err != nil {
		return nil, fmt.Errorf("openweathermap: invalid base URL %q: %w", cfg.OpenWeatherMapURL, err)
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	return NewClientWithHTTPClient(cfg.OpenWeatherMapURL, httpClient, logger), nil
}

// NewClientWithHTTPClient builds a Client around a caller-supplied http.Client.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: logger}
}

// FetchCurrent implements weather.Fetcher.
// Every failure is a *types.FetchError; a Reading is returned only when the
// body carries all three fields with the expected types.
func (c *Client) FetchCurrent(ctx context.Context, q types.Query) (types.Reading, error) {
	reqURL, err := c.buildURL(q)
	if err != nil {
		return types.Reading{}, &types.FetchError{Kind: types.KindUnexpected, Detail: "failed to build request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.Reading{}, &types.FetchError{Kind: types.KindUnexpected, Detail: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Reading{}, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return types.Reading{}, classifyTransportError(err)
	}

	c.logger.Debug("openweathermap response",
		zap.String("city", q.City),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Reading{}, statusError(resp.StatusCode, body)
	}
	return decodeReading(body)
}

// buildURL appends q, appid and units to the configured endpoint, keeping any
// query parameters the base URL already has.
func (c *Client) buildURL(q types.Query) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	query := u.Query()
	query.Set("q", q.City)
	query.Set("appid", q.APIKey)
	query.Set("units", "metric")
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// classifyTransportError maps an error from Do or from reading the body.
// A caller cancelling the lookup is not an outage, so it is reported as unexpected.
func classifyTransportError(err error) *types.FetchError {
	// *url.Error repeats the request URL, which carries the API key.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return &types.FetchError{Kind: types.KindUnreachable, Err: urlErr.Err}
		}
		err = urlErr.Err
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &types.FetchError{Kind: types.KindUnreachable, Err: err}
	}
	if errors.Is(err, context.Canceled) {
		return &types.FetchError{Kind: types.KindUnexpected, Detail: "request cancelled", Err: err}
	}
	return &types.FetchError{Kind: types.KindUnreachable, Err: err}
}

// envelope holds the provider's status fields. Both are kept raw because the
// provider sends cod as a number on success and as a string on errors.
type envelope struct {
	Cod     json.RawMessage `json:"cod"`
	Message json.RawMessage `json:"message"`
}

func (e envelope) code() (int, bool) {
	s := strings.Trim(strings.TrimSpace(string(e.Cod)), `"`)
	if s == "" || s == "null" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e envelope) message() string {
	var s string
	if len(e.Message) == 0 || json.Unmarshal(e.Message, &s) != nil {
		return ""
	}
	return s
}

// statusError classifies a non-2xx response. A 404 from either the HTTP status
// or the body is a lookup miss.
func statusError(status int, body []byte) *types.FetchError {
	var env envelope
	_ = json.Unmarshal(body, &env) // best effort; error bodies are not always JSON

	code, ok := env.code()
	if status == http.StatusNotFound || (ok && code == http.StatusNotFound) {
		return &types.FetchError{Kind: types.KindNotFound, Detail: env.message()}
	}
	detail := env.message()
	if detail == "" {
		detail = fmt.Sprintf("unexpected status %d %s", status, http.StatusText(status))
	}
	return &types.FetchError{Kind: types.KindUnexpected, Detail: detail}
}

type payload struct {
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
}

// decodeReading parses a 2xx body. The body-level cod is checked before any
// field is read, since the provider can report a failure inside a 200.
func decodeReading(body []byte) (types.Reading, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return types.Reading{}, malformed("invalid JSON: %v", err)
	}
	if code, ok := env.code(); ok && code != http.StatusOK {
		if code == http.StatusNotFound {
			return types.Reading{}, &types.FetchError{Kind: types.KindNotFound, Detail: env.message()}
		}
		detail := env.message()
		if detail == "" {
			detail = fmt.Sprintf("provider code %d", code)
		}
		return types.Reading{}, &types.FetchError{Kind: types.KindUnexpected, Detail: detail}
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return types.Reading{}, malformed("%v", err)
	}
	switch {
	case p.Main == nil:
		return types.Reading{}, malformed("missing main")
	case p.Main.Temp == nil:
		return types.Reading{}, malformed("missing main.temp")
	case p.Main.Humidity == nil:
		return types.Reading{}, malformed("missing main.humidity")
	case len(p.Weather) == 0:
		return types.Reading{}, malformed("missing weather[0]")
	case p.Weather[0].Description == nil:
		return types.Reading{}, malformed("missing weather[0].description")
	}

	h := *p.Main.Humidity
	if h != math.Trunc(h) || h < 0 || h > 100 {
		return types.Reading{}, malformed("main.humidity %v is not an integer percentage", h)
	}

	return types.Reading{
		TemperatureCelsius: *p.Main.Temp,
		HumidityPercent:    int(h),
		Conditions:         *p.Weather[0].Description,
	}, nil
}

func malformed(format string, args ...any) *types.FetchError {
	return &types.FetchError{Kind: types.KindMalformedResponse, Detail: fmt.Sprintf(format, args...)}
}
