package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/colemanhs/fourteeners-mcp-server/metrics"
	"github.com/colemanhs/fourteeners-mcp-server/tracing"
)

const (
	// DefaultBaseURL is the public NWS API endpoint.
	DefaultBaseURL = "https://api.weather.gov"

	// requestTimeout bounds the whole points+forecast chain per request.
	requestTimeout = 30 * time.Second

	// The NWS API rejects requests without a User-Agent.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
)

// Client talks to the National Weather Service API. Requests are
// single-attempt; forecast data is cheap to refetch and a failed call
// surfaces to the user immediately.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient constructs a Client with a 30 second timeout.
func NewClient(logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    DefaultBaseURL,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetForecast resolves coordinates to a gridpoint and returns its raw
// forecast periods. Callers distinguish failures with the Is* helpers in
// this package.
func (c *Client) GetForecast(ctx context.Context, lat, lon float64) ([]Period, error) {
	ctx, span := tracing.StartSpan(ctx, "nws.forecast_chain")
	defer span.End()
	tracing.AddWeatherAttributes(span, "points", lat, lon)

	pointsURL := fmt.Sprintf("%s/points/%s,%s", c.baseURL, formatCoord(lat), formatCoord(lon))

	c.logger.Debug("fetching NWS gridpoint", "url", pointsURL)

	var points pointsResponse
	if err := c.getJSON(ctx, "points", pointsURL, &points); err != nil {
		if status, ok := IsStatus(err); ok && status.Code == http.StatusNotFound {
			err = &RegionNotCoveredError{Latitude: lat, Longitude: lon}
		}
		tracing.RecordError(span, err)
		return nil, err
	}

	if points.Properties.Forecast == "" {
		err := &MalformedResponseError{Stage: "points", Reason: "forecast URL not found"}
		tracing.RecordError(span, err)
		return nil, err
	}

	c.logger.Debug("fetching NWS forecast", "url", points.Properties.Forecast)

	var forecast forecastResponse
	if err := c.getJSON(ctx, "forecast", points.Properties.Forecast, &forecast); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	if forecast.Properties.Periods == nil {
		err := &MalformedResponseError{Stage: "forecast", Reason: "periods not found"}
		tracing.RecordError(span, err)
		return nil, err
	}
	return forecast.Properties.Periods, nil
}

// getJSON performs one GET and decodes the body. Non-2xx statuses become
// StatusError, transport failures become NetworkError.
func (c *Client) getJSON(ctx context.Context, stage, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building %s request: %w", stage, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		metrics.RecordWeatherCall(stage, duration, false)
		return &NetworkError{Stage: stage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		metrics.RecordWeatherCall(stage, duration, false)
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Stage: stage, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordWeatherCall(stage, duration, false)
		return &MalformedResponseError{Stage: stage, Reason: "body is not valid JSON"}
	}

	metrics.RecordWeatherCall(stage, duration, true)
	return nil
}

// formatCoord renders a coordinate without trailing zeros so the points
// URL matches what the API expects.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
