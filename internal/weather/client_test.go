package weather

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// newTestServer serves a points response whose forecast URL points back
// at the same server, followed by the given forecast body.
func newTestServer(t *testing.T, forecastStatus int, forecastBody string) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected User-Agent header to be set")
		}
		switch {
		case r.URL.Path == "/gridpoints/BOU/1,2/forecast":
			w.WriteHeader(forecastStatus)
			fmt.Fprint(w, forecastBody)
		default:
			fmt.Fprintf(w, `{"properties": {"forecast": "%s/gridpoints/BOU/1,2/forecast"}}`, server.URL)
		}
	}))
	return server
}

func TestGetForecast(t *testing.T) {
	body := `{"properties": {"periods": [
		{"name": "Tonight", "temperature": 28, "temperatureUnit": "F",
		 "windSpeed": "10 mph", "windDirection": "NW",
		 "shortForecast": "Partly Cloudy", "detailedForecast": "Partly cloudy, with a low around 28."},
		{"name": "Friday", "temperature": 45, "temperatureUnit": "F",
		 "windSpeed": "5 mph", "windDirection": "W",
		 "shortForecast": "Sunny", "detailedForecast": "Sunny, with a high near 45."}
	]}}`
	server := newTestServer(t, http.StatusOK, body)
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	periods, err := client.GetForecast(context.Background(), 39.1178, -106.4454)
	if err != nil {
		t.Fatalf("GetForecast failed: %v", err)
	}

	if len(periods) != 2 {
		t.Fatalf("got %d periods, want 2", len(periods))
	}
	if periods[0].Name != "Tonight" {
		t.Errorf("first period name = %q, want %q", periods[0].Name, "Tonight")
	}
	if periods[0].Temperature == nil || *periods[0].Temperature != 28 {
		t.Errorf("first period temperature = %v, want 28", periods[0].Temperature)
	}
	if periods[1].ShortForecast != "Sunny" {
		t.Errorf("second period short forecast = %q, want %q", periods[1].ShortForecast, "Sunny")
	}
}

func TestGetForecastPointsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 56.0, 10.0)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsRegionNotCovered(err) {
		t.Errorf("expected RegionNotCoveredError, got %T: %v", err, err)
	}
}

func TestGetForecastPointsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	status, ok := IsStatus(err)
	if !ok {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if status.Stage != "points" {
		t.Errorf("stage = %q, want %q", status.Stage, "points")
	}
	if status.Code != http.StatusInternalServerError {
		t.Errorf("code = %d, want %d", status.Code, http.StatusInternalServerError)
	}
}

func TestGetForecastMissingForecastURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {}}`)
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	malformed, ok := IsMalformed(err)
	if !ok {
		t.Fatalf("expected MalformedResponseError, got %T: %v", err, err)
	}
	if malformed.Stage != "points" {
		t.Errorf("stage = %q, want %q", malformed.Stage, "points")
	}
}

func TestGetForecastForecastStageError(t *testing.T) {
	server := newTestServer(t, http.StatusBadGateway, "")
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	status, ok := IsStatus(err)
	if !ok {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if status.Stage != "forecast" {
		t.Errorf("stage = %q, want %q", status.Stage, "forecast")
	}
}

func TestGetForecastMissingPeriods(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"properties": {}}`)
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	malformed, ok := IsMalformed(err)
	if !ok {
		t.Fatalf("expected MalformedResponseError, got %T: %v", err, err)
	}
	if malformed.Stage != "forecast" {
		t.Errorf("stage = %q, want %q", malformed.Stage, "forecast")
	}
}

func TestGetForecastEmptyPeriods(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"properties": {"periods": []}}`)
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	periods, err := client.GetForecast(context.Background(), 39.0, -106.0)
	if err != nil {
		t.Fatalf("GetForecast failed: %v", err)
	}
	if len(periods) != 0 {
		t.Errorf("got %d periods, want 0", len(periods))
	}
}

func TestGetForecastNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	network, ok := IsNetwork(err)
	if !ok {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
	if network.Stage != "points" {
		t.Errorf("stage = %q, want %q", network.Stage, "points")
	}
}

func TestGetForecastInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewClient(testLogger(), WithBaseURL(server.URL))
	_, err := client.GetForecast(context.Background(), 39.0, -106.0)

	if _, ok := IsMalformed(err); !ok {
		t.Fatalf("expected MalformedResponseError, got %T: %v", err, err)
	}
}
