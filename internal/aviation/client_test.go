package aviation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"pagination": {"limit": 100, "offset": 0, "count": 1, "total": 1},
	"data": [{
		"flight_date": "2025-03-10",
		"flight_status": "active",
		"departure": {
			"airport": "John F Kennedy International",
			"timezone": "America/New_York",
			"iata": "JFK",
			"terminal": "8",
			"gate": "B12",
			"delay": 20,
			"scheduled": "2025-03-10T12:30:00+00:00",
			"estimated": "2025-03-10T12:50:00+00:00"
		},
		"arrival": {
			"airport": "Heathrow",
			"timezone": "Europe/London",
			"iata": "LHR",
			"terminal": null,
			"gate": null,
			"baggage": "7",
			"delay": null,
			"scheduled": "2025-03-11T00:45:00+00:00",
			"estimated": null
		},
		"airline": {"name": "American Airlines", "iata": "AA"},
		"flight": {"number": "100", "iata": "AA100"},
		"aircraft": {"registration": "N717AN", "iata": "B77W"}
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.AviationConfig{APIKey: "test-key", TimeoutSeconds: 5}, WithBaseURL(srv.URL))
}

func TestFetchFlights_MapsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "AA100", r.URL.Query().Get("flight_iata"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	})

	flights, err := client.FetchFlights(context.Background(), " AA100 ")
	require.NoError(t, err)

	want := []domain.Flight{{
		FlightNumber: "AA100",
		Airline:      "American Airlines",
		Status:       domain.FlightStatusDelayed,
		Origin: domain.Location{
			Code:          "JFK",
			City:          "John F Kennedy International",
			Time:          "2025-03-10T12:30:00+00:00",
			Timezone:      "America/New_York",
			Terminal:      "8",
			Gate:          "B12",
			EstimatedTime: "2025-03-10T12:50:00+00:00",
			DelayMinutes:  20,
		},
		Destination: domain.Location{
			Code:     "LHR",
			City:     "Heathrow",
			Time:     "2025-03-11T00:45:00+00:00",
			Timezone: "Europe/London",
			Baggage:  "7",
		},
		Aircraft: &domain.Aircraft{Type: "B77W"},
	}}

	if diff := cmp.Diff(want, flights); diff != "" {
		t.Errorf("FetchFlights() mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchFlights_BlankNumberSkipsUpstream(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	flights, err := client.FetchFlights(context.Background(), "   ")
	require.NoError(t, err)
	assert.NotNil(t, flights)
	assert.Empty(t, flights)
	assert.Zero(t, calls.Load())
}

func TestFetchFlights_NoDataArray(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"data": null}`,
		`{"data": {"unexpected": true}}`,
		`{"data": []}`,
		`{"error": {"code": "usage_limit_reached"}}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			flights, err := client.FetchFlights(context.Background(), "AA100")
			require.NoError(t, err)
			assert.Empty(t, flights)
		})
	}
}

func TestFetchFlights_MalformedPayload(t *testing.T) {
	bodies := map[string]string{
		"not json":          `<html>`,
		"missing departure": `{"data": [{"arrival": {}, "flight": {}, "airline": {}}]}`,
		"leg is a string":   `{"data": [{"departure": "JFK", "arrival": {}, "flight": {}, "airline": {}}]}`,
		"delay is text":     `{"data": [{"departure": {"delay": "late"}, "arrival": {}, "flight": {}, "airline": {}}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			})

			_, err := client.FetchFlights(context.Background(), "AA100")
			assert.ErrorIs(t, err, ErrMalformedPayload)
		})
	}
}

func TestFetchFlights_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.FetchFlights(context.Background(), "AA100")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "upstream exploded", statusErr.Body)
	assert.Contains(t, err.Error(), "unexpected status: 502")
}

func TestFetchFlights_MinimalRecord(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{
			"flight_status": "scheduled",
			"departure": {"iata": "LAX", "airport": "Los Angeles International", "terminal": "", "delay": 0},
			"arrival": {"iata": "SFO", "airport": "San Francisco International"},
			"airline": {"name": "United Airlines"},
			"flight": {"iata": "UA1"},
			"aircraft": null
		}]}`))
	})

	flights, err := client.FetchFlights(context.Background(), "UA1")
	require.NoError(t, err)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, domain.FlightStatusOnTime, f.Status)
	assert.Nil(t, f.Aircraft)
	assert.Empty(t, f.Origin.Terminal)
	assert.Zero(t, f.Origin.DelayMinutes)
}

func intPtr(v int) *int { return &v }

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		depDelay *int
		arrDelay *int
		want     domain.FlightStatus
	}{
		{name: "departure delay over threshold", status: "active", depDelay: intPtr(20), want: domain.FlightStatusDelayed},
		{name: "departure delay under threshold", status: "active", depDelay: intPtr(10), want: domain.FlightStatusOnTime},
		{name: "delay at threshold", status: "active", depDelay: intPtr(15), arrDelay: intPtr(15), want: domain.FlightStatusOnTime},
		{name: "arrival delay over threshold", status: "landed", arrDelay: intPtr(16), want: domain.FlightStatusDelayed},
		{name: "cancelled regardless of delay", status: "cancelled", depDelay: intPtr(120), arrDelay: intPtr(90), want: domain.FlightStatusCancelled},
		{name: "cancelled without delay", status: "cancelled", want: domain.FlightStatusCancelled},
		{name: "incident", status: "incident", want: domain.FlightStatusDelayed},
		{name: "diverted", status: "diverted", depDelay: intPtr(0), want: domain.FlightStatusDelayed},
		{name: "scheduled no delays", status: "scheduled", want: domain.FlightStatusOnTime},
		{name: "unknown status", status: "", want: domain.FlightStatusOnTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.status, tt.depDelay, tt.arrDelay))
		})
	}
}

func TestFetchFlights_TransportErrorHidesAccessKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(config.AviationConfig{APIKey: "SECRET-KEY-123", TimeoutSeconds: 5}, WithBaseURL(srv.URL))

	_, err := client.FetchFlights(context.Background(), "AA100")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
	assert.Contains(t, err.Error(), "access_key=REDACTED")
	assert.Contains(t, err.Error(), "flight_iata=AA100")
}
