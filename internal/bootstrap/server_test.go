package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/flighttracker/api"
	"github.com/Domenick1991/flighttracker/config"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlights struct{}

func (stubFlights) Search(context.Context, string) ([]domain.Flight, error) {
	return []domain.Flight{}, nil
}

type stubWeather struct{}

func (stubWeather) Current(context.Context, geo.Coordinate) (*domain.Weather, error) {
	return &domain.Weather{Temp: 70}, nil
}

type stubItinerary struct{}

func (stubItinerary) Build(context.Context, string) ([]itinerary.Card, error) {
	return []itinerary.Card{}, nil
}

func testServices() Services {
	return Services{Flights: stubFlights{}, Weather: stubWeather{}, Itinerary: stubItinerary{}}
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()

	router, err := NewRouter(&cfg, testServices())
	require.NoError(t, err)

	tests := []struct {
		target     string
		wantStatus int
	}{
		{"/", http.StatusOK},
		{"/?flightNumber=AA100", http.StatusOK},
		{"/health", http.StatusOK},
		{"/api/flights?flightNumber=AA100", http.StatusOK},
		{"/api/weather?lat=1&lon=2", http.StatusOK},
		{"/api/itinerary?flightNumber=AA100", http.StatusOK},
		{"/api/airports/JFK", http.StatusOK},
		{"/api/route?from=JFK&to=LHR", http.StatusOK},
		{"/swagger/doc.json", http.StatusOK},
		{"/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := get(t, router, tt.target)
		assert.Equal(t, tt.wantStatus, w.Code, tt.target)
		assert.NotEmpty(t, w.Header().Get(api.RequestIDHeader), tt.target)
	}

	assert.Contains(t, get(t, router, "/swagger/doc.json").Body.String(), "Flight Tracker API")
}

func TestNewRouter_SwaggerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.HTTP.SwaggerEnabled = false

	router, err := NewRouter(&cfg, testServices())
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/swagger/doc.json").Code)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, &cfg, testServices()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("server did not shut down")
	}
}
