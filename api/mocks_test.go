package api

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/itinerary"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Search(ctx context.Context, flightNumber string) ([]domain.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

// MockWeatherUseCase is a mock implementation of forecast.WeatherUseCase
type MockWeatherUseCase struct {
	mock.Mock
}

func (m *MockWeatherUseCase) Current(ctx context.Context, at geo.Coordinate) (*domain.Weather, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weather), args.Error(1)
}

// MockItineraryUseCase is a mock implementation of itinerary.ItineraryUseCase
type MockItineraryUseCase struct {
	mock.Mock
}

func (m *MockItineraryUseCase) Build(ctx context.Context, flightNumber string) ([]itinerary.Card, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]itinerary.Card), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestIDMiddleware())
	return engine
}

func serve(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}
