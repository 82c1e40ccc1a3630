package forecast

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/weather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Current(ctx context.Context, lat, lon float64) (*domain.Weather, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weather), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetWeather(ctx context.Context, at geo.Coordinate) (*domain.Weather, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Weather), args.Error(1)
}

func (m *MockCache) SetWeather(ctx context.Context, at geo.Coordinate, w *domain.Weather) error {
	args := m.Called(ctx, at, w)
	return args.Error(0)
}

var clearSky = &domain.Weather{Temp: 72, FeelsLike: 71, Condition: "Clear", Description: "clear sky", Icon: "01d", Humidity: 40, WindSpeed: 5, Pressure: 1013}

func TestWeatherService_Current_CacheMiss(t *testing.T) {
	provider := &MockProvider{}
	cache := &MockCache{}
	service := NewWeatherService(provider, cache)
	ctx := context.Background()

	rounded := geo.Coordinate{Lat: 40.64, Lng: -73.78}
	cache.On("GetWeather", ctx, rounded).Return(nil, nil).Once()
	provider.On("Current", ctx, 40.64, -73.78).Return(clearSky, nil).Once()
	cache.On("SetWeather", ctx, rounded, clearSky).Return(nil).Once()

	got, err := service.Current(ctx, geo.Coordinate{Lat: 40.6413, Lng: -73.7781})

	require.NoError(t, err)
	assert.Equal(t, clearSky, got)
	provider.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestWeatherService_Current_CacheHit(t *testing.T) {
	provider := &MockProvider{}
	cache := &MockCache{}
	service := NewWeatherService(provider, cache)
	ctx := context.Background()

	cache.On("GetWeather", ctx, geo.Coordinate{Lat: 33.94, Lng: -118.41}).Return(clearSky, nil).Once()

	got, err := service.Current(ctx, geo.Coordinate{Lat: 33.9416, Lng: -118.4123})

	require.NoError(t, err)
	assert.Equal(t, clearSky, got)
	provider.AssertNotCalled(t, "Current", mock.Anything, mock.Anything, mock.Anything)
}

func TestWeatherService_Current_PendingActivation(t *testing.T) {
	provider := &MockProvider{}
	service := NewWeatherService(provider, nil)
	ctx := context.Background()

	provider.On("Current", ctx, 1.0, 2.0).Return(nil, weather.ErrPendingActivation).Once()

	_, err := service.Current(ctx, geo.Coordinate{Lat: 1, Lng: 2})

	assert.ErrorIs(t, err, weather.ErrPendingActivation)
}

func TestWeatherService_Current_ProviderError(t *testing.T) {
	provider := &MockProvider{}
	service := NewWeatherService(provider, nil)
	ctx := context.Background()

	boom := errors.New("dial tcp: connection refused")
	provider.On("Current", ctx, 1.0, 2.0).Return(nil, boom).Once()

	_, err := service.Current(ctx, geo.Coordinate{Lat: 1, Lng: 2})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, weather.ErrPendingActivation)
}

func TestWeatherService_Current_InvalidCoordinate(t *testing.T) {
	provider := &MockProvider{}
	service := NewWeatherService(provider, nil)

	for _, at := range []geo.Coordinate{
		{Lat: 91, Lng: 0},
		{Lat: 0, Lng: -181},
		{Lat: math.NaN(), Lng: 0},
	} {
		_, err := service.Current(context.Background(), at)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	}
	provider.AssertNotCalled(t, "Current", mock.Anything, mock.Anything, mock.Anything)
}
