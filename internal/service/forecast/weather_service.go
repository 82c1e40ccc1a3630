package forecast

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
)

var ErrInvalidCoordinate = errors.New("latitude or longitude out of range")

type WeatherUseCase interface {
	Current(ctx context.Context, at geo.Coordinate) (*domain.Weather, error)
}

type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*domain.Weather, error)
}

type WeatherCache interface {
	GetWeather(ctx context.Context, at geo.Coordinate) (*domain.Weather, error)
	SetWeather(ctx context.Context, at geo.Coordinate, w *domain.Weather) error
}

type WeatherService struct {
	provider Provider
	cache    WeatherCache
}

// NewWeatherService builds the weather use case. cache may be nil.
func NewWeatherService(provider Provider, cache WeatherCache) *WeatherService {
	return &WeatherService{provider: provider, cache: cache}
}

// Current returns conditions at the given point. Provider errors, including
// weather.ErrPendingActivation, are returned wrapped so callers can match them.
func (s *WeatherService) Current(ctx context.Context, at geo.Coordinate) (*domain.Weather, error) {
	if !at.Valid() || math.IsNaN(at.Lat) || math.IsNaN(at.Lng) {
		return nil, ErrInvalidCoordinate
	}

	// Two decimal places is about 1.1 km; nearby lookups share an entry.
	at = geo.Coordinate{Lat: roundTo(at.Lat, 2), Lng: roundTo(at.Lng, 2)}

	if s.cache != nil {
		cached, err := s.cache.GetWeather(ctx, at)
		if err != nil {
			log.Printf("weather cache get: at=%s err=%v", at, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	w, err := s.provider.Current(ctx, at.Lat, at.Lng)
	if err != nil {
		return nil, fmt.Errorf("current weather at %s: %w", at, err)
	}

	if s.cache != nil {
		if err := s.cache.SetWeather(ctx, at, w); err != nil {
			log.Printf("weather cache set: at=%s err=%v", at, err)
		}
	}
	return w, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

var _ WeatherUseCase = (*WeatherService)(nil)
