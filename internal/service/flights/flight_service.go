package flights

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Domenick1991/flighttracker/internal/domain"
)

// ErrUpstream wraps any failure to obtain flights from the provider.
var ErrUpstream = errors.New("flight provider request failed")

type FlightUseCase interface {
	Search(ctx context.Context, flightNumber string) ([]domain.Flight, error)
}

// Provider fetches flights by IATA flight number.
type Provider interface {
	FetchFlights(ctx context.Context, flightNumber string) ([]domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context, flightNumber string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flightNumber string, flights []domain.Flight) error
}

type FlightService struct {
	provider Provider
	cache    FlightCache
}

// NewFlightService builds the search use case. cache may be nil.
func NewFlightService(provider Provider, cache FlightCache) *FlightService {
	return &FlightService{provider: provider, cache: cache}
}

func (s *FlightService) Search(ctx context.Context, flightNumber string) ([]domain.Flight, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return []domain.Flight{}, nil
	}

	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx, flightNumber)
		if err != nil {
			log.Printf("flights cache get: flight=%s err=%v", flightNumber, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.provider.FetchFlights(ctx, flightNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if flights == nil {
		flights = []domain.Flight{}
	}

	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flightNumber, flights); err != nil {
			log.Printf("flights cache set: flight=%s err=%v", flightNumber, err)
		}
	}
	return flights, nil
}

var _ FlightUseCase = (*FlightService)(nil)
