package itinerary

import (
	"context"
	"errors"
	"log"

	"github.com/Domenick1991/flighttracker/internal/calendar"
	"github.com/Domenick1991/flighttracker/internal/domain"
	"github.com/Domenick1991/flighttracker/internal/geo"
	"github.com/Domenick1991/flighttracker/internal/service/flights"
	"github.com/Domenick1991/flighttracker/internal/service/forecast"
	"github.com/Domenick1991/flighttracker/internal/weather"
	"golang.org/x/sync/errgroup"
)

// Card is everything the itinerary view shows for one flight. Weather is
// attached to the flight's legs; Route and CalendarLink are empty when they
// could not be produced.
type Card struct {
	Flight       domain.Flight `json:"flight"`
	Route        *Route        `json:"route,omitempty"`
	CalendarLink string        `json:"calendarLink,omitempty"`
}

type ItineraryUseCase interface {
	Build(ctx context.Context, flightNumber string) ([]Card, error)
}

type ItineraryService struct {
	flights     flights.FlightUseCase
	weather     forecast.WeatherUseCase
	pathPoints  int
	concurrency int
}

type ItineraryServiceOption func(*ItineraryService)

func WithPathPoints(n int) ItineraryServiceOption {
	return func(s *ItineraryService) {
		if n > 0 {
			s.pathPoints = n
		}
	}
}

// WithConcurrency bounds how many cards are assembled at once.
func WithConcurrency(n int) ItineraryServiceOption {
	return func(s *ItineraryService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func NewItineraryService(
	flightSvc flights.FlightUseCase,
	weatherSvc forecast.WeatherUseCase,
	opts ...ItineraryServiceOption,
) *ItineraryService {
	service := &ItineraryService{
		flights:     flightSvc,
		weather:     weatherSvc,
		pathPoints:  geo.DefaultPathPoints,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Build searches for flightNumber and assembles one card per flight, in the
// order the provider returned them. Only the search itself can fail the call.
func (s *ItineraryService) Build(ctx context.Context, flightNumber string) ([]Card, error) {
	found, err := s.flights.Search(ctx, flightNumber)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, len(found))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, f := range found {
		g.Go(func() error {
			cards[i] = s.card(gctx, f)
			return nil
		})
	}
	_ = g.Wait()

	return cards, nil
}

func (s *ItineraryService) card(ctx context.Context, f domain.Flight) Card {
	card := Card{Flight: f}

	origin, hasOrigin := geo.LookupAirport(f.Origin.Code)
	destination, hasDestination := geo.LookupAirport(f.Destination.Code)

	var g errgroup.Group
	if hasOrigin {
		g.Go(func() error {
			card.Flight.Origin.Weather = s.weatherAt(ctx, f.Origin.Code, origin)
			return nil
		})
	}
	if hasDestination {
		g.Go(func() error {
			card.Flight.Destination.Weather = s.weatherAt(ctx, f.Destination.Code, destination)
			return nil
		})
	}
	_ = g.Wait()

	if hasOrigin && hasDestination {
		route, err := newRoute(origin, destination, s.pathPoints)
		if err != nil {
			log.Printf("itinerary route: flight=%s from=%s to=%s err=%v", f.FlightNumber, f.Origin.Code, f.Destination.Code, err)
		} else {
			card.Route = route
		}
	}

	link, err := calendar.GoogleCalendarLink(f)
	if err != nil {
		log.Printf("itinerary calendar link: flight=%s err=%v", f.FlightNumber, err)
	} else {
		card.CalendarLink = link
	}

	return card
}

// weatherAt never fails the card; a missing badge is acceptable.
func (s *ItineraryService) weatherAt(ctx context.Context, code string, at geo.Coordinate) *domain.Weather {
	w, err := s.weather.Current(ctx, at)
	switch {
	case errors.Is(err, weather.ErrPendingActivation):
		log.Printf("itinerary weather: airport=%s weather api key pending activation", code)
		return nil
	case err != nil:
		log.Printf("itinerary weather: airport=%s err=%v", code, err)
		return nil
	}
	return w
}

var _ ItineraryUseCase = (*ItineraryService)(nil)
