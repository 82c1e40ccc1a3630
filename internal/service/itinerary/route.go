package itinerary

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/flighttracker/internal/geo"
)

var ErrUnknownAirport = errors.New("unknown airport")

// Route is the map overlay for one flight: the great-circle polyline and the
// boxes a map can fit to.
type Route struct {
	From       geo.Coordinate   `json:"from"`
	To         geo.Coordinate   `json:"to"`
	Path       []geo.Coordinate `json:"path"`
	Bounds     geo.Bounds       `json:"bounds"`
	PathBounds geo.Bounds       `json:"pathBounds"`
}

// PlanRoute resolves both airport codes and computes the route between them.
// Unknown codes yield ErrUnknownAirport; antipodal airports yield geo.ErrAntipodal.
func PlanRoute(fromCode, toCode string, points int) (*Route, error) {
	from, ok := geo.LookupAirport(fromCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, fromCode)
	}
	to, ok := geo.LookupAirport(toCode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, toCode)
	}
	return newRoute(from, to, points)
}

func newRoute(from, to geo.Coordinate, points int) (*Route, error) {
	path, err := geo.CalculateFlightPath(from, to, points)
	if err != nil {
		return nil, err
	}
	pathBounds, _ := geo.PathBounds(path)

	return &Route{
		From:       from,
		To:         to,
		Path:       path,
		Bounds:     geo.CalculateMapBounds(from, to),
		PathBounds: pathBounds,
	}, nil
}
