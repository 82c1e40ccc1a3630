// Package geo holds the coordinate math behind the route map: great-circle
// interpolation, bounding boxes and the static airport table.
package geo

import (
	"encoding/json"
	"fmt"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is within the WGS 84 ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Tuple returns the coordinate as [lat, lng], the form Leaflet expects.
func (c Coordinate) Tuple() [2]float64 { return [2]float64{c.Lat, c.Lng} }

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Lat, c.Lng)
}

// Bounds is an axis-aligned box. It encodes to JSON as
// [[minLat, minLng], [maxLat, maxLng]].
type Bounds struct {
	Min Coordinate
	Max Coordinate
}

// Contains reports whether c lies inside or on the edge of the box.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.Min.Lat && c.Lat <= b.Max.Lat && c.Lng >= b.Min.Lng && c.Lng <= b.Max.Lng
}

func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([2][2]float64{b.Min.Tuple(), b.Max.Tuple()})
}

func (b *Bounds) UnmarshalJSON(data []byte) error {
	var raw [2][2]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Min = Coordinate{Lat: raw[0][0], Lng: raw[0][1]}
	b.Max = Coordinate{Lat: raw[1][0], Lng: raw[1][1]}
	return nil
}
