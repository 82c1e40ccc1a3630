package geo

import (
	"errors"
	"math"
)

// DefaultPathPoints is the number of segments used for map polylines.
const DefaultPathPoints = 100

const (
	// Separations below this are treated as the same point.
	coincidentEpsilon = 1e-12
	// Separations within this of pi are treated as antipodal (about 6 m on Earth).
	antipodalEpsilon = 1e-6
)

var (
	ErrInvalidPointCount = errors.New("geo: number of path points must be at least 1")
	ErrAntipodal         = errors.New("geo: great circle between antipodal points is undefined")
)

// CalculateFlightPath returns numPoints+1 points along the great circle from
// from to to, both endpoints included, evenly spaced by interpolation fraction.
//
// Coincident endpoints yield numPoints+1 copies of from. Antipodal endpoints
// have no unique great circle and yield ErrAntipodal.
func CalculateFlightPath(from, to Coordinate, numPoints int) ([]Coordinate, error) {
	if numPoints < 1 {
		return nil, ErrInvalidPointCount
	}

	delta := centralAngle(from, to)
	points := make([]Coordinate, numPoints+1)

	if delta < coincidentEpsilon {
		for i := range points {
			points[i] = from
		}
		return points, nil
	}
	if math.Pi-delta < antipodalEpsilon {
		return nil, ErrAntipodal
	}

	for i := 1; i < numPoints; i++ {
		points[i] = slerp(from, to, delta, float64(i)/float64(numPoints))
	}
	points[0] = from
	points[numPoints] = to

	return points, nil
}

// CalculateMapBounds returns the box covering exactly the two endpoints. A long
// east-west great circle can bulge outside it; use PathBounds for the full path.
func CalculateMapBounds(from, to Coordinate) Bounds {
	return Bounds{
		Min: Coordinate{Lat: math.Min(from.Lat, to.Lat), Lng: math.Min(from.Lng, to.Lng)},
		Max: Coordinate{Lat: math.Max(from.Lat, to.Lat), Lng: math.Max(from.Lng, to.Lng)},
	}
}

// PathBounds returns the box covering every point of a path. It reports false
// for an empty path.
func PathBounds(points []Coordinate) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.Lat = math.Min(b.Min.Lat, p.Lat)
		b.Min.Lng = math.Min(b.Min.Lng, p.Lng)
		b.Max.Lat = math.Max(b.Max.Lat, p.Lat)
		b.Max.Lng = math.Max(b.Max.Lng, p.Lng)
	}
	return b, true
}

// centralAngle is the haversine angular separation in radians.
func centralAngle(from, to Coordinate) float64 {
	phi1, phi2 := radians(from.Lat), radians(to.Lat)
	dPhi := phi2 - phi1
	dLambda := radians(to.Lng) - radians(from.Lng)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	a = math.Min(1, math.Max(0, a))

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func slerp(from, to Coordinate, delta, t float64) Coordinate {
	phi1, lambda1 := radians(from.Lat), radians(from.Lng)
	phi2, lambda2 := radians(to.Lat), radians(to.Lng)

	sinDelta := math.Sin(delta)
	a := math.Sin((1-t)*delta) / sinDelta
	b := math.Sin(t*delta) / sinDelta

	x := a*math.Cos(phi1)*math.Cos(lambda1) + b*math.Cos(phi2)*math.Cos(lambda2)
	y := a*math.Cos(phi1)*math.Sin(lambda1) + b*math.Cos(phi2)*math.Sin(lambda2)
	z := a*math.Sin(phi1) + b*math.Sin(phi2)

	return Coordinate{
		Lat: degrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
		Lng: degrees(math.Atan2(y, x)),
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
