package geo

import (
	"errors"
	"math"
)

const earthRadiusMeters = 6371000.0

var (
	ErrNoLocation = errors.New("location not provided")
	ErrOutOfRange = errors.New("location outside the venue radius")
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance returns the great-circle distance between a and b in metres.
func Distance(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Fence limits registration to customers near the venue.
type Fence struct {
	Center        Point
	RadiusMeters  float64
	DirectionsURL string
}

// Check returns the distance to the venue, or ErrNoLocation / ErrOutOfRange.
// The distance is still returned when out of range.
func (f Fence) Check(p *Point) (float64, error) {
	if p == nil {
		return 0, ErrNoLocation
	}
	d := Distance(f.Center, *p)
	if d > f.RadiusMeters {
		return d, ErrOutOfRange
	}
	return d, nil
}
