// Package geoutil provides the geographic math shared across the query
// engine: great-circle distance, degree/kilometer conversions, and padded
// bounding boxes for corridor searches.
//
// Go Learning Note — "pkg/" Directory Convention:
// Code under pkg/ is intended to be importable by external projects (unlike
// internal/ which is compiler-enforced private). This is a community
// convention, not a Go language feature. The distance kernel lives here
// because the host application is free to reuse it outside the engine.
package geoutil

import (
	"math"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// KmPerDegreeLat and KmPerDegreeLng convert a kilometer pad into degrees
	// when building corridor bounding boxes. Both are fixed approximations:
	// the longitude value ignores the cosine(latitude) correction, so the box
	// is oversized near the equator and undersized at high latitudes. This is
	// a deliberate simplification: widening the box only admits extra
	// candidates, and the exact detour check later discards them.
	KmPerDegreeLat = 111.0
	KmPerDegreeLng = 85.0
)

// HaversineDistance calculates the great-circle distance between two points
// in kilometers. NaN coordinates propagate NaN rather than panicking.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// BoundingBox is an axis-aligned rectangle in degree space.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// PaddedBox builds the smallest box containing both endpoints, expanded on
// every side by padKm converted to degrees with the fixed divisors above.
func PaddedBox(lat1, lon1, lat2, lon2, padKm float64) BoundingBox {
	latPad := padKm / KmPerDegreeLat
	lngPad := padKm / KmPerDegreeLng

	return BoundingBox{
		MinLat: math.Min(lat1, lat2) - latPad,
		MaxLat: math.Max(lat1, lat2) + latPad,
		MinLng: math.Min(lon1, lon2) - lngPad,
		MaxLng: math.Max(lon1, lon2) + lngPad,
	}
}

// Contains reports whether the point lies inside the box, bounds inclusive.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

// Round2 rounds to two decimal places. Used for the duration field of
// response envelopes and anywhere else values are surfaced to the host.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
