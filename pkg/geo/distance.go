// Package geo provides great-circle distance calculations.
package geo

import "math"

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// Point is a geographic coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the great-circle distance between two points in
// kilometers, using the Haversine formula. Inputs are not validated;
// NaN propagates.
func DistanceKm(a, b Point) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// MinDistanceToPathKm returns the distance from p to the nearest vertex of
// path. The path is treated as a discrete point sequence, not as connected
// segments. Returns +Inf for an empty path.
func MinDistanceToPathKm(p Point, path []Point) float64 {
	min := math.Inf(1)
	for _, v := range path {
		if d := DistanceKm(p, v); d < min {
			min = d
		}
	}
	return min
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
