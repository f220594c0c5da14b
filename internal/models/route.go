package models

import "github.com/evlanka/evlanka/pkg/geo"

// Route is a driving path returned by the routing collaborator. The polyline
// is the path geometry as an ordered vertex sequence; distance and duration
// cover the whole path.
type Route struct {
	DistanceKm      float64     `json:"distance_km"`
	DurationMinutes float64     `json:"duration_minutes"`
	Polyline        []geo.Point `json:"polyline"`
}
