// Package planner implements the trip-feasibility calculations behind the
// route planner: the range-feasibility engine and the charging-station
// corridor filter. All functions are pure and safe for concurrent use.
package planner

// Policy holds the planner's fixed calculation constants. It is passed in
// explicitly so tests can substitute alternate values.
type Policy struct {
	// ReserveFraction is the share of rated range kept as an un-plannable
	// buffer. A trip is feasible only if this buffer remains on arrival.
	ReserveFraction float64

	// DefaultMaxDeviationKm is the corridor half-width around a route
	// within which a station counts as "along the route".
	DefaultMaxDeviationKm float64
}

// DefaultPolicy returns the production policy: a 20% battery reserve and a
// 5 km corridor.
func DefaultPolicy() Policy {
	return Policy{
		ReserveFraction:       0.20,
		DefaultMaxDeviationKm: 5,
	}
}
