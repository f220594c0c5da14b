package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/pkg/geo"
)

// An equatorial test route: one degree of longitude, about 111 km.
var testRoute = []geo.Point{
	{Lat: 0, Lng: 0},
	{Lat: 0, Lng: 0.25},
	{Lat: 0, Lng: 0.5},
	{Lat: 0, Lng: 0.75},
	{Lat: 0, Lng: 1},
}

func station(id string, lat, lng float64) models.ChargingStation {
	return models.ChargingStation{
		ID:        id,
		Name:      id,
		Operator:  "ChargeNET",
		Latitude:  lat,
		Longitude: lng,
	}
}

func TestFindStationsAlongRoute(t *testing.T) {
	stations := []models.ChargingStation{
		station("far", 0.09, 0.5),      // ~10 km off the route
		station("end", 0, 1),           // on the final vertex
		station("near-mid", 0.04, 0.5), // ~4.4 km off the midpoint
		station("origin", 0, 0),
	}

	result := FindStationsAlongRoute(testRoute, stations, 5)

	require.Len(t, result, 3)

	// Sorted by distance from the origin.
	assert.Equal(t, "origin", result[0].ID)
	assert.Equal(t, "near-mid", result[1].ID)
	assert.Equal(t, "end", result[2].ID)

	// Distances are rounded to one decimal.
	assert.Equal(t, 0.0, result[0].DistanceFromOriginKm)
	assert.InDelta(t, 55.8, result[1].DistanceFromOriginKm, 0.2)
	assert.InDelta(t, 111.2, result[2].DistanceFromOriginKm, 0.1)
}

func TestFindStationsAlongRouteEmptyRoute(t *testing.T) {
	assert.Nil(t, FindStationsAlongRoute(nil, []models.ChargingStation{station("a", 0, 0)}, 5))
}

func TestFindStationsAlongRouteInclusiveBoundary(t *testing.T) {
	s := station("edge", 0.03, 0.5)
	d := geo.MinDistanceToPathKm(geo.Point{Lat: s.Latitude, Lng: s.Longitude}, testRoute)

	// A station exactly on the corridor edge is in; just past it is out.
	assert.Len(t, FindStationsAlongRoute(testRoute, []models.ChargingStation{s}, d), 1)
	assert.Empty(t, FindStationsAlongRoute(testRoute, []models.ChargingStation{s}, d-0.01))
}

func TestFindStationsAlongRouteWiderCorridor(t *testing.T) {
	stations := []models.ChargingStation{station("far", 0.09, 0.5)}

	assert.Empty(t, FindStationsAlongRoute(testRoute, stations, 5))
	assert.Len(t, FindStationsAlongRoute(testRoute, stations, 15), 1)
}

func TestFilterByConnector(t *testing.T) {
	stations := []StationWithDistance{
		{ChargingStation: models.ChargingStation{ID: "a", ConnectorTypes: []string{"CCS2", "Type 2"}}},
		{ChargingStation: models.ChargingStation{ID: "b", ConnectorTypes: []string{"CHAdeMO"}}},
	}

	assert.Len(t, FilterByConnector(stations, ""), 2)

	filtered := FilterByConnector(stations, "CCS2")
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)

	// The match is case-sensitive.
	assert.Empty(t, FilterByConnector(stations, "ccs2"))
}

func TestFilterByOperator(t *testing.T) {
	stations := []StationWithDistance{
		{ChargingStation: models.ChargingStation{ID: "a", Operator: "ChargeNET"}},
		{ChargingStation: models.ChargingStation{ID: "b", Operator: "CEB"}},
	}

	assert.Len(t, FilterByOperator(stations, ""), 2)

	filtered := FilterByOperator(stations, "chargenet")
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestUniqueConnectorsAndOperators(t *testing.T) {
	stations := []models.ChargingStation{
		{Operator: "ChargeNET", ConnectorTypes: []string{"Type 2", "CCS2"}},
		{Operator: "CEB", ConnectorTypes: []string{"CCS2"}},
	}

	assert.Equal(t, []string{"CCS2", "Type 2"}, UniqueConnectors(stations))
	assert.Equal(t, []string{"CEB", "ChargeNET"}, UniqueOperators(stations))
}
