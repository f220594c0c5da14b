package planner

import (
	"math"
	"sort"
	"strings"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/pkg/geo"
)

// StationWithDistance annotates a charging station with its straight-line
// distance from the route origin.
type StationWithDistance struct {
	models.ChargingStation
	DistanceFromOriginKm float64 `json:"distance_from_origin_km"`
}

// FindStationsAlongRoute selects the stations within maxDeviationKm of any
// vertex of the route polyline and sorts them by distance from the origin.
// An empty route yields an empty result.
//
// Distance is measured to the nearest polyline vertex, not to the connecting
// segments. Sparse polylines can under-select near long straight stretches;
// this matches the station selection the product shipped with.
func FindStationsAlongRoute(route []geo.Point, stations []models.ChargingStation, maxDeviationKm float64) []StationWithDistance {
	if len(route) == 0 {
		return nil
	}

	origin := route[0]
	result := make([]StationWithDistance, 0, len(stations))

	for _, station := range stations {
		p := geo.Point{Lat: station.Latitude, Lng: station.Longitude}
		if geo.MinDistanceToPathKm(p, route) > maxDeviationKm {
			continue
		}
		result = append(result, StationWithDistance{
			ChargingStation:      station,
			DistanceFromOriginKm: math.Round(geo.DistanceKm(origin, p)*10) / 10,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceFromOriginKm < result[j].DistanceFromOriginKm
	})
	return result
}

// FilterByConnector keeps the stations offering connectorType. The match is
// exact and case-sensitive. An empty connectorType keeps everything.
func FilterByConnector(stations []StationWithDistance, connectorType string) []StationWithDistance {
	if connectorType == "" {
		return stations
	}
	filtered := make([]StationWithDistance, 0, len(stations))
	for _, s := range stations {
		for _, c := range s.ConnectorTypes {
			if c == connectorType {
				filtered = append(filtered, s)
				break
			}
		}
	}
	return filtered
}

// FilterByOperator keeps the stations run by operator, compared
// case-insensitively. An empty operator keeps everything.
func FilterByOperator(stations []StationWithDistance, operator string) []StationWithDistance {
	if operator == "" {
		return stations
	}
	filtered := make([]StationWithDistance, 0, len(stations))
	for _, s := range stations {
		if strings.EqualFold(s.Operator, operator) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// UniqueConnectors returns the sorted set of connector types across stations.
func UniqueConnectors(stations []models.ChargingStation) []string {
	seen := make(map[string]struct{})
	for _, s := range stations {
		for _, c := range s.ConnectorTypes {
			seen[c] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// UniqueOperators returns the sorted set of operators across stations.
func UniqueOperators(stations []models.ChargingStation) []string {
	seen := make(map[string]struct{})
	for _, s := range stations {
		seen[s.Operator] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
