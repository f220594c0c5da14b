package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	colombo := Point{Lat: 6.9271, Lng: 79.8612}
	kandy := Point{Lat: 7.2906, Lng: 80.6337}

	t.Run("known distance", func(t *testing.T) {
		// Colombo to Kandy is roughly 94 km as the crow flies.
		assert.InDelta(t, 94.3, DistanceKm(colombo, kandy), 0.5)
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Zero(t, DistanceKm(colombo, colombo))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(colombo, kandy), DistanceKm(kandy, colombo), 1e-9)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := DistanceKm(Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0})
		assert.InDelta(t, 111.195, d, 0.01)
	})
}

func TestMinDistanceToPathKm(t *testing.T) {
	path := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.5},
		{Lat: 0, Lng: 1},
	}

	t.Run("picks nearest vertex", func(t *testing.T) {
		p := Point{Lat: 0.01, Lng: 0.5}
		assert.InDelta(t, DistanceKm(p, path[1]), MinDistanceToPathKm(p, path), 1e-9)
	})

	t.Run("empty path is infinitely far", func(t *testing.T) {
		assert.True(t, math.IsInf(MinDistanceToPathKm(Point{}, nil), 1))
	})
}
