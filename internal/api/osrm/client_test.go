package osrm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/pkg/geo"
)

const routeFixture = `{
	"code": "Ok",
	"routes": [{
		"distance": 115423.0,
		"duration": 9825.0,
		"geometry": {
			"coordinates": [[79.8612, 6.9271], [80.2, 7.1], [80.6337, 7.2906]]
		}
	}]
}`

func TestRoute(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		assert.Equal(t, "full", r.URL.Query().Get("overview"))
		w.Write([]byte(routeFixture))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, zap.NewNop())

	origin := geo.Point{Lat: 6.9271, Lng: 79.8612}
	destination := geo.Point{Lat: 7.2906, Lng: 80.6337}

	route, err := client.Route(context.Background(), origin, destination)
	require.NoError(t, err)

	assert.Equal(t, 115.4, route.DistanceKm)
	assert.Equal(t, 164.0, route.DurationMinutes)

	require.Len(t, route.Polyline, 3)
	// Coordinates arrive as [lng, lat] and must flip.
	assert.Equal(t, geo.Point{Lat: 6.9271, Lng: 79.8612}, route.Polyline[0])
	assert.Equal(t, geo.Point{Lat: 7.2906, Lng: 80.6337}, route.Polyline[2])

	// A repeat request is served from cache.
	_, err = client.Route(context.Background(), origin, destination)
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Equal(t, 1, client.CacheSize())

	client.ClearCache()
	assert.Zero(t, client.CacheSize())
}

func TestRouteNoRouteFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": "NoRoute", "routes": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, zap.NewNop())

	_, err := client.Route(context.Background(), geo.Point{}, geo.Point{Lat: 1, Lng: 1})
	assert.ErrorContains(t, err, "no route found")
}

func TestRouteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, zap.NewNop())

	_, err := client.Route(context.Background(), geo.Point{}, geo.Point{Lat: 1, Lng: 1})
	assert.ErrorContains(t, err, "status 502")
}
