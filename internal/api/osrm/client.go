// Package osrm is the client for the external routing collaborator
// (an OSRM-compatible HTTP API). The core only needs the route shape it
// returns: total distance, duration and the path polyline.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/pkg/geo"
)

// Client calls the OSRM driving profile.
type Client struct {
	host       string
	httpClient *http.Client
	logger     *zap.Logger

	// Cache: routes between fixed planner locations rarely change.
	cache   map[string]*models.Route
	cacheMu sync.RWMutex
}

// NewClient creates an OSRM client against host (no trailing slash).
func NewClient(host string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		host: host,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		cache:  make(map[string]*models.Route),
	}
}

// routeResponse is the subset of the OSRM response we use.
type routeResponse struct {
	Code   string `json:"code"` // "Ok" on success
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// Route computes the driving route from origin to destination. Returns an
// error when the collaborator is unreachable or finds no route; the caller
// reports that as "could not calculate".
func (c *Client) Route(ctx context.Context, origin, destination geo.Point) (*models.Route, error) {
	cacheKey := fmt.Sprintf("%.4f,%.4f;%.4f,%.4f", origin.Lng, origin.Lat, destination.Lng, destination.Lat)

	c.cacheMu.RLock()
	if route, ok := c.cache[cacheKey]; ok {
		c.cacheMu.RUnlock()
		return route, nil
	}
	c.cacheMu.RUnlock()

	// OSRM wants lng,lat pairs.
	apiURL := fmt.Sprintf(
		"%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.host, origin.Lng, origin.Lat, destination.Lng, destination.Lat,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("osrm returned status %d", resp.StatusCode)
	}

	var result routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if result.Code != "Ok" || len(result.Routes) == 0 {
		return nil, fmt.Errorf("no route found (code %q)", result.Code)
	}

	best := result.Routes[0]
	polyline := make([]geo.Point, 0, len(best.Geometry.Coordinates))
	for _, coord := range best.Geometry.Coordinates {
		if len(coord) < 2 {
			continue
		}
		polyline = append(polyline, geo.Point{Lat: coord[1], Lng: coord[0]})
	}

	route := &models.Route{
		DistanceKm:      math.Round(best.Distance/1000*10) / 10,
		DurationMinutes: math.Round(best.Duration / 60),
		Polyline:        polyline,
	}

	c.cacheMu.Lock()
	c.cache[cacheKey] = route
	if len(c.cache) > 10000 {
		c.cache = make(map[string]*models.Route)
		c.cache[cacheKey] = route
	}
	c.cacheMu.Unlock()

	c.logger.Debug("Route computed",
		zap.Float64("distance_km", route.DistanceKm),
		zap.Float64("duration_min", route.DurationMinutes),
		zap.Int("polyline_points", len(route.Polyline)))

	return route, nil
}

// CacheSize returns the number of cached routes.
func (c *Client) CacheSize() int {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()
	return len(c.cache)
}

// ClearCache drops all cached routes.
func (c *Client) ClearCache() {
	c.cacheMu.Lock()
	c.cache = make(map[string]*models.Route)
	c.cacheMu.Unlock()
}
