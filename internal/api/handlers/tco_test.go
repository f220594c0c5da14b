package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/service"
	"github.com/evlanka/evlanka/internal/tco"
	"github.com/evlanka/evlanka/pkg/ws"
)

// testRouter wires only the collaborator-free services; routes that need
// the database are not exercised here.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	handler := NewHandler(
		logger,
		nil,
		nil,
		nil,
		nil,
		service.NewTCOService(logger, nil, tco.DefaultPolicy()),
		ws.NewHub(logger),
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestListTariffs(t *testing.T) {
	router := testRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/api/tco/tariffs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	tariffs, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, tariffs, 4)
}

func TestCalculateTCOQuery(t *testing.T) {
	router := testRouter(t)

	t.Run("defaults apply without a vehicle", func(t *testing.T) {
		rec, body := doRequest(t, router, http.MethodGet,
			"/api/tco/calculate?fuelType=PETROL&fuelEff=15&monthlyKm=1000&fuelPrice=350", "")
		require.Equal(t, http.StatusOK, rec.Code)

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 23333.33, data["monthly_fuel_cost_petrol"], 0.01)
		assert.Zero(t, data["monthly_fuel_cost_ev"])
		// A free EV breaks even immediately.
		assert.Equal(t, true, data["breaks_even"])
		assert.Equal(t, 0.0, data["break_even_years"])
		assert.NotEmpty(t, data["share_query"])
	})

	t.Run("unknown tariff is rejected", func(t *testing.T) {
		rec, body := doRequest(t, router, http.MethodGet, "/api/tco/calculate?tariff=SOLAR", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Unknown tariff", body["error"])
	})
}

func TestCalculateTCOBody(t *testing.T) {
	router := testRouter(t)

	t.Run("valid body", func(t *testing.T) {
		rec, body := doRequest(t, router, http.MethodPost, "/api/tco/calculate",
			`{"fuel_type":"DIESEL","fuel_efficiency_km_l":18,"monthly_distance_km":1200,"fuel_price_lkr":340}`)
		require.Equal(t, http.StatusOK, rec.Code)

		data, ok := body["data"].(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 1200.0/18*340, data["monthly_fuel_cost_petrol"], 0.01)
		assert.Equal(t, 5500.0, data["monthly_maintenance_petrol"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/api/tco/calculate", `{"fuel_type":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPlanRouteValidation(t *testing.T) {
	router := testRouter(t)

	t.Run("missing parameters", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet, "/api/planner/route?origin=colombo-fort", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("charge out of range", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodGet,
			"/api/planner/route?origin=a&destination=b&vehicleId=c&charge=150", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t)

	rec, body := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, 0.0, body["ws_clients"])
}
