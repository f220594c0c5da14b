package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/internal/planner"
	"github.com/evlanka/evlanka/internal/service"
)

// ListStations returns stations matching the filter.
// GET /api/stations?connector=&operator=&status=
func (h *Handler) ListStations(c *gin.Context) {
	filter := models.StationFilter{
		Connector: c.Query("connector"),
		Operator:  c.Query("operator"),
		Status:    c.Query("status"),
	}

	stations, err := h.stationService.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list stations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stations})
}

// GetStationFilters returns the distinct connector types and operators for
// the map's filter dropdowns.
// GET /api/stations/filters
func (h *Handler) GetStationFilters(c *gin.Context) {
	stations, err := h.stationService.List(c.Request.Context(), models.StationFilter{})
	if err != nil {
		h.logger.Error("Failed to list stations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list stations"})
		return
	}

	values := make([]models.ChargingStation, len(stations))
	for i, s := range stations {
		values[i] = *s
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"connectors": planner.UniqueConnectors(values),
			"operators":  planner.UniqueOperators(values),
		},
	})
}

// GetStationStates returns the live availability snapshot.
// GET /api/stations/states
func (h *Handler) GetStationStates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.stationService.States()})
}

// GetStation returns one station.
// GET /api/stations/:id
func (h *Handler) GetStation(c *gin.Context) {
	station, err := h.stationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": station})
}

// UpdateStationStatus moves a station to a new availability status.
// POST /api/stations/:id/status {"status": "occupied"}
func (h *Handler) UpdateStationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	station, err := h.stationService.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Station not found"})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to update station status", zap.Error(err),
				zap.String("station_id", c.Param("id")))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update station status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": station})
}
