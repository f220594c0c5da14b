package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/service"
	"github.com/evlanka/evlanka/internal/shareurl"
)

// PlanRoute computes a trip plan: route, range feasibility and charging
// stations along the way. Parameters use the shareable-link names so a
// copied planner URL works against the API directly.
// GET /api/planner/route?origin=colombo-fort&destination=kandy-city&vehicleId=byd-atto3&charge=80
func (h *Handler) PlanRoute(c *gin.Context) {
	params := shareurl.DecodePlanner(c.Request.URL.Query())

	if params.OriginID == "" || params.DestinationID == "" || params.VehicleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin, destination and vehicleId are required"})
		return
	}
	if params.StartingCharge == 0 {
		params.StartingCharge = 100
	}
	if params.StartingCharge < 1 || params.StartingCharge > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "charge must be between 1 and 100"})
		return
	}

	plan, err := h.plannerService.Plan(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationNotFound), errors.Is(err, service.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRouteUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not calculate route. Please try again."})
		default:
			h.logger.Error("Failed to plan route", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to plan route"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plan})
}
