package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListLocations returns every known origin/destination, ordered by district.
// GET /api/locations
func (h *Handler) ListLocations(c *gin.Context) {
	locations, err := h.locationRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": locations})
}

// GetLocation returns one location.
// GET /api/locations/:id
func (h *Handler) GetLocation(c *gin.Context) {
	location, err := h.locationRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": location})
}
