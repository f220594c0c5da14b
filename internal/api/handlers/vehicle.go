package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/internal/service"
)

// ListVehicles returns one page of the directory.
// GET /api/vehicles?search=&maxPrice=&minRange=&bodyType=&limit=&offset=
func (h *Handler) ListVehicles(c *gin.Context) {
	filter := models.VehicleFilter{
		Search:   c.Query("search"),
		BodyType: c.Query("bodyType"),
	}
	filter.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	filter.MinRange, _ = strconv.ParseFloat(c.Query("minRange"), 64)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.vehicleService.List(c.Request.Context(), filter, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list vehicles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": page})
}

// GetVehicle returns a vehicle and up to four similar ones.
// GET /api/vehicles/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	detail, err := h.vehicleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GetSimilarVehicles returns vehicles in the same class and price band.
// GET /api/vehicles/:id/similar
func (h *Handler) GetSimilarVehicles(c *gin.Context) {
	detail, err := h.vehicleService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail.Similar})
}

// CompareVehicles returns the side-by-side spec table.
// GET /api/vehicles/compare?ids=byd-atto3,nissan-leaf
func (h *Handler) CompareVehicles(c *gin.Context) {
	raw := strings.Split(c.Query("ids"), ",")
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide at least two vehicle IDs"})
		return
	}

	comparison, err := h.vehicleService.Compare(c.Request.Context(), ids)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicles not found"})
			return
		}
		h.logger.Error("Failed to compare vehicles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compare vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comparison})
}
