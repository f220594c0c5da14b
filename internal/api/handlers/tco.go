package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/service"
	"github.com/evlanka/evlanka/internal/shareurl"
	"github.com/evlanka/evlanka/internal/tco"
)

// tcoResponse wraps the engine result for JSON. The break-even figure is
// +Inf when the EV never breaks even, which JSON cannot carry, so it is
// mapped to null plus an explicit flag.
type tcoResponse struct {
	tco.Result
	BreakEvenYears *float64 `json:"break_even_years"`
	BreaksEven     bool     `json:"breaks_even"`
	ShareQuery     string   `json:"share_query"`
}

func newTCOResponse(result tco.Result, inputs tco.Inputs) tcoResponse {
	resp := tcoResponse{
		Result:     result,
		ShareQuery: shareurl.EncodeCalculator(inputs),
	}
	if !math.IsInf(result.BreakEvenYears, 1) {
		years := result.BreakEvenYears
		resp.BreakEvenYears = &years
		resp.BreaksEven = true
	}
	return resp
}

// ListTariffs returns the electricity tariff table.
// GET /api/tco/tariffs
func (h *Handler) ListTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.tcoService.Policy().TariffOptions()})
}

// CalculateTCOQuery runs the cost comparison from shareable-link query
// parameters, so a copied calculator URL works against the API directly.
// GET /api/tco/calculate?fuelType=PETROL&fuelEff=15&monthlyKm=1000&fuelPrice=350&vehicleId=byd-atto3&tariff=DOMESTIC_HIGH
func (h *Handler) CalculateTCOQuery(c *gin.Context) {
	inputs := shareurl.DecodeCalculator(c.Request.URL.Query())
	h.calculateTCO(c, inputs, c.Query("tariff") != "")
}

// CalculateTCOBody runs the cost comparison from a JSON body.
// POST /api/tco/calculate
func (h *Handler) CalculateTCOBody(c *gin.Context) {
	var inputs tco.Inputs
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	h.calculateTCO(c, inputs, inputs.TariffID != "")
}

func (h *Handler) calculateTCO(c *gin.Context, inputs tco.Inputs, tariffProvided bool) {
	if tariffProvided && !h.tcoService.Policy().ValidTariff(inputs.TariffID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tariff"})
		return
	}

	result, normalized, err := h.tcoService.Calculate(c.Request.Context(), inputs)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		h.logger.Error("Failed to calculate costs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate costs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newTCOResponse(result, normalized)})
}
