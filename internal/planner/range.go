package planner

import (
	"math"

	"github.com/evlanka/evlanka/internal/models"
)

// RangeAnalysis is the result of a single trip-feasibility calculation.
// Recomputed per request, never persisted.
type RangeAnalysis struct {
	DistanceKm       float64 `json:"distance_km"`
	EnergyRequiredKm float64 `json:"energy_required_km"`
	RemainingRangeKm float64 `json:"remaining_range_km"`
	RemainingPercent float64 `json:"remaining_percent"`
	Feasible         bool    `json:"feasible"`
	SafetyMarginKm   float64 `json:"safety_margin_km"`
}

// AnalyzeRange determines whether vehicle can cover distanceKm starting at
// startingChargePercent of a full charge. The trip is feasible only if the
// policy's reserve fraction of rated range would still remain on arrival.
//
// Feasibility is decided on the un-rounded remaining range; the rounded
// values are for display only. A non-positive rated range yields a zeroed,
// infeasible analysis.
func (p Policy) AnalyzeRange(distanceKm float64, vehicle *models.Vehicle, startingChargePercent float64) RangeAnalysis {
	if vehicle == nil || vehicle.RangeSLEstimate <= 0 {
		return RangeAnalysis{DistanceKm: distanceKm, EnergyRequiredKm: distanceKm}
	}

	ratedRange := vehicle.RangeSLEstimate
	startingRangeKm := ratedRange * startingChargePercent / 100
	safetyMarginKm := ratedRange * p.ReserveFraction

	// The model burns range 1:1 with distance; local conditions are already
	// baked into the rated range.
	energyRequiredKm := distanceKm

	remaining := startingRangeKm - energyRequiredKm

	return RangeAnalysis{
		DistanceKm:       distanceKm,
		EnergyRequiredKm: energyRequiredKm,
		RemainingRangeKm: math.Max(0, math.Round(remaining)),
		RemainingPercent: math.Max(0, math.Round(remaining/ratedRange*100)),
		Feasible:         remaining >= safetyMarginKm,
		SafetyMarginKm:   math.Round(safetyMarginKm),
	}
}

// EfficiencyKmPerKwh returns the vehicle's driving efficiency in km per kWh,
// or 0 for a zero-capacity battery.
func EfficiencyKmPerKwh(vehicle *models.Vehicle) float64 {
	if vehicle == nil || vehicle.BatteryKwh == 0 {
		return 0
	}
	return vehicle.RangeSLEstimate / vehicle.BatteryKwh
}

// EnergyConsumptionKwh returns the energy needed to cover distanceKm, or 0
// if the vehicle's efficiency is degenerate.
func EnergyConsumptionKwh(distanceKm float64, vehicle *models.Vehicle) float64 {
	eff := EfficiencyKmPerKwh(vehicle)
	if eff == 0 {
		return 0
	}
	return distanceKm / eff
}
