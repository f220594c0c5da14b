// Package shareurl encodes planner and calculator inputs to and from URL
// query parameters, so a configured scenario can be shared as a link.
// Decoding is permissive: unknown keys are ignored and malformed numbers are
// treated as absent, never as errors.
package shareurl

import (
	"math"
	"net/url"
	"strconv"

	"github.com/evlanka/evlanka/internal/tco"
)

// PlannerParams are the route planner's shareable inputs.
type PlannerParams struct {
	OriginID       string
	DestinationID  string
	VehicleID      string
	StartingCharge float64
}

// EncodePlanner serializes params to a query string (without the leading ?).
func EncodePlanner(params PlannerParams) string {
	values := url.Values{}
	if params.OriginID != "" {
		values.Set("origin", params.OriginID)
	}
	if params.DestinationID != "" {
		values.Set("destination", params.DestinationID)
	}
	if params.VehicleID != "" {
		values.Set("vehicleId", params.VehicleID)
	}
	if params.StartingCharge > 0 {
		values.Set("charge", strconv.FormatFloat(params.StartingCharge, 'f', -1, 64))
	}
	return values.Encode()
}

// DecodePlanner reads planner params back from query values. Absent or
// malformed fields stay at their zero values.
func DecodePlanner(values url.Values) PlannerParams {
	params := PlannerParams{
		OriginID:      values.Get("origin"),
		DestinationID: values.Get("destination"),
		VehicleID:     values.Get("vehicleId"),
	}
	if charge, ok := number(values, "charge"); ok {
		params.StartingCharge = charge
	}
	return params
}

// EncodeCalculator serializes TCO calculator inputs to a query string.
// Only set fields are written.
func EncodeCalculator(inputs tco.Inputs) string {
	values := url.Values{}
	if inputs.FuelType != "" {
		values.Set("fuelType", string(inputs.FuelType))
	}
	setNumber(values, "fuelEff", inputs.FuelEfficiencyKmL)
	setNumber(values, "monthlyKm", inputs.MonthlyDistanceKm)
	setNumber(values, "fuelPrice", inputs.FuelPriceLKR)
	if inputs.PetrolCarPriceLKR != nil {
		setNumber(values, "petrolPrice", *inputs.PetrolCarPriceLKR)
	}
	if inputs.VehicleID != "" {
		values.Set("vehicleId", inputs.VehicleID)
	}
	if inputs.TariffID != "" {
		values.Set("tariff", string(inputs.TariffID))
	}
	if inputs.CustomMaintenancePetrol != nil {
		setNumber(values, "maintP", *inputs.CustomMaintenancePetrol)
	}
	if inputs.CustomMaintenanceEV != nil {
		setNumber(values, "maintEV", *inputs.CustomMaintenanceEV)
	}
	if inputs.CustomInsurancePetrol != nil {
		setNumber(values, "insP", *inputs.CustomInsurancePetrol)
	}
	if inputs.CustomInsuranceEV != nil {
		setNumber(values, "insEV", *inputs.CustomInsuranceEV)
	}
	if inputs.IncludeDepreciation {
		values.Set("depr", "1")
	}
	if inputs.GovernmentIncentive != nil {
		setNumber(values, "incentive", *inputs.GovernmentIncentive)
	}
	return values.Encode()
}

// DecodeCalculator reads calculator inputs back from query values. Required
// fields that are absent or malformed stay zero; optional overrides stay
// nil. The tariff id is carried as-is and validated at the HTTP boundary.
func DecodeCalculator(values url.Values) tco.Inputs {
	var inputs tco.Inputs

	switch fuelType := tco.FuelType(values.Get("fuelType")); fuelType {
	case tco.FuelPetrol, tco.FuelDiesel:
		inputs.FuelType = fuelType
	}
	if v, ok := number(values, "fuelEff"); ok {
		inputs.FuelEfficiencyKmL = v
	}
	if v, ok := number(values, "monthlyKm"); ok {
		inputs.MonthlyDistanceKm = v
	}
	if v, ok := number(values, "fuelPrice"); ok {
		inputs.FuelPriceLKR = v
	}
	inputs.PetrolCarPriceLKR = optionalNumber(values, "petrolPrice")
	inputs.VehicleID = values.Get("vehicleId")
	inputs.TariffID = tco.TariffID(values.Get("tariff"))
	inputs.CustomMaintenancePetrol = optionalNumber(values, "maintP")
	inputs.CustomMaintenanceEV = optionalNumber(values, "maintEV")
	inputs.CustomInsurancePetrol = optionalNumber(values, "insP")
	inputs.CustomInsuranceEV = optionalNumber(values, "insEV")
	inputs.IncludeDepreciation = values.Get("depr") == "1"
	inputs.GovernmentIncentive = optionalNumber(values, "incentive")

	return inputs
}

func setNumber(values url.Values, key string, v float64) {
	if v != 0 {
		values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func number(values url.Values, key string) (float64, bool) {
	raw := values.Get(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func optionalNumber(values url.Values, key string) *float64 {
	if v, ok := number(values, key); ok {
		return &v
	}
	return nil
}
