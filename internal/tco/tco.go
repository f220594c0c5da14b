package tco

import (
	"math"

	"github.com/evlanka/evlanka/internal/models"
)

// Inputs are the calculator's user-entered values. Optional overrides are
// pointers; nil means "use the policy default".
type Inputs struct {
	// Conventional vehicle.
	FuelType          FuelType `json:"fuel_type"`
	FuelEfficiencyKmL float64  `json:"fuel_efficiency_km_l"`
	MonthlyDistanceKm float64  `json:"monthly_distance_km"`
	FuelPriceLKR      float64  `json:"fuel_price_lkr"`
	PetrolCarPriceLKR *float64 `json:"petrol_car_price_lkr,omitempty"`

	// Electric vehicle.
	VehicleID string   `json:"vehicle_id,omitempty"`
	TariffID  TariffID `json:"tariff_id"`

	// Advanced overrides.
	CustomMaintenancePetrol *float64 `json:"custom_maintenance_petrol,omitempty"`
	CustomMaintenanceEV     *float64 `json:"custom_maintenance_ev,omitempty"`
	CustomInsurancePetrol   *float64 `json:"custom_insurance_petrol,omitempty"`
	CustomInsuranceEV       *float64 `json:"custom_insurance_ev,omitempty"`

	// Carried through share links for the UI; not used by the calculation.
	IncludeDepreciation bool     `json:"include_depreciation,omitempty"`
	GovernmentIncentive *float64 `json:"government_incentive,omitempty"`
}

// YearlyCost is one row of the multi-year cumulative projection.
type YearlyCost struct {
	Year                 int     `json:"year"`
	PetrolCumulativeCost float64 `json:"petrol_cumulative_cost"`
	EVCumulativeCost     float64 `json:"ev_cumulative_cost"`
	CumulativeSavings    float64 `json:"cumulative_savings"`
}

// Result is a complete TCO comparison. BreakEvenYears is +Inf when the EV
// never breaks even.
type Result struct {
	MonthlyFuelCostPetrol    float64 `json:"monthly_fuel_cost_petrol"`
	MonthlyFuelCostEV        float64 `json:"monthly_fuel_cost_ev"`
	MonthlyMaintenancePetrol float64 `json:"monthly_maintenance_petrol"`
	MonthlyMaintenanceEV     float64 `json:"monthly_maintenance_ev"`
	MonthlyInsurancePetrol   float64 `json:"monthly_insurance_petrol"`
	MonthlyInsuranceEV       float64 `json:"monthly_insurance_ev"`
	MonthlyTotalPetrol       float64 `json:"monthly_total_petrol"`
	MonthlyTotalEV           float64 `json:"monthly_total_ev"`
	MonthlySavings           float64 `json:"monthly_savings"`

	AnnualSavings float64 `json:"annual_savings"`

	BreakEvenYears     float64      `json:"-"`
	FiveYearSavings    float64      `json:"five_year_savings"`
	FiveYearProjection []YearlyCost `json:"five_year_projection"`

	EVEfficiencyKwhPerKm float64         `json:"ev_efficiency_kwh_per_km"`
	SelectedVehicle      *models.Vehicle `json:"selected_vehicle"`
}

// EVEfficiencyKwhPerKm converts battery capacity and rated range to energy
// per kilometer. Returns 0 for a zero range.
func EVEfficiencyKwhPerKm(batteryKwh, rangeKm float64) float64 {
	if rangeKm == 0 {
		return 0
	}
	return batteryKwh / rangeKm
}

// MonthlyFuelCostICE is the monthly fuel spend of a conventional vehicle.
// Returns 0 for a zero efficiency.
func MonthlyFuelCostICE(monthlyKm, kmPerLiter, pricePerLiter float64) float64 {
	if kmPerLiter == 0 {
		return 0
	}
	return monthlyKm / kmPerLiter * pricePerLiter
}

// MonthlyElectricityCost is the monthly charging spend of an EV.
func MonthlyElectricityCost(monthlyKm, kwhPerKm, ratePerKwh float64) float64 {
	return monthlyKm * kwhPerKm * ratePerKwh
}

// MonthlyInsurance converts an annual insurance rate on the vehicle value
// into a monthly cost.
func MonthlyInsurance(vehiclePrice, annualRatePercent float64) float64 {
	return vehiclePrice * annualRatePercent / 100 / 12
}

// BreakEvenYears is the time for the EV's monthly savings to recover its
// price premium. Returns +Inf when savings are non-positive and 0 when the
// EV is no more expensive up front.
func BreakEvenYears(evPrice, petrolPrice, monthlySavings float64) float64 {
	if monthlySavings <= 0 {
		return math.Inf(1)
	}
	priceDifference := evPrice - petrolPrice
	if priceDifference <= 0 {
		return 0
	}
	return priceDifference / monthlySavings / 12
}

// FiveYearProjection builds the cumulative cost of each side over the
// policy's ownership horizon: purchase price plus the flat monthly total.
// No compounding, inflation or discounting.
func (p Policy) FiveYearProjection(monthlyPetrol, monthlyEV, evPrice, petrolPrice float64) []YearlyCost {
	projection := make([]YearlyCost, 0, p.YearsOfOwnership)
	for year := 1; year <= p.YearsOfOwnership; year++ {
		monthsElapsed := float64(year * 12)
		petrolCumulative := petrolPrice + monthlyPetrol*monthsElapsed
		evCumulative := evPrice + monthlyEV*monthsElapsed
		projection = append(projection, YearlyCost{
			Year:                 year,
			PetrolCumulativeCost: petrolCumulative,
			EVCumulativeCost:     evCumulative,
			CumulativeSavings:    petrolCumulative - evCumulative,
		})
	}
	return projection
}

// Compute runs the full comparison. A nil vehicle contributes zero
// efficiency and zero purchase price; an unknown tariff contributes a zero
// electricity rate. The result is always well-formed.
func (p Policy) Compute(inputs Inputs, vehicle *models.Vehicle) Result {
	electricityRate := p.Tariffs[inputs.TariffID].RateLKRPerKwh

	var evEfficiency float64
	var evPrice float64
	if vehicle != nil {
		evEfficiency = EVEfficiencyKwhPerKm(vehicle.BatteryKwh, vehicle.RangeSLEstimate)
		evPrice = vehicle.PriceLKR
	}

	monthlyFuelPetrol := MonthlyFuelCostICE(inputs.MonthlyDistanceKm, inputs.FuelEfficiencyKmL, inputs.FuelPriceLKR)
	monthlyFuelEV := MonthlyElectricityCost(inputs.MonthlyDistanceKm, evEfficiency, electricityRate)

	maintenancePetrol := p.MaintenancePetrolMonthly
	insuranceRatePetrol := p.InsurancePetrolAnnualPercent
	if inputs.FuelType == FuelDiesel {
		maintenancePetrol = p.MaintenanceDieselMonthly
		insuranceRatePetrol = p.InsuranceDieselAnnualPercent
	}
	if inputs.CustomMaintenancePetrol != nil {
		maintenancePetrol = *inputs.CustomMaintenancePetrol
	}
	maintenanceEV := p.MaintenanceEVMonthly
	if inputs.CustomMaintenanceEV != nil {
		maintenanceEV = *inputs.CustomMaintenanceEV
	}

	petrolCarPrice := p.PetrolCarPriceEstimateLKR
	if inputs.PetrolCarPriceLKR != nil {
		petrolCarPrice = *inputs.PetrolCarPriceLKR
	}

	insurancePetrol := MonthlyInsurance(petrolCarPrice, insuranceRatePetrol)
	if inputs.CustomInsurancePetrol != nil {
		insurancePetrol = *inputs.CustomInsurancePetrol
	}
	insuranceEV := MonthlyInsurance(evPrice, p.InsuranceEVAnnualPercent)
	if inputs.CustomInsuranceEV != nil {
		insuranceEV = *inputs.CustomInsuranceEV
	}

	monthlyTotalPetrol := monthlyFuelPetrol + maintenancePetrol + insurancePetrol
	monthlyTotalEV := monthlyFuelEV + maintenanceEV + insuranceEV
	monthlySavings := monthlyTotalPetrol - monthlyTotalEV

	projection := p.FiveYearProjection(monthlyTotalPetrol, monthlyTotalEV, evPrice, petrolCarPrice)
	var fiveYearSavings float64
	if len(projection) > 0 {
		fiveYearSavings = projection[len(projection)-1].CumulativeSavings
	}

	return Result{
		MonthlyFuelCostPetrol:    monthlyFuelPetrol,
		MonthlyFuelCostEV:        monthlyFuelEV,
		MonthlyMaintenancePetrol: maintenancePetrol,
		MonthlyMaintenanceEV:     maintenanceEV,
		MonthlyInsurancePetrol:   insurancePetrol,
		MonthlyInsuranceEV:       insuranceEV,
		MonthlyTotalPetrol:       monthlyTotalPetrol,
		MonthlyTotalEV:           monthlyTotalEV,
		MonthlySavings:           monthlySavings,
		AnnualSavings:            monthlySavings * 12,
		BreakEvenYears:           BreakEvenYears(evPrice, petrolCarPrice, monthlySavings),
		FiveYearSavings:          fiveYearSavings,
		FiveYearProjection:       projection,
		EVEfficiencyKwhPerKm:     evEfficiency,
		SelectedVehicle:          vehicle,
	}
}
