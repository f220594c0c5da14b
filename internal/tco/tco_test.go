package tco

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlanka/evlanka/internal/models"
)

func TestEVEfficiencyKwhPerKm(t *testing.T) {
	assert.InDelta(t, 0.2, EVEfficiencyKwhPerKm(60, 300), 1e-9)
	assert.Zero(t, EVEfficiencyKwhPerKm(50, 0))
}

func TestMonthlyFuelCostICE(t *testing.T) {
	// 1000 km at 15 km/l and Rs 350/l.
	assert.InDelta(t, 23333.33, MonthlyFuelCostICE(1000, 15, 350), 0.01)
	assert.Zero(t, MonthlyFuelCostICE(1000, 0, 350))
}

func TestMonthlyElectricityCost(t *testing.T) {
	// 1000 km at 0.2 kWh/km and Rs 50/kWh.
	assert.InDelta(t, 10000, MonthlyElectricityCost(1000, 0.2, 50), 1e-9)
}

func TestMonthlyInsurance(t *testing.T) {
	// Rs 12M at 4% per year.
	assert.InDelta(t, 40000, MonthlyInsurance(12_000_000, 4), 1e-9)
}

func TestBreakEvenYears(t *testing.T) {
	t.Run("recovers the premium over time", func(t *testing.T) {
		// Rs 7M premium at Rs 50k/month.
		assert.InDelta(t, 11.667, BreakEvenYears(12_000_000, 5_000_000, 50_000), 0.001)
	})

	t.Run("never with non-positive savings", func(t *testing.T) {
		assert.True(t, math.IsInf(BreakEvenYears(12_000_000, 5_000_000, 0), 1))
		assert.True(t, math.IsInf(BreakEvenYears(12_000_000, 5_000_000, -100), 1))
	})

	t.Run("immediately when the EV is no more expensive", func(t *testing.T) {
		assert.Zero(t, BreakEvenYears(4_000_000, 5_000_000, 10_000))
	})
}

func TestFiveYearProjection(t *testing.T) {
	p := DefaultPolicy()
	projection := p.FiveYearProjection(40_000, 30_000, 8_000_000, 5_000_000)

	require.Len(t, projection, 5)

	first := projection[0]
	assert.Equal(t, 1, first.Year)
	assert.InDelta(t, 5_000_000+40_000*12, first.PetrolCumulativeCost, 1e-6)
	assert.InDelta(t, 8_000_000+30_000*12, first.EVCumulativeCost, 1e-6)
	assert.InDelta(t, first.PetrolCumulativeCost-first.EVCumulativeCost, first.CumulativeSavings, 1e-6)

	last := projection[4]
	assert.Equal(t, 5, last.Year)
	// Rs 10k/month advantage overcomes the Rs 3M premium within five years.
	assert.InDelta(t, -3_000_000+10_000*60, last.CumulativeSavings, 1e-6)
}

func compactVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:              "test-ev",
		PriceLKR:        6_000_000,
		BatteryKwh:      60,
		RangeSLEstimate: 300,
	}
}

func baseInputs() Inputs {
	return Inputs{
		FuelType:          FuelPetrol,
		FuelEfficiencyKmL: 15,
		MonthlyDistanceKm: 1000,
		FuelPriceLKR:      350,
		VehicleID:         "test-ev",
		TariffID:          TariffDomesticHigh,
	}
}

func TestCompute(t *testing.T) {
	p := DefaultPolicy()

	t.Run("affordable EV breaks even", func(t *testing.T) {
		result := p.Compute(baseInputs(), compactVehicle())

		assert.InDelta(t, 0.2, result.EVEfficiencyKwhPerKm, 1e-9)
		assert.InDelta(t, 23333.33, result.MonthlyFuelCostPetrol, 0.01)
		assert.InDelta(t, 10000, result.MonthlyFuelCostEV, 1e-6)
		assert.Equal(t, 5000.0, result.MonthlyMaintenancePetrol)
		assert.Equal(t, 2000.0, result.MonthlyMaintenanceEV)
		// Insurance: petrol on the Rs 5M default estimate, EV on its price.
		assert.InDelta(t, 14583.33, result.MonthlyInsurancePetrol, 0.01)
		assert.InDelta(t, 20000, result.MonthlyInsuranceEV, 1e-6)

		assert.InDelta(t, 10916.67, result.MonthlySavings, 0.01)
		assert.InDelta(t, result.MonthlySavings*12, result.AnnualSavings, 1e-6)

		// Rs 1M premium at ~Rs 10.9k/month.
		assert.False(t, math.IsInf(result.BreakEvenYears, 1))
		assert.InDelta(t, 7.63, result.BreakEvenYears, 0.01)

		require.Len(t, result.FiveYearProjection, 5)
		assert.InDelta(t, result.FiveYearProjection[4].CumulativeSavings, result.FiveYearSavings, 1e-6)
	})

	t.Run("expensive EV never breaks even", func(t *testing.T) {
		vehicle := compactVehicle()
		vehicle.PriceLKR = 12_000_000 // EV insurance alone outweighs the fuel savings

		result := p.Compute(baseInputs(), vehicle)

		assert.Negative(t, result.MonthlySavings)
		assert.True(t, math.IsInf(result.BreakEvenYears, 1))
		assert.Negative(t, result.FiveYearSavings)
	})

	t.Run("diesel uses diesel maintenance and insurance", func(t *testing.T) {
		inputs := baseInputs()
		inputs.FuelType = FuelDiesel
		inputs.FuelEfficiencyKmL = 18

		result := p.Compute(inputs, compactVehicle())

		assert.Equal(t, 5500.0, result.MonthlyMaintenancePetrol)
		assert.InDelta(t, 1000.0/18*350, result.MonthlyFuelCostPetrol, 0.01)
	})

	t.Run("overrides replace the defaults", func(t *testing.T) {
		maintenance := 3000.0
		insurance := 12000.0
		petrolPrice := 7_000_000.0

		inputs := baseInputs()
		inputs.CustomMaintenanceEV = &maintenance
		inputs.CustomInsurancePetrol = &insurance
		inputs.PetrolCarPriceLKR = &petrolPrice

		result := p.Compute(inputs, compactVehicle())

		assert.Equal(t, maintenance, result.MonthlyMaintenanceEV)
		assert.Equal(t, insurance, result.MonthlyInsurancePetrol)
		// The comparison car price feeds the projection, not insurance.
		assert.InDelta(t, petrolPrice, result.FiveYearProjection[0].PetrolCumulativeCost-result.MonthlyTotalPetrol*12, 1e-6)
	})

	t.Run("no vehicle selected", func(t *testing.T) {
		inputs := baseInputs()
		inputs.VehicleID = ""

		result := p.Compute(inputs, nil)

		assert.Zero(t, result.MonthlyFuelCostEV)
		assert.Zero(t, result.EVEfficiencyKwhPerKm)
		assert.Nil(t, result.SelectedVehicle)
		// A free EV breaks even immediately.
		assert.Zero(t, result.BreakEvenYears)
	})

	t.Run("zero-value policy still returns a well-formed result", func(t *testing.T) {
		var empty Policy

		result := empty.Compute(baseInputs(), compactVehicle())

		assert.Empty(t, result.FiveYearProjection)
		assert.Zero(t, result.FiveYearSavings)
	})

	t.Run("unknown tariff charges nothing for electricity", func(t *testing.T) {
		inputs := baseInputs()
		inputs.TariffID = TariffID("SOLAR")

		result := p.Compute(inputs, compactVehicle())
		assert.Zero(t, result.MonthlyFuelCostEV)
	})
}

func TestTariffTable(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.ValidTariff(TariffDomesticLow))
	assert.False(t, p.ValidTariff(TariffID("SOLAR")))

	options := p.TariffOptions()
	require.Len(t, options, 4)
	assert.Equal(t, TariffDomesticLow, options[0].ID)
	assert.Equal(t, 50.0, options[1].RateLKRPerKwh)
}
