package shareurl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlanka/evlanka/internal/tco"
)

func TestPlannerRoundTrip(t *testing.T) {
	params := PlannerParams{
		OriginID:       "colombo-fort",
		DestinationID:  "kandy-city",
		VehicleID:      "byd-atto3",
		StartingCharge: 80,
	}

	encoded := EncodePlanner(params)
	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	assert.Equal(t, params, DecodePlanner(values))
}

func TestDecodePlanner(t *testing.T) {
	t.Run("absent fields stay zero", func(t *testing.T) {
		params := DecodePlanner(url.Values{"origin": {"galle-city"}})
		assert.Equal(t, "galle-city", params.OriginID)
		assert.Empty(t, params.DestinationID)
		assert.Zero(t, params.StartingCharge)
	})

	t.Run("malformed charge is treated as absent", func(t *testing.T) {
		params := DecodePlanner(url.Values{"charge": {"eighty"}})
		assert.Zero(t, params.StartingCharge)
	})
}

func TestCalculatorRoundTrip(t *testing.T) {
	petrolPrice := 6_500_000.0
	maintenance := 2500.0

	inputs := tco.Inputs{
		FuelType:            tco.FuelDiesel,
		FuelEfficiencyKmL:   18,
		MonthlyDistanceKm:   1500,
		FuelPriceLKR:        340,
		PetrolCarPriceLKR:   &petrolPrice,
		VehicleID:           "nissan-leaf",
		TariffID:            tco.TariffOffPeak,
		CustomMaintenanceEV: &maintenance,
		IncludeDepreciation: true,
	}

	encoded := EncodeCalculator(inputs)
	values, err := url.ParseQuery(encoded)
	require.NoError(t, err)

	assert.Equal(t, inputs, DecodeCalculator(values))
}

func TestDecodeCalculator(t *testing.T) {
	t.Run("unset optionals stay nil", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{"monthlyKm": {"1200"}})
		assert.Equal(t, 1200.0, inputs.MonthlyDistanceKm)
		assert.Nil(t, inputs.PetrolCarPriceLKR)
		assert.Nil(t, inputs.CustomInsuranceEV)
		assert.False(t, inputs.IncludeDepreciation)
	})

	t.Run("unknown fuel type is dropped", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{"fuelType": {"HYDROGEN"}})
		assert.Empty(t, inputs.FuelType)
	})

	t.Run("malformed numbers are treated as absent", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{
			"fuelEff":     {"abc"},
			"petrolPrice": {"lots"},
		})
		assert.Zero(t, inputs.FuelEfficiencyKmL)
		assert.Nil(t, inputs.PetrolCarPriceLKR)
	})

	t.Run("non-finite numbers are treated as absent", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{
			"monthlyKm": {"Inf"},
			"fuelEff":   {"NaN"},
			"incentive": {"-Inf"},
		})
		assert.Zero(t, inputs.MonthlyDistanceKm)
		assert.Zero(t, inputs.FuelEfficiencyKmL)
		assert.Nil(t, inputs.GovernmentIncentive)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{
			"utm_source": {"newsletter"},
			"monthlyKm":  {"900"},
		})
		assert.Equal(t, 900.0, inputs.MonthlyDistanceKm)
	})

	t.Run("tariff is carried as-is", func(t *testing.T) {
		inputs := DecodeCalculator(url.Values{"tariff": {"SOLAR"}})
		assert.Equal(t, tco.TariffID("SOLAR"), inputs.TariffID)
	})
}
