// Package tco implements the total-cost-of-ownership projection engine
// comparing a conventional vehicle against an electric one. Every operation
// is a pure function of its inputs and always returns a well-formed result;
// degenerate inputs produce zeros or sentinel values, never errors.
package tco

// FuelType identifies a conventional fuel.
type FuelType string

const (
	FuelPetrol FuelType = "PETROL"
	FuelDiesel FuelType = "DIESEL"
)

// TariffID identifies a row of the electricity tariff table.
type TariffID string

const (
	TariffDomesticLow    TariffID = "DOMESTIC_LOW"
	TariffDomesticHigh   TariffID = "DOMESTIC_HIGH"
	TariffOffPeak        TariffID = "OFF_PEAK"
	TariffPublicCharging TariffID = "PUBLIC_CHARGING"
)

// Tariff is one electricity pricing option.
type Tariff struct {
	ID            TariffID `json:"id"`
	Label         string   `json:"label"`
	RateLKRPerKwh float64  `json:"rate_lkr_per_kwh"`
	Description   string   `json:"description"`
}

// Policy holds the fixed market constants the engine calculates with:
// the tariff table and the default maintenance, insurance and depreciation
// rates. It is passed in explicitly so tests can substitute alternates.
type Policy struct {
	Tariffs map[TariffID]Tariff

	// Default monthly maintenance, LKR.
	MaintenancePetrolMonthly float64
	MaintenanceDieselMonthly float64
	MaintenanceEVMonthly     float64

	// Annual insurance as a percentage of vehicle value.
	InsurancePetrolAnnualPercent float64
	InsuranceDieselAnnualPercent float64
	InsuranceEVAnnualPercent     float64

	// Annual depreciation percentages, kept for display alongside results.
	DepreciationPetrolAnnualPercent float64
	DepreciationEVAnnualPercent     float64

	// Calculation defaults.
	DefaultMonthlyDistanceKm   float64
	YearsOfOwnership           int
	PetrolCarPriceEstimateLKR  float64
	DefaultPetrolEfficiencyKmL float64
	DefaultDieselEfficiencyKmL float64
}

// DefaultPolicy returns the production policy for the Sri Lankan market.
func DefaultPolicy() Policy {
	return Policy{
		Tariffs: map[TariffID]Tariff{
			TariffDomesticLow: {
				ID:            TariffDomesticLow,
				Label:         "Domestic (<90 units/month)",
				RateLKRPerKwh: 30,
				Description:   "Lower tariff for households consuming less than 90 units per month",
			},
			TariffDomesticHigh: {
				ID:            TariffDomesticHigh,
				Label:         "Domestic (>90 units/month)",
				RateLKRPerKwh: 50,
				Description:   "Standard domestic tariff for higher consumption",
			},
			TariffOffPeak: {
				ID:            TariffOffPeak,
				Label:         "Off-Peak Hours",
				RateLKRPerKwh: 35,
				Description:   "Reduced rate during off-peak hours (typically 10 PM - 6 AM)",
			},
			TariffPublicCharging: {
				ID:            TariffPublicCharging,
				Label:         "Public Fast Charging",
				RateLKRPerKwh: 45,
				Description:   "Commercial charging station rates",
			},
		},

		MaintenancePetrolMonthly: 5000,
		MaintenanceDieselMonthly: 5500,
		MaintenanceEVMonthly:     2000,

		InsurancePetrolAnnualPercent: 3.5,
		InsuranceDieselAnnualPercent: 3.5,
		InsuranceEVAnnualPercent:     4.0,

		DepreciationPetrolAnnualPercent: 15,
		DepreciationEVAnnualPercent:     12,

		DefaultMonthlyDistanceKm:   1000,
		YearsOfOwnership:           5,
		PetrolCarPriceEstimateLKR:  5_000_000,
		DefaultPetrolEfficiencyKmL: 15,
		DefaultDieselEfficiencyKmL: 18,
	}
}

// ValidTariff reports whether id is a row of the policy's tariff table.
func (p Policy) ValidTariff(id TariffID) bool {
	_, ok := p.Tariffs[id]
	return ok
}

// TariffOptions returns the tariff table as a stable slice for display.
func (p Policy) TariffOptions() []Tariff {
	order := []TariffID{TariffDomesticLow, TariffDomesticHigh, TariffOffPeak, TariffPublicCharging}
	options := make([]Tariff, 0, len(p.Tariffs))
	for _, id := range order {
		if t, ok := p.Tariffs[id]; ok {
			options = append(options, t)
		}
	}
	return options
}
