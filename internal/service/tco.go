package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/repository"
	"github.com/evlanka/evlanka/internal/tco"
)

// TCOService resolves the selected vehicle and runs the cost projection
// engine over normalized inputs.
type TCOService struct {
	logger      *zap.Logger
	vehicleRepo *repository.VehicleRepository
	policy      tco.Policy
}

// NewTCOService creates a TCO service.
func NewTCOService(logger *zap.Logger, vehicleRepo *repository.VehicleRepository, policy tco.Policy) *TCOService {
	return &TCOService{
		logger:      logger,
		vehicleRepo: vehicleRepo,
		policy:      policy,
	}
}

// Policy exposes the market constants for display endpoints.
func (s *TCOService) Policy() tco.Policy {
	return s.policy
}

// normalizeInputs fills zero-valued fields with the policy defaults so a
// partially decoded share link still yields a sensible comparison.
func (s *TCOService) normalizeInputs(inputs tco.Inputs) tco.Inputs {
	if inputs.FuelType != tco.FuelDiesel {
		inputs.FuelType = tco.FuelPetrol
	}
	if inputs.FuelEfficiencyKmL == 0 {
		if inputs.FuelType == tco.FuelDiesel {
			inputs.FuelEfficiencyKmL = s.policy.DefaultDieselEfficiencyKmL
		} else {
			inputs.FuelEfficiencyKmL = s.policy.DefaultPetrolEfficiencyKmL
		}
	}
	if inputs.MonthlyDistanceKm == 0 {
		inputs.MonthlyDistanceKm = s.policy.DefaultMonthlyDistanceKm
	}
	if !s.policy.ValidTariff(inputs.TariffID) {
		inputs.TariffID = tco.TariffDomesticHigh
	}
	return inputs
}

// Calculate runs the comparison. A VehicleID that resolves to no vehicle is
// an error; an empty VehicleID runs the calculation without one.
func (s *TCOService) Calculate(ctx context.Context, inputs tco.Inputs) (tco.Result, tco.Inputs, error) {
	inputs = s.normalizeInputs(inputs)

	if inputs.VehicleID != "" {
		v, err := s.vehicleRepo.GetByID(ctx, inputs.VehicleID)
		if err != nil {
			return tco.Result{}, inputs, fmt.Errorf("%w: %q", ErrVehicleNotFound, inputs.VehicleID)
		}
		result := s.policy.Compute(inputs, v)
		s.logger.Debug("TCO computed",
			zap.String("vehicle_id", inputs.VehicleID),
			zap.Float64("monthly_savings", result.MonthlySavings))
		return result, inputs, nil
	}
	return s.policy.Compute(inputs, nil), inputs, nil
}
