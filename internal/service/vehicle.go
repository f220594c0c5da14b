package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/internal/repository"
)

// VehicleService serves the vehicle directory: filtered listing, detail with
// similar vehicles, and side-by-side comparison.
type VehicleService struct {
	logger      *zap.Logger
	vehicleRepo *repository.VehicleRepository
}

// NewVehicleService creates a vehicle service.
func NewVehicleService(logger *zap.Logger, vehicleRepo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{logger: logger, vehicleRepo: vehicleRepo}
}

// VehicleList is one page of the directory plus the unfiltered total.
type VehicleList struct {
	Vehicles []*models.Vehicle `json:"vehicles"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// List returns one page of vehicles matching the filter.
func (s *VehicleService) List(ctx context.Context, filter models.VehicleFilter, limit, offset int) (*VehicleList, error) {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	if offset < 0 {
		offset = 0
	}
	vehicles, err := s.vehicleRepo.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	total, err := s.vehicleRepo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	return &VehicleList{Vehicles: vehicles, Total: total, Limit: limit, Offset: offset}, nil
}

// VehicleDetail is one vehicle plus others in the same class and price band.
type VehicleDetail struct {
	Vehicle *models.Vehicle   `json:"vehicle"`
	Similar []*models.Vehicle `json:"similar"`
}

// Get returns a vehicle and up to four similar ones.
func (s *VehicleService) Get(ctx context.Context, id string) (*VehicleDetail, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrVehicleNotFound, id)
	}
	similar, err := s.vehicleRepo.ListSimilar(ctx, vehicle, 4)
	if err != nil {
		s.logger.Warn("Failed to load similar vehicles", zap.String("id", id), zap.Error(err))
		similar = nil
	}
	return &VehicleDetail{Vehicle: vehicle, Similar: similar}, nil
}

// CompareRow is one spec across the compared vehicles. Values are keyed by
// vehicle ID; a nil value means the spec is unpublished for that vehicle.
// WinnerIDs lists every vehicle sharing the best value.
type CompareRow struct {
	Key       string              `json:"key"`
	Label     string              `json:"label"`
	Unit      string              `json:"unit,omitempty"`
	Values    map[string]*float64 `json:"values"`
	WinnerIDs []string            `json:"winner_ids"`
}

// Comparison is the side-by-side spec table for up to four vehicles.
type Comparison struct {
	Vehicles []*models.Vehicle `json:"vehicles"`
	Rows     []CompareRow      `json:"rows"`
}

// compareSpec describes one row of the comparison table and how to read and
// judge it. higherWins is false for specs where less is better.
type compareSpec struct {
	key        string
	label      string
	unit       string
	higherWins bool
	value      func(v *models.Vehicle) *float64
}

func present(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

var compareSpecs = []compareSpec{
	{"price_lkr", "Price", "LKR", false, func(v *models.Vehicle) *float64 { return present(v.PriceLKR) }},
	{"range_wltp", "Range (WLTP)", "km", true, func(v *models.Vehicle) *float64 { return present(v.RangeWLTP) }},
	{"range_sl", "Range (SL est.)", "km", true, func(v *models.Vehicle) *float64 { return present(v.RangeSLEstimate) }},
	{"battery_kwh", "Battery", "kWh", true, func(v *models.Vehicle) *float64 { return present(v.BatteryKwh) }},
	{"motor_power_kw", "Motor power", "kW", true, func(v *models.Vehicle) *float64 { return present(v.MotorPowerKw) }},
	{"top_speed_kmh", "Top speed", "km/h", true, func(v *models.Vehicle) *float64 { return v.TopSpeedKmh }},
	{"acceleration_0_100", "0-100 km/h", "s", false, func(v *models.Vehicle) *float64 { return v.Acceleration0100 }},
	{"charging_ac_hours", "AC charging", "h", false, func(v *models.Vehicle) *float64 { return present(v.ChargingTimeACHours) }},
	{"charging_dc_minutes", "DC charging (10-80%)", "min", false, func(v *models.Vehicle) *float64 { return present(v.ChargingTimeDCMinutes) }},
	{"seating_capacity", "Seats", "", true, func(v *models.Vehicle) *float64 { return present(float64(v.SeatingCapacity)) }},
	{"cargo_space_l", "Cargo space", "L", true, func(v *models.Vehicle) *float64 { return v.CargoSpaceLiters }},
}

// Compare loads the requested vehicles, preserving request order, and builds
// the winner-annotated spec table. Unknown IDs are skipped; fewer than two
// resolved vehicles is an error.
func (s *VehicleService) Compare(ctx context.Context, ids []string) (*Comparison, error) {
	if len(ids) > 4 {
		ids = ids[:4]
	}
	vehicles, err := s.vehicleRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	if len(vehicles) < 2 {
		return nil, fmt.Errorf("%w: need at least two vehicles to compare", ErrVehicleNotFound)
	}

	rows := make([]CompareRow, 0, len(compareSpecs))
	for _, spec := range compareSpecs {
		row := CompareRow{
			Key:    spec.key,
			Label:  spec.label,
			Unit:   spec.unit,
			Values: make(map[string]*float64, len(vehicles)),
		}
		var best *float64
		for _, v := range vehicles {
			value := spec.value(v)
			row.Values[v.ID] = value
			if value == nil {
				continue
			}
			if best == nil || (spec.higherWins && *value > *best) || (!spec.higherWins && *value < *best) {
				best = value
			}
		}
		if best != nil {
			for _, v := range vehicles {
				if value := row.Values[v.ID]; value != nil && *value == *best {
					row.WinnerIDs = append(row.WinnerIDs, v.ID)
				}
			}
		}
		rows = append(rows, row)
	}

	return &Comparison{Vehicles: vehicles, Rows: rows}, nil
}
