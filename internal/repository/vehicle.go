package repository

import (
	"context"
	"fmt"

	"github.com/evlanka/evlanka/internal/models"
)

// VehicleRepository reads and writes the vehicle catalogue.
type VehicleRepository struct {
	db *DB
}

// NewVehicleRepository creates a vehicle repository.
func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleColumns = `id, make, model, year, body_type, price_lkr, price_registered_lkr, battery_kwh,
	range_wltp, range_sl_estimate, motor_power_kw, top_speed_kmh, acceleration_0_100,
	charging_time_ac_hours, charging_time_dc_minutes, seating_capacity, cargo_space_liters,
	drive_type, tax_bracket, image_url, features, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	v := &models.Vehicle{}
	err := row.Scan(
		&v.ID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.BodyType,
		&v.PriceLKR,
		&v.PriceRegisteredLKR,
		&v.BatteryKwh,
		&v.RangeWLTP,
		&v.RangeSLEstimate,
		&v.MotorPowerKw,
		&v.TopSpeedKmh,
		&v.Acceleration0100,
		&v.ChargingTimeACHours,
		&v.ChargingTimeDCMinutes,
		&v.SeatingCapacity,
		&v.CargoSpaceLiters,
		&v.DriveType,
		&v.TaxBracket,
		&v.ImageURL,
		&v.Features,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns vehicles matching the filter, ordered by price ascending.
func (r *VehicleRepository) List(ctx context.Context, filter models.VehicleFilter, limit, offset int) ([]*models.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE ($1 = '' OR make ILIKE '%' || $1 || '%' OR model ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR price_lkr <= $2)
		  AND ($3 = 0 OR range_sl_estimate >= $3)
		  AND ($4 = '' OR body_type = $4)
		ORDER BY price_lkr
		LIMIT $5 OFFSET $6
	`
	rows, err := r.db.Pool.Query(ctx, query,
		filter.Search, filter.MaxPrice, filter.MinRange, filter.BodyType, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// Count returns the number of vehicles matching the filter.
func (r *VehicleRepository) Count(ctx context.Context, filter models.VehicleFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM vehicles
		WHERE ($1 = '' OR make ILIKE '%' || $1 || '%' OR model ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR price_lkr <= $2)
		  AND ($3 = 0 OR range_sl_estimate >= $3)
		  AND ($4 = '' OR body_type = $4)
	`
	var count int64
	err := r.db.Pool.QueryRow(ctx, query,
		filter.Search, filter.MaxPrice, filter.MinRange, filter.BodyType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return count, nil
}

// GetByID returns one vehicle.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	return v, nil
}

// GetByIDs returns the vehicles for a comparison request, in the order the
// ids were given. Unknown ids are skipped.
func (r *VehicleRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = ANY($1)`
	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get vehicles by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*models.Vehicle)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		byID[v.ID] = v
	}

	ordered := make([]*models.Vehicle, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered, nil
}

// ListSimilar returns up to limit vehicles sharing the reference vehicle's
// body and drive type within a 20% price band, ordered by price proximity.
func (r *VehicleRepository) ListSimilar(ctx context.Context, v *models.Vehicle, limit int) ([]*models.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id != $1
		  AND body_type = $2
		  AND drive_type = $3
		  AND price_lkr BETWEEN $4 AND $5
		ORDER BY ABS(price_lkr - $6)
		LIMIT $7
	`
	rows, err := r.db.Pool.Query(ctx, query,
		v.ID, v.BodyType, v.DriveType, v.PriceLKR*0.8, v.PriceLKR*1.2, v.PriceLKR, limit)
	if err != nil {
		return nil, fmt.Errorf("list similar vehicles: %w", err)
	}
	defer rows.Close()

	var similar []*models.Vehicle
	for rows.Next() {
		sv, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		similar = append(similar, sv)
	}

	return similar, nil
}

// Upsert creates or replaces a vehicle record.
func (r *VehicleRepository) Upsert(ctx context.Context, v *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, make, model, year, body_type, price_lkr, price_registered_lkr,
			battery_kwh, range_wltp, range_sl_estimate, motor_power_kw, top_speed_kmh,
			acceleration_0_100, charging_time_ac_hours, charging_time_dc_minutes, seating_capacity,
			cargo_space_liters, drive_type, tax_bracket, image_url, features, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, NOW())
		ON CONFLICT (id) DO UPDATE SET
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			year = EXCLUDED.year,
			body_type = EXCLUDED.body_type,
			price_lkr = EXCLUDED.price_lkr,
			price_registered_lkr = EXCLUDED.price_registered_lkr,
			battery_kwh = EXCLUDED.battery_kwh,
			range_wltp = EXCLUDED.range_wltp,
			range_sl_estimate = EXCLUDED.range_sl_estimate,
			motor_power_kw = EXCLUDED.motor_power_kw,
			top_speed_kmh = EXCLUDED.top_speed_kmh,
			acceleration_0_100 = EXCLUDED.acceleration_0_100,
			charging_time_ac_hours = EXCLUDED.charging_time_ac_hours,
			charging_time_dc_minutes = EXCLUDED.charging_time_dc_minutes,
			seating_capacity = EXCLUDED.seating_capacity,
			cargo_space_liters = EXCLUDED.cargo_space_liters,
			drive_type = EXCLUDED.drive_type,
			tax_bracket = EXCLUDED.tax_bracket,
			image_url = EXCLUDED.image_url,
			features = EXCLUDED.features,
			updated_at = NOW()
	`
	_, err := r.db.Pool.Exec(ctx, query,
		v.ID, v.Make, v.Model, v.Year, v.BodyType, v.PriceLKR, v.PriceRegisteredLKR,
		v.BatteryKwh, v.RangeWLTP, v.RangeSLEstimate, v.MotorPowerKw, v.TopSpeedKmh,
		v.Acceleration0100, v.ChargingTimeACHours, v.ChargingTimeDCMinutes, v.SeatingCapacity,
		v.CargoSpaceLiters, v.DriveType, v.TaxBracket, v.ImageURL, v.Features,
	)
	if err != nil {
		return fmt.Errorf("upsert vehicle: %w", err)
	}
	return nil
}
