package repository

import (
	"context"
	"fmt"

	"github.com/evlanka/evlanka/internal/models"
)

// StationRepository reads and writes charging stations.
type StationRepository struct {
	db *DB
}

// NewStationRepository creates a station repository.
func NewStationRepository(db *DB) *StationRepository {
	return &StationRepository{db: db}
}

const stationColumns = `id, name, operator, address, latitude, longitude, connector_types,
	power_output_kw, charging_type, status, is_public, cost_per_kwh, amenities, created_at, updated_at`

func scanStation(row interface{ Scan(...any) error }) (*models.ChargingStation, error) {
	s := &models.ChargingStation{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Operator,
		&s.Address,
		&s.Latitude,
		&s.Longitude,
		&s.ConnectorTypes,
		&s.PowerOutputKw,
		&s.ChargingType,
		&s.Status,
		&s.IsPublic,
		&s.CostPerKwh,
		&s.Amenities,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List returns stations matching the filter, ordered by name.
func (r *StationRepository) List(ctx context.Context, filter models.StationFilter) ([]*models.ChargingStation, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM charging_stations
		WHERE ($1 = '' OR $1 = ANY(connector_types))
		  AND ($2 = '' OR LOWER(operator) = LOWER($2))
		  AND ($3 = '' OR status = $3)
		ORDER BY name
	`
	rows, err := r.db.Pool.Query(ctx, query, filter.Connector, filter.Operator, filter.Status)
	if err != nil {
		return nil, fmt.Errorf("list stations: %w", err)
	}
	defer rows.Close()

	var stations []*models.ChargingStation
	for rows.Next() {
		s, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		stations = append(stations, s)
	}

	return stations, nil
}

// GetByID returns one station.
func (r *StationRepository) GetByID(ctx context.Context, id string) (*models.ChargingStation, error) {
	query := `SELECT ` + stationColumns + ` FROM charging_stations WHERE id = $1`
	s, err := scanStation(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get station by id: %w", err)
	}
	return s, nil
}

// UpdateStatus stores a station's new availability status.
func (r *StationRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE charging_stations SET status = $1, updated_at = NOW() WHERE id = $2`
	tag, err := r.db.Pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update station status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("station %s not found", id)
	}
	return nil
}

// Upsert creates or replaces a station record.
func (r *StationRepository) Upsert(ctx context.Context, s *models.ChargingStation) error {
	query := `
		INSERT INTO charging_stations (id, name, operator, address, latitude, longitude,
			connector_types, power_output_kw, charging_type, status, is_public, cost_per_kwh, amenities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			operator = EXCLUDED.operator,
			address = EXCLUDED.address,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			connector_types = EXCLUDED.connector_types,
			power_output_kw = EXCLUDED.power_output_kw,
			charging_type = EXCLUDED.charging_type,
			status = EXCLUDED.status,
			is_public = EXCLUDED.is_public,
			cost_per_kwh = EXCLUDED.cost_per_kwh,
			amenities = EXCLUDED.amenities,
			updated_at = NOW()
	`
	_, err := r.db.Pool.Exec(ctx, query,
		s.ID, s.Name, s.Operator, s.Address, s.Latitude, s.Longitude,
		s.ConnectorTypes, s.PowerOutputKw, s.ChargingType, s.Status, s.IsPublic, s.CostPerKwh, s.Amenities,
	)
	if err != nil {
		return fmt.Errorf("upsert station: %w", err)
	}
	return nil
}

// Count returns the number of stored stations.
func (r *StationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM charging_stations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count stations: %w", err)
	}
	return count, nil
}
