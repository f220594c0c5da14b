package repository

import (
	"context"
	"fmt"

	"github.com/evlanka/evlanka/internal/models"
)

// LocationRepository reads the planner's origin/destination table.
type LocationRepository struct {
	db *DB
}

// NewLocationRepository creates a location repository.
func NewLocationRepository(db *DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List returns all locations ordered by district then name.
func (r *LocationRepository) List(ctx context.Context) ([]*models.Location, error) {
	query := `
		SELECT id, name, district, latitude, longitude, category
		FROM locations ORDER BY district, name
	`
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		loc := &models.Location{}
		err := rows.Scan(&loc.ID, &loc.Name, &loc.District, &loc.Latitude, &loc.Longitude, &loc.Category)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

// GetByID returns one location.
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	query := `
		SELECT id, name, district, latitude, longitude, category
		FROM locations WHERE id = $1
	`
	loc := &models.Location{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.District, &loc.Latitude, &loc.Longitude, &loc.Category)
	if err != nil {
		return nil, fmt.Errorf("get location by id: %w", err)
	}
	return loc, nil
}

// Upsert creates or replaces a location.
func (r *LocationRepository) Upsert(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (id, name, district, latitude, longitude, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			district = EXCLUDED.district,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			category = EXCLUDED.category
	`
	_, err := r.db.Pool.Exec(ctx, query,
		loc.ID, loc.Name, loc.District, loc.Latitude, loc.Longitude, loc.Category)
	if err != nil {
		return fmt.Errorf("upsert location: %w", err)
	}
	return nil
}

// Count returns the number of stored locations.
func (r *LocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count locations: %w", err)
	}
	return count, nil
}
