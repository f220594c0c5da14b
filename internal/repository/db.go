package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the pgx connection pool.
type DB struct {
	Pool *pgxpool.Pool
}

// New connects to the database and verifies the connection.
func New(ctx context.Context, databaseURL string) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}

// Migrate applies the schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	migrations := []string{
		migrationCreateVehicles,
		migrationCreateChargingStations,
		migrationCreateLocations,
	}

	for _, m := range migrations {
		if _, err := db.Pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("execute migration: %w", err)
		}
	}

	return nil
}

const migrationCreateVehicles = `
CREATE TABLE IF NOT EXISTS vehicles (
    id TEXT PRIMARY KEY,
    make VARCHAR(100) NOT NULL,
    model VARCHAR(100) NOT NULL,
    year INT NOT NULL,
    body_type VARCHAR(50) NOT NULL,
    price_lkr DOUBLE PRECISION NOT NULL,
    price_registered_lkr DOUBLE PRECISION,
    battery_kwh DOUBLE PRECISION NOT NULL,
    range_wltp DOUBLE PRECISION NOT NULL,
    range_sl_estimate DOUBLE PRECISION NOT NULL,
    motor_power_kw DOUBLE PRECISION NOT NULL,
    top_speed_kmh DOUBLE PRECISION,
    acceleration_0_100 DOUBLE PRECISION,
    charging_time_ac_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
    charging_time_dc_minutes DOUBLE PRECISION NOT NULL DEFAULT 0,
    seating_capacity INT NOT NULL DEFAULT 5,
    cargo_space_liters DOUBLE PRECISION,
    drive_type VARCHAR(10) NOT NULL,
    tax_bracket VARCHAR(50) NOT NULL DEFAULT '',
    image_url TEXT,
    features TEXT[],
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE
);
CREATE INDEX IF NOT EXISTS idx_vehicles_body_type ON vehicles(body_type);
CREATE INDEX IF NOT EXISTS idx_vehicles_price_lkr ON vehicles(price_lkr);
`

const migrationCreateChargingStations = `
CREATE TABLE IF NOT EXISTS charging_stations (
    id TEXT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    operator VARCHAR(100) NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    connector_types TEXT[] NOT NULL,
    power_output_kw DOUBLE PRECISION NOT NULL,
    charging_type VARCHAR(10) NOT NULL DEFAULT 'DC',
    status VARCHAR(20) NOT NULL DEFAULT 'available',
    is_public BOOLEAN NOT NULL DEFAULT true,
    cost_per_kwh DOUBLE PRECISION,
    amenities TEXT[],
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    updated_at TIMESTAMP WITH TIME ZONE
);
CREATE INDEX IF NOT EXISTS idx_charging_stations_operator ON charging_stations(operator);
CREATE INDEX IF NOT EXISTS idx_charging_stations_status ON charging_stations(status);
`

const migrationCreateLocations = `
CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    district VARCHAR(100) NOT NULL,
    latitude DOUBLE PRECISION NOT NULL,
    longitude DOUBLE PRECISION NOT NULL,
    category VARCHAR(20) NOT NULL DEFAULT 'town'
);
CREATE INDEX IF NOT EXISTS idx_locations_district ON locations(district);
`
