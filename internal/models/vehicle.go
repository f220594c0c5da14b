package models

import "time"

// Vehicle is an electric vehicle listed in the directory. RangeSLEstimate is
// the market-adjusted real-world range and is the figure every calculation
// uses; RangeWLTP is the manufacturer claim kept for display.
type Vehicle struct {
	ID                    string     `json:"id" db:"id"`
	Make                  string     `json:"make" db:"make"`
	Model                 string     `json:"model" db:"model"`
	Year                  int        `json:"year" db:"year"`
	BodyType              string     `json:"body_type" db:"body_type"`
	PriceLKR              float64    `json:"price_lkr" db:"price_lkr"`
	PriceRegisteredLKR    *float64   `json:"price_registered_lkr" db:"price_registered_lkr"`
	BatteryKwh            float64    `json:"battery_kwh" db:"battery_kwh"`
	RangeWLTP             float64    `json:"range_wltp" db:"range_wltp"`
	RangeSLEstimate       float64    `json:"range_sl_estimate" db:"range_sl_estimate"`
	MotorPowerKw          float64    `json:"motor_power_kw" db:"motor_power_kw"`
	TopSpeedKmh           *float64   `json:"top_speed_kmh" db:"top_speed_kmh"`
	Acceleration0100      *float64   `json:"acceleration_0_100" db:"acceleration_0_100"`
	ChargingTimeACHours   float64    `json:"charging_time_ac_hours" db:"charging_time_ac_hours"`
	ChargingTimeDCMinutes float64    `json:"charging_time_dc_minutes" db:"charging_time_dc_minutes"`
	SeatingCapacity       int        `json:"seating_capacity" db:"seating_capacity"`
	CargoSpaceLiters      *float64   `json:"cargo_space_liters" db:"cargo_space_liters"`
	DriveType             string     `json:"drive_type" db:"drive_type"`
	TaxBracket            string     `json:"tax_bracket" db:"tax_bracket"`
	ImageURL              *string    `json:"image_url" db:"image_url"`
	Features              []string   `json:"features" db:"features"`
	CreatedAt             time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at" db:"updated_at"`
}

// VehicleFilter narrows a vehicle listing. Zero values mean "no filter".
type VehicleFilter struct {
	Search   string
	MaxPrice float64
	MinRange float64
	BodyType string
}
