package models

import "time"

// Charging station availability states. Transitions between them are gated
// by the state machine in internal/state.
const (
	StationAvailable   = "available"
	StationOccupied    = "occupied"
	StationMaintenance = "maintenance"
	StationOffline     = "offline"
)

// ChargingStation is a public charging point.
type ChargingStation struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Operator       string     `json:"operator" db:"operator"`
	Address        string     `json:"address" db:"address"`
	Latitude       float64    `json:"latitude" db:"latitude"`
	Longitude      float64    `json:"longitude" db:"longitude"`
	ConnectorTypes []string   `json:"connector_types" db:"connector_types"`
	PowerOutputKw  float64    `json:"power_output_kw" db:"power_output_kw"`
	ChargingType   string     `json:"charging_type" db:"charging_type"` // AC, DC or Both
	Status         string     `json:"status" db:"status"`
	IsPublic       bool       `json:"is_public" db:"is_public"`
	CostPerKwh     *float64   `json:"cost_per_kwh" db:"cost_per_kwh"`
	Amenities      []string   `json:"amenities" db:"amenities"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at" db:"updated_at"`
}

// StationFilter narrows a station listing. Zero values mean "no filter".
type StationFilter struct {
	Connector string
	Operator  string
	Status    string
}
