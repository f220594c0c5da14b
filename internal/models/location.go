package models

// Location is a named planner origin/destination point.
type Location struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	District  string  `json:"district" db:"district"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Category  string  `json:"category" db:"category"` // major, city or town
}
