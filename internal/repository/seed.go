package repository

import (
	"context"
	"fmt"

	"github.com/evlanka/evlanka/internal/models"
)

// Seed loads the built-in planner locations and the starter charging-station
// list when the tables are empty. Vehicle data is managed by operators and
// is never seeded.
func Seed(ctx context.Context, locations *LocationRepository, stations *StationRepository) error {
	count, err := locations.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range seedLocations {
			if err := locations.Upsert(ctx, &seedLocations[i]); err != nil {
				return fmt.Errorf("seed location %s: %w", seedLocations[i].ID, err)
			}
		}
	}

	count, err = stations.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		for i := range seedStations {
			if err := stations.Upsert(ctx, &seedStations[i]); err != nil {
				return fmt.Errorf("seed station %s: %w", seedStations[i].ID, err)
			}
		}
	}

	return nil
}

// Major Sri Lankan locations for route planning, coordinates from
// OpenStreetMap.
var seedLocations = []models.Location{
	// Western Province
	{ID: "colombo-fort", Name: "Colombo, Fort", District: "Colombo", Latitude: 6.9319, Longitude: 79.8478, Category: "major"},
	{ID: "colombo-city", Name: "Colombo City Centre", District: "Colombo", Latitude: 6.9271, Longitude: 79.8612, Category: "major"},
	{ID: "negombo", Name: "Negombo", District: "Gampaha", Latitude: 7.2089, Longitude: 79.8358, Category: "city"},
	{ID: "gampaha", Name: "Gampaha", District: "Gampaha", Latitude: 7.0917, Longitude: 80.0167, Category: "city"},
	{ID: "kaduwela", Name: "Kaduwela", District: "Colombo", Latitude: 6.9333, Longitude: 79.9833, Category: "town"},

	// Central Province
	{ID: "kandy", Name: "Kandy City Centre", District: "Kandy", Latitude: 7.2906, Longitude: 80.6337, Category: "major"},
	{ID: "peradeniya", Name: "Peradeniya", District: "Kandy", Latitude: 7.2667, Longitude: 80.6000, Category: "town"},
	{ID: "matale", Name: "Matale", District: "Matale", Latitude: 7.4667, Longitude: 80.6231, Category: "city"},
	{ID: "nuwara-eliya", Name: "Nuwara Eliya", District: "Nuwara Eliya", Latitude: 6.9497, Longitude: 80.7891, Category: "city"},
	{ID: "kegalle", Name: "Kegalle", District: "Kegalle", Latitude: 7.2528, Longitude: 80.3433, Category: "city"},

	// Southern Province
	{ID: "galle", Name: "Galle", District: "Galle", Latitude: 6.0535, Longitude: 80.2210, Category: "major"},
	{ID: "matara", Name: "Matara", District: "Matara", Latitude: 5.9549, Longitude: 80.5550, Category: "city"},
	{ID: "hambantota", Name: "Hambantota", District: "Hambantota", Latitude: 6.1244, Longitude: 81.1185, Category: "city"},
	{ID: "hikkaduwa", Name: "Hikkaduwa", District: "Galle", Latitude: 6.1408, Longitude: 80.1036, Category: "town"},

	// Northern Province
	{ID: "jaffna", Name: "Jaffna", District: "Jaffna", Latitude: 9.6615, Longitude: 80.0255, Category: "major"},
	{ID: "vavuniya", Name: "Vavuniya", District: "Vavuniya", Latitude: 8.7542, Longitude: 80.4982, Category: "city"},

	// Eastern Province
	{ID: "trincomalee", Name: "Trincomalee", District: "Trincomalee", Latitude: 8.5874, Longitude: 81.2152, Category: "major"},
	{ID: "batticaloa", Name: "Batticaloa", District: "Batticaloa", Latitude: 7.7310, Longitude: 81.6747, Category: "city"},
	{ID: "ampara", Name: "Ampara", District: "Ampara", Latitude: 7.2969, Longitude: 81.6681, Category: "city"},

	// North Central Province
	{ID: "anuradhapura", Name: "Anuradhapura", District: "Anuradhapura", Latitude: 8.3114, Longitude: 80.4037, Category: "major"},
	{ID: "polonnaruwa", Name: "Polonnaruwa", District: "Polonnaruwa", Latitude: 7.9403, Longitude: 81.0188, Category: "city"},

	// North Western Province
	{ID: "kurunegala", Name: "Kurunegala", District: "Kurunegala", Latitude: 7.4867, Longitude: 80.3647, Category: "city"},
	{ID: "puttalam", Name: "Puttalam", District: "Puttalam", Latitude: 8.0362, Longitude: 79.8283, Category: "city"},

	// Sabaragamuwa Province
	{ID: "ratnapura", Name: "Ratnapura", District: "Ratnapura", Latitude: 6.6828, Longitude: 80.4014, Category: "city"},
	{ID: "embilipitiya", Name: "Embilipitiya", District: "Ratnapura", Latitude: 6.3431, Longitude: 80.8500, Category: "town"},

	// Uva Province
	{ID: "badulla", Name: "Badulla", District: "Badulla", Latitude: 6.9934, Longitude: 81.0550, Category: "city"},
	{ID: "monaragala", Name: "Monaragala", District: "Monaragala", Latitude: 6.8728, Longitude: 81.3506, Category: "city"},
}

func lkr(v float64) *float64 { return &v }

// Starter public charging stations along the main corridors.
var seedStations = []models.ChargingStation{
	{
		ID: "chargenet-colombo-fort", Name: "ChargeNET Colombo Fort", Operator: "ChargeNET",
		Address: "Bank of Ceylon Car Park, Colombo 01",
		Latitude: 6.9335, Longitude: 79.8440,
		ConnectorTypes: []string{"CCS2", "CHAdeMO"}, PowerOutputKw: 60, ChargingType: "DC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking"},
	},
	{
		ID: "chargenet-kadawatha", Name: "ChargeNET Kadawatha", Operator: "ChargeNET",
		Address: "Kandy Road, Kadawatha",
		Latitude: 7.0011, Longitude: 79.9519,
		ConnectorTypes: []string{"CCS2"}, PowerOutputKw: 50, ChargingType: "DC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking", "cafe"},
	},
	{
		ID: "chargenet-kegalle", Name: "ChargeNET Kegalle", Operator: "ChargeNET",
		Address: "Main Street, Kegalle",
		Latitude: 7.2513, Longitude: 80.3464,
		ConnectorTypes: []string{"CCS2", "Type 2"}, PowerOutputKw: 50, ChargingType: "Both",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking", "restroom"},
	},
	{
		ID: "chargenet-kandy", Name: "ChargeNET Kandy City Centre", Operator: "ChargeNET",
		Address: "Dalada Veediya, Kandy",
		Latitude: 7.2932, Longitude: 80.6350,
		ConnectorTypes: []string{"CCS2", "CHAdeMO", "Type 2"}, PowerOutputKw: 60, ChargingType: "Both",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking", "restroom", "cafe"},
	},
	{
		ID: "ceb-kalutara", Name: "CEB Charging Point Kalutara", Operator: "CEB",
		Address: "Galle Road, Kalutara",
		Latitude: 6.5854, Longitude: 79.9607,
		ConnectorTypes: []string{"Type 2"}, PowerOutputKw: 22, ChargingType: "AC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(35),
	},
	{
		ID: "chargenet-hikkaduwa", Name: "ChargeNET Hikkaduwa", Operator: "ChargeNET",
		Address: "Galle Road, Hikkaduwa",
		Latitude: 6.1395, Longitude: 80.1063,
		ConnectorTypes: []string{"CCS2"}, PowerOutputKw: 50, ChargingType: "DC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking"},
	},
	{
		ID: "chargenet-galle", Name: "ChargeNET Galle Fort", Operator: "ChargeNET",
		Address: "Church Street, Galle Fort",
		Latitude: 6.0273, Longitude: 80.2170,
		ConnectorTypes: []string{"CCS2", "CHAdeMO"}, PowerOutputKw: 60, ChargingType: "DC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking", "cafe"},
	},
	{
		ID: "ceb-kurunegala", Name: "CEB Charging Point Kurunegala", Operator: "CEB",
		Address: "Colombo Road, Kurunegala",
		Latitude: 7.4832, Longitude: 80.3602,
		ConnectorTypes: []string{"Type 2", "CCS2"}, PowerOutputKw: 25, ChargingType: "Both",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(35),
	},
	{
		ID: "chargenet-anuradhapura", Name: "ChargeNET Anuradhapura", Operator: "ChargeNET",
		Address: "Maithripala Senanayake Mawatha, Anuradhapura",
		Latitude: 8.3351, Longitude: 80.4108,
		ConnectorTypes: []string{"CCS2"}, PowerOutputKw: 50, ChargingType: "DC",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
		Amenities: []string{"parking", "restroom"},
	},
	{
		ID: "chargenet-nuwara-eliya", Name: "ChargeNET Nuwara Eliya", Operator: "ChargeNET",
		Address: "Queen Elizabeth Drive, Nuwara Eliya",
		Latitude: 6.9687, Longitude: 80.7719,
		ConnectorTypes: []string{"CCS2", "Type 2"}, PowerOutputKw: 50, ChargingType: "Both",
		Status: models.StationAvailable, IsPublic: true, CostPerKwh: lkr(45),
	},
}
