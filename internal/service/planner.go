package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/api/osrm"
	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/internal/planner"
	"github.com/evlanka/evlanka/internal/repository"
	"github.com/evlanka/evlanka/internal/shareurl"
	"github.com/evlanka/evlanka/pkg/geo"
)

// Caller-facing failure classes. The engines themselves never fail; these
// cover missing upstream data.
var (
	ErrLocationNotFound = errors.New("location not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrRouteUnavailable = errors.New("could not calculate route")
)

// PlanResult is everything the route planner page renders for one trip.
type PlanResult struct {
	Origin      *models.Location              `json:"origin"`
	Destination *models.Location              `json:"destination"`
	Vehicle     *models.Vehicle               `json:"vehicle"`
	Route       *models.Route                 `json:"route"`
	Analysis    planner.RangeAnalysis         `json:"analysis"`
	Stations    []planner.StationWithDistance `json:"stations"`
	ShareQuery  string                        `json:"share_query"`
}

// PlannerService orchestrates a trip plan: it resolves the locations and
// vehicle, asks the routing collaborator for a path, and runs the
// range-feasibility engine and the corridor filter over the result.
type PlannerService struct {
	logger       *zap.Logger
	locationRepo *repository.LocationRepository
	vehicleRepo  *repository.VehicleRepository
	stationRepo  *repository.StationRepository
	routing      *osrm.Client
	policy       planner.Policy
}

// NewPlannerService creates a planner service.
func NewPlannerService(
	logger *zap.Logger,
	locationRepo *repository.LocationRepository,
	vehicleRepo *repository.VehicleRepository,
	stationRepo *repository.StationRepository,
	routing *osrm.Client,
	policy planner.Policy,
) *PlannerService {
	return &PlannerService{
		logger:       logger,
		locationRepo: locationRepo,
		vehicleRepo:  vehicleRepo,
		stationRepo:  stationRepo,
		routing:      routing,
		policy:       policy,
	}
}

// Plan computes a full trip plan for the given shareable params.
func (s *PlannerService) Plan(ctx context.Context, params shareurl.PlannerParams) (*PlanResult, error) {
	origin, err := s.locationRepo.GetByID(ctx, params.OriginID)
	if err != nil {
		return nil, fmt.Errorf("%w: origin %q", ErrLocationNotFound, params.OriginID)
	}
	destination, err := s.locationRepo.GetByID(ctx, params.DestinationID)
	if err != nil {
		return nil, fmt.Errorf("%w: destination %q", ErrLocationNotFound, params.DestinationID)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, params.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrVehicleNotFound, params.VehicleID)
	}

	route, err := s.routing.Route(ctx,
		geo.Point{Lat: origin.Latitude, Lng: origin.Longitude},
		geo.Point{Lat: destination.Latitude, Lng: destination.Longitude},
	)
	if err != nil {
		s.logger.Warn("Routing collaborator failed",
			zap.String("origin", params.OriginID),
			zap.String("destination", params.DestinationID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
	}

	analysis := s.policy.AnalyzeRange(route.DistanceKm, vehicle, params.StartingCharge)

	stations, err := s.stationRepo.List(ctx, models.StationFilter{})
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	stationValues := make([]models.ChargingStation, len(stations))
	for i, st := range stations {
		stationValues[i] = *st
	}
	along := planner.FindStationsAlongRoute(route.Polyline, stationValues, s.policy.DefaultMaxDeviationKm)

	return &PlanResult{
		Origin:      origin,
		Destination: destination,
		Vehicle:     vehicle,
		Route:       route,
		Analysis:    analysis,
		Stations:    along,
		ShareQuery:  shareurl.EncodePlanner(params),
	}, nil
}
