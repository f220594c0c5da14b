package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/evlanka/evlanka/internal/models"
	"github.com/evlanka/evlanka/internal/repository"
	"github.com/evlanka/evlanka/internal/state"
	"github.com/evlanka/evlanka/pkg/ws"
)

var (
	ErrStationNotFound   = errors.New("station not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// StationService serves the charging-station directory and runs status
// updates through the availability state machines, broadcasting each change
// to connected clients.
type StationService struct {
	logger      *zap.Logger
	stationRepo *repository.StationRepository
	manager     *state.Manager
	hub         *ws.Hub
}

// NewStationService creates a station service. Status changes accepted by a
// machine are pushed through the hub before being persisted.
func NewStationService(logger *zap.Logger, stationRepo *repository.StationRepository, hub *ws.Hub) *StationService {
	s := &StationService{
		logger:      logger,
		stationRepo: stationRepo,
		hub:         hub,
	}
	s.manager = state.NewManager(func(stationID, from, to string) {
		logger.Info("Station status changed",
			zap.String("station_id", stationID),
			zap.String("from", from),
			zap.String("to", to))
		hub.BroadcastStationStatus(ws.StatusUpdate{StationID: stationID, From: from, To: to})
	})
	hub.SetInitDataProvider(s.initData)
	return s
}

func (s *StationService) initData() *ws.InitData {
	stations, err := s.stationRepo.List(context.Background(), models.StationFilter{})
	if err != nil {
		s.logger.Error("Failed to load stations for init payload", zap.Error(err))
		stations = nil
	}
	return &ws.InitData{
		Stations: stations,
		States:   s.manager.AllStates(),
	}
}

// List returns stations matching the filter.
func (s *StationService) List(ctx context.Context, filter models.StationFilter) ([]*models.ChargingStation, error) {
	return s.stationRepo.List(ctx, filter)
}

// Get returns one station, overlaying the live machine status when a
// machine exists for it.
func (s *StationService) Get(ctx context.Context, id string) (*models.ChargingStation, error) {
	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}
	if machine, ok := s.manager.Get(id); ok {
		station.Status = machine.CurrentStatus()
	}
	return station, nil
}

// UpdateStatus moves a station to the requested status. The transition is
// validated by the station's state machine and persisted only when it is
// legal from the current status.
func (s *StationService) UpdateStatus(ctx context.Context, id, status string) (*models.ChargingStation, error) {
	status = strings.ToLower(strings.TrimSpace(status))

	station, err := s.stationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, id)
	}

	machine := s.manager.GetOrCreate(id, station.Status)
	if machine.CurrentStatus() == status {
		station.Status = status
		return station, nil
	}
	if err := machine.TransitionTo(status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	if err := s.stationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("persist station status: %w", err)
	}
	station.Status = status
	return station, nil
}

// States returns the live availability snapshot of every tracked station.
func (s *StationService) States() map[string]state.StationState {
	return s.manager.AllStates()
}
