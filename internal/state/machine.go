// Package state tracks charging-station availability with a per-station
// state machine, so status updates from operators can only follow valid
// transitions.
package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/looplab/fsm"

	"github.com/evlanka/evlanka/internal/models"
)

// Status change events.
const (
	EventPlugIn           = "plug_in"
	EventFree             = "free"
	EventStartMaintenance = "start_maintenance"
	EventGoOffline        = "go_offline"
	EventRestore          = "restore"
)

// StationState is a station's current availability snapshot.
type StationState struct {
	StationID string    `json:"station_id"`
	Status    string    `json:"status"`
	Since     time.Time `json:"since"`
}

// Machine is the availability state machine for one station.
type Machine struct {
	mu        sync.RWMutex
	stationID string
	fsm       *fsm.FSM
	since     time.Time
	onChange  func(stationID, from, to string)
}

// NewMachine creates a machine starting in initialStatus. An empty initial
// status defaults to available.
func NewMachine(stationID, initialStatus string, onChange func(stationID, from, to string)) *Machine {
	if initialStatus == "" {
		initialStatus = models.StationAvailable
	}

	m := &Machine{
		stationID: stationID,
		since:     time.Now(),
		onChange:  onChange,
	}

	m.fsm = fsm.NewFSM(
		initialStatus,
		fsm.Events{
			{Name: EventPlugIn, Src: []string{models.StationAvailable}, Dst: models.StationOccupied},
			{Name: EventFree, Src: []string{models.StationOccupied}, Dst: models.StationAvailable},

			// Maintenance and outages can interrupt anything.
			{Name: EventStartMaintenance, Src: []string{models.StationAvailable, models.StationOccupied, models.StationOffline}, Dst: models.StationMaintenance},
			{Name: EventGoOffline, Src: []string{models.StationAvailable, models.StationOccupied, models.StationMaintenance}, Dst: models.StationOffline},

			{Name: EventRestore, Src: []string{models.StationMaintenance, models.StationOffline}, Dst: models.StationAvailable},
		},
		fsm.Callbacks{
			"after_event": func(ctx context.Context, e *fsm.Event) {
				if m.onChange != nil && e.Src != e.Dst {
					m.onChange(m.stationID, e.Src, e.Dst)
				}
			},
		},
	)

	return m
}

// CurrentStatus returns the machine's current status.
func (m *Machine) CurrentStatus() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fsm.Current()
}

// State returns the full availability snapshot.
func (m *Machine) State() StationState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return StationState{
		StationID: m.stationID,
		Status:    m.fsm.Current(),
		Since:     m.since,
	}
}

// TransitionTo moves the machine to the requested status, picking the event
// that leads there. Returns an error when no valid transition exists from
// the current status.
func (m *Machine) TransitionTo(status string) error {
	event, err := eventFor(status)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Freeing an occupied station and restoring a downed one both target
	// "available"; pick whichever applies.
	if status == models.StationAvailable && m.fsm.Current() == models.StationOccupied {
		event = EventFree
	}

	if err := m.fsm.Event(context.Background(), event); err != nil {
		return fmt.Errorf("transition to %s: %w", status, err)
	}
	m.since = time.Now()
	return nil
}

func eventFor(status string) (string, error) {
	switch status {
	case models.StationAvailable:
		return EventRestore, nil
	case models.StationOccupied:
		return EventPlugIn, nil
	case models.StationMaintenance:
		return EventStartMaintenance, nil
	case models.StationOffline:
		return EventGoOffline, nil
	default:
		return "", fmt.Errorf("unknown station status %q", status)
	}
}

// Manager holds one machine per station.
type Manager struct {
	mu       sync.RWMutex
	machines map[string]*Machine
	onChange func(stationID, from, to string)
}

// NewManager creates a manager. onChange fires after every status change.
func NewManager(onChange func(stationID, from, to string)) *Manager {
	return &Manager{
		machines: make(map[string]*Machine),
		onChange: onChange,
	}
}

// GetOrCreate returns the station's machine, creating it in initialStatus
// on first use.
func (m *Manager) GetOrCreate(stationID, initialStatus string) *Machine {
	m.mu.Lock()
	defer m.mu.Unlock()

	if machine, ok := m.machines[stationID]; ok {
		return machine
	}

	machine := NewMachine(stationID, initialStatus, m.onChange)
	m.machines[stationID] = machine
	return machine
}

// Get returns the station's machine if one exists.
func (m *Manager) Get(stationID string) (*Machine, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	machine, ok := m.machines[stationID]
	return machine, ok
}

// AllStates returns a snapshot of every tracked station.
func (m *Manager) AllStates() map[string]StationState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	states := make(map[string]StationState, len(m.machines))
	for id, machine := range m.machines {
		states[id] = machine.State()
	}
	return states
}
