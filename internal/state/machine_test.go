package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evlanka/evlanka/internal/models"
)

func TestMachineTransitions(t *testing.T) {
	t.Run("defaults to available", func(t *testing.T) {
		m := NewMachine("s1", "", nil)
		assert.Equal(t, models.StationAvailable, m.CurrentStatus())
	})

	t.Run("plug in and free", func(t *testing.T) {
		m := NewMachine("s1", models.StationAvailable, nil)

		require.NoError(t, m.TransitionTo(models.StationOccupied))
		assert.Equal(t, models.StationOccupied, m.CurrentStatus())

		require.NoError(t, m.TransitionTo(models.StationAvailable))
		assert.Equal(t, models.StationAvailable, m.CurrentStatus())
	})

	t.Run("maintenance interrupts an occupied station", func(t *testing.T) {
		m := NewMachine("s1", models.StationOccupied, nil)

		require.NoError(t, m.TransitionTo(models.StationMaintenance))
		assert.Equal(t, models.StationMaintenance, m.CurrentStatus())
	})

	t.Run("maintenance cannot go straight to occupied", func(t *testing.T) {
		m := NewMachine("s1", models.StationMaintenance, nil)

		assert.Error(t, m.TransitionTo(models.StationOccupied))
		assert.Equal(t, models.StationMaintenance, m.CurrentStatus())
	})

	t.Run("offline restores to available", func(t *testing.T) {
		m := NewMachine("s1", models.StationOffline, nil)

		require.NoError(t, m.TransitionTo(models.StationAvailable))
		assert.Equal(t, models.StationAvailable, m.CurrentStatus())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		m := NewMachine("s1", models.StationAvailable, nil)
		assert.Error(t, m.TransitionTo("exploded"))
	})

	t.Run("change callback reports the edge", func(t *testing.T) {
		var gotID, gotFrom, gotTo string
		m := NewMachine("s1", models.StationAvailable, func(stationID, from, to string) {
			gotID, gotFrom, gotTo = stationID, from, to
		})

		require.NoError(t, m.TransitionTo(models.StationOccupied))
		assert.Equal(t, "s1", gotID)
		assert.Equal(t, models.StationAvailable, gotFrom)
		assert.Equal(t, models.StationOccupied, gotTo)
	})
}

func TestMachineState(t *testing.T) {
	m := NewMachine("s1", models.StationOccupied, nil)

	state := m.State()
	assert.Equal(t, "s1", state.StationID)
	assert.Equal(t, models.StationOccupied, state.Status)
	assert.False(t, state.Since.IsZero())
}

func TestManager(t *testing.T) {
	manager := NewManager(nil)

	m1 := manager.GetOrCreate("s1", models.StationAvailable)
	m2 := manager.GetOrCreate("s1", models.StationOffline)
	assert.Same(t, m1, m2, "second create must return the existing machine")

	_, ok := manager.Get("s2")
	assert.False(t, ok)

	manager.GetOrCreate("s2", models.StationOccupied)

	states := manager.AllStates()
	require.Len(t, states, 2)
	assert.Equal(t, models.StationAvailable, states["s1"].Status)
	assert.Equal(t, models.StationOccupied, states["s2"].Status)
}
