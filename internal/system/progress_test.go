// internal/system/progress_test.go
package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ninja-idle/internal/event"
)

func newProgressFixture(level int) (*ProgressTracker, *eventRecorder) {
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.LevelCompleted, recorder)
	return NewProgressTracker(testZone(), level, dispatcher), recorder
}

func TestThresholdAdvancesExactlyOneLevel(t *testing.T) {
	tracker, recorder := newProgressFixture(1)
	required := tracker.RequiredKills()
	require.Equal(t, 10, required)

	for i := 0; i < required-1; i++ {
		tracker.RecordKill()
	}
	assert.Equal(t, 1, tracker.Level())
	assert.Equal(t, required-1, tracker.Kills())

	tracker.RecordKill()
	assert.Equal(t, 2, tracker.Level())
	assert.Equal(t, 0, tracker.Kills(), "счётчик обнуляется при переходе")
	assert.Equal(t, 15, tracker.RequiredKills(), "порог второго уровня выше")
	require.Equal(t, 1, recorder.count(event.LevelCompleted))

	data, ok := recorder.events[0].Data.(event.LevelCompletedData)
	require.True(t, ok)
	assert.Equal(t, "ZONE_FOREST", data.ZoneID)
	assert.Equal(t, 2, data.NewLevel)
}

func TestFinalLevelCapsAtThreshold(t *testing.T) {
	tracker, recorder := newProgressFixture(10)
	required := tracker.RequiredKills()

	for i := 0; i < required+25; i++ {
		tracker.RecordKill()
	}
	assert.Equal(t, 10, tracker.Level())
	assert.Equal(t, required, tracker.Kills(), "на последнем уровне счётчик упирается в порог")
	assert.Equal(t, 0, recorder.count(event.LevelCompleted))
}

func TestNewTrackerClampsLevel(t *testing.T) {
	dispatcher := event.NewDispatcher()
	assert.Equal(t, 1, NewProgressTracker(testZone(), 0, dispatcher).Level())
	assert.Equal(t, 10, NewProgressTracker(testZone(), 99, dispatcher).Level())
}

func TestRestoreClampsSavedProgress(t *testing.T) {
	tracker, _ := newProgressFixture(1)

	tracker.Restore(3, 7)
	assert.Equal(t, 3, tracker.Level())
	assert.Equal(t, 7, tracker.Kills())

	tracker.Restore(99, 999)
	assert.Equal(t, 10, tracker.Level())
	assert.Equal(t, tracker.RequiredKills(), tracker.Kills())
}
