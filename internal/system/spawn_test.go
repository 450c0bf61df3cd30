// internal/system/spawn_test.go
package system

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/utils"
)

func newSpawnFixture(level int) (*SpawnSystem, *ProgressTracker, *entity.ECS) {
	ecs := newTestECS()
	lib := testLibrary()
	dispatcher := event.NewDispatcher()
	progress := NewProgressTracker(testZone(), level, dispatcher)
	rng := utils.NewPRNGService(42)
	return NewSpawnSystem(ecs, lib, progress, rng), progress, ecs
}

func TestSpawnTopsUpToCap(t *testing.T) {
	ss, _, ecs := newSpawnFixture(1)

	ss.Update()
	assert.Len(t, ecs.Enemies, config.MaxActiveEnemies)
}

func TestSpawnNoOpAtCap(t *testing.T) {
	ss, _, ecs := newSpawnFixture(1)

	ss.Update()
	before := len(ecs.Positions)

	ss.Update()
	assert.Len(t, ecs.Enemies, config.MaxActiveEnemies)
	assert.Equal(t, before, len(ecs.Positions), "cap reached, no new entities expected")
}

func TestSpawnScalesWithZoneLevel(t *testing.T) {
	ss, progress, ecs := newSpawnFixture(5)
	lib := testLibrary()

	ss.Update()
	zone := progress.Zone()
	multiplier := zone.EnemyMultiplier(5)
	require.Greater(t, multiplier, 1.0)

	for id, enemy := range ecs.Enemies {
		base := lib.Enemies[enemy.DefID]
		expectedHealth := int(math.Round(float64(base.Health) * multiplier))
		expectedDamage := int(math.Round(float64(base.Damage) * multiplier))
		assert.Equal(t, expectedHealth, ecs.Healths[id].MaxValue)
		assert.Equal(t, expectedDamage, enemy.Damage)
	}
}

func TestSpawnEmptyLibraryIsNoOp(t *testing.T) {
	ecs := newTestECS()
	lib := testLibrary()
	lib.Enemies = map[string]defs.EnemyDefinition{}
	progress := NewProgressTracker(testZone(), 1, event.NewDispatcher())
	ss := NewSpawnSystem(ecs, lib, progress, utils.NewPRNGService(42))

	// enemies.json с пустым списком — валидная конфигурация; досоздание
	// обязано вернуться, а не крутиться до бесконечности.
	done := make(chan struct{})
	go func() {
		ss.Update()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Update не завершился при пустой библиотеке врагов")
	}
	assert.Empty(t, ecs.Enemies)
}

func TestSpawnPositionsInsidePlayfield(t *testing.T) {
	ss, _, ecs := newSpawnFixture(1)

	ss.Update()
	for id := range ecs.Enemies {
		pos := ecs.Positions[id]
		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.LessOrEqual(t, pos.X, float64(config.ScreenWidth-config.EnemyWidth))
		assert.GreaterOrEqual(t, pos.Y, 0.0)
		assert.LessOrEqual(t, pos.Y, float64(config.GameAreaHeight-config.EnemyHeight))
	}
}
