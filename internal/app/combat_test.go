// internal/app/combat_test.go
package app

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/stats"
	"go-ninja-idle/internal/utils"
)

func newTestCombat() (*Combat, *stats.Ninja) {
	dispatcher := event.NewDispatcher()
	ninja := stats.NewNinja(dispatcher)
	rng := utils.NewPRNGService(7)
	return NewCombat(defs.DefaultLibrary(), "ZONE_FOREST", ninja, dispatcher, rng, zerolog.Nop()), ninja
}

func TestNewCombatPublishesInitialSnapshot(t *testing.T) {
	c, _ := newTestCombat()

	snap := c.Snapshot()
	require.NotNil(t, snap)
	assert.False(t, snap.InCombat)
	assert.Empty(t, snap.Enemies)
	assert.Equal(t, float64((config.ScreenWidth-config.NinjaWidth)/2), snap.Ninja.X)
	assert.Equal(t, config.BaseNinjaHealth, snap.Ninja.Health)
	assert.Len(t, snap.Abilities, 3)
	assert.Equal(t, "ZONE_FOREST", snap.Progress.ZoneID)
	assert.Equal(t, 1, snap.Progress.Level)
	assert.Equal(t, 10, snap.Progress.Required)
}

func TestAbilitySlotsFollowLoadedLibrary(t *testing.T) {
	dispatcher := event.NewDispatcher()
	ninja := stats.NewNinja(dispatcher)
	lib := defs.DefaultLibrary()
	// Пользовательский abilities.json со своими ID: слоты должны
	// собраться из него, а не из встроенного набора.
	lib.Abilities = map[string]defs.AbilityDefinition{
		"ABILITY_SMOKE": {ID: "ABILITY_SMOKE", Cooldown: 8, EnergyCost: 30, Heal: 20},
		"ABILITY_KUNAI": {ID: "ABILITY_KUNAI", Damage: 9, Cooldown: 0.6, FlightDuration: 0.3, Offensive: true, AutoCast: true},
	}
	c := NewCombat(lib, "ZONE_FOREST", ninja, dispatcher, utils.NewPRNGService(7), zerolog.Nop())

	snap := c.Snapshot()
	require.Len(t, snap.Abilities, 2)
	assert.Equal(t, "ABILITY_KUNAI", snap.Abilities[0].AbilityID, "автокаст занимает первый слот")
	assert.Equal(t, "ABILITY_SMOKE", snap.Abilities[1].AbilityID)
}

func TestDefaultAbilitySlotOrder(t *testing.T) {
	c, _ := newTestCombat()

	snap := c.Snapshot()
	require.Len(t, snap.Abilities, 3)
	assert.Equal(t, "ABILITY_SHURIKEN", snap.Abilities[0].AbilityID)
	assert.Equal(t, "ABILITY_FIREBALL", snap.Abilities[1].AbilityID)
	assert.Equal(t, "ABILITY_HEAL", snap.Abilities[2].AbilityID)
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	c, _ := newTestCombat()

	c.Start()
	c.Start()
	assert.True(t, c.IsRunning())

	c.Stop()
	c.Stop()
	assert.False(t, c.IsRunning())
}

func TestStopClearsTransientsRetainsProgress(t *testing.T) {
	c, _ := newTestCombat()
	c.RestoreProgress(4, 3)

	c.Start()
	time.Sleep(5 * config.LogicTickInterval)
	c.Stop()

	snap := c.Snapshot()
	assert.False(t, snap.InCombat)
	assert.Empty(t, snap.Enemies, "враги не переживают остановку боя")
	assert.Empty(t, snap.Projectiles)
	assert.Equal(t, 4, snap.Progress.Level, "прогресс зоны переживает остановку")
}

func TestIntentsAppliedAtTickBoundary(t *testing.T) {
	c, _ := newTestCombat()

	c.SetManualControlActive(true)
	c.SetManualDirection(1, 0)
	assert.False(t, c.ecs.Player.ManualControl, "намерение не действует до границы тика")

	startX := c.Snapshot().Ninja.X
	c.tick()

	assert.True(t, c.ecs.Player.ManualControl)
	assert.Greater(t, c.Snapshot().Ninja.X, startX)
}

func TestCastIntentForInvalidSlotIgnored(t *testing.T) {
	c, _ := newTestCombat()

	assert.NotPanics(t, func() {
		c.CastAbility(-1)
		c.CastAbility(99)
		c.tick()
	})
}

func TestEquipIntentChangesEffectiveStats(t *testing.T) {
	c, _ := newTestCombat()

	c.EquipItem(stats.ItemBonus{ItemID: "ITEM_KATANA", Attack: 5})
	c.tick()
	assert.Equal(t, config.BaseNinjaAttack+5, c.Snapshot().Ninja.Attack)

	c.UnequipItem("ITEM_KATANA")
	c.tick()
	assert.Equal(t, config.BaseNinjaAttack, c.Snapshot().Ninja.Attack)
}

func TestSetPositionClampedToPlayfield(t *testing.T) {
	c, _ := newTestCombat()

	c.UpdateNinjaPosition(-50, 9999)
	c.applyIntents()

	pos := c.ecs.Positions[c.ecs.PlayerID]
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, float64(config.GameAreaHeight-config.NinjaHeight), pos.Y)
}

func TestSnapshotIsDetachedFromSimulation(t *testing.T) {
	c, _ := newTestCombat()

	c.tick()
	snap := c.Snapshot()
	tick := snap.Tick
	enemies := len(snap.Enemies)

	for i := 0; i < 10; i++ {
		c.tick()
	}

	assert.Equal(t, tick, snap.Tick, "старый снапшот не меняется задним числом")
	assert.Equal(t, enemies, len(snap.Enemies))
	assert.NotEqual(t, tick, c.Snapshot().Tick)
}

func TestAutoBattleGrantsRewards(t *testing.T) {
	c, ninja := newTestCombat()

	// Три секунды боя: автокаст сюрикена успевает убить не одного врага.
	for i := 0; i < 300; i++ {
		c.tick()
	}

	snap := c.Snapshot()
	assert.Greater(t, ninja.Gold, 0, "убийства приносят золото")
	assert.Greater(t, ninja.Experience+ninja.Level, 1, "убийства приносят опыт")
	// В тике убийства популяция может быть на единицу ниже предела:
	// спавн идёт до разрешения снарядов.
	assert.GreaterOrEqual(t, len(snap.Enemies), config.MaxActiveEnemies-1)
}

func TestSnapshotFindClosestEnemy(t *testing.T) {
	snap := &Snapshot{}
	assert.Nil(t, snap.FindClosestEnemy(0, 0))

	snap.Enemies = []EnemyView{
		{ID: 1, X: 300, Y: 300},
		{ID: 2, X: 120, Y: 100},
		{ID: 3, X: 200, Y: 200},
	}
	closest := snap.FindClosestEnemy(100, 100)
	require.NotNil(t, closest)
	assert.Equal(t, snap.Enemies[1].ID, closest.ID)
}
