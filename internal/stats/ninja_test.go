// internal/stats/ninja_test.go
package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ninja-idle/internal/event"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func newTestNinja() (*Ninja, *recorder) {
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.RewardGranted, rec)
	dispatcher.Subscribe(event.NinjaLeveledUp, rec)
	return NewNinja(dispatcher), rec
}

func TestApplyRewardAccumulates(t *testing.T) {
	ninja, rec := newTestNinja()

	ninja.ApplyReward(8, 12)
	assert.Equal(t, 8, ninja.Gold)
	assert.Equal(t, 12, ninja.Experience)
	assert.Equal(t, 1, ninja.Level)
	require.Len(t, rec.events, 1)
	assert.Equal(t, event.RewardGranted, rec.events[0].Type)
}

func TestApplyRewardLevelsUpWithCarryover(t *testing.T) {
	ninja, rec := newTestNinja()

	// Порог первого уровня — 100: излишек переносится на следующий уровень.
	ninja.ApplyReward(0, 130)
	assert.Equal(t, 2, ninja.Level)
	assert.Equal(t, 30, ninja.Experience)

	leveled := 0
	for _, e := range rec.events {
		if e.Type == event.NinjaLeveledUp {
			leveled++
			data, ok := e.Data.(event.NinjaLeveledUpData)
			require.True(t, ok)
			assert.Equal(t, 2, data.NewLevel)
		}
	}
	assert.Equal(t, 1, leveled)
}

func TestApplyRewardChainLevelUps(t *testing.T) {
	ninja, _ := newTestNinja()

	// 100 + 200 с запасом покрывают первые два порога.
	ninja.ApplyReward(0, XPToNextLevel(1)+XPToNextLevel(2))
	assert.Equal(t, 3, ninja.Level)
	assert.Equal(t, 0, ninja.Experience)
}

func TestXPCurveGrows(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(1))
	assert.Equal(t, 200, XPToNextLevel(2))
	assert.Equal(t, 100, XPToNextLevel(0), "уровень ниже первого приводится к первому")
	for level := 1; level < 20; level++ {
		assert.Less(t, XPToNextLevel(level), XPToNextLevel(level+1))
	}
}

func TestOnEventAppliesKillReward(t *testing.T) {
	ninja, _ := newTestNinja()

	ninja.OnEvent(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Gold: 15, XP: 24},
	})
	assert.Equal(t, 15, ninja.Gold)
	assert.Equal(t, 24, ninja.Experience)

	ninja.OnEvent(event.Event{Type: event.AbilityCast})
	assert.Equal(t, 15, ninja.Gold, "чужие события не трогают прогрессию")
}

func TestEffectiveStatsIncludeLevelAndEquipment(t *testing.T) {
	ninja, _ := newTestNinja()
	ninja.Level = 5

	assert.Equal(t, ninja.BaseAttack+8, ninja.EffectiveAttack())
	assert.Equal(t, ninja.BaseDefense+2, ninja.EffectiveDefense())
	assert.Equal(t, ninja.BaseMaxHealth+40, ninja.EffectiveMaxHealth())

	ninja.Equip(ItemBonus{ItemID: "ITEM_KATANA", Attack: 5, Health: 20})
	ninja.Equip(ItemBonus{ItemID: "ITEM_CLOAK", Defense: 3})
	assert.Equal(t, ninja.BaseAttack+8+5, ninja.EffectiveAttack())
	assert.Equal(t, ninja.BaseDefense+2+3, ninja.EffectiveDefense())
	assert.Equal(t, ninja.BaseMaxHealth+40+20, ninja.EffectiveMaxHealth())
}

func TestUnequipRemovesSingleItem(t *testing.T) {
	ninja, _ := newTestNinja()
	ninja.Equip(ItemBonus{ItemID: "ITEM_KATANA", Attack: 5})
	ninja.Equip(ItemBonus{ItemID: "ITEM_CLOAK", Defense: 3})

	ninja.Unequip("ITEM_KATANA")
	assert.Equal(t, ninja.BaseAttack, ninja.EffectiveAttack())
	assert.Equal(t, ninja.BaseDefense+3, ninja.EffectiveDefense())

	ninja.Unequip("ITEM_MISSING")
	assert.Len(t, ninja.Equipment, 1)
}
