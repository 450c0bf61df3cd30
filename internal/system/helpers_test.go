// internal/system/helpers_test.go
package system

import (
	"go-ninja-idle/internal/component"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/types"
)

// newTestECS собирает мир с ниндзя в точке (100, 100) без врагов.
func newTestECS() *entity.ECS {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.PlayerID = id
	ecs.Positions[id] = &component.Position{X: 100, Y: 100}
	ecs.Healths[id] = &component.Health{Value: config.BaseNinjaHealth, MaxValue: config.BaseNinjaHealth}
	ecs.Player = &component.PlayerState{Energy: config.MaxEnergy}
	return ecs
}

// spawnTestEnemy добавляет врага с заданной позицией и здоровьем.
func spawnTestEnemy(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: 50}
	ecs.Healths[id] = &component.Health{Value: health, MaxValue: health}
	ecs.Enemies[id] = &component.Enemy{
		DefID:      "ENEMY_THUG",
		Damage:     5,
		RewardGold: 8,
		RewardXP:   12,
	}
	return id
}

func testLibrary() *defs.Library {
	return defs.DefaultLibrary()
}

func testZone() defs.ZoneDefinition {
	return testLibrary().Zones["ZONE_FOREST"]
}

// eventRecorder копит события для проверок.
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
