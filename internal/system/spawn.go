// internal/system/spawn.go
package system

import (
	"math"

	"go-ninja-idle/internal/component"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/utils"
)

// SpawnSystem пополняет популяцию врагов до целевой численности.
// Здоровье и урон масштабируются множителем активного уровня зоны.
type SpawnSystem struct {
	ecs      *entity.ECS
	lib      *defs.Library
	progress *ProgressTracker
	rng      *utils.PRNGService
}

func NewSpawnSystem(ecs *entity.ECS, lib *defs.Library, progress *ProgressTracker, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		ecs:      ecs,
		lib:      lib,
		progress: progress,
		rng:      rng,
	}
}

// Update досоздаёт врагов до предела. Если популяция уже на пределе
// или спавнить некого — тихий no-op, ошибок здесь не бывает.
func (s *SpawnSystem) Update() {
	for len(s.ecs.Enemies) < config.MaxActiveEnemies {
		if !s.spawnEnemy() {
			return
		}
	}
}

// spawnEnemy создаёт одного врага. Возвращает false, если библиотека
// пуста и создать никого нельзя: вызывающий цикл обязан остановиться.
func (s *SpawnSystem) spawnEnemy() bool {
	zone := s.progress.Zone()
	defID := s.rng.ChooseWeighted(zone.SpawnTable)
	def, ok := s.lib.Enemies[defID]
	if !ok {
		// Битая таблица появления не должна ронять цикл: берём любого врага.
		for _, fallback := range s.lib.Enemies {
			def = fallback
			break
		}
		if def.ID == "" {
			return false
		}
	}

	multiplier := zone.EnemyMultiplier(s.progress.Level())
	health := int(math.Round(float64(def.Health) * multiplier))
	damage := int(math.Round(float64(def.Damage) * multiplier))

	x := config.SpawnMargin + s.rng.Float64()*(config.ScreenWidth-config.EnemyWidth-2*config.SpawnMargin)
	y := config.SpawnMargin + s.rng.Float64()*(config.GameAreaHeight-config.EnemyHeight-2*config.SpawnMargin)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Healths[id] = &component.Health{Value: health, MaxValue: health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      def.ID,
		Damage:     damage,
		RewardGold: def.Reward.Gold,
		RewardXP:   def.Reward.XP,
		Tier:       def.Tier,
	}
	return true
}
