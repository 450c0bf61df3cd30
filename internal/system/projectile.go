// internal/system/projectile.go
package system

import (
	"go-ninja-idle/internal/component"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/types"
)

// ProjectileSystem разрешает прибытие снарядов и наносит урон.
// Живость цели проверяется в момент прибытия, а не каста: снаряд,
// летящий в уже умершего врага, разрешается как no-op. Убийство
// засчитывается и награждается ровно один раз — враг удаляется из
// симуляции в том же тике, в котором его здоровье дошло до нуля.
type ProjectileSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	progress   *ProgressTracker
}

func NewProjectileSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, progress *ProgressTracker) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		progress:   progress,
	}
}

func (s *ProjectileSystem) Update() {
	for id, proj := range s.ecs.Projectiles {
		if proj.Progress(s.ecs.GameTime) < 1.0 {
			continue
		}
		s.resolveHit(proj)
		s.ecs.RemoveProjectile(id)
	}
}

func (s *ProjectileSystem) resolveHit(proj *component.Projectile) {
	enemy, alive := s.ecs.Enemies[proj.TargetID]
	if !alive {
		// Цель умерла от другого источника, пока снаряд летел.
		return
	}

	ApplyDamage(s.ecs, proj.TargetID, proj.Damage, 0)

	health, hasHealth := s.ecs.Healths[proj.TargetID]
	if hasHealth && health.Value > 0 {
		return
	}
	s.killEnemy(proj.TargetID, enemy)
}

func (s *ProjectileSystem) killEnemy(id types.EntityID, enemy *component.Enemy) {
	zone := s.progress.Zone()
	xp := int(float64(enemy.RewardXP) * zone.XPMultiplier)

	s.ecs.RemoveEnemy(id)
	s.progress.RecordKill()
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{
			EnemyID: id,
			DefID:   enemy.DefID,
			ZoneID:  zone.ID,
			Gold:    enemy.RewardGold,
			XP:      xp,
		},
	})
}
