// internal/system/contact.go
package system

import (
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/utils"
)

// EnemyAttackInterval — пауза между ударами одного врага по ниндзя, секунды.
const EnemyAttackInterval = 1.0

// ContactSystem наносит ниндзя урон от врагов в ближнем бою.
// Смерть ниндзя не фатальна для цикла: здоровье восстанавливается,
// позиция сбрасывается в центр поля, даётся короткая неуязвимость.
type ContactSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewContactSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ContactSystem {
	return &ContactSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *ContactSystem) Update(deltaTime float64) {
	player := s.ecs.Player
	playerPos, hasPos := s.ecs.Positions[s.ecs.PlayerID]
	if player == nil || !hasPos {
		return
	}

	if player.InvulnerableFor > 0 {
		player.InvulnerableFor -= deltaTime
		if player.InvulnerableFor < 0 {
			player.InvulnerableFor = 0
		}
	}

	for id, enemy := range s.ecs.Enemies {
		if enemy.AttackCooldown > 0 {
			enemy.AttackCooldown -= deltaTime
		}

		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if utils.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y) > config.ContactRange {
			continue
		}
		if enemy.AttackCooldown > 0 || player.InvulnerableFor > 0 {
			continue
		}

		enemy.AttackCooldown = EnemyAttackInterval
		ApplyDamage(s.ecs, s.ecs.PlayerID, enemy.Damage, player.Defense)

		if health, hasHealth := s.ecs.Healths[s.ecs.PlayerID]; hasHealth && health.Value <= 0 {
			s.respawnPlayer()
			return
		}
	}
}

func (s *ContactSystem) respawnPlayer() {
	health := s.ecs.Healths[s.ecs.PlayerID]
	if health != nil {
		health.Value = health.MaxValue
	}
	if pos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
		pos.X = (config.ScreenWidth - config.NinjaWidth) / 2
		pos.Y = (config.GameAreaHeight - config.NinjaHeight) / 2
	}
	s.ecs.Player.InvulnerableFor = config.RespawnInvulnerability
	s.dispatcher.Dispatch(event.Event{Type: event.NinjaDefeated})
}
