// internal/system/movement.go
package system

import (
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/utils"
)

// MovementSystem обновляет позиции ниндзя и врагов.
// Два взаимоисключающих режима игрока: автопоиск ближайшего врага
// и ручное управление вектором джойстика.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.updatePlayer(deltaTime)
	s.updateEnemies(deltaTime)
}

func (s *MovementSystem) updatePlayer(deltaTime float64) {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok || s.ecs.Player == nil {
		return
	}

	if s.ecs.Player.ManualControl {
		dx, dy := utils.Normalize(s.ecs.Player.ManualDX, s.ecs.Player.ManualDY)
		pos.X += dx * config.NinjaSpeed * deltaTime
		pos.Y += dy * config.NinjaSpeed * deltaTime
	} else {
		targetID, distance, found := FindClosestEnemy(s.ecs, pos.X, pos.Y)
		// На дистанции атаки и ближе стоим на месте: можно бить без наложения.
		if found && distance > config.AttackRange {
			targetPos := s.ecs.Positions[targetID]
			dx, dy := utils.Normalize(targetPos.X-pos.X, targetPos.Y-pos.Y)
			pos.X += dx * config.NinjaSpeed * deltaTime
			pos.Y += dy * config.NinjaSpeed * deltaTime
		}
	}

	pos.X = utils.Clamp(pos.X, 0, config.ScreenWidth-config.NinjaWidth)
	pos.Y = utils.Clamp(pos.Y, 0, config.GameAreaHeight-config.NinjaHeight)
}

func (s *MovementSystem) updateEnemies(deltaTime float64) {
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}

	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}

		distance := utils.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y)
		if distance > config.ContactRange {
			dx, dy := utils.Normalize(playerPos.X-pos.X, playerPos.Y-pos.Y)
			pos.X += dx * vel.Speed * deltaTime
			pos.Y += dy * vel.Speed * deltaTime
		}

		pos.X = utils.Clamp(pos.X, 0, config.ScreenWidth-config.EnemyWidth)
		pos.Y = utils.Clamp(pos.Y, 0, config.GameAreaHeight-config.EnemyHeight)
	}
}
