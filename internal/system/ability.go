// internal/system/ability.go
package system

import (
	"go-ninja-idle/internal/component"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
)

// AbilitySystem управляет слотами способностей: восстановление энергии,
// откат кулдаунов и касты. Наступательный каст порождает ровно один снаряд
// с зафиксированной в момент каста точкой назначения.
type AbilitySystem struct {
	ecs        *entity.ECS
	lib        *defs.Library
	dispatcher *event.Dispatcher
}

func NewAbilitySystem(ecs *entity.ECS, lib *defs.Library, dispatcher *event.Dispatcher) *AbilitySystem {
	return &AbilitySystem{
		ecs:        ecs,
		lib:        lib,
		dispatcher: dispatcher,
	}
}

func (s *AbilitySystem) Update(deltaTime float64) {
	player := s.ecs.Player
	if player == nil {
		return
	}

	player.Energy += config.EnergyRegenRate * deltaTime
	if player.Energy > config.MaxEnergy {
		player.Energy = config.MaxEnergy
	}

	// Слоты обходятся по порядку — порядок каста детерминирован.
	for slot, state := range s.ecs.AbilitySlots {
		if state.CooldownLeft > 0 {
			state.CooldownLeft -= deltaTime
			if state.CooldownLeft < 0 {
				state.CooldownLeft = 0
			}
		}

		def, ok := s.lib.Abilities[state.DefID]
		if !ok {
			state.Requested = false
			continue
		}

		wantCast := state.Requested || def.AutoCast
		state.Requested = false
		if !wantCast {
			continue
		}
		// Невалидные намерения (каст на кулдауне, нехватка энергии)
		// отклоняются молча: следующий тик попробует снова.
		if !state.Ready() || player.Energy < def.EnergyCost {
			continue
		}

		if def.Offensive {
			s.castOffensive(slot, state, def)
		} else {
			s.castSelf(slot, state, def)
		}
	}
}

func (s *AbilitySystem) castOffensive(slot int, state *component.AbilitySlot, def defs.AbilityDefinition) {
	playerPos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	targetID, _, found := FindClosestEnemy(s.ecs, playerPos.X, playerPos.Y)
	if !found {
		return
	}
	targetPos := s.ecs.Positions[targetID]

	id := s.ecs.NewEntity()
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID:  targetID,
		AbilityID: def.ID,
		Damage:    def.Damage + s.ecs.Player.Attack,
		OriginX:   playerPos.X,
		OriginY:   playerPos.Y,
		DestX:     targetPos.X,
		DestY:     targetPos.Y,
		StartedAt: s.ecs.GameTime,
		Duration:  def.FlightDuration,
	}

	s.finishCast(state, def)
	s.dispatcher.Dispatch(event.Event{
		Type: event.AbilityCast,
		Data: event.AbilityCastData{Slot: slot, AbilityID: def.ID, TargetID: targetID},
	})
}

func (s *AbilitySystem) castSelf(slot int, state *component.AbilitySlot, def defs.AbilityDefinition) {
	if def.Heal > 0 {
		if health, ok := s.ecs.Healths[s.ecs.PlayerID]; ok {
			health.Value += def.Heal
			if health.Value > health.MaxValue {
				health.Value = health.MaxValue
			}
		}
	}

	s.finishCast(state, def)
	s.dispatcher.Dispatch(event.Event{
		Type: event.AbilityCast,
		Data: event.AbilityCastData{Slot: slot, AbilityID: def.ID},
	})
}

func (s *AbilitySystem) finishCast(state *component.AbilitySlot, def defs.AbilityDefinition) {
	state.CooldownLeft = def.Cooldown
	s.ecs.Player.Energy -= def.EnergyCost
	if s.ecs.Player.Energy < 0 {
		s.ecs.Player.Energy = 0
	}
}
