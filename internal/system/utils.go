// internal/system/utils.go
package system

import (
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/types"
)

// ApplyDamage наносит урон сущности с учётом защиты.
// Здоровье не опускается ниже нуля; отсутствие сущности — тихий no-op.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage, defense int) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth {
		return
	}

	finalDamage := damage - defense
	// Минимальный урон 1, если начальный урон был > 0
	if finalDamage < 1 && damage > 0 {
		finalDamage = 1
	} else if finalDamage < 0 {
		finalDamage = 0
	}

	health.Value -= finalDamage
	if health.Value <= 0 {
		health.Value = 0
	}
}
