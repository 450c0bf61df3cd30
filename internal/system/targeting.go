// internal/system/targeting.go
package system

import (
	"math"

	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/types"
	"go-ninja-idle/internal/utils"
)

// FindClosestEnemy возвращает ближайшего к точке врага и расстояние до него.
// При равных расстояниях побеждает первый встреченный в порядке обхода —
// порядок намеренно не специфицирован, это не точностная метрика.
// Возвращает ok=false на пустом множестве врагов.
func FindClosestEnemy(ecs *entity.ECS, x, y float64) (types.EntityID, float64, bool) {
	var closest types.EntityID
	minDistance := math.MaxFloat64
	found := false
	for id := range ecs.Enemies {
		pos, hasPos := ecs.Positions[id]
		if !hasPos {
			continue
		}
		distance := utils.Distance(x, y, pos.X, pos.Y)
		if distance < minDistance {
			minDistance = distance
			closest = id
			found = true
		}
	}
	if !found {
		return 0, 0, false
	}
	return closest, minDistance, true
}
