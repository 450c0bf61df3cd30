// internal/defs/zones.go
package defs

import "math"

// SpawnEntry — одна запись в таблице появления врагов.
// EnemyID — идентификатор врага, Weight — его относительный шанс.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// ZoneDefinition описывает одну зону: как растут характеристики врагов
// по уровням, сколько убийств требует уровень и кто здесь появляется.
type ZoneDefinition struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Levels              int          `json:"levels"`
	BaseRequiredKills   int          `json:"base_required_kills"`
	KillsPerLevel       int          `json:"kills_per_level"`
	EnemyMultiplierBase float64      `json:"enemy_multiplier_base"`
	EnemyMultiplierStep float64      `json:"enemy_multiplier_step"`
	XPMultiplier        float64      `json:"xp_multiplier"`
	SpawnTable          []SpawnEntry `json:"spawn_table"`
}

// RequiredKills возвращает порог убийств для уровня зоны (уровни с единицы).
func (z *ZoneDefinition) RequiredKills(level int) int {
	if level < 1 {
		level = 1
	}
	return z.BaseRequiredKills + (level-1)*z.KillsPerLevel
}

// EnemyMultiplier возвращает множитель здоровья и урона врагов на уровне.
func (z *ZoneDefinition) EnemyMultiplier(level int) float64 {
	if level < 1 {
		level = 1
	}
	m := z.EnemyMultiplierBase + float64(level-1)*z.EnemyMultiplierStep
	return math.Max(m, 1.0)
}
