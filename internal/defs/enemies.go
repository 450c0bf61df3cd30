// internal/defs/enemies.go
package defs

// Reward — золото и опыт за убийство до применения множителей зоны.
type Reward struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}

// EnemyDefinition — статические данные одного типа врага.
// Здоровье и урон базовые; уровень активной зоны их масштабирует.
type EnemyDefinition struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Tier   int     `json:"tier"`
	Health int     `json:"health"`
	Damage int     `json:"damage"`
	Speed  float64 `json:"speed"`
	Reward Reward  `json:"reward"`
}
