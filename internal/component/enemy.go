package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID          string  // ID из enemies.json
	Damage         int     // Урон с учётом множителя зоны
	AttackCooldown float64 // Таймер до следующего удара по ниндзя
	RewardGold     int
	RewardXP       int
	Tier           int
}
