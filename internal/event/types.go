// internal/event/types.go
package event

import "go-ninja-idle/internal/types"

const (
	EnemyKilled    EventType = "EnemyKilled"    // Враг убит, начислена награда
	AbilityCast    EventType = "AbilityCast"    // Способность применена
	RewardGranted  EventType = "RewardGranted"  // Золото и опыт зачислены ниндзя
	LevelCompleted EventType = "LevelCompleted" // Уровень зоны пройден
	NinjaLeveledUp EventType = "NinjaLeveledUp" // Ниндзя получил новый уровень
	NinjaDefeated  EventType = "NinjaDefeated"  // Здоровье ниндзя упало до нуля
	CombatStarted  EventType = "CombatStarted"
	CombatStopped  EventType = "CombatStopped"
)

// EnemyKilledData — данные события EnemyKilled.
type EnemyKilledData struct {
	EnemyID types.EntityID
	DefID   string
	ZoneID  string
	Gold    int
	XP      int
}

// AbilityCastData — данные события AbilityCast.
type AbilityCastData struct {
	Slot      int
	AbilityID string
	TargetID  types.EntityID // ноль для способностей на себя
}

// RewardGrantedData — данные события RewardGranted.
type RewardGrantedData struct {
	Gold int
	XP   int
}

// LevelCompletedData — данные события LevelCompleted.
type LevelCompletedData struct {
	ZoneID   string
	NewLevel int
}

// NinjaLeveledUpData — данные события NinjaLeveledUp.
type NinjaLeveledUpData struct {
	NewLevel int
}
