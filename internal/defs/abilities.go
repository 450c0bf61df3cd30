// internal/defs/abilities.go
package defs

// AbilityDefinition — статические данные одной способности.
// Наступательные порождают снаряд, остальные применяются к самому ниндзя.
type AbilityDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon"`
	Damage     int     `json:"damage"`
	Cooldown   float64 `json:"cooldown"`
	EnergyCost float64 `json:"energy_cost"`
	// FlightDuration — время полёта снаряда в секундах, фиксируется при касте.
	FlightDuration float64 `json:"flight_duration"`
	Offensive      bool    `json:"offensive"`
	// AutoCast — способность применяется автоматически, как базовая атака.
	AutoCast bool `json:"auto_cast"`
	// Heal — для защитных способностей: сколько здоровья восстановить.
	Heal int `json:"heal"`
}
