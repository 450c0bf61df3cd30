package component

import "go-ninja-idle/internal/types"

// Projectile представляет летящий снаряд.
// Точка назначения фиксируется в момент каста и больше не обновляется;
// урон при прибытии применяется к исходной цели, если она ещё жива.
type Projectile struct {
	TargetID  types.EntityID
	AbilityID string
	Damage    int
	OriginX   float64
	OriginY   float64
	DestX     float64
	DestY     float64
	StartedAt float64 // игровое время каста, секунды
	Duration  float64 // время полёта, секунды
}

// Progress возвращает долю пройденного пути в [0, 1+) для игрового времени now.
func (p *Projectile) Progress(now float64) float64 {
	if p.Duration <= 0 {
		return 1.0
	}
	return (now - p.StartedAt) / p.Duration
}
