// internal/app/snapshot.go
package app

import (
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/stats"
	"go-ninja-idle/internal/system"
	"go-ninja-idle/internal/types"
)

// Snapshot — неизменяемый срез боевого состояния, публикуемый раз в тик.
// Читатели (рендер, сохранение, трансляция) никогда не получают живых
// ссылок на сущности симуляции — только эти копии.
type Snapshot struct {
	Tick     uint64  `json:"tick"`
	InCombat bool    `json:"inCombat"`
	GameTime float64 `json:"gameTime"`

	Ninja       NinjaView        `json:"ninja"`
	Enemies     []EnemyView      `json:"enemies,omitempty"`
	Projectiles []ProjectileView `json:"projectiles,omitempty"`
	Abilities   []AbilityView    `json:"abilities,omitempty"`
	Progress    ProgressView     `json:"progress"`
}

// NinjaView — проекция состояния ниндзя и его прогрессии.
type NinjaView struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Health    int     `json:"health"`
	MaxHealth int     `json:"maxHealth"`
	Attack    int     `json:"attack"`
	Defense   int     `json:"defense"`
	Energy    float64 `json:"energy"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
	XPToNext   int `json:"xpToNext"`
	Gold       int `json:"gold"`
	Gems       int `json:"gems"`
}

// EnemyView — проекция врага для слоя отображения.
type EnemyView struct {
	ID        types.EntityID `json:"id"`
	DefID     string         `json:"defId"`
	Tier      int            `json:"tier"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"maxHealth"`
}

// ProjectileView — проекция снаряда. Progress зафиксирован на момент
// снапшота; визуальный слой интерполирует между снапшотами сам.
type ProjectileView struct {
	ID        types.EntityID `json:"id"`
	AbilityID string         `json:"abilityId"`
	OriginX   float64        `json:"originX"`
	OriginY   float64        `json:"originY"`
	DestX     float64        `json:"destX"`
	DestY     float64        `json:"destY"`
	Progress  float64        `json:"progress"`
	Duration  float64        `json:"duration"`
}

// AbilityView — состояние слота способности для кнопок HUD.
type AbilityView struct {
	Slot         int     `json:"slot"`
	AbilityID    string  `json:"abilityId"`
	CooldownLeft float64 `json:"cooldownLeft"`
	Cooldown     float64 `json:"cooldown"`
}

// ProgressView — прогресс зоны с числом убийств, ограниченным порогом.
type ProgressView struct {
	ZoneID   string `json:"zoneId"`
	Level    int    `json:"level"`
	Kills    int    `json:"kills"`
	Required int    `json:"required"`
}

func buildSnapshot(ecs *entity.ECS, ninja *stats.Ninja, progress *system.ProgressTracker, tick uint64, inCombat bool, cooldowns map[string]float64) *Snapshot {
	snap := &Snapshot{
		Tick:     tick,
		InCombat: inCombat,
		GameTime: ecs.GameTime,
		Progress: ProgressView{
			ZoneID:   progress.Zone().ID,
			Level:    progress.Level(),
			Kills:    progress.Kills(),
			Required: progress.RequiredKills(),
		},
	}

	if pos, ok := ecs.Positions[ecs.PlayerID]; ok {
		snap.Ninja.X = pos.X
		snap.Ninja.Y = pos.Y
	}
	if health, ok := ecs.Healths[ecs.PlayerID]; ok {
		snap.Ninja.Health = health.Value
		snap.Ninja.MaxHealth = health.MaxValue
	}
	if ecs.Player != nil {
		snap.Ninja.Attack = ecs.Player.Attack
		snap.Ninja.Defense = ecs.Player.Defense
		snap.Ninja.Energy = ecs.Player.Energy
	}
	snap.Ninja.Level = ninja.Level
	snap.Ninja.Experience = ninja.Experience
	snap.Ninja.XPToNext = stats.XPToNextLevel(ninja.Level)
	snap.Ninja.Gold = ninja.Gold
	snap.Ninja.Gems = ninja.Gems

	snap.Enemies = make([]EnemyView, 0, len(ecs.Enemies))
	for id, enemy := range ecs.Enemies {
		view := EnemyView{ID: id, DefID: enemy.DefID, Tier: enemy.Tier}
		if pos, ok := ecs.Positions[id]; ok {
			view.X = pos.X
			view.Y = pos.Y
		}
		if health, ok := ecs.Healths[id]; ok {
			view.Health = health.Value
			view.MaxHealth = health.MaxValue
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	snap.Projectiles = make([]ProjectileView, 0, len(ecs.Projectiles))
	for id, proj := range ecs.Projectiles {
		progress := proj.Progress(ecs.GameTime)
		if progress > 1 {
			progress = 1
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:        id,
			AbilityID: proj.AbilityID,
			OriginX:   proj.OriginX,
			OriginY:   proj.OriginY,
			DestX:     proj.DestX,
			DestY:     proj.DestY,
			Progress:  progress,
			Duration:  proj.Duration,
		})
	}

	snap.Abilities = make([]AbilityView, 0, len(ecs.AbilitySlots))
	for slot, state := range ecs.AbilitySlots {
		snap.Abilities = append(snap.Abilities, AbilityView{
			Slot:         slot,
			AbilityID:    state.DefID,
			CooldownLeft: state.CooldownLeft,
			Cooldown:     cooldowns[state.DefID],
		})
	}

	return snap
}

// FindClosestEnemy — чистый запрос по снапшоту: ближайший к точке враг.
// Возвращает nil на пустом множестве.
func (s *Snapshot) FindClosestEnemy(x, y float64) *EnemyView {
	var closest *EnemyView
	minDistance := -1.0
	for i := range s.Enemies {
		e := &s.Enemies[i]
		dx := e.X - x
		dy := e.Y - y
		d := dx*dx + dy*dy
		if minDistance < 0 || d < minDistance {
			minDistance = d
			closest = e
		}
	}
	return closest
}
