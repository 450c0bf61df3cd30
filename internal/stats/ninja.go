// internal/stats/ninja.go
package stats

import (
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/event"
)

// Ninja хранит прогрессию персонажа: уровень, опыт, валюты и базовые
// характеристики. Боевое ядро пишет сюда только дельты наград; владелец
// объекта — внешний слой (сохранение, экраны персонажа).
type Ninja struct {
	Level      int
	Experience int
	Gold       int
	Gems       int

	BaseAttack    int
	BaseDefense   int
	BaseMaxHealth int

	Equipment []ItemBonus

	dispatcher *event.Dispatcher
}

// NewNinja создает персонажа первого уровня с базовыми характеристиками.
func NewNinja(dispatcher *event.Dispatcher) *Ninja {
	return &Ninja{
		Level:         1,
		BaseAttack:    config.BaseNinjaAttack,
		BaseDefense:   config.BaseNinjaDefense,
		BaseMaxHealth: config.BaseNinjaHealth,
		dispatcher:    dispatcher,
	}
}

// XPToNextLevel возвращает порог опыта для перехода с уровня level.
// Кривая квадратичная: ранние уровни быстрые, дальше — медленнее.
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 + (level-1)*(level-1)*25 + (level-1)*75
}

// ApplyReward зачисляет золото и опыт и повышает уровень, пока опыта
// хватает на порог. Вызывается только на границе тика боевого цикла.
func (n *Ninja) ApplyReward(gold, xp int) {
	n.Gold += gold
	n.Experience += xp

	leveled := false
	for n.Experience >= XPToNextLevel(n.Level) {
		n.Experience -= XPToNextLevel(n.Level)
		n.Level++
		leveled = true
	}

	n.dispatcher.Dispatch(event.Event{
		Type: event.RewardGranted,
		Data: event.RewardGrantedData{Gold: gold, XP: xp},
	})
	if leveled {
		n.dispatcher.Dispatch(event.Event{
			Type: event.NinjaLeveledUp,
			Data: event.NinjaLeveledUpData{NewLevel: n.Level},
		})
	}
}

// OnEvent подписывает ниндзя на события убийств: каждая награда
// применяется ровно один раз, по одному событию на убийство.
func (n *Ninja) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	if data, ok := e.Data.(event.EnemyKilledData); ok {
		n.ApplyReward(data.Gold, data.XP)
	}
}

// EffectiveAttack возвращает атаку с учётом уровня и экипировки.
func (n *Ninja) EffectiveAttack() int {
	attack := n.BaseAttack + (n.Level-1)*2
	for _, item := range n.Equipment {
		attack += item.Attack
	}
	return attack
}

// EffectiveDefense возвращает защиту с учётом уровня и экипировки.
func (n *Ninja) EffectiveDefense() int {
	defense := n.BaseDefense + (n.Level-1)/2
	for _, item := range n.Equipment {
		defense += item.Defense
	}
	return defense
}

// EffectiveMaxHealth возвращает максимум здоровья с учётом уровня и экипировки.
func (n *Ninja) EffectiveMaxHealth() int {
	health := n.BaseMaxHealth + (n.Level-1)*10
	for _, item := range n.Equipment {
		health += item.Health
	}
	return health
}
