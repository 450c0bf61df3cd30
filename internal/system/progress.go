// internal/system/progress.go
package system

import (
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/event"
)

// ProgressTracker накапливает убийства в уровне зоны и продвигает уровень
// при достижении порога. Счётчик внутри уровня монотонно растёт и
// сбрасывается при переходе; наружу число убийств всегда отдаётся
// ограниченным порогом, чтобы не показывать «45/40».
type ProgressTracker struct {
	zone       defs.ZoneDefinition
	level      int
	kills      int
	dispatcher *event.Dispatcher
}

func NewProgressTracker(zone defs.ZoneDefinition, level int, dispatcher *event.Dispatcher) *ProgressTracker {
	if level < 1 {
		level = 1
	}
	if level > zone.Levels {
		level = zone.Levels
	}
	return &ProgressTracker{
		zone:       zone,
		level:      level,
		dispatcher: dispatcher,
	}
}

// RecordKill засчитывает убийство. Достигнутый порог продвигает ровно
// один уровень и обнуляет счётчик. На последнем уровне зоны счётчик
// упирается в порог.
func (t *ProgressTracker) RecordKill() {
	required := t.zone.RequiredKills(t.level)
	if t.level >= t.zone.Levels && t.kills >= required {
		return
	}

	t.kills++
	if t.kills < required {
		return
	}

	if t.level < t.zone.Levels {
		t.level++
		t.kills = 0
		t.dispatcher.Dispatch(event.Event{
			Type: event.LevelCompleted,
			Data: event.LevelCompletedData{ZoneID: t.zone.ID, NewLevel: t.level},
		})
	}
}

// Zone возвращает определение активной зоны.
func (t *ProgressTracker) Zone() defs.ZoneDefinition {
	return t.zone
}

// Level возвращает текущий уровень зоны.
func (t *ProgressTracker) Level() int {
	return t.level
}

// Kills возвращает число убийств в текущем уровне, ограниченное порогом.
func (t *ProgressTracker) Kills() int {
	required := t.zone.RequiredKills(t.level)
	if t.kills > required {
		return required
	}
	return t.kills
}

// RequiredKills возвращает порог текущего уровня.
func (t *ProgressTracker) RequiredKills() int {
	return t.zone.RequiredKills(t.level)
}

// Restore выставляет сохранённый прогресс (уровень и убийства) после загрузки.
func (t *ProgressTracker) Restore(level, kills int) {
	if level < 1 {
		level = 1
	}
	if level > t.zone.Levels {
		level = t.zone.Levels
	}
	t.level = level
	t.kills = kills
	if required := t.zone.RequiredKills(t.level); t.kills > required {
		t.kills = required
	}
}
