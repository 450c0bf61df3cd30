// internal/app/combat.go
package app

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"go-ninja-idle/internal/component"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/defs"
	"go-ninja-idle/internal/entity"
	"go-ninja-idle/internal/event"
	"go-ninja-idle/internal/stats"
	"go-ninja-idle/internal/system"
	"go-ninja-idle/internal/utils"
)

// Combat — боевое ядро с явным жизненным циклом:
// New → Start → тики → Stop. Единственный писатель состояния — цикл тиков;
// все внешние вызовы превращаются в намерения, применяемые на границе
// следующего тика. Наружу уходят только неизменяемые снапшоты.
type Combat struct {
	ecs        *entity.ECS
	lib        *defs.Library
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	ninja      *stats.Ninja
	log        zerolog.Logger

	spawnSystem      *system.SpawnSystem
	movementSystem   *system.MovementSystem
	contactSystem    *system.ContactSystem
	abilitySystem    *system.AbilitySystem
	projectileSystem *system.ProjectileSystem
	progress         *system.ProgressTracker

	intents chan intent

	snapshot    atomic.Pointer[Snapshot]
	onSnapshot  func(*Snapshot)
	currentTick uint64

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	cooldowns map[string]float64 // полные кулдауны способностей для HUD
}

type intentKind int

const (
	intentManualControl intentKind = iota
	intentManualDirection
	intentCastAbility
	intentSetPosition
	intentEquip
	intentUnequip
)

// intent — отложенное внешнее воздействие; применяется строго между тиками.
type intent struct {
	kind   intentKind
	active bool
	dx, dy float64
	x, y   float64
	slot   int
	bonus  stats.ItemBonus
	itemID string
}

// NewCombat собирает боевое ядро для зоны zoneID. Ниндзя и диспетчер
// передаются извне: ядро пишет награды, но не владеет прогрессией.
func NewCombat(lib *defs.Library, zoneID string, ninja *stats.Ninja, dispatcher *event.Dispatcher, rng *utils.PRNGService, log zerolog.Logger) *Combat {
	zone, ok := lib.Zones[zoneID]
	if !ok {
		// Неизвестная зона не должна ронять запуск: берём первую попавшуюся.
		for _, z := range lib.Zones {
			zone = z
			break
		}
	}

	ecs := entity.NewECS()
	progress := system.NewProgressTracker(zone, 1, dispatcher)

	c := &Combat{
		ecs:        ecs,
		lib:        lib,
		dispatcher: dispatcher,
		rng:        rng,
		ninja:      ninja,
		log:        log,

		spawnSystem:      system.NewSpawnSystem(ecs, lib, progress, rng),
		movementSystem:   system.NewMovementSystem(ecs),
		contactSystem:    system.NewContactSystem(ecs, dispatcher),
		abilitySystem:    system.NewAbilitySystem(ecs, lib, dispatcher),
		projectileSystem: system.NewProjectileSystem(ecs, dispatcher, progress),
		progress:         progress,

		intents:   make(chan intent, 64),
		cooldowns: make(map[string]float64, len(lib.Abilities)),
	}

	for id, def := range lib.Abilities {
		c.cooldowns[id] = def.Cooldown
	}

	c.createPlayerEntity()
	c.equipAbilitySlots()

	dispatcher.Subscribe(event.EnemyKilled, ninja)

	c.publish(false)
	return c
}

func (c *Combat) createPlayerEntity() {
	id := c.ecs.NewEntity()
	maxHealth := c.ninja.EffectiveMaxHealth()
	c.ecs.PlayerID = id
	c.ecs.Positions[id] = &component.Position{
		X: (config.ScreenWidth - config.NinjaWidth) / 2,
		Y: (config.GameAreaHeight - config.NinjaHeight) / 2,
	}
	c.ecs.Healths[id] = &component.Health{Value: maxHealth, MaxValue: maxHealth}
	c.ecs.Player = &component.PlayerState{
		Attack:  c.ninja.EffectiveAttack(),
		Defense: c.ninja.EffectiveDefense(),
		Energy:  config.MaxEnergy,
	}
}

// equipAbilitySlots раскладывает все способности библиотеки по слотам:
// автокаст первым, затем наступательные, затем остальные; внутри группы
// порядок по ID, чтобы раскладка была детерминированной.
func (c *Combat) equipAbilitySlots() {
	ids := make([]string, 0, len(c.lib.Abilities))
	for id := range c.lib.Abilities {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := c.lib.Abilities[ids[i]], c.lib.Abilities[ids[j]]
		if a.AutoCast != b.AutoCast {
			return a.AutoCast
		}
		if a.Offensive != b.Offensive {
			return a.Offensive
		}
		return ids[i] < ids[j]
	})
	for _, id := range ids {
		c.ecs.AbilitySlots = append(c.ecs.AbilitySlots, &component.AbilitySlot{DefID: id})
	}
}

// Start запускает цикл тиков. Повторный вызов на работающем ядре — no-op.
func (c *Combat) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})

	c.wg.Add(1)
	go c.run(c.stopChan)

	c.dispatcher.Dispatch(event.Event{Type: event.CombatStarted})
	c.log.Info().Str("zone", c.progress.Zone().ID).Int("level", c.progress.Level()).Msg("combat started")
}

// Stop останавливает цикл и обнуляет переходные сущности: снаряды и врагов.
// Прогресс зоны и прогрессия ниндзя сохраняются. Идемпотентен.
// Гарантирует, что все таймеры цикла освобождены к моменту возврата.
func (c *Combat) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopChan)
	c.mu.Unlock()

	c.wg.Wait()

	for id := range c.ecs.Projectiles {
		c.ecs.RemoveProjectile(id)
	}
	for id := range c.ecs.Enemies {
		c.ecs.RemoveEnemy(id)
	}
	c.publish(false)

	c.dispatcher.Dispatch(event.Event{Type: event.CombatStopped})
	c.log.Info().Uint64("tick", c.currentTick).Msg("combat stopped")
}

// run — единственная горутина, мутирующая состояние симуляции.
func (c *Combat) run(stop <-chan struct{}) {
	defer c.wg.Done()

	ticker := time.NewTicker(config.LogicTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.tick()
		}
	}
}

func (c *Combat) tick() {
	c.applyIntents()
	c.advance(config.LogicTickSeconds)
	c.publish(true)
}

// advance прогоняет один тик симуляции с фиксированным шагом.
// Порядок систем фиксирован: спавн → движение → контактный урон →
// способности → снаряды; прогресс зоны обновляется внутри разрешения
// убийств. Ничто здесь не фатально: битые ссылки пропускаются.
func (c *Combat) advance(dt float64) {
	c.ecs.GameTime += dt
	c.currentTick++

	c.syncNinjaStats()

	c.spawnSystem.Update()
	c.movementSystem.Update(dt)
	c.contactSystem.Update(dt)
	c.abilitySystem.Update(dt)
	c.projectileSystem.Update()
}

// syncNinjaStats подтягивает в симуляцию эффективные характеристики:
// экипировка и уровень могли измениться между тиками.
func (c *Combat) syncNinjaStats() {
	player := c.ecs.Player
	if player == nil {
		return
	}
	player.Attack = c.ninja.EffectiveAttack()
	player.Defense = c.ninja.EffectiveDefense()

	if health, ok := c.ecs.Healths[c.ecs.PlayerID]; ok {
		maxHealth := c.ninja.EffectiveMaxHealth()
		if maxHealth != health.MaxValue {
			// Рост максимума сохраняет недостающее здоровье, а не долю.
			missing := health.MaxValue - health.Value
			health.MaxValue = maxHealth
			health.Value = maxHealth - missing
			if health.Value < 1 {
				health.Value = 1
			}
		}
	}
}

func (c *Combat) applyIntents() {
	for {
		select {
		case in := <-c.intents:
			c.applyIntent(in)
		default:
			return
		}
	}
}

func (c *Combat) applyIntent(in intent) {
	switch in.kind {
	case intentManualControl:
		c.ecs.Player.ManualControl = in.active
		if !in.active {
			c.ecs.Player.ManualDX = 0
			c.ecs.Player.ManualDY = 0
		}
	case intentManualDirection:
		c.ecs.Player.ManualDX = in.dx
		c.ecs.Player.ManualDY = in.dy
	case intentCastAbility:
		if in.slot >= 0 && in.slot < len(c.ecs.AbilitySlots) {
			c.ecs.AbilitySlots[in.slot].Requested = true
		}
	case intentSetPosition:
		if pos, ok := c.ecs.Positions[c.ecs.PlayerID]; ok {
			pos.X = utils.Clamp(in.x, 0, config.ScreenWidth-config.NinjaWidth)
			pos.Y = utils.Clamp(in.y, 0, config.GameAreaHeight-config.NinjaHeight)
		}
	case intentEquip:
		c.ninja.Equip(in.bonus)
	case intentUnequip:
		c.ninja.Unequip(in.itemID)
	}
}

// queue кладёт намерение в буфер. Переполненный буфер роняет намерение
// молча: следующий жест игрока его заменит.
func (c *Combat) queue(in intent) {
	select {
	case c.intents <- in:
	default:
	}
}

// SetManualControlActive переключает режим движения: джойстик или автопоиск.
func (c *Combat) SetManualControlActive(active bool) {
	c.queue(intent{kind: intentManualControl, active: active})
}

// SetManualDirection задаёт вектор джойстика. Нормировка происходит в тике.
func (c *Combat) SetManualDirection(dx, dy float64) {
	c.queue(intent{kind: intentManualDirection, dx: dx, dy: dy})
}

// CastAbility запрашивает каст слота. Невалидный запрос отклоняется молча.
func (c *Combat) CastAbility(slot int) {
	c.queue(intent{kind: intentCastAbility, slot: slot})
}

// UpdateNinjaPosition телепортирует ниндзя (внешний сценарий: смена экрана).
func (c *Combat) UpdateNinjaPosition(x, y float64) {
	c.queue(intent{kind: intentSetPosition, x: x, y: y})
}

// EquipItem применяет бонус предмета на границе следующего тика.
func (c *Combat) EquipItem(bonus stats.ItemBonus) {
	c.queue(intent{kind: intentEquip, bonus: bonus})
}

// UnequipItem снимает предмет на границе следующего тика.
func (c *Combat) UnequipItem(itemID string) {
	c.queue(intent{kind: intentUnequip, itemID: itemID})
}

// Snapshot возвращает последний опубликованный снапшот. Никогда не nil.
func (c *Combat) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

// IsRunning сообщает, идёт ли бой.
func (c *Combat) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// SetSnapshotListener задаёт получателя снапшотов (трансляция, отладка).
// Должен быть установлен до Start.
func (c *Combat) SetSnapshotListener(fn func(*Snapshot)) {
	c.onSnapshot = fn
}

// RestoreProgress выставляет сохранённый прогресс зоны до начала боя.
func (c *Combat) RestoreProgress(level, kills int) {
	c.progress.Restore(level, kills)
	c.publish(false)
}

func (c *Combat) publish(inCombat bool) {
	snap := buildSnapshot(c.ecs, c.ninja, c.progress, c.currentTick, inCombat, c.cooldowns)
	c.snapshot.Store(snap)
	if c.onSnapshot != nil {
		c.onSnapshot(snap)
	}
}
