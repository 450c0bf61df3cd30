// internal/state/game_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ninja-idle/internal/app"
	"go-ninja-idle/internal/config"
	"go-ninja-idle/internal/storage"
	"go-ninja-idle/internal/ui"
	"go-ninja-idle/internal/utils"
)

// GameState — игровой экран: бой, HUD и ввод. Вся игровая логика живёт
// в боевом ядре; здесь только чтение снапшотов и отправка намерений.
type GameState struct {
	sm     *StateMachine
	combat *app.Combat
	saver  *storage.AutoSaver

	joystick       *ui.Joystick
	abilityButtons []*ui.AbilityButton
	modeButton     *ui.ToggleButton
	combatButton   *ui.ToggleButton
	zoneIndicator  *ui.ZoneIndicator
	statusBars     *ui.StatusBars

	manualMode bool

	// Для визуальной интерполяции снарядов между снапшотами.
	lastTick   uint64
	lastTickAt time.Time
}

func NewGameState(sm *StateMachine, combat *app.Combat, saver *storage.AutoSaver) *GameState {
	hudTop := float32(config.GameAreaHeight + 20)

	gs := &GameState{
		sm:     sm,
		combat: combat,
		saver:  saver,

		joystick:      ui.NewJoystick(80, hudTop+110),
		modeButton:    ui.NewToggleButton(config.ScreenWidth-40, hudTop+20, 18, "AUTO"),
		combatButton:  ui.NewToggleButton(config.ScreenWidth-40, hudTop+70, 18, "GO"),
		zoneIndicator: ui.NewZoneIndicator(16, 24),
		statusBars:    ui.NewStatusBars(170, hudTop+16),
		lastTickAt:    time.Now(),
	}

	snap := combat.Snapshot()
	for i, ability := range snap.Abilities {
		x := float32(170) + float32(i)*(config.AbilityButtonSize+config.AbilityButtonGap)
		label := "?"
		if len(ability.AbilityID) > len("ABILITY_") {
			label = ability.AbilityID[len("ABILITY_") : len("ABILITY_")+1]
		}
		gs.abilityButtons = append(gs.abilityButtons, ui.NewAbilityButton(x, hudTop+90, ability.Slot, label))
	}

	return gs
}

func (g *GameState) Enter() {
	g.combat.Start()
	if g.saver != nil {
		g.saver.Start()
	}
}

func (g *GameState) Exit() {
	// Порядок важен: финальное сохранение должно увидеть остановленный бой.
	g.combat.Stop()
	if g.saver != nil {
		g.saver.Stop()
	}
}

func (g *GameState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	if justPressed {
		if g.modeButton.IsClicked(mx, my) {
			g.manualMode = !g.manualMode
			g.combat.SetManualControlActive(g.manualMode)
		}
		if g.combatButton.IsClicked(mx, my) {
			if g.combat.IsRunning() {
				g.combat.Stop()
			} else {
				g.combat.Start()
			}
		}
		for _, button := range g.abilityButtons {
			if button.IsClicked(mx, my) {
				g.combat.CastAbility(button.Slot)
			}
		}
	}

	if g.manualMode {
		g.joystick.HandleInput(mx, my, pressed)
		dx, dy := g.joystick.Direction()
		g.combat.SetManualDirection(dx, dy)
	}

	snap := g.combat.Snapshot()
	if snap.Tick != g.lastTick {
		g.lastTick = snap.Tick
		g.lastTickAt = time.Now()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.GameAreaHeight, config.GameAreaColor, true)

	snap := g.combat.Snapshot()
	elapsed := time.Since(g.lastTickAt).Seconds()

	g.drawEnemies(screen, snap)
	g.drawProjectiles(screen, snap, elapsed)
	g.drawNinja(screen, snap)
	g.drawHUD(screen, snap)
}

func (g *GameState) drawEnemies(screen *ebiten.Image, snap *app.Snapshot) {
	for _, enemy := range snap.Enemies {
		tier := enemy.Tier
		if tier < 0 || tier >= len(config.EnemyTierColors) {
			tier = 0
		}
		cx := float32(enemy.X + config.EnemyWidth/2)
		cy := float32(enemy.Y + config.EnemyHeight/2)
		vector.DrawFilledCircle(screen, cx, cy, config.EnemyWidth/2, config.EnemyTierColors[tier], true)

		if enemy.MaxHealth > 0 {
			ratio := float32(enemy.Health) / float32(enemy.MaxHealth)
			barW := float32(config.EnemyWidth)
			vector.DrawFilledRect(screen, cx-barW/2, cy-config.EnemyHeight/2-8, barW*ratio, 4, config.HealthBarColor, true)
		}
	}
}

// drawProjectiles интерполирует полёт между снапшотами. Это чисто
// визуальная экстраполяция: попадание разрешает только симуляция.
func (g *GameState) drawProjectiles(screen *ebiten.Image, snap *app.Snapshot, elapsed float64) {
	for _, proj := range snap.Projectiles {
		progress := proj.Progress
		if proj.Duration > 0 {
			progress += elapsed / proj.Duration
		}
		if progress > 1 {
			progress = 1
		}
		x := utils.Lerp(proj.OriginX, proj.DestX, progress)
		y := utils.Lerp(proj.OriginY, proj.DestY, progress)
		vector.DrawFilledCircle(screen, float32(x+config.NinjaWidth/2), float32(y+config.EnemyHeight/2), config.ProjectileRadius, config.ProjectileColor, true)
	}
}

func (g *GameState) drawNinja(screen *ebiten.Image, snap *app.Snapshot) {
	cx := float32(snap.Ninja.X + config.NinjaWidth/2)
	cy := float32(snap.Ninja.Y + config.NinjaHeight/2)
	vector.DrawFilledCircle(screen, cx, cy, config.NinjaWidth/2+2, config.NinjaStrokeColor, true)
	vector.DrawFilledCircle(screen, cx, cy, config.NinjaWidth/2, config.NinjaColor, true)
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	g.zoneIndicator.Draw(screen, snap.Progress.ZoneID, snap.Progress.Level, snap.Progress.Kills, snap.Progress.Required)
	g.statusBars.Draw(screen, snap.Ninja.Health, snap.Ninja.MaxHealth, snap.Ninja.Energy,
		snap.Ninja.Experience, snap.Ninja.XPToNext, snap.Ninja.Level, snap.Ninja.Gold)

	for i, button := range g.abilityButtons {
		if i < len(snap.Abilities) {
			button.Draw(screen, snap.Abilities[i].CooldownLeft, snap.Abilities[i].Cooldown)
		}
	}

	g.modeButton.Draw(screen, g.manualMode)
	g.combatButton.Draw(screen, snap.InCombat)
	if g.manualMode {
		g.joystick.Draw(screen)
	}
}
