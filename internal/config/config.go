// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth    = 390
	ScreenHeight   = 780
	GameAreaHeight = 560 // игровое поле занимает верхнюю часть экрана, ниже — HUD

	// Интервалы тиков. Логика и визуальная интерполяция разнесены:
	// частота кадров не должна влиять на результат симуляции.
	LogicTickInterval  = 33 * time.Millisecond
	VisualTickInterval = 16 * time.Millisecond
	LogicTickSeconds   = 0.033

	NinjaWidth  = 48.0
	NinjaHeight = 48.0
	EnemyWidth  = 40.0
	EnemyHeight = 40.0

	NinjaSpeed  = 140.0 // пикселей в секунду
	AttackRange = 60.0

	MaxActiveEnemies = 10
	SpawnMargin      = 24.0 // отступ от краёв поля при расстановке врагов

	ContactRange = 34.0 // дистанция, с которой враг бьёт ниндзя

	BaseNinjaHealth  = 100
	BaseNinjaAttack  = 10
	BaseNinjaDefense = 2

	MaxEnergy       = 100.0
	EnergyRegenRate = 8.0 // энергии в секунду

	ProjectileRadius = 5.0

	RespawnInvulnerability = 1.5 // секунд неуязвимости после возрождения

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	JoystickRadius     = 52.0
	JoystickKnobRadius = 20.0
	JoystickDeadZone   = 0.15

	AbilityButtonSize = 44.0
	AbilityButtonGap  = 12.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GameAreaColor    = color.RGBA{28, 32, 40, 255}
	NinjaColor       = color.RGBA{80, 200, 255, 255}
	NinjaStrokeColor = color.RGBA{255, 255, 255, 255}
	ProjectileColor  = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	HealthBarColor   = color.RGBA{220, 60, 60, 220}
	EnergyBarColor   = color.RGBA{70, 130, 180, 220}
	XPBarColor       = color.RGBA{70, 100, 120, 220}
	GoldColor        = color.RGBA{255, 215, 0, 255}
	CooldownColor    = color.RGBA{0, 0, 0, 160}
	JoystickColor    = color.RGBA{200, 200, 200, 90}
	JoystickKnobTint = color.RGBA{240, 240, 240, 160}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonActiveTint = color.RGBA{220, 60, 60, 220}
	StrokeWidth      = 2.0

	// Цвета врагов по тирам: обычный, усиленный, босс.
	EnemyTierColors = []color.RGBA{
		{120, 180, 90, 255},
		{180, 120, 200, 255},
		{220, 60, 60, 255},
	}
)
