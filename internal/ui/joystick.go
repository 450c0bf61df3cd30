// internal/ui/joystick.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ninja-idle/internal/config"
)

// Joystick — виртуальный джойстик ручного управления.
// Пока он захвачен, возвращает нормированный вектор направления.
type Joystick struct {
	BaseX, BaseY float32

	active bool
	knobX  float32
	knobY  float32
}

func NewJoystick(x, y float32) *Joystick {
	return &Joystick{BaseX: x, BaseY: y, knobX: x, knobY: y}
}

// HandleInput обрабатывает нажатие и перетаскивание. Возвращает true,
// пока джойстик захвачен.
func (j *Joystick) HandleInput(mx, my int, pressed bool) bool {
	if !pressed {
		j.active = false
		j.knobX = j.BaseX
		j.knobY = j.BaseY
		return false
	}

	fx, fy := float32(mx), float32(my)
	if !j.active {
		dx := float64(fx - j.BaseX)
		dy := float64(fy - j.BaseY)
		if math.Sqrt(dx*dx+dy*dy) > config.JoystickRadius {
			return false
		}
		j.active = true
	}

	j.knobX = fx
	j.knobY = fy

	// Ручка не выходит за обод.
	dx := float64(j.knobX - j.BaseX)
	dy := float64(j.knobY - j.BaseY)
	length := math.Sqrt(dx*dx + dy*dy)
	if length > config.JoystickRadius {
		scale := config.JoystickRadius / length
		j.knobX = j.BaseX + float32(dx*scale)
		j.knobY = j.BaseY + float32(dy*scale)
	}
	return true
}

// Active сообщает, захвачен ли джойстик.
func (j *Joystick) Active() bool {
	return j.active
}

// Direction возвращает нормированный вектор с мёртвой зоной в центре.
func (j *Joystick) Direction() (float64, float64) {
	dx := float64(j.knobX-j.BaseX) / config.JoystickRadius
	dy := float64(j.knobY-j.BaseY) / config.JoystickRadius
	if math.Sqrt(dx*dx+dy*dy) < config.JoystickDeadZone {
		return 0, 0
	}
	length := math.Sqrt(dx*dx + dy*dy)
	return dx / length, dy / length
}

// Draw отрисовывает обод и ручку.
func (j *Joystick) Draw(screen *ebiten.Image) {
	vector.StrokeCircle(screen, j.BaseX, j.BaseY, float32(config.JoystickRadius), 2, config.JoystickColor, true)
	vector.DrawFilledCircle(screen, j.knobX, j.knobY, float32(config.JoystickKnobRadius), config.JoystickKnobTint, true)
}
