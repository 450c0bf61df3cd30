// internal/ui/ability_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-ninja-idle/internal/config"
)

// AbilityButton — кнопка слота способности с заливкой кулдауна.
type AbilityButton struct {
	X, Y  float32
	Slot  int
	Label string
}

func NewAbilityButton(x, y float32, slot int, label string) *AbilityButton {
	return &AbilityButton{X: x, Y: y, Slot: slot, Label: label}
}

// IsClicked проверяет попадание клика в кнопку.
func (b *AbilityButton) IsClicked(mx, my int) bool {
	fx, fy := float32(mx), float32(my)
	return fx >= b.X && fx <= b.X+config.AbilityButtonSize &&
		fy >= b.Y && fy <= b.Y+config.AbilityButtonSize
}

// Draw отрисовывает кнопку. cooldownLeft и cooldown задают долю затемнения.
func (b *AbilityButton) Draw(screen *ebiten.Image, cooldownLeft, cooldown float64) {
	size := float32(config.AbilityButtonSize)
	vector.DrawFilledRect(screen, b.X, b.Y, size, size, config.ButtonColor, true)
	vector.StrokeRect(screen, b.X, b.Y, size, size, float32(config.StrokeWidth), config.NinjaStrokeColor, true)

	if cooldown > 0 && cooldownLeft > 0 {
		ratio := cooldownLeft / cooldown
		if ratio > 1 {
			ratio = 1
		}
		// Затемнение спадает сверху вниз по мере отката.
		fill := size * float32(ratio)
		vector.DrawFilledRect(screen, b.X, b.Y+size-fill, size, fill, config.CooldownColor, true)
	}

	textX := int(b.X) + int(size)/2 - len(b.Label)*7/2
	textY := int(b.Y) + int(size)/2 + 4
	text.Draw(screen, b.Label, basicfont.Face7x13, textX, textY, config.TextLightColor)
}
