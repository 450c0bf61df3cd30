// internal/ui/toggle_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-ninja-idle/internal/config"
)

// ToggleButton — круглая кнопка-переключатель (авто/ручной режим, старт/стоп).
type ToggleButton struct {
	X, Y   float32
	Radius float32
	Label  string
}

func NewToggleButton(x, y, radius float32, label string) *ToggleButton {
	return &ToggleButton{X: x, Y: y, Radius: radius, Label: label}
}

// IsClicked проверяет попадание клика в кнопку.
func (b *ToggleButton) IsClicked(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Draw отрисовывает кнопку; active меняет цвет заливки.
func (b *ToggleButton) Draw(screen *ebiten.Image, active bool) {
	fill := config.ButtonColor
	if active {
		fill = config.ButtonActiveTint
	}
	vector.DrawFilledCircle(screen, b.X, b.Y, b.Radius, fill, true)
	vector.StrokeCircle(screen, b.X, b.Y, b.Radius, float32(config.StrokeWidth), config.NinjaStrokeColor, true)

	textX := int(b.X) - len(b.Label)*7/2
	textY := int(b.Y) + 4
	text.Draw(screen, b.Label, basicfont.Face7x13, textX, textY, config.TextLightColor)
}
