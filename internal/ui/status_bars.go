// internal/ui/status_bars.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-ninja-idle/internal/config"
)

// StatusBars — полосы здоровья, энергии и опыта плюс счётчики валют.
type StatusBars struct {
	X, Y float32
}

const (
	statusBarWidth  = 150
	statusBarHeight = 10
	statusBarGap    = 6
)

func NewStatusBars(x, y float32) *StatusBars {
	return &StatusBars{X: x, Y: y}
}

func (s *StatusBars) drawBar(screen *ebiten.Image, y float32, ratio float64, fill color.RGBA) {
	vector.StrokeRect(screen, s.X, y, statusBarWidth, statusBarHeight, 1, config.TextLightColor, true)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, s.X+1, y+1, (statusBarWidth-2)*float32(ratio), statusBarHeight-2, fill, true)
}

// Draw отрисовывает все полосы и счётчики.
func (s *StatusBars) Draw(screen *ebiten.Image, health, maxHealth int, energy float64, xp, xpToNext, level, gold int) {
	y := s.Y
	if maxHealth > 0 {
		s.drawBar(screen, y, float64(health)/float64(maxHealth), config.HealthBarColor)
	}
	y += statusBarHeight + statusBarGap
	s.drawBar(screen, y, energy/config.MaxEnergy, config.EnergyBarColor)
	y += statusBarHeight + statusBarGap
	if xpToNext > 0 {
		s.drawBar(screen, y, float64(xp)/float64(xpToNext), config.XPBarColor)
	}
	y += statusBarHeight + statusBarGap + 8

	text.Draw(screen, fmt.Sprintf("Lv %d", level), basicfont.Face7x13, int(s.X), int(y), config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("%d g", gold), basicfont.Face7x13, int(s.X)+60, int(y), config.GoldColor)
}
