// internal/ui/zone_indicator.go
package ui

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-ninja-idle/internal/config"
)

// ZoneIndicator отображает уровень зоны римскими цифрами и полосу
// убийств до порога. Счётчик приходит уже ограниченным порогом.
type ZoneIndicator struct {
	X, Y float32
}

func NewZoneIndicator(x, y float32) *ZoneIndicator {
	return &ZoneIndicator{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

const (
	killBarWidth  = 140
	killBarHeight = 10
)

// Draw отрисовывает индикатор.
func (i *ZoneIndicator) Draw(screen *ebiten.Image, zoneName string, level, kills, required int) {
	label := fmt.Sprintf("%s %s", zoneName, toRoman(level))
	text.Draw(screen, label, basicfont.Face7x13, int(i.X), int(i.Y), config.TextLightColor)

	barY := i.Y + 6
	vector.StrokeRect(screen, i.X, barY, killBarWidth, killBarHeight, 1, config.TextLightColor, true)
	if required > 0 {
		ratio := float32(kills) / float32(required)
		if ratio > 1 {
			ratio = 1
		}
		vector.DrawFilledRect(screen, i.X+1, barY+1, (killBarWidth-2)*ratio, killBarHeight-2, config.XPBarColor, true)
	}

	counter := fmt.Sprintf("%d/%d", kills, required)
	text.Draw(screen, counter, basicfont.Face7x13, int(i.X)+killBarWidth+8, int(barY)+killBarHeight, config.TextLightColor)
}
