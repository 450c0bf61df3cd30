// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-ninja-idle/internal/config"
)

// MenuState — стартовый экран: тап в любом месте начинает бой.
type MenuState struct {
	sm        *StateMachine
	nextState func() State
}

func NewMenuState(sm *StateMachine, nextState func() State) *MenuState {
	return &MenuState{sm: sm, nextState: nextState}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.nextState())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "NINJA IDLE", basicfont.Face7x13, config.ScreenWidth/2-35, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, "tap to fight", basicfont.Face7x13, config.ScreenWidth/2-42, config.ScreenHeight/2+10, config.TextLightColor)
}
