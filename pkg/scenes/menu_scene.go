package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuButtonWidth  = 240.0
	menuButtonHeight = 64.0
)

// MenuScene is the welcome screen. Clicking the button (or pressing Enter or
// Space) deals the first round.
type MenuScene struct {
	env             *Env
	buttonHovered   bool
	lastCursorShape ebiten.CursorShapeType
}

// NewMenuScene creates the welcome menu.
func NewMenuScene(env *Env) *MenuScene {
	log.Printf("[MenuScene] 进入菜单")
	return &MenuScene{env: env}
}

// buttonRect 返回开始按钮的位置和尺寸
func (m *MenuScene) buttonRect() (x, y, w, h float64) {
	win := m.env.Config.Window
	x = (float64(win.Width) - menuButtonWidth) / 2
	y = float64(win.Height)*0.6 - menuButtonHeight/2
	return x, y, menuButtonWidth, menuButtonHeight
}

// Update 处理按钮悬停和点击
func (m *MenuScene) Update(deltaTime float64) {
	pointer := utils.ReadPointer()
	bx, by, bw, bh := m.buttonRect()
	m.buttonHovered = isPointInRect(float64(pointer.X), float64(pointer.Y), bx, by, bw, bh)

	cursorShape := ebiten.CursorShapeDefault
	if m.buttonHovered && !pointer.IsTouching {
		cursorShape = ebiten.CursorShapePointer
	}
	if cursorShape != m.lastCursorShape {
		ebiten.SetCursorShape(cursorShape)
		m.lastCursorShape = cursorShape
	}

	start := (pointer.JustPressed && m.buttonHovered) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if start {
		m.onStartClicked()
	}
}

func (m *MenuScene) onStartClicked() {
	log.Printf("[MenuScene] 开始发牌")
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	m.env.Scenes.Load(game.SceneTable)
}

// Draw 绘制标题、开始按钮和统计
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	win := m.env.Config.Window
	cx := float64(win.Width) / 2
	rm := m.env.Resources

	drawCenteredText(screen, m.env.Config.Window.Title, rm.Face(56), cx, float64(win.Height)*0.3, textColor)
	subtitle := utils.PointerVerb() + " the cards to pick them all up"
	drawWrappedText(screen, subtitle, rm.Face(20), cx, float64(win.Height)*0.3+56, float64(win.Width)*0.8, textColor)

	bx, by, bw, bh := m.buttonRect()
	fill := color.RGBA{0x28, 0x50, 0xa0, 0xff}
	if m.buttonHovered {
		fill = color.RGBA{0x38, 0x68, 0xc8, 0xff}
	}
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), fill, true)
	vector.StrokeRect(screen, float32(bx), float32(by), float32(bw), float32(bh), 2, accentColor, true)
	drawCenteredText(screen, "Deal", rm.Face(28), cx, by+bh/2, textColor)

	drawCenteredText(screen, statsLine(m.env.Stats.Stats()), rm.Face(18), cx, float64(win.Height)*0.85, textColor)
}

// statsLine 菜单底部的统计文字
func statsLine(stats game.PlayerStats) string {
	if stats.RoundsWon == 0 {
		return fmt.Sprintf("Rounds dealt: %d", stats.RoundsStarted)
	}
	return fmt.Sprintf("Rounds dealt: %d   Cleared: %d   Best: %.1fs",
		stats.RoundsStarted, stats.RoundsWon, stats.BestClearSeconds)
}
