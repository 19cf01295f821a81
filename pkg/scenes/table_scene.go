package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/systems"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tableMargin 桌面四周留给 HUD 的像素
const tableMargin = 48.0

// TableScene is the card table: it deals a round, lets the player pick cards
// up, and shows the win overlay once every card is in the pile.
//
// Each scene owns its own ECS world and game state; leaving the scene drops
// both.
type TableScene struct {
	env *Env

	entityManager *ecs.EntityManager
	gameState     *game.GameState

	dealSystem      *systems.DealSystem
	pickupSystem    *systems.PickupSystem
	animationSystem *systems.PickupAnimationSystem
	inputSystem     *systems.InputSystem
	renderSystem    *systems.RenderSystem

	newBest bool // 本局刷新了最快用时
}

// NewTableScene builds the table and deals the first round.
// A deal failure (missing card asset, malformed region) is returned as is.
func NewTableScene(env *Env) (*TableScene, error) {
	cfg := env.Config
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	projection := utils.FitProjection(cfg.Board.HalfWidth, cfg.Board.HalfDepth, cfg.Window.Width, cfg.Window.Height, tableMargin)

	pickupSystem := systems.NewPickupSystem(em, gs, cfg)
	scene := &TableScene{
		env:             env,
		entityManager:   em,
		gameState:       gs,
		dealSystem:      systems.NewDealSystem(em, env.Resources.Catalog(), cfg),
		pickupSystem:    pickupSystem,
		animationSystem: systems.NewPickupAnimationSystem(em, gs),
		inputSystem:     systems.NewInputSystem(em, gs, pickupSystem, projection),
		renderSystem:    systems.NewRenderSystem(em, env.Resources, cfg, projection),
	}
	gs.OnPhaseChange(scene.onPhaseChange)
	gs.SetPhase(game.PhaseMenu)

	if err := scene.StartRound(); err != nil {
		return nil, err
	}
	return scene, nil
}

// StartRound 清空桌面并发新的一局
func (s *TableScene) StartRound() error {
	seed := s.env.NextSeed()
	s.gameState.SetPhase(game.PhaseDeal)

	cards, err := s.dealSystem.Deal(utils.NewRoundRand(seed))
	if err != nil {
		return fmt.Errorf("failed to deal round (seed %d): %w", seed, err)
	}

	s.gameState.BeginRound(seed, len(cards))
	s.env.Stats.RecordRoundStarted(s.gameState)
	s.newBest = false
	s.gameState.SetPhase(game.PhasePlay)
	return nil
}

// GameState 返回本场景的游戏状态
func (s *TableScene) GameState() *game.GameState {
	return s.gameState
}

func (s *TableScene) onPhaseChange(from, to game.Phase) {
	if to == game.PhaseWin {
		s.newBest = s.env.Stats.RecordRoundWon(s.gameState)
		if s.newBest {
			log.Printf("[TableScene] 新纪录: %.1f 秒", s.gameState.ElapsedSeconds)
		}
	}
}

// Update 处理输入，然后推进一帧
func (s *TableScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.env.Scenes.Load(game.SceneMenu)
		return
	}

	switch s.gameState.Phase() {
	case game.PhasePlay:
		s.inputSystem.Update()
	case game.PhaseWin:
		pointer := utils.ReadPointer()
		if pointer.JustPressed || inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := s.StartRound(); err != nil {
				s.env.Fail(err)
				return
			}
		}
	}

	s.step(deltaTime)
}

// step 推进动画和计时（不读取输入）
func (s *TableScene) step(deltaTime float64) {
	s.animationSystem.Update(deltaTime)
	s.gameState.Tick(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制桌面、HUD 和胜利提示
func (s *TableScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	s.drawHUD(screen)

	if s.gameState.Phase() == game.PhaseWin {
		s.drawWinOverlay(screen)
	}
}

func (s *TableScene) drawHUD(screen *ebiten.Image) {
	face := s.env.Resources.Face(18)
	gs := s.gameState
	drawText(screen, fmt.Sprintf("Collected %d / %d", gs.CardsCollected, gs.TotalCards), face, 12, 12, textColor)
	drawText(screen, fmt.Sprintf("Time %.1fs", gs.ElapsedSeconds), face, 220, 12, textColor)

	seed := fmt.Sprintf("Seed %d", gs.Seed)
	drawText(screen, seed, face, 12, float64(s.env.Config.Window.Height)-30, color.RGBA{0xff, 0xff, 0xff, 0x80})
}

func (s *TableScene) drawWinOverlay(screen *ebiten.Image) {
	win := s.env.Config.Window
	w, h := float64(win.Width), float64(win.Height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 0x90}, false)

	rm := s.env.Resources
	drawCenteredText(screen, "All cards collected!", rm.Face(44), w/2, h*0.4, accentColor)
	drawCenteredText(screen, fmt.Sprintf("Cleared in %.1f seconds", s.gameState.ElapsedSeconds), rm.Face(24), w/2, h*0.4+52, textColor)
	if s.newBest {
		drawCenteredText(screen, "New best time", rm.Face(20), w/2, h*0.4+88, accentColor)
	}
	hint := utils.PointerVerb() + " or press R to deal again, Esc for the menu"
	drawWrappedText(screen, hint, rm.Face(18), w/2, h*0.75, w*0.8, textColor)
}

// SaveOnExit 窗口关闭时保存统计
func (s *TableScene) SaveOnExit() bool {
	if err := s.env.Stats.Save(); err != nil {
		log.Printf("[TableScene] 保存统计失败: %v", err)
		return false
	}
	return true
}
