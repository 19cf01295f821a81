package systems

import (
	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputSystem 把鼠标/触摸转换为牌的悬停状态和拾取触发
type InputSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	pickupSystem    *PickupSystem
	projection      utils.Projection
	lastCursorShape ebiten.CursorShapeType
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState, ps *PickupSystem, projection utils.Projection) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
		pickupSystem:  ps,
		projection:    projection,
	}
}

// Update 处理本帧输入
// 只在 Play 阶段响应点击
func (s *InputSystem) Update() {
	if s.gameState.Phase() != game.PhasePlay {
		s.clearHover()
		s.setCursorShape(ebiten.CursorShapeDefault)
		return
	}

	pointer := utils.ReadPointer()
	_, hovering := s.HandlePointer(float64(pointer.X), float64(pointer.Y), pointer.JustPressed)

	if hovering && !pointer.IsTouching {
		s.setCursorShape(ebiten.CursorShapePointer)
	} else {
		s.setCursorShape(ebiten.CursorShapeDefault)
	}
}

// HandlePointer 处理一次指针事件
//
// 更新所有牌的悬停标记（只有最上面那张为 true），pressed 时对它触发拾取。
// 返回指针下方的牌。
func (s *InputSystem) HandlePointer(screenX, screenY float64, pressed bool) (ecs.EntityID, bool) {
	worldX, worldZ := s.projection.ScreenToWorld(screenX, screenY)
	hovered, ok := PickCard(s.entityManager, worldX, worldZ)

	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		clickable.IsHovered = ok && id == hovered
	}

	if ok && pressed {
		s.pickupSystem.Trigger(hovered)
	}
	return hovered, ok
}

func (s *InputSystem) clearHover() {
	for _, id := range ecs.GetEntitiesWith1[*components.ClickableComponent](s.entityManager) {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		clickable.IsHovered = false
	}
}

func (s *InputSystem) setCursorShape(shape ebiten.CursorShapeType) {
	if shape != s.lastCursorShape {
		ebiten.SetCursorShape(shape)
		s.lastCursorShape = shape
	}
}
