package systems

import (
	"log"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// PickupSystem 处理拾取触发：Scattered -> Animating
//
// 由 InputSystem 在玩家点中一张牌时调用。
type PickupSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState

	target     types.Transform // 牌堆基准变换
	stackStep  float64         // 每个槽位的高度增量
	duration   float64
	easing     string
	liftHeight float64
	flipAt     float64
}

// NewPickupSystem 创建拾取系统
func NewPickupSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig) *PickupSystem {
	return &PickupSystem{
		entityManager: em,
		gameState:     gs,
		target:        cfg.PickupTarget(),
		stackStep:     cfg.Pickup.StackStep,
		duration:      cfg.Pickup.DurationSeconds,
		easing:        cfg.Pickup.Easing,
		liftHeight:    cfg.Pickup.LiftHeight,
		flipAt:        cfg.Pickup.FlipAt,
	}
}

// TargetForSlot 返回牌堆第 slot 个槽位的变换
// 槽位 0 就是基准变换本身
func (s *PickupSystem) TargetForSlot(slot int) types.Transform {
	return s.target.Translated(mgl64.Vec3{0, float64(slot) * s.stackStep, 0})
}

// Trigger 开始拾取一张牌
//
// 只有处于 Scattered 状态的牌会被触发；其余情况（已在飞行、已收集、
// 实体不存在）不做任何事并返回 false。
func (s *PickupSystem) Trigger(id ecs.EntityID) bool {
	state, ok := ecs.GetComponent[*components.PickupStateComponent](s.entityManager, id)
	if !ok || state.State != components.PickupScattered {
		return false
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return false
	}

	// 1. 更新状态为动画中
	state.State = components.PickupAnimating

	// 2. 禁用点击，防止重复点击
	if clickable, ok := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id); ok {
		clickable.IsEnabled = false
		clickable.IsHovered = false
	}

	// 3. 添加拾取动画组件，记录起点和牌堆槽位
	slot := s.gameState.ReserveSlot()
	ecs.AddComponent(s.entityManager, id, &components.PickupAnimationComponent{
		Start:      transform.Transform,
		Target:     s.TargetForSlot(slot),
		Slot:       slot,
		Progress:   0,
		Duration:   s.duration,
		Easing:     s.easing,
		LiftHeight: s.liftHeight,
		FlipAt:     s.flipAt,
	})

	if card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id); ok {
		log.Printf("[PickupSystem] 拾取 %s -> 槽位 %d", card.ID.Name(), slot)
	}
	return true
}

// Cancel 取消一张牌的拾取动画
//
// 只移除动画组件：牌停在当前位置并保持 Animating 状态（状态不会倒退），
// PickupAnimationSystem 之后会跳过它。返回是否确实移除了动画。
func (s *PickupSystem) Cancel(id ecs.EntityID) bool {
	if !ecs.HasComponent[*components.PickupAnimationComponent](s.entityManager, id) {
		return false
	}
	ecs.RemoveComponent[*components.PickupAnimationComponent](s.entityManager, id)
	log.Printf("[PickupSystem] 取消实体 %d 的拾取动画", id)
	return true
}
