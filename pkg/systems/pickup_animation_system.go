package systems

import (
	"log"
	"math"

	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/types"
	"github.com/decker502/pickup52/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// PickupAnimationSystem 推进所有拾取动画：Animating -> Collected
//
// 每帧对带 PickupAnimationComponent 的牌：
//  1. Progress += dt / Duration（截断到 1.0）
//  2. 位置 = lerp(起点, 终点, ease) + 抬起弧线，旋转 = slerp(起点, 终点, ease)
//  3. 进度到 1.0 时变换固定为终点，移除动画组件，状态改为 Collected
//
// 每张牌的动画互相独立，唯一共享的是 GameState 的收集计数。
type PickupAnimationSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewPickupAnimationSystem 创建拾取动画系统
func NewPickupAnimationSystem(em *ecs.EntityManager, gs *game.GameState) *PickupAnimationSystem {
	return &PickupAnimationSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 推进一帧
func (s *PickupAnimationSystem) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	animating := ecs.GetEntitiesWith3[
		*components.PickupAnimationComponent,
		*components.TransformComponent,
		*components.PickupStateComponent,
	](s.entityManager)

	for _, id := range animating {
		anim, _ := ecs.GetComponent[*components.PickupAnimationComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		state, _ := ecs.GetComponent[*components.PickupStateComponent](s.entityManager, id)

		// 动画组件只应出现在 Animating 状态的牌上
		if state.State != components.PickupAnimating {
			ecs.RemoveComponent[*components.PickupAnimationComponent](s.entityManager, id)
			continue
		}

		if anim.Duration > 0 {
			anim.Progress += deltaTime / anim.Duration
		} else {
			anim.Progress = 1.0
		}
		if anim.Progress > 1.0 {
			anim.Progress = 1.0
		}

		card, hasCard := ecs.GetComponent[*components.CardComponent](s.entityManager, id)

		if anim.Progress >= 1.0 {
			// 固定到终点，避免浮点误差
			transform.Transform = anim.Target
			state.State = components.PickupCollected
			ecs.RemoveComponent[*components.PickupAnimationComponent](s.entityManager, id)

			if hasCard {
				card.FaceUp = anim.Target.FaceUp()
				log.Printf("[PickupAnimationSystem] %s 已收进牌堆 (槽位 %d)", card.ID.Name(), anim.Slot)
			}
			s.gameState.CollectCard()
			continue
		}

		transform.Transform = InterpolatePickup(anim, anim.Progress)
		if hasCard && anim.Progress >= anim.FlipAt {
			card.FaceUp = anim.Target.FaceUp()
		}
	}
}

// InterpolatePickup 计算拾取动画在 progress 处的变换
//
// progress 会被截断到 [0,1]。progress=0 返回起点，progress=1 精确返回终点。
func InterpolatePickup(anim *components.PickupAnimationComponent, progress float64) types.Transform {
	progress = utils.Clamp01(progress)
	if progress >= 1.0 {
		return anim.Target
	}
	if progress <= 0 {
		return anim.Start
	}

	easeFn, ok := utils.EasingByName(anim.Easing)
	if !ok {
		easeFn = utils.EaseLinear
	}
	ease := easeFn(progress)

	// 位置线性插值
	from, to := anim.Start.Position, anim.Target.Position
	pos := mgl64.Vec3{
		utils.Lerp(from.X(), to.X(), ease),
		utils.Lerp(from.Y(), to.Y(), ease),
		utils.Lerp(from.Z(), to.Z(), ease),
	}
	// 抬起弧线：两端为 0，中点最高
	pos[1] += anim.LiftHeight * math.Sin(math.Pi*ease)

	// QuatSlerp 不选最短路径，点积为负时翻转终点符号
	end := anim.Target.Rotation
	if anim.Start.Rotation.Dot(end) < 0 {
		end = end.Scale(-1)
	}
	rot := mgl64.QuatSlerp(anim.Start.Rotation, end, ease).Normalize()

	return types.Transform{Position: pos, Rotation: rot}
}
