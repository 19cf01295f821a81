package systems

import (
	"github.com/decker502/pickup52/pkg/components"
	"github.com/decker502/pickup52/pkg/ecs"
	"github.com/decker502/pickup52/pkg/utils"
)

// PickCard 返回世界坐标 (x, z) 处最上面的一张可点击的牌
//
// 只考虑 Scattered 且点击启用的牌；多张重叠时取高度 Y 最大者，
// 高度相同时取后发的（ID 更大）。
func PickCard(em *ecs.EntityManager, x, z float64) (ecs.EntityID, bool) {
	candidates := ecs.GetEntitiesWith3[
		*components.TransformComponent,
		*components.ClickableComponent,
		*components.PickupStateComponent,
	](em)

	var (
		best   ecs.EntityID
		bestY  float64
		picked bool
	)
	for _, id := range candidates {
		state, _ := ecs.GetComponent[*components.PickupStateComponent](em, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
		if state.State != components.PickupScattered || !clickable.IsEnabled {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		pos := transform.Position
		if !utils.PointInOrientedRect(x, z, pos.X(), pos.Z(), transform.Yaw(), clickable.Width/2, clickable.Depth/2) {
			continue
		}
		// candidates 按 ID 升序，>= 让后发的牌胜出
		if !picked || pos.Y() >= bestY {
			best, bestY, picked = id, pos.Y(), true
		}
	}
	return best, picked
}
