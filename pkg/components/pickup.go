package components

import "github.com/decker502/pickup52/pkg/types"

// PickupState 表示牌的拾取状态
// 状态只能单向推进：Scattered -> Animating -> Collected
type PickupState int

const (
	PickupScattered PickupState = iota // 散落在桌面上，可以点击
	PickupAnimating                    // 正在飞向牌堆
	PickupCollected                    // 已收进牌堆（终态）
)

// String 返回状态名称
func (s PickupState) String() string {
	switch s {
	case PickupScattered:
		return "Scattered"
	case PickupAnimating:
		return "Animating"
	case PickupCollected:
		return "Collected"
	default:
		return "Unknown"
	}
}

// PickupStateComponent 牌的拾取状态
type PickupStateComponent struct {
	State PickupState
}

// PickupAnimationComponent 存储拾取动画的状态
// 用于实现牌从散落位置飞向牌堆的缓动动画
//
// 工作流程：
//  1. PickupSystem.Trigger 点击牌时添加此组件，记录起点和终点
//  2. PickupAnimationSystem 每帧根据 Progress 计算缓动位置和旋转
//  3. Progress 从 0.0 增长到 1.0 时，变换固定到 Target，状态变为 Collected，组件被移除
//
// 移除此组件即取消动画：牌保持 Animating 状态，系统不再推进它。
type PickupAnimationComponent struct {
	// Start 动画起点变换（点击时牌的位置）
	Start types.Transform

	// Target 动画终点变换（牌堆中对应槽位）
	Target types.Transform

	// Slot 在牌堆中的序号（0 为最底下）
	Slot int

	// Progress 当前动画进度（0.0 = 起点，1.0 = 终点）
	// PickupAnimationSystem 会根据 deltaTime 递增此值
	Progress float64

	// Duration 动画总时长（秒）
	Duration float64

	// Easing 缓动函数名称
	Easing string

	// LiftHeight 途中抬起的最大高度
	LiftHeight float64

	// FlipAt 进度达到该值时牌面翻到正面
	FlipAt float64
}
