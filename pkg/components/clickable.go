package components

// ClickableComponent 标记实体可以被鼠标点击
// 定义了可点击区域的尺寸和是否启用点击
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(世界单位，牌的局部 X 方向)
	Depth     float64 // 可点击区域的深度(世界单位，牌的局部 Z 方向)
	IsEnabled bool    // 是否可以被点击(用于禁用已点击的对象)
	IsHovered bool    // 鼠标是否悬停在上面（由 InputSystem 每帧更新）
}
