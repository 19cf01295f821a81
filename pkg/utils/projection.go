package utils

import "math"

// Projection 俯视正交投影：世界 X/Z 平面 <-> 屏幕像素
//
// 摄像机位于桌面正上方向下看，世界 +Z 对应屏幕上方。
// 高度 Y 不影响屏幕坐标，只用于绘制顺序。
type Projection struct {
	// CenterX, CenterY 世界原点在屏幕上的位置
	CenterX, CenterY float64
	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit float64
}

// FitProjection 计算一个把 halfWidth × halfDepth 的桌面完整放进屏幕的投影，四周保留 margin 像素
func FitProjection(halfWidth, halfDepth float64, screenWidth, screenHeight int, margin float64) Projection {
	availW := float64(screenWidth) - 2*margin
	availH := float64(screenHeight) - 2*margin
	ppu := 1.0
	if halfWidth > 0 && halfDepth > 0 && availW > 0 && availH > 0 {
		ppu = math.Min(availW/(2*halfWidth), availH/(2*halfDepth))
	}
	return Projection{
		CenterX:       float64(screenWidth) / 2,
		CenterY:       float64(screenHeight) / 2,
		PixelsPerUnit: ppu,
	}
}

// WorldToScreen 世界坐标 (x, z) 转屏幕坐标
func (p Projection) WorldToScreen(x, z float64) (float64, float64) {
	return p.CenterX + x*p.PixelsPerUnit, p.CenterY - z*p.PixelsPerUnit
}

// ScreenToWorld 屏幕坐标转世界坐标 (x, z)
func (p Projection) ScreenToWorld(sx, sy float64) (float64, float64) {
	if p.PixelsPerUnit == 0 {
		return 0, 0
	}
	return (sx - p.CenterX) / p.PixelsPerUnit, (p.CenterY - sy) / p.PixelsPerUnit
}

// PointInOrientedRect 检查点 (px, pz) 是否落在以 (cx, cz) 为中心、
// 绕 Y 轴旋转 yaw、半宽 halfW（局部 X）半深 halfD（局部 Z）的矩形内
func PointInOrientedRect(px, pz, cx, cz, yaw, halfW, halfD float64) bool {
	dx := px - cx
	dz := pz - cz
	cos, sin := math.Cos(yaw), math.Sin(yaw)
	// 逆旋转回牌的局部坐标
	lx := dx*cos - dz*sin
	lz := dx*sin + dz*cos
	return math.Abs(lx) <= halfW && math.Abs(lz) <= halfD
}
