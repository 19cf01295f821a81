package types

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform 三维变换（位置 + 旋转）
//
// 世界坐标系：X 向右，Y 向上（桌面法线），Z 指向屏幕上方。
// 旋转为单位四元数；Identity 表示牌背朝上平放在桌面上。
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityTransform 返回原点处、无旋转的变换
func IdentityTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent()}
}

// NewTransform 用坐标和旋转构造变换
func NewTransform(x, y, z float64, rotation mgl64.Quat) Transform {
	return Transform{Position: mgl64.Vec3{x, y, z}, Rotation: rotation}
}

// Translated 返回平移 offset 后的副本
func (t Transform) Translated(offset mgl64.Vec3) Transform {
	t.Position = t.Position.Add(offset)
	return t
}

// Yaw 返回绕 Y 轴的朝向角（弧度），用于俯视渲染和点击检测
func (t Transform) Yaw() float64 {
	// 取局部 X 轴在世界中的投影方向
	axis := t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	return math.Atan2(-axis.Z(), axis.X())
}

// FaceUp 牌背法线（局部 +Y）朝下时，牌正面朝上
func (t Transform) FaceUp() bool {
	return t.Up().Y() < 0
}

// Up 返回局部 +Y 在世界中的方向
func (t Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}
