package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（推荐用于"飞向目标"动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（适合"弹性"效果）
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseSmoothStep 平滑阶梯（Hermite 插值）
// 特点：两端速度为零，默认的拾取动画曲线
// 公式：f(t) = t²(3 - 2t)
func EaseSmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// EaseSmootherStep 更平滑的阶梯（Perlin 版本）
// 特点：两端速度和加速度都为零
// 公式：f(t) = t³(t(6t - 15) + 10)
func EaseSmootherStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

// EaseSmoothStepOut 平滑阶梯的后半段，重映射到 [0, 1]
// 特点：开始快，结束柔和（牌被拿起时的感觉）
func EaseSmoothStepOut(t float64) float64 {
	t = Clamp01(t)
	return EaseSmoothStep(0.5+t*0.5)*2 - 1
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EasingFunc 缓动函数签名
type EasingFunc func(t float64) float64

var easingByName = map[string]EasingFunc{
	"linear":         EaseLinear,
	"smoothstep":     EaseSmoothStep,
	"smootherstep":   EaseSmootherStep,
	"smoothstepOut":  EaseSmoothStepOut,
	"easeInQuad":     EaseInQuad,
	"easeOutQuad":    EaseOutQuad,
	"easeInCubic":    EaseInCubic,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
	"easeOutExpo":    EaseOutExpo,
}

// EasingByName 按配置中的名称查找缓动函数
func EasingByName(name string) (EasingFunc, bool) {
	fn, ok := easingByName[name]
	return fn, ok
}
