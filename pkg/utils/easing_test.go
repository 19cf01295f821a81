package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 1 - 0.125 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}

	// 验证"开始快，结束慢"的特性
	t.Run("开始快于线性", func(t *testing.T) {
		// 在前半段（p < 0.5），缓出函数应该比线性快
		for p := 0.1; p < 0.5; p += 0.1 {
			eased := EaseOutCubic(p)
			linear := EaseLinear(p)
			if eased <= linear {
				t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值 %v（开始快）", p, eased, linear)
			}
		}
	})

	t.Run("整体快于线性", func(t *testing.T) {
		// EaseOut 的"结束慢"指的是速度减缓，而非位置落后
		// 由于前半段加速，整个过程中位置都会领先或等于线性
		for p := 0.0; p <= 1.0; p += 0.1 {
			eased := EaseOutCubic(p)
			linear := EaseLinear(p)
			// 允许微小的浮点误差
			if eased < linear-0.001 {
				t.Errorf("EaseOutCubic(%v) = %v 不应该落后于线性值 %v", p, eased, linear)
			}
		}
	})
}

// TestEaseInCubic 测试三次方缓入函数
func TestEaseInCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.125}, // 0.5^3 = 0.125
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutQuad 测试二次方缓出函数
func TestEaseOutQuad(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.75}, // 1 - (1-0.5)^2 = 1 - 0.25 = 0.75
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutQuad(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutQuad(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestLerp 测试线性插值函数
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		t        float64
		expected float64
	}{
		{"起点", 0.0, 100.0, 0.0, 0.0},
		{"中点", 0.0, 100.0, 0.5, 50.0},
		{"终点", 0.0, 100.0, 1.0, 100.0},
		{"四分之一", 0.0, 100.0, 0.25, 25.0},
		{"负数范围", -50.0, 50.0, 0.5, 0.0},
		{"逆向范围", 100.0, 0.0, 0.5, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubicWithLerp 测试缓动函数与插值结合使用
// 模拟牌飞向拾取牌堆的实际使用场景
func TestEaseOutCubicWithLerp(t *testing.T) {
	// 模拟牌从 (100, 200) 飞向 (50, 50) 的动画
	startX, startY := 100.0, 200.0
	targetX, targetY := 50.0, 50.0

	// 测试不同进度下的位置
	tests := []struct {
		progress float64
		// 预期位置会更靠近终点（因为缓出）
	}{
		{0.0},
		{0.25},
		{0.5},
		{0.75},
		{1.0},
	}

	for _, tt := range tests {
		easedProgress := EaseOutCubic(tt.progress)
		x := Lerp(startX, targetX, easedProgress)
		y := Lerp(startY, targetY, easedProgress)

		// 验证边界
		if tt.progress == 0.0 {
			if math.Abs(x-startX) > 0.001 || math.Abs(y-startY) > 0.001 {
				t.Errorf("进度 0.0 时应该在起点: (%v, %v), 实际: (%v, %v)", startX, startY, x, y)
			}
		}
		if tt.progress == 1.0 {
			if math.Abs(x-targetX) > 0.001 || math.Abs(y-targetY) > 0.001 {
				t.Errorf("进度 1.0 时应该在终点: (%v, %v), 实际: (%v, %v)", targetX, targetY, x, y)
			}
		}

		// 验证 X 和 Y 都在起点和终点之间
		if x < targetX || x > startX {
			t.Errorf("X 坐标 %v 超出范围 [%v, %v]", x, targetX, startX)
		}
		if y < targetY || y > startY {
			t.Errorf("Y 坐标 %v 超出范围 [%v, %v]", y, targetY, startY)
		}
	}
}

// TestEaseSmoothStepFamily 测试平滑阶梯系列的端点和单调性
func TestEaseSmoothStepFamily(t *testing.T) {
	funcs := map[string]EasingFunc{
		"smoothstep":    EaseSmoothStep,
		"smootherstep":  EaseSmootherStep,
		"smoothstepOut": EaseSmoothStepOut,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if fn(0) != 0 {
				t.Errorf("%s(0) = %v, 期望 0", name, fn(0))
			}
			if fn(1) != 1 {
				t.Errorf("%s(1) = %v, 期望 1", name, fn(1))
			}

			prev := fn(0)
			for i := 1; i <= 100; i++ {
				cur := fn(float64(i) / 100)
				if cur < prev {
					t.Fatalf("%s 在 t=%v 处不单调: %v < %v", name, float64(i)/100, cur, prev)
				}
				prev = cur
			}

			// 超出范围的输入被钳制
			if fn(-0.5) != 0 || fn(1.5) != 1 {
				t.Errorf("%s 应钳制输入到 [0, 1]", name)
			}
		})
	}

	if math.Abs(EaseSmoothStep(0.5)-0.5) > 1e-12 {
		t.Errorf("EaseSmoothStep(0.5) = %v, 期望 0.5", EaseSmoothStep(0.5))
	}
}

// TestEasingByName 测试按名称查找缓动函数
func TestEasingByName(t *testing.T) {
	fn, ok := EasingByName("smoothstep")
	if !ok {
		t.Fatal("smoothstep 应存在")
	}
	if fn(0.25) != EaseSmoothStep(0.25) {
		t.Error("EasingByName 返回了错误的函数")
	}

	if _, ok := EasingByName("bounce"); ok {
		t.Error("未知名称不应找到")
	}
}
