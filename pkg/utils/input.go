// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针状态
// 鼠标和触摸统一成一个指针
type PointerState struct {
	// JustPressed 本帧刚刚发生点击/触摸
	JustPressed bool
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// IsTouching 当前指针来自触摸
	IsTouching bool
}

// ReadPointer 读取当前帧的指针状态
// 优先检测触摸，没有触摸时使用鼠标
func ReadPointer() PointerState {
	state := PointerState{}

	// 新的触摸事件
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 持续中的触摸（只用于悬停）
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.X, state.Y = ebiten.CursorPosition()
	return state
}
