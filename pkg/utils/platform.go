//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，设置 PICKUP52_MOBILE_EMULATE=1 可在桌面上模拟触屏文案
func IsMobile() bool {
	return os.Getenv("PICKUP52_MOBILE_EMULATE") == "1"
}

// PointerVerb 界面提示里用的动词："Tap"（触屏）或 "Click"
func PointerVerb() string {
	if IsMobile() {
		return "Tap"
	}
	return "Click"
}
