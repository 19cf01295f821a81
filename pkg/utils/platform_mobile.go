//go:build mobile

package utils

// IsMobile 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// PointerVerb 触屏设备上的提示动词
func PointerVerb() string {
	return "Tap"
}
