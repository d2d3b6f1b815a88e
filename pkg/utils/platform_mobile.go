//go:build mobile

package utils

// IsMobile 移动端编译时总是返回 true
// 移动端没有键盘，调用方据此默认显示 HUD
func IsMobile() bool {
	return true
}
