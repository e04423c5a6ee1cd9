//go:build mobile

package utils

// MobileEmulateEnv 移动端构建中不使用，保留以便两端代码一致
const MobileEmulateEnv = "ALIENINVASION_MOBILE_EMULATE"

// IsMobile 移动端编译时恒为 true
func IsMobile() bool {
	return true
}
