//go:build !mobile

// Package mobile 的桌面端占位
//
// 绑定代码在 mobile.go 和 embed.go 中，仅在 -tags mobile 时编译。
package mobile

// Dummy 保证包在桌面端构建时非空
func Dummy() {}
