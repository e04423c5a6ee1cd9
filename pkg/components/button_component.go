package components

import "image/color"

// ButtonComponent 按钮组件（ECS 架构）
// 纯数据组件，点击判定由场景根据 Rect 完成
type ButtonComponent struct {
	// Label 按钮文字
	Label string
	// Rect 按钮屏幕区域
	Rect Rect
	// FillColor 按钮底色
	FillColor color.RGBA
	// TextColor 文字颜色
	TextColor color.RGBA
	// FontSize 文字字号
	FontSize float64
}
