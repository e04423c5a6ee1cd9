package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
)

// ButtonRenderSystem 按钮渲染系统
type ButtonRenderSystem struct {
	em         *ecs.EntityManager
	fontSource *text.GoTextFaceSource // 为 nil 时只绘制底色
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager, fontSource *text.GoTextFaceSource) *ButtonRenderSystem {
	return &ButtonRenderSystem{em: em, fontSource: fontSource}
}

// DrawButton 渲染单个按钮
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.em, entityID)
	if !ok {
		return
	}

	r := button.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), button.FillColor, false)

	s.drawButtonText(screen, button)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent) {
	if button.Label == "" || s.fontSource == nil {
		return
	}
	face := &text.GoTextFace{Source: s.fontSource, Size: button.FontSize}

	centerX := button.Rect.X + button.Rect.Width/2
	centerY := button.Rect.Y + button.Rect.Height/2

	// 1. 先绘制阴影
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+2, centerY+1)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Label, face, shadowOp)

	// 2. 再绘制主文字
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY-1)
	op.ColorScale.ScaleWithColor(button.TextColor)
	text.Draw(screen, button.Label, face, op)
}
