// Package render 用 ebiten 绘制游戏场景
//
// 游戏逻辑包不依赖 ebiten，所有 ebiten 绘制都在本包中，只有桌面端和移动端引用。
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
)

// RenderSystem 绘制游戏世界实体：星星、飞船、子弹和外星人
// 所有图形由 ShapeComponent 描述，用 vector 绘制，不加载任何图片
type RenderSystem struct {
	em *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{em: em}
}

// drawOrder 从后到前的绘制顺序
var drawOrder = []components.ShapeKind{
	components.ShapeStar,
	components.ShapeShip,
	components.ShapeBullet,
	components.ShapeAlien,
}

// Draw 按层绘制所有带 ShapeComponent 的实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.ShapeComponent, *components.PositionComponent, *components.CollisionComponent](s.em)

	for _, kind := range drawOrder {
		for _, id := range ids {
			shape, _ := ecs.GetComponent[*components.ShapeComponent](s.em, id)
			if shape.Kind != kind {
				continue
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
			col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
			DrawShape(screen, shape.Kind, components.BoundsOf(pos, col), shape.Color)
		}
	}
}

// DrawShape 在矩形 r 内绘制一种图形
// 计分板的剩余飞船图标也使用此函数
func DrawShape(screen *ebiten.Image, kind components.ShapeKind, r components.Rect, c color.RGBA) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)

	switch kind {
	case components.ShapeStar:
		vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, c, true)

	case components.ShapeBullet:
		vector.DrawFilledRect(screen, x, y, w, h, c, false)

	case components.ShapeShip:
		// 机身、机头和两侧机翼
		vector.DrawFilledRect(screen, x+w*0.35, y, w*0.3, h*0.4, c, true)
		vector.DrawFilledRect(screen, x+w*0.2, y+h*0.3, w*0.6, h*0.55, c, true)
		vector.DrawFilledRect(screen, x, y+h*0.6, w, h*0.3, c, true)
		vector.DrawFilledRect(screen, x+w*0.3, y+h*0.9, w*0.4, h*0.1, color.RGBA{R: 255, G: 140, B: 0, A: 255}, true)
		vector.DrawFilledCircle(screen, x+w/2, y+h*0.45, w*0.08, color.RGBA{R: 40, G: 120, B: 220, A: 255}, true)

	case components.ShapeAlien:
		// 圆头、身体、眼睛和触手
		vector.DrawFilledCircle(screen, x+w/2, y+h*0.35, w*0.35, c, true)
		vector.DrawFilledRect(screen, x+w*0.1, y+h*0.35, w*0.8, h*0.35, c, true)
		for i := 0; i < 4; i++ {
			vector.DrawFilledRect(screen, x+w*(0.12+0.22*float32(i)), y+h*0.7, w*0.1, h*0.3, c, true)
		}
		eye := color.RGBA{A: 255}
		vector.DrawFilledCircle(screen, x+w*0.37, y+h*0.38, w*0.07, eye, true)
		vector.DrawFilledCircle(screen, x+w*0.63, y+h*0.38, w*0.07, eye, true)
	}
}
