package entities

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// NewBullet 在飞船顶部中央创建一颗子弹
// 上限检查由 BulletSystem.Fire 负责
func NewBullet(em *ecs.EntityManager, s *game.Settings, shipBounds components.Rect, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: shipBounds.CenterX() - s.BulletWidth/2,
		Y: shipBounds.Top(),
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  s.BulletWidth,
		Height: s.BulletHeight,
	})
	ecs.AddComponent(em, id, &components.BulletComponent{})
	ecs.AddComponent(em, id, &components.ShapeComponent{Kind: components.ShapeBullet, Color: c})
	return id
}
