package entities

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// NewShip 创建玩家飞船并放在屏幕底部中央
// 每个会话只创建一次，之后通过 CenterShip 复位
func NewShip(em *ecs.EntityManager, s *game.Settings, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  s.ShipWidth,
		Height: s.ShipHeight,
	})
	ecs.AddComponent(em, id, &components.ShipComponent{})
	ecs.AddComponent(em, id, &components.ShapeComponent{Kind: components.ShapeShip, Color: c})
	CenterShip(em, id, s)
	return id
}

// CenterShip 将飞船放回屏幕底部中央
// 移动标志保持不变，按住的方向键在复位后继续生效
func CenterShip(em *ecs.EntityManager, id ecs.EntityID, s *game.Settings) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}
	pos.X = (s.ScreenWidth - s.ShipWidth) / 2
	pos.Y = s.ScreenHeight - s.ShipHeight
}

// StopShip 清除飞船的移动标志
func StopShip(em *ecs.EntityManager, id ecs.EntityID) {
	if ship, ok := ecs.GetComponent[*components.ShipComponent](em, id); ok {
		ship.MovingLeft = false
		ship.MovingRight = false
	}
}
