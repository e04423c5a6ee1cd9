package systems

import (
	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// ShipSystem 根据移动标志移动飞船
type ShipSystem struct {
	em       *ecs.EntityManager
	settings *game.Settings
	shipID   ecs.EntityID
}

// NewShipSystem 创建飞船系统
func NewShipSystem(em *ecs.EntityManager, settings *game.Settings, shipID ecs.EntityID) *ShipSystem {
	return &ShipSystem{em: em, settings: settings, shipID: shipID}
}

// Update 按标志移动一帧，结果限制在 [0, ScreenWidth] 内
// 两个标志同时为真时相互抵消
func (s *ShipSystem) Update() {
	pos, col, ship, ok := s.components()
	if !ok {
		return
	}

	if ship.MovingRight && pos.X+col.Width < s.settings.ScreenWidth {
		pos.X += s.settings.ShipSpeed
	}
	if ship.MovingLeft && pos.X > 0 {
		pos.X -= s.settings.ShipSpeed
	}

	pos.X = max(0, min(pos.X, s.settings.ScreenWidth-col.Width))
}

// Bounds 返回飞船当前矩形
func (s *ShipSystem) Bounds() components.Rect {
	pos, col, _, ok := s.components()
	if !ok {
		return components.Rect{}
	}
	return components.BoundsOf(pos, col)
}

// Ship 返回飞船组件，用于设置移动标志
func (s *ShipSystem) Ship() *components.ShipComponent {
	_, _, ship, _ := s.components()
	return ship
}

// ShipID 返回飞船实体ID
func (s *ShipSystem) ShipID() ecs.EntityID {
	return s.shipID
}

func (s *ShipSystem) components() (*components.PositionComponent, *components.CollisionComponent, *components.ShipComponent, bool) {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](s.em, s.shipID)
	col, ok2 := ecs.GetComponent[*components.CollisionComponent](s.em, s.shipID)
	ship, ok3 := ecs.GetComponent[*components.ShipComponent](s.em, s.shipID)
	return pos, col, ship, ok1 && ok2 && ok3
}
