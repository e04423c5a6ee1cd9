package systems

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/entities"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// BulletSystem 负责子弹的发射、移动和移除
type BulletSystem struct {
	em       *ecs.EntityManager
	settings *game.Settings
	ship     *ShipSystem
	color    color.RGBA
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager, settings *game.Settings, ship *ShipSystem, c color.RGBA) *BulletSystem {
	return &BulletSystem{em: em, settings: settings, ship: ship, color: c}
}

// Fire 在飞船顶部发射一颗子弹
// 已达上限时不做任何事并返回 false
func (bs *BulletSystem) Fire() bool {
	if bs.Count() >= bs.settings.BulletsAllowed {
		return false
	}
	entities.NewBullet(bs.em, bs.settings, bs.ship.Bounds(), bs.color)
	return true
}

// Update 所有子弹上移一帧，移除底边到达 y<=0 的子弹
// 返回移除数量
func (bs *BulletSystem) Update() int {
	removed := 0
	for _, id := range ecs.GetEntitiesWith3[*components.BulletComponent, *components.PositionComponent, *components.CollisionComponent](bs.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](bs.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](bs.em, id)

		pos.Y -= bs.settings.BulletSpeed
		if pos.Y+col.Height <= 0 {
			bs.em.DestroyEntity(id)
			removed++
		}
	}
	bs.em.RemoveMarkedEntities()
	return removed
}

// Clear 移除所有子弹
func (bs *BulletSystem) Clear() {
	entities.DestroyAll[*components.BulletComponent](bs.em)
}

// Count 当前子弹数量
func (bs *BulletSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.BulletComponent](bs.em))
}
