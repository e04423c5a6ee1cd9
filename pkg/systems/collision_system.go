package systems

import (
	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// CollisionSystem 处理子弹与外星人、外星人与飞船的碰撞
type CollisionSystem struct {
	em       *ecs.EntityManager
	settings *game.Settings
	stats    *game.GameStats
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, settings *game.Settings, stats *game.GameStats) *CollisionSystem {
	return &CollisionSystem{em: em, settings: settings, stats: stats}
}

// CheckBulletAlienCollisions 检测子弹与外星人的碰撞并计分
//
// 每次碰撞恰好消耗一颗子弹和一个外星人。按子弹ID升序处理，
// 每颗子弹命中与其重叠的ID最小且尚未被消耗的外星人。
// 所有命中先标记，遍历结束后统一清除。
// 返回本帧击毁的外星人数量。
func (cs *CollisionSystem) CheckBulletAlienCollisions() int {
	bullets := ecs.GetEntitiesWith1[*components.BulletComponent](cs.em)
	aliens := ecs.GetEntitiesWith1[*components.AlienComponent](cs.em)
	if len(bullets) == 0 || len(aliens) == 0 {
		return 0
	}

	alienRects := make([]components.Rect, len(aliens))
	for i, id := range aliens {
		alienRects[i] = cs.bounds(id)
	}
	consumed := make([]bool, len(aliens))

	destroyed := 0
	for _, bulletID := range bullets {
		bulletRect := cs.bounds(bulletID)
		for i, alienID := range aliens {
			if consumed[i] || !bulletRect.Intersects(alienRects[i]) {
				continue
			}
			consumed[i] = true
			cs.em.DestroyEntity(bulletID)
			cs.em.DestroyEntity(alienID)
			destroyed++
			break
		}
	}
	cs.em.RemoveMarkedEntities()

	if destroyed > 0 {
		cs.stats.AddScore(cs.settings.AlienPoints * destroyed)
	}
	return destroyed
}

// ShipCollidesWithAlien 任一外星人与飞船重叠时返回 true
func (cs *CollisionSystem) ShipCollidesWithAlien(ship components.Rect) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.AlienComponent](cs.em) {
		if ship.Intersects(cs.bounds(id)) {
			return true
		}
	}
	return false
}

func (cs *CollisionSystem) bounds(id ecs.EntityID) components.Rect {
	pos, ok1 := ecs.GetComponent[*components.PositionComponent](cs.em, id)
	col, ok2 := ecs.GetComponent[*components.CollisionComponent](cs.em, id)
	if !ok1 || !ok2 {
		return components.Rect{}
	}
	return components.BoundsOf(pos, col)
}
