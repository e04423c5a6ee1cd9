package systems

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/entities"
	"github.com/gonewx/alieninvasion/pkg/game"
)

var testColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// testWorld 测试用的完整系统组合
type testWorld struct {
	em        *ecs.EntityManager
	settings  *game.Settings
	stats     *game.GameStats
	ship      *ShipSystem
	bullets   *BulletSystem
	collision *CollisionSystem
	fleet     *FleetSystem
}

// newTestWorld 创建指定屏幕尺寸的测试环境（不创建舰队）
func newTestWorld(width, height float64) *testWorld {
	em := ecs.NewEntityManager()
	settings := game.NewSettings(config.DefaultGameConfig(), width, height)
	stats := game.NewGameStats(settings)
	shipID := entities.NewShip(em, settings, testColor)
	ship := NewShipSystem(em, settings, shipID)
	return &testWorld{
		em:        em,
		settings:  settings,
		stats:     stats,
		ship:      ship,
		bullets:   NewBulletSystem(em, settings, ship, testColor),
		collision: NewCollisionSystem(em, settings, stats),
		fleet:     NewFleetSystem(em, settings, testColor),
	}
}

// addAlien 在指定位置放置一个外星人
func (w *testWorld) addAlien(x, y float64) ecs.EntityID {
	id := entities.NewAlien(w.em, w.settings, 0, 0, 1, testColor)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	return id
}

// addBullet 在指定位置放置一颗子弹（绕过上限）
func (w *testWorld) addBullet(x, y float64) ecs.EntityID {
	id := entities.NewBullet(w.em, w.settings, components.Rect{}, testColor)
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
	pos.X, pos.Y = x, y
	return id
}

// shipPosition 返回飞船位置组件
func (w *testWorld) shipPosition() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.ship.ShipID())
	return pos
}
