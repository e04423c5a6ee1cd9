package systems

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/entities"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// FleetSystem 管理外星人舰队：整队转向、移动、触底检测和重建
type FleetSystem struct {
	em         *ecs.EntityManager
	settings   *game.Settings
	color      color.RGBA
	generation int
}

// NewFleetSystem 创建舰队系统，不会立即创建舰队
func NewFleetSystem(em *ecs.EntityManager, settings *game.Settings, c color.RGBA) *FleetSystem {
	return &FleetSystem{em: em, settings: settings, color: c}
}

// CheckFleetEdges 任一外星人越过边缘留白时整队下移并反向
// 每帧最多触发一次，返回是否触发
func (fs *FleetSystem) CheckFleetEdges() bool {
	ids := fs.aliens()
	hit := false
	for _, id := range ids {
		r := fs.bounds(id)
		if r.Left() < config.EdgeMargin || r.Right() > fs.settings.ScreenWidth-config.EdgeMargin {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	for _, id := range ids {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](fs.em, id); ok {
			pos.Y += fs.settings.FleetDropSpeed
		}
	}
	fs.settings.ReverseFleetDirection()
	return true
}

// Update 整队水平移动一帧
func (fs *FleetSystem) Update() {
	dx := fs.settings.AlienSpeed * fs.settings.FleetDirection
	for _, id := range fs.aliens() {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](fs.em, id); ok {
			pos.X += dx
		}
	}
}

// ReachedBottom 任一外星人底边到达屏幕底部时返回 true
func (fs *FleetSystem) ReachedBottom() bool {
	for _, id := range fs.aliens() {
		if fs.bounds(id).Bottom() >= fs.settings.ScreenHeight {
			return true
		}
	}
	return false
}

// Count 存活外星人数量
func (fs *FleetSystem) Count() int {
	return len(fs.aliens())
}

// FleetSize 完整舰队的外星人数量
func (fs *FleetSystem) FleetSize() int {
	return entities.FleetSize(fs.settings)
}

// Generation 当前舰队代数
func (fs *FleetSystem) Generation() int {
	return fs.generation
}

// Rebuild 清除残余外星人并创建新一代舰队，返回新舰队数量
func (fs *FleetSystem) Rebuild() int {
	fs.Clear()
	fs.generation++
	return entities.CreateFleet(fs.em, fs.settings, fs.generation, fs.color)
}

// Clear 移除所有外星人
func (fs *FleetSystem) Clear() {
	entities.DestroyAll[*components.AlienComponent](fs.em)
}

func (fs *FleetSystem) aliens() []ecs.EntityID {
	return ecs.GetEntitiesWith3[*components.AlienComponent, *components.PositionComponent, *components.CollisionComponent](fs.em)
}

func (fs *FleetSystem) bounds(id ecs.EntityID) components.Rect {
	pos, _ := ecs.GetComponent[*components.PositionComponent](fs.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](fs.em, id)
	return components.BoundsOf(pos, col)
}
