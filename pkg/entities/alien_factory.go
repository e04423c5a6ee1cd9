package entities

import (
	"image/color"
	"log"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// FleetDimensions 返回当前屏幕下舰队的列数和行数
func FleetDimensions(s *game.Settings) (cols, rows int) {
	return config.FleetGrid(s.ScreenWidth, s.ScreenHeight, s.AlienWidth, s.AlienHeight, s.ShipHeight)
}

// FleetSize 完整舰队的外星人数量
func FleetSize(s *game.Settings) int {
	cols, rows := FleetDimensions(s)
	return cols * rows
}

// NewAlien 在网格 (col, row) 处创建一个外星人
func NewAlien(em *ecs.EntityManager, s *game.Settings, col, row, generation int, c color.RGBA) ecs.EntityID {
	x, y := config.AlienGridPosition(col, row, s.AlienWidth, s.AlienHeight)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  s.AlienWidth,
		Height: s.AlienHeight,
	})
	ecs.AddComponent(em, id, &components.AlienComponent{
		Column:     col,
		Row:        row,
		Generation: generation,
	})
	ecs.AddComponent(em, id, &components.ShapeComponent{Kind: components.ShapeAlien, Color: c})
	return id
}

// CreateFleet 按网格创建完整舰队，返回创建的外星人数量
// 按行优先顺序创建，实体ID与 (row, col) 顺序一致
func CreateFleet(em *ecs.EntityManager, s *game.Settings, generation int, c color.RGBA) int {
	cols, rows := FleetDimensions(s)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			NewAlien(em, s, col, row, generation, c)
		}
	}
	log.Printf("[AlienFactory] Fleet generation %d: %d cols x %d rows", generation, cols, rows)
	return cols * rows
}
