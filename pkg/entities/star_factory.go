package entities

import (
	"math/rand"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// CreateStarfield 在随机位置创建静态背景星星
// 星星只有位置、尺寸和外观，没有 CollisionComponent 以外的任何行为
func CreateStarfield(em *ecs.EntityManager, s *game.Settings, cfg config.StarsConfig, rng *rand.Rand) int {
	c := cfg.Color.Color()
	for i := 0; i < cfg.Count; i++ {
		size := cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize)

		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{
			X: rng.Float64() * (s.ScreenWidth - size),
			Y: rng.Float64() * (s.ScreenHeight - size),
		})
		ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size})
		ecs.AddComponent(em, id, &components.StarComponent{})
		ecs.AddComponent(em, id, &components.ShapeComponent{Kind: components.ShapeStar, Color: c})
	}
	return cfg.Count
}
