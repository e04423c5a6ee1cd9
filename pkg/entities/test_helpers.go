package entities

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

var testColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// newTestWorld 创建 1200x800 屏幕的测试环境
func newTestWorld() (*ecs.EntityManager, *game.Settings) {
	return ecs.NewEntityManager(), game.NewSettings(config.DefaultGameConfig(), 1200, 800)
}
