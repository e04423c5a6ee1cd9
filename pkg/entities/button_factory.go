package entities

import (
	"image/color"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/game"
)

var (
	playButtonFill = color.RGBA{R: 0, G: 135, B: 0, A: 255}
	playButtonText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// NewPlayButton 创建屏幕中央的开始按钮
func NewPlayButton(em *ecs.EntityManager, s *game.Settings) ecs.EntityID {
	rect := components.Rect{
		X:      (s.ScreenWidth - config.PlayButtonWidth) / 2,
		Y:      (s.ScreenHeight - config.PlayButtonHeight) / 2,
		Width:  config.PlayButtonWidth,
		Height: config.PlayButtonHeight,
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Label:     config.PlayButtonLabel,
		Rect:      rect,
		FillColor: playButtonFill,
		TextColor: playButtonText,
		FontSize:  config.PlayButtonFontSize,
	})
	return id
}
