package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/alieninvasion/pkg/scenes"
)

var scoreTextColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

// SceneView 为 GameScene 加上 ebiten 绘制，供 SceneManager 驱动
type SceneView struct {
	scene *scenes.GameScene

	renderSystem       *RenderSystem
	buttonRenderSystem *ButtonRenderSystem
	scoreboardSystem   *ScoreboardRenderSystem
}

// NewSceneView 创建场景视图
// fontSource 为 nil 时不绘制文字
func NewSceneView(scene *scenes.GameScene, fontSource *text.GoTextFaceSource) *SceneView {
	shipColor := scene.Config().Ship.Color.Color()
	return &SceneView{
		scene:              scene,
		renderSystem:       NewRenderSystem(scene.EntityManager()),
		buttonRenderSystem: NewButtonRenderSystem(scene.EntityManager(), fontSource),
		scoreboardSystem:   NewScoreboardRenderSystem(scene.ScoreboardSystem(), fontSource, scoreTextColor, shipColor),
	}
}

// Update 推进场景一帧
func (v *SceneView) Update(deltaTime float64) error {
	return v.scene.Update(deltaTime)
}

// Draw 绘制一帧：背景、星空与实体、记分板，非游戏状态下叠加开始按钮
func (v *SceneView) Draw(screen *ebiten.Image) {
	screen.Fill(v.scene.Background())
	v.renderSystem.Draw(screen)
	v.scoreboardSystem.Draw(screen)

	if v.scene.State() == scenes.StateInactive {
		v.buttonRenderSystem.DrawButton(screen, v.scene.PlayButtonID())
	}
}
