package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/systems"
	"github.com/gonewx/alieninvasion/pkg/utils"
)

// ScoreboardRenderSystem 按 ScoreboardSystem 的布局绘制分数、最高分、等级和剩余飞船
type ScoreboardRenderSystem struct {
	layout    *systems.ScoreboardSystem
	face      *text.GoTextFace // 为 nil 时只绘制飞船图标
	textColor color.RGBA
	shipColor color.RGBA
}

// NewScoreboardRenderSystem 创建计分板渲染系统
func NewScoreboardRenderSystem(layout *systems.ScoreboardSystem, fontSource *text.GoTextFaceSource, textColor, shipColor color.RGBA) *ScoreboardRenderSystem {
	return &ScoreboardRenderSystem{
		layout:    layout,
		face:      NewFace(fontSource, config.ScoreFontSize),
		textColor: textColor,
		shipColor: shipColor,
	}
}

// Draw 绘制计分板
func (s *ScoreboardRenderSystem) Draw(screen *ebiten.Image) {
	for _, r := range s.layout.ShipIconRects() {
		DrawShape(screen, components.ShapeShip, r, s.shipColor)
	}
	if s.face == nil {
		return
	}

	stats := s.layout.Stats()
	right := s.layout.ScoreRight()
	s.drawText(screen, utils.FormatScore(stats.Score), right, config.ScoreMarginTop, text.AlignEnd)
	s.drawText(screen, utils.FormatNumber(stats.HighScore), s.layout.HighScoreCenter(), config.ScoreMarginTop, text.AlignCenter)

	_, lineHeight := text.Measure("0", s.face, 0)
	levelTop := config.ScoreMarginTop + lineHeight + config.LevelGap
	s.drawText(screen, utils.FormatNumber(stats.Level), right, levelTop, text.AlignEnd)
}

func (s *ScoreboardRenderSystem) drawText(screen *ebiten.Image, str string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignStart
	op.ColorScale.ScaleWithColor(s.textColor)
	text.Draw(screen, str, s.face, op)
}
