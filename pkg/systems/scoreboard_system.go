package systems

import (
	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// ScoreboardSystem 计分板布局
//
// 只计算位置，桌面端和终端各自负责绘制：
//   - 分数右对齐，距右边 20、顶部 20
//   - 最高分水平居中，与分数同高
//   - 等级右对齐，在分数下方 10
//   - 剩余飞船为半尺寸图标，从 (10, 10) 向右排列
type ScoreboardSystem struct {
	settings *game.Settings
	stats    *game.GameStats
}

// NewScoreboardSystem 创建计分板系统
func NewScoreboardSystem(settings *game.Settings, stats *game.GameStats) *ScoreboardSystem {
	return &ScoreboardSystem{settings: settings, stats: stats}
}

// Stats 返回计分板显示的统计
func (s *ScoreboardSystem) Stats() *game.GameStats {
	return s.stats
}

// ScoreRight 分数和等级的右边界
func (s *ScoreboardSystem) ScoreRight() float64 {
	return s.settings.ScreenWidth - config.ScoreMarginRight
}

// HighScoreCenter 最高分的水平中心
func (s *ScoreboardSystem) HighScoreCenter() float64 {
	return s.settings.ScreenWidth / 2
}

// ShipIconRects 剩余飞船图标的位置
func (s *ScoreboardSystem) ShipIconRects() []components.Rect {
	w := s.settings.ShipWidth * config.ShipIconScale
	h := s.settings.ShipHeight * config.ShipIconScale
	rects := make([]components.Rect, 0, s.stats.ShipsLeft)
	for i := 0; i < s.stats.ShipsLeft; i++ {
		rects = append(rects, components.Rect{
			X:      config.ShipIconMargin + float64(i)*w,
			Y:      config.ShipIconMargin,
			Width:  w,
			Height: h,
		})
	}
	return rects
}
