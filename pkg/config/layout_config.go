package config

import "math"

// 布局配置常量
// 本文件定义了舰队网格、屏幕边缘和计分板等不可调的布局参数

// Fleet Grid Configuration (舰队网格配置)
const (
	// EdgeMargin 舰队边缘检测的留白（像素）
	// 任一外星人 left < EdgeMargin 或 right > 屏幕宽 - EdgeMargin 时整队转向
	EdgeMargin = 10.0

	// ColumnSpacingFactor 列间距系数（以外星人宽度为单位）
	ColumnSpacingFactor = 1.33

	// RowSpacingFactor 行间距系数（以外星人高度为单位）
	RowSpacingFactor = 2.0

	// ReservedAlienRows 屏幕顶部和飞船上方预留的外星人行高数
	ReservedAlienRows = 3.0
)

// Scoreboard Configuration (计分板配置)
const (
	// ScoreMarginRight 分数右边距
	ScoreMarginRight = 20.0
	// ScoreMarginTop 分数和最高分的上边距
	ScoreMarginTop = 20.0
	// LevelGap 等级与分数之间的间距
	LevelGap = 10.0
	// ShipIconMargin 剩余飞船图标的起始偏移
	ShipIconMargin = 10.0
	// ShipIconScale 剩余飞船图标相对飞船的缩放
	ShipIconScale = 0.5
	// ScoreFontSize 计分板字号
	ScoreFontSize = 48.0
)

// Play Button Configuration (开始按钮配置)
const (
	PlayButtonWidth    = 200.0
	PlayButtonHeight   = 50.0
	PlayButtonFontSize = 48.0
	PlayButtonLabel    = "Play"
)

// FleetGrid 计算给定屏幕能容纳的舰队列数和行数
//
//	cols = ⌊(W − 1.33·aw) / (1.33·aw)⌋
//	rows = ⌊(H − 3·ah − shipH) / (2·ah)⌋
//
// 结果为负时返回 0
func FleetGrid(screenW, screenH, alienW, alienH, shipH float64) (cols, rows int) {
	colStep := ColumnSpacingFactor * alienW
	rowStep := RowSpacingFactor * alienH
	cols = int(math.Floor((screenW - colStep) / colStep))
	rows = int(math.Floor((screenH - ReservedAlienRows*alienH - shipH) / rowStep))
	return max(cols, 0), max(rows, 0)
}

// AlienGridPosition 返回第 col 列、第 row 行外星人的左上角坐标
func AlienGridPosition(col, row int, alienW, alienH float64) (x, y float64) {
	x = alienW + ColumnSpacingFactor*alienW*float64(col)
	y = alienH + RowSpacingFactor*alienH*float64(row)
	return x, y
}
