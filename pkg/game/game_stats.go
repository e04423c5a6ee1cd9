package game

// GameStats 本局统计
//
// HighScore 在整个进程生命周期内只增不减，ResetStats 不会清除它；
// 进程退出后不保留。
type GameStats struct {
	settings *Settings

	Score     int
	Level     int
	ShipsLeft int
	HighScore int
}

// NewGameStats 创建统计并完成一次 ResetStats，最高分为 0
func NewGameStats(settings *Settings) *GameStats {
	gs := &GameStats{settings: settings}
	gs.ResetStats()
	return gs
}

// ResetStats 重置除最高分以外的所有统计
func (gs *GameStats) ResetStats() {
	gs.ShipsLeft = gs.settings.ShipLimit
	gs.Score = 0
	gs.Level = 1
}

// AddScore 增加分数并检查最高分
func (gs *GameStats) AddScore(points int) {
	gs.Score += points
	gs.CheckHighScore()
}

// CheckHighScore 当前分数超过最高分时更新最高分
// 返回是否刷新了最高分
func (gs *GameStats) CheckHighScore() bool {
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
		return true
	}
	return false
}

// LoseShip 扣除一条命
// 扣除前已无剩余时返回 false，ShipsLeft 不会小于 0
func (gs *GameStats) LoseShip() bool {
	if gs.ShipsLeft <= 0 {
		gs.ShipsLeft = 0
		return false
	}
	gs.ShipsLeft--
	return true
}

// NextLevel 等级加一
func (gs *GameStats) NextLevel() {
	gs.Level++
}
