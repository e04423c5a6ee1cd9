package components

// AlienComponent 外星人
type AlienComponent struct {
	// Column, Row 在舰队网格中的位置
	Column int
	Row    int
	// Generation 所属舰队的代数，每次重建舰队递增
	Generation int
}
