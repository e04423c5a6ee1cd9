package components

// ShipComponent 玩家飞船
// 移动标志由输入处理或自动驾驶设置，ShipSystem 每帧读取
type ShipComponent struct {
	MovingLeft  bool
	MovingRight bool
}
