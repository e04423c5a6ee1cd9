package components

// CollisionComponent 定义实体的碰撞检测边界框
// 与 PositionComponent 一起确定实体的矩形范围
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
