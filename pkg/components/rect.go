package components

// Rect 轴对齐矩形，X/Y 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// BoundsOf 由位置和碰撞盒组成矩形
func BoundsOf(pos *PositionComponent, col *CollisionComponent) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: col.Width, Height: col.Height}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// Intersects 判断两个矩形是否重叠
// 只接触边缘不算重叠
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Contains 判断点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}
