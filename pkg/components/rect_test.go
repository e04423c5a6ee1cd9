package components

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "完全重叠", other: base, want: true},
		{name: "部分重叠", other: Rect{X: 25, Y: 25, Width: 10, Height: 10}, want: true},
		{name: "包含在内", other: Rect{X: 15, Y: 15, Width: 2, Height: 2}, want: true},
		{name: "右侧贴边不算", other: Rect{X: 30, Y: 10, Width: 5, Height: 5}, want: false},
		{name: "下方贴边不算", other: Rect{X: 10, Y: 30, Width: 5, Height: 5}, want: false},
		{name: "完全分离", other: Rect{X: 100, Y: 100, Width: 5, Height: 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// 对称性
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 200, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "左上角", x: 0, y: 0, want: true},
		{name: "中心", x: 100, y: 25, want: true},
		{name: "右边界外", x: 200, y: 25, want: false},
		{name: "上方", x: 100, y: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	r := BoundsOf(&PositionComponent{X: 5, Y: 7}, &CollisionComponent{Width: 60, Height: 58})
	if r.Left() != 5 || r.Right() != 65 || r.Top() != 7 || r.Bottom() != 65 || r.CenterX() != 35 {
		t.Errorf("unexpected bounds %+v", r)
	}
}
