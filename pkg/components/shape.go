package components

import "image/color"

// ShapeKind 决定渲染时绘制的图形
type ShapeKind int

const (
	ShapeShip ShapeKind = iota
	ShapeAlien
	ShapeBullet
	ShapeStar
)

// ShapeComponent 渲染外观，尺寸取自 CollisionComponent
type ShapeComponent struct {
	Kind  ShapeKind
	Color color.RGBA
}
