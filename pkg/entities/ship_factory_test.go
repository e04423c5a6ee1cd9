package entities

import (
	"testing"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/ecs"
)

func TestNewShipCentered(t *testing.T) {
	em, s := newTestWorld()
	id := NewShip(em, s, testColor)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("ship should have a position")
	}
	// (1200-60)/2 = 570, 800-80 = 720
	if pos.X != 570 || pos.Y != 720 {
		t.Errorf("expected (570, 720), got (%v, %v)", pos.X, pos.Y)
	}
	if !ecs.HasComponent[*components.ShipComponent](em, id) {
		t.Error("ship component missing")
	}
}

// TestCenterShipKeepsFlags 复位只改变位置，StopShip 清除移动标志
func TestCenterShipKeepsFlags(t *testing.T) {
	em, s := newTestWorld()
	id := NewShip(em, s, testColor)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	ship, _ := ecs.GetComponent[*components.ShipComponent](em, id)
	pos.X = 0
	ship.MovingLeft = true
	ship.MovingRight = true

	CenterShip(em, id, s)

	if pos.X != 570 {
		t.Errorf("expected x=570 after recentering, got %v", pos.X)
	}
	if !ship.MovingLeft || !ship.MovingRight {
		t.Error("recentering should not touch movement flags")
	}

	StopShip(em, id)
	if ship.MovingLeft || ship.MovingRight {
		t.Error("movement flags should be cleared")
	}
}

func TestNewBulletAtShipTop(t *testing.T) {
	em, s := newTestWorld()
	shipBounds := components.Rect{X: 570, Y: 720, Width: 60, Height: 80}

	id := NewBullet(em, s, shipBounds, testColor)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	b := components.BoundsOf(pos, col)
	if b.CenterX() != shipBounds.CenterX() || b.Top() != shipBounds.Top() {
		t.Errorf("bullet should start at ship mid-top, got %+v", b)
	}
	if b.Width != 3 || b.Height != 15 {
		t.Errorf("unexpected bullet size %vx%v", b.Width, b.Height)
	}
}
