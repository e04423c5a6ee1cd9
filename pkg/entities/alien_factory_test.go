package entities

import (
	"math/rand"
	"testing"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
)

func TestCreateFleet(t *testing.T) {
	em, s := newTestWorld()

	// (1200-79.8)/79.8 = 14.04 -> 14 列; (800-174-80)/116 = 4.7 -> 4 行
	cols, rows := FleetDimensions(s)
	if cols != 14 || rows != 4 {
		t.Fatalf("expected 14x4 fleet, got %dx%d", cols, rows)
	}

	n := CreateFleet(em, s, 2, testColor)
	if n != 56 || FleetSize(s) != 56 {
		t.Errorf("expected 56 aliens, got %d", n)
	}

	ids := ecs.GetEntitiesWith1[*components.AlienComponent](em)
	if len(ids) != 56 {
		t.Fatalf("expected 56 alien entities, got %d", len(ids))
	}

	tests := []struct {
		name     string
		index    int
		col, row int
	}{
		{name: "第一个", index: 0, col: 0, row: 0},
		{name: "第一行最后一个", index: 13, col: 13, row: 0},
		{name: "第二行第一个", index: 14, col: 0, row: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ids[tt.index]
			alien, _ := ecs.GetComponent[*components.AlienComponent](em, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if alien.Column != tt.col || alien.Row != tt.row || alien.Generation != 2 {
				t.Errorf("unexpected alien %+v", *alien)
			}
			wantX, wantY := config.AlienGridPosition(tt.col, tt.row, 60, 58)
			if pos.X != wantX || pos.Y != wantY {
				t.Errorf("expected (%v, %v), got (%v, %v)", wantX, wantY, pos.X, pos.Y)
			}
		})
	}
}

func TestDestroyAll(t *testing.T) {
	em, s := newTestWorld()
	CreateFleet(em, s, 1, testColor)
	ship := NewShip(em, s, testColor)

	if n := DestroyAll[*components.AlienComponent](em); n != 56 {
		t.Errorf("expected 56 destroyed, got %d", n)
	}
	if em.EntityCount() != 1 || !em.Exists(ship) {
		t.Errorf("only the ship should remain, got %d entities", em.EntityCount())
	}
}

func TestCreateStarfield(t *testing.T) {
	em, s := newTestWorld()
	cfg := config.StarsConfig{Count: 100, Color: config.RGB{255, 255, 255}, MinSize: 3, MaxSize: 4}

	if n := CreateStarfield(em, s, cfg, rand.New(rand.NewSource(1))); n != 100 {
		t.Fatalf("expected 100 stars, got %d", n)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		if col.Width < 3 || col.Width > 4 {
			t.Errorf("star size %v out of range", col.Width)
		}
		b := components.BoundsOf(pos, col)
		if b.Left() < 0 || b.Right() > s.ScreenWidth || b.Top() < 0 || b.Bottom() > s.ScreenHeight {
			t.Errorf("star %d out of screen: %+v", id, b)
		}
	}
}

func TestNewPlayButtonCentered(t *testing.T) {
	em, s := newTestWorld()
	id := NewPlayButton(em, s)

	btn, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if btn.Rect.X != 500 || btn.Rect.Y != 375 || btn.Rect.Width != 200 || btn.Rect.Height != 50 {
		t.Errorf("unexpected rect %+v", btn.Rect)
	}
	if btn.Label != "Play" {
		t.Errorf("unexpected label %q", btn.Label)
	}
}
