package game

import (
	"math"
	"testing"

	"github.com/gonewx/alieninvasion/pkg/config"
)

func newTestSettings() *Settings {
	return NewSettings(config.DefaultGameConfig(), 1200, 800)
}

func TestNewSettings(t *testing.T) {
	s := newTestSettings()

	if s.ScreenWidth != 1200 || s.ScreenHeight != 800 {
		t.Errorf("unexpected screen %vx%v", s.ScreenWidth, s.ScreenHeight)
	}
	if s.ShipSpeed != 1.5 || s.BulletSpeed != 1.0 || s.AlienSpeed != 1.0 {
		t.Errorf("unexpected speeds ship=%v bullet=%v alien=%v", s.ShipSpeed, s.BulletSpeed, s.AlienSpeed)
	}
	if s.AlienPoints != 50 || s.BulletsAllowed != 6 || s.ShipLimit != 3 {
		t.Errorf("unexpected limits points=%d bullets=%d ships=%d", s.AlienPoints, s.BulletsAllowed, s.ShipLimit)
	}
	if s.FleetDirection != 1 {
		t.Errorf("fleet should start moving right, got %v", s.FleetDirection)
	}
}

// TestInitializeDynamicSettingsIdempotent 连续两次重置结果相同
func TestInitializeDynamicSettingsIdempotent(t *testing.T) {
	s := newTestSettings()
	s.IncreaseSpeed()
	s.IncreaseSpeed()
	s.ReverseFleetDirection()

	s.InitializeDynamicSettings()
	first := *s
	s.InitializeDynamicSettings()

	if *s != first {
		t.Errorf("second reset changed state:\nfirst:  %+v\nsecond: %+v", first, *s)
	}
	if s.ShipSpeed != 1.5 || s.AlienPoints != 50 || s.FleetDirection != 1 {
		t.Errorf("reset did not restore base values: %+v", *s)
	}
}

func TestIncreaseSpeed(t *testing.T) {
	tests := []struct {
		name       string
		levels     int
		wantPoints int
		wantFactor float64
	}{
		{name: "升一级", levels: 1, wantPoints: 75, wantFactor: 1.1},
		// 50 -> 75 -> 112 (112.5 向下取整)
		{name: "升两级", levels: 2, wantPoints: 112, wantFactor: 1.21},
		// 112 -> 168
		{name: "升三级", levels: 3, wantPoints: 168, wantFactor: 1.331},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSettings()
			for i := 0; i < tt.levels; i++ {
				s.IncreaseSpeed()
			}
			if s.AlienPoints != tt.wantPoints {
				t.Errorf("expected points %d, got %d", tt.wantPoints, s.AlienPoints)
			}
			if math.Abs(s.ShipSpeed-1.5*tt.wantFactor) > 1e-9 {
				t.Errorf("expected ship speed %v, got %v", 1.5*tt.wantFactor, s.ShipSpeed)
			}
			if math.Abs(s.AlienSpeed-tt.wantFactor) > 1e-9 {
				t.Errorf("expected alien speed %v, got %v", tt.wantFactor, s.AlienSpeed)
			}
		})
	}
}

// TestScaleSpeedsSurvivesReset 自动驾驶加速在重置后依然有效
func TestScaleSpeedsSurvivesReset(t *testing.T) {
	s := newTestSettings()
	s.ScaleSpeeds(5)

	if s.ShipSpeed != 7.5 || s.BulletSpeed != 5 || s.AlienSpeed != 5 {
		t.Errorf("unexpected scaled speeds: %+v", *s)
	}

	s.IncreaseSpeed()
	s.InitializeDynamicSettings()
	if s.ShipSpeed != 7.5 || s.BulletSpeed != 5 || s.AlienSpeed != 5 {
		t.Errorf("reset should keep scaled base speeds: %+v", *s)
	}
	if s.AlienPoints != 50 {
		t.Errorf("points should not be scaled, got %d", s.AlienPoints)
	}
}

func TestReverseFleetDirection(t *testing.T) {
	s := newTestSettings()
	s.ReverseFleetDirection()
	if s.FleetDirection != -1 {
		t.Errorf("expected -1, got %v", s.FleetDirection)
	}
	s.ReverseFleetDirection()
	if s.FleetDirection != 1 {
		t.Errorf("expected 1, got %v", s.FleetDirection)
	}
}
