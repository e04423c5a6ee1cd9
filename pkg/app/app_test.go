package app

import (
	"math"
	"testing"

	"github.com/gonewx/alieninvasion/pkg/game"
)

// TestAdjustVolume -/= 调节音量并限制在 [0,1]
func TestAdjustVolume(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{name: "调低", start: 0.5, delta: -VolumeStep, want: 0.4},
		{name: "调高", start: 0.5, delta: VolumeStep, want: 0.6},
		{name: "下限", start: 0.05, delta: -VolumeStep, want: 0},
		{name: "上限", start: 0.95, delta: VolumeStep, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{preferences: game.NewPreferencesManager(nil)}
			a.preferences.SetSoundVolume(tt.start)

			a.adjustVolume(tt.delta)

			if got := a.preferences.Preferences().SoundVolume; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected volume %v, got %v", tt.want, got)
			}
		})
	}
}
