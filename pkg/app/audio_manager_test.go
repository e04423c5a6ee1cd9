package app

import (
	"testing"

	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// TestAudioManagerWithoutContext 无音频上下文时所有音效静音
func TestAudioManagerWithoutContext(t *testing.T) {
	am := NewAudioManager(nil, game.NewPreferencesManager(nil), config.DefaultGameConfig().Sounds)

	if am.SoundCount() != 0 {
		t.Errorf("expected no players, got %d", am.SoundCount())
	}
	if am.PlaySound(game.SoundBulletFired) {
		t.Error("PlaySound should report false without audio context")
	}
}

// TestAudioManagerMuted 关闭音效后不播放
func TestAudioManagerMuted(t *testing.T) {
	pm := game.NewPreferencesManager(nil)
	pm.SetSoundEnabled(false)
	am := NewAudioManager(nil, pm, nil)

	if am.PlaySound(game.SoundAlienDestroyed) {
		t.Error("muted AudioManager should not play")
	}
}
