package game

import "testing"

func TestNopSoundPlayer(t *testing.T) {
	var p SoundPlayer = NopSoundPlayer{}
	if p.PlaySound(SoundAlienDestroyed) {
		t.Error("NopSoundPlayer should never play")
	}
}
