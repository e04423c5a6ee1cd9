package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

// TestSpeakerPlayerMute 静音后不播放，重新开启后恢复
// 不调用 speaker.Init，只覆盖不发声的路径
func TestSpeakerPlayerMute(t *testing.T) {
	p := &SpeakerPlayer{
		buffers: map[string]*beep.Buffer{},
		enabled: true,
	}

	if p.PlaySound("bullet") {
		t.Error("unknown sound should not play")
	}

	p.SetEnabled(false)
	if p.Enabled() {
		t.Fatal("expected player to be muted")
	}
	if p.PlaySound("bullet") {
		t.Error("muted player should not play")
	}

	p.SetEnabled(true)
	if !p.Enabled() {
		t.Error("expected player to be enabled again")
	}
}
