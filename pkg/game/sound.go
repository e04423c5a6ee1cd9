package game

// 音效ID
const (
	SoundBulletFired    = "bullet"
	SoundAlienDestroyed = "alien"
)

// SoundPlayer 音效输出
// 播放是即发即忘的，返回值只表示是否真的发出了声音
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// NopSoundPlayer 不发声的 SoundPlayer，用于无音频环境
type NopSoundPlayer struct{}

// PlaySound 总是返回 false
func (NopSoundPlayer) PlaySound(string) bool { return false }
