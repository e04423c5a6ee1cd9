package app

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/gonewx/alieninvasion/internal/audio"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// AudioManager 音频管理器
//
// 启动时将配置中的音效配方合成为 PCM，并为每个音效创建一个 ebiten 播放器。
// 播放时读取 PreferencesManager 中的开关和音量。
type AudioManager struct {
	context      *audio.Context
	preferences  *game.PreferencesManager // 可为 nil，此时使用默认偏好
	soundPlayers map[string]*audio.Player // 音效ID -> 播放器
}

// NewAudioManager 创建音频管理器并预合成所有音效
//
// 参数：
//   - ctx: ebiten 音频上下文，为 nil 时所有音效静音
//   - pm: 偏好管理器（可为 nil）
//   - recipes: 音效ID -> 合成配方
func NewAudioManager(ctx *audio.Context, pm *game.PreferencesManager, recipes map[string]config.SoundRecipe) *AudioManager {
	am := &AudioManager{
		context:      ctx,
		preferences:  pm,
		soundPlayers: make(map[string]*audio.Player),
	}
	if ctx == nil {
		log.Printf("[AudioManager] No audio context, sounds disabled")
		return am
	}

	ids := make([]string, 0, len(recipes))
	for id := range recipes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		pcm, err := sfx.Synthesize(recipes[id], ctx.SampleRate())
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to synthesize sound %s: %v", id, err)
			continue
		}
		am.soundPlayers[id] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("[AudioManager] Preloaded %d sounds", len(am.soundPlayers))
	return am
}

var _ game.SoundPlayer = (*AudioManager)(nil)

// PlaySound 播放音效
// 音效关闭、ID 未知或无音频上下文时返回 false
func (am *AudioManager) PlaySound(soundID string) bool {
	prefs := am.currentPreferences()
	if !prefs.SoundEnabled {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		return false
	}

	player.SetVolume(prefs.SoundVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SoundCount 返回可播放的音效数量
func (am *AudioManager) SoundCount() int {
	return len(am.soundPlayers)
}

func (am *AudioManager) currentPreferences() *game.GamePreferences {
	if am.preferences != nil {
		return am.preferences.Preferences()
	}
	return game.DefaultPreferences()
}
