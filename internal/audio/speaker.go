package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/alieninvasion/pkg/config"
)

// SpeakerSampleRate 终端前端使用的采样率
const SpeakerSampleRate = 44100

// SpeakerPlayer 通过 beep/speaker 播放合成音效
// 用于没有 ebiten 音频上下文的终端前端
type SpeakerPlayer struct {
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	enabled bool
}

// NewSpeakerPlayer 初始化 speaker 并预渲染所有音效
// 单个配方渲染失败只记录警告，对应音效静音
func NewSpeakerPlayer(recipes map[string]config.SoundRecipe) (*SpeakerPlayer, error) {
	sr := beep.SampleRate(SpeakerSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	p := &SpeakerPlayer{
		buffers: make(map[string]*beep.Buffer, len(recipes)),
		enabled: true,
	}
	for id, recipe := range recipes {
		buf, err := SynthesizeBuffer(recipe, SpeakerSampleRate)
		if err != nil {
			log.Printf("[SpeakerPlayer] Warning: failed to synthesize %s: %v", id, err)
			continue
		}
		p.buffers[id] = buf
	}
	log.Printf("[SpeakerPlayer] %d sounds ready", len(p.buffers))
	return p, nil
}

// PlaySound 异步播放音效，立即返回
func (p *SpeakerPlayer) PlaySound(soundID string) bool {
	p.mu.Lock()
	buf, ok := p.buffers[soundID]
	enabled := p.enabled
	p.mu.Unlock()

	if !ok || !enabled {
		return false
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
	return true
}

// SetEnabled 开关音效
func (p *SpeakerPlayer) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

// Enabled 返回音效是否开启
func (p *SpeakerPlayer) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Close 停止播放并释放 speaker
func (p *SpeakerPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
