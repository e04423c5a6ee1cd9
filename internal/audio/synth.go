// Package audio 用 gopxl/beep 合成游戏音效
//
// 音效不依赖任何音频文件：每个 config.SoundRecipe 描述波形、频率、时长和音量，
// 在启动时渲染成 PCM，之后由 ebiten 播放器或 beep speaker 重复播放。
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/gonewx/alieninvasion/pkg/config"
)

// 淡入淡出时长，避免波形突变产生爆音
const (
	attackDuration  = 5 * time.Millisecond
	releaseDuration = 30 * time.Millisecond
)

// noiseSeed 固定种子，保证同一配方每次渲染结果一致
const noiseSeed = 0x5eed

// Format 返回合成使用的采样格式（16 位立体声）
func Format(sampleRate int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
}

// NewStreamer 根据配方创建一次性的音效流
func NewStreamer(recipe config.SoundRecipe, sampleRate int) (beep.Streamer, error) {
	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sound recipe: %w", err)
	}

	sr := beep.SampleRate(sampleRate)
	duration := time.Duration(recipe.DurationMs) * time.Millisecond
	samples := sr.N(duration)

	var source beep.Streamer
	switch recipe.Wave {
	case config.WaveSine:
		tone, err := generators.SineTone(sr, recipe.StartFreq)
		if err != nil {
			return nil, fmt.Errorf("failed to create sine tone: %w", err)
		}
		source = beep.Take(samples, tone)
	case config.WaveSquare:
		source = newOscillator(recipe.StartFreq, recipe.StartFreq, samples, waveSquare, sr)
	case config.WaveSweep:
		source = newOscillator(recipe.StartFreq, recipe.EndFreq, samples, waveSine, sr)
	case config.WaveNoise:
		source = newOscillator(0, 0, samples, waveNoise, sr)
	}

	shaped := newEnvelope(source, samples, sr.N(attackDuration), sr.N(releaseDuration))
	return newVolume(shaped, recipe.Volume), nil
}

// SynthesizeBuffer 将配方渲染到 beep.Buffer，可多次取流播放
func SynthesizeBuffer(recipe config.SoundRecipe, sampleRate int) (*beep.Buffer, error) {
	streamer, err := NewStreamer(recipe, sampleRate)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(Format(sampleRate))
	buf.Append(streamer)
	return buf, nil
}

// Synthesize 将配方渲染为 16 位小端立体声 PCM
// 这是 ebiten audio.Context.NewPlayerFromBytes 接受的格式
func Synthesize(recipe config.SoundRecipe, sampleRate int) ([]byte, error) {
	buf, err := SynthesizeBuffer(recipe, sampleRate)
	if err != nil {
		return nil, err
	}

	pcm := make([]byte, 0, buf.Len()*4)
	chunk := make([][2]float64, 512)
	s := buf.Streamer(0, buf.Len())
	for {
		n, ok := s.Stream(chunk)
		for _, frame := range chunk[:n] {
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(frame[0])))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	return pcm, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator 生成固定时长的波形，频率在时长内从 startFreq 线性变化到 endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      waveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

func newOscillator(startFreq, endFreq float64, samples int, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  samples,
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(noiseSeed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性淡入淡出
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性增益转换为 effects.Volume
// math.Log2(0) 为 -Inf，0 音量直接静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
