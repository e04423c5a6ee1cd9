package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfigPath 嵌入的默认配置文件路径
const GameConfigPath = "data/game.yaml"

// RGB 配置文件中的颜色，格式为 [r, g, b]
type RGB [3]uint8

// Color 转换为 color.RGBA（不透明）
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

// GameConfig 游戏基础配置
//
// 包含所有可调参数的初始值。运行时会变化的速度和分值由 game.Settings 管理，
// 这里只保存重置时使用的基准值。
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Screen   ScreenConfig           `yaml:"screen"`
	Ship     ShipConfig             `yaml:"ship"`
	Bullet   BulletConfig           `yaml:"bullet"`
	Alien    AlienConfig            `yaml:"alien"`
	Scaling  ScalingConfig          `yaml:"scaling"`
	Stars    StarsConfig            `yaml:"stars"`
	Agent    AgentConfig            `yaml:"agent"`
	HitPause float64                `yaml:"hitPause"` // 飞船被击中后的暂停时长（秒）
	Sounds   map[string]SoundRecipe `yaml:"sounds"`
}

// ScreenConfig 窗口配置（全屏时宽高取显示器分辨率）
type ScreenConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Background RGB `yaml:"background"`
}

// ShipConfig 飞船配置
type ShipConfig struct {
	Speed  float64 `yaml:"speed"` // 像素/帧
	Limit  int     `yaml:"limit"` // 初始生命数
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  RGB     `yaml:"color"`
}

// BulletConfig 子弹配置
type BulletConfig struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Color   RGB     `yaml:"color"`
	Allowed int     `yaml:"allowed"` // 同屏子弹上限
}

// AlienConfig 外星人配置
type AlienConfig struct {
	Speed          float64 `yaml:"speed"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Points         int     `yaml:"points"`
	FleetDropSpeed float64 `yaml:"fleetDropSpeed"`
	Color          RGB     `yaml:"color"`
}

// ScalingConfig 升级时的倍率
type ScalingConfig struct {
	SpeedupScale float64 `yaml:"speedupScale"`
	ScoreScale   float64 `yaml:"scoreScale"`
}

// StarsConfig 星空背景配置
type StarsConfig struct {
	Count   int     `yaml:"count"`
	Color   RGB     `yaml:"color"`
	MinSize float64 `yaml:"minSize"`
	MaxSize float64 `yaml:"maxSize"`
}

// AgentConfig 自动驾驶参数
type AgentConfig struct {
	SpeedFactor     float64 `yaml:"speedFactor"`     // 启动时速度倍率
	FireProbability float64 `yaml:"fireProbability"` // 每帧开火概率
	StopFraction    float64 `yaml:"stopFraction"`    // 存活比例低于该值时停止移动
}

// SoundRecipe 合成音效的参数
type SoundRecipe struct {
	// Wave 波形: sine | square | noise | sweep
	Wave       string  `yaml:"wave"`
	StartFreq  float64 `yaml:"startFreq"`
	EndFreq    float64 `yaml:"endFreq"` // 仅 sweep 使用
	DurationMs int     `yaml:"durationMs"`
	Volume     float64 `yaml:"volume"` // 线性增益 [0,1]
}

// 支持的波形
const (
	WaveSine   = "sine"
	WaveSquare = "square"
	WaveNoise  = "noise"
	WaveSweep  = "sweep"
)

// DefaultGameConfig 返回内置默认配置
// 嵌入的 data/game.yaml 不可用时（测试、工具）使用
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 1920, Height: 900, Background: RGB{0, 0, 0}},
		Ship:   ShipConfig{Speed: 1.5, Limit: 3, Width: 60, Height: 80, Color: RGB{230, 230, 230}},
		Bullet: BulletConfig{Speed: 1.0, Width: 3, Height: 15, Color: RGB{250, 250, 250}, Allowed: 6},
		Alien: AlienConfig{
			Speed: 1.0, Width: 60, Height: 58, Points: 50,
			FleetDropSpeed: 10, Color: RGB{120, 220, 90},
		},
		Scaling:  ScalingConfig{SpeedupScale: 1.1, ScoreScale: 1.5},
		Stars:    StarsConfig{Count: 300, Color: RGB{255, 255, 255}, MinSize: 3, MaxSize: 4},
		Agent:    AgentConfig{SpeedFactor: 5, FireProbability: 0.5, StopFraction: 0.5},
		HitPause: 0.5,
		Sounds: map[string]SoundRecipe{
			"bullet": {Wave: WaveSweep, StartFreq: 1200, EndFreq: 300, DurationMs: 90, Volume: 0.25},
			"alien":  {Wave: WaveNoise, DurationMs: 150, Volume: 0.25},
		},
	}
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件只需覆盖需要修改的部分。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 尺寸、速度、上限必须为正
//   - 倍率不能小于 1（只增不减）
//   - 概率和比例必须在 [0,1] 内
//   - 窗口至少能容纳一行一列外星人
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Ship.Speed <= 0 || c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		return fmt.Errorf("ship speed and size must be positive")
	}
	if c.Ship.Limit < 1 {
		return fmt.Errorf("ship limit must be at least 1, got %d", c.Ship.Limit)
	}
	if c.Bullet.Speed <= 0 || c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		return fmt.Errorf("bullet speed and size must be positive")
	}
	if c.Bullet.Allowed < 1 {
		return fmt.Errorf("bullets allowed must be at least 1, got %d", c.Bullet.Allowed)
	}
	if c.Alien.Speed <= 0 || c.Alien.Width <= 0 || c.Alien.Height <= 0 {
		return fmt.Errorf("alien speed and size must be positive")
	}
	if c.Alien.Points <= 0 {
		return fmt.Errorf("alien points must be positive, got %d", c.Alien.Points)
	}
	if c.Alien.FleetDropSpeed <= 0 {
		return fmt.Errorf("fleet drop speed must be positive, got %.2f", c.Alien.FleetDropSpeed)
	}
	if c.Scaling.SpeedupScale < 1 || c.Scaling.ScoreScale < 1 {
		return fmt.Errorf("scaling factors must be >= 1, got speedup=%.2f score=%.2f",
			c.Scaling.SpeedupScale, c.Scaling.ScoreScale)
	}
	if c.Stars.Count < 0 {
		return fmt.Errorf("star count must not be negative, got %d", c.Stars.Count)
	}
	if c.Stars.MinSize <= 0 || c.Stars.MaxSize < c.Stars.MinSize {
		return fmt.Errorf("star size range invalid: min(%.1f) max(%.1f)", c.Stars.MinSize, c.Stars.MaxSize)
	}
	if c.Agent.SpeedFactor <= 0 {
		return fmt.Errorf("agent speed factor must be positive, got %.2f", c.Agent.SpeedFactor)
	}
	if c.Agent.FireProbability < 0 || c.Agent.FireProbability > 1 {
		return fmt.Errorf("agent fire probability must be in [0,1], got %.2f", c.Agent.FireProbability)
	}
	if c.Agent.StopFraction < 0 || c.Agent.StopFraction > 1 {
		return fmt.Errorf("agent stop fraction must be in [0,1], got %.2f", c.Agent.StopFraction)
	}
	if c.HitPause < 0 {
		return fmt.Errorf("hit pause must not be negative, got %.2f", c.HitPause)
	}
	for id, recipe := range c.Sounds {
		if err := recipe.Validate(); err != nil {
			return fmt.Errorf("sound %q: %w", id, err)
		}
	}
	return c.ValidateScreen(float64(c.Screen.Width), float64(c.Screen.Height))
}

// ValidateScreen 检查给定窗口尺寸是否能容纳至少一个外星人
// 全屏模式下窗口尺寸来自显示器，因此单独提供
func (c *GameConfig) ValidateScreen(width, height float64) error {
	cols, rows := FleetGrid(width, height, c.Alien.Width, c.Alien.Height, c.Ship.Height)
	if cols < 1 || rows < 1 {
		return fmt.Errorf("screen %.0fx%.0f too small for alien fleet (%d cols, %d rows)",
			width, height, cols, rows)
	}
	return nil
}

// Validate 验证音效参数
func (r SoundRecipe) Validate() error {
	switch r.Wave {
	case WaveSine, WaveSquare, WaveSweep:
		if r.StartFreq <= 0 {
			return fmt.Errorf("wave %s requires positive startFreq", r.Wave)
		}
		if r.Wave == WaveSweep && r.EndFreq <= 0 {
			return fmt.Errorf("sweep requires positive endFreq")
		}
	case WaveNoise:
	default:
		return fmt.Errorf("unknown wave %q", r.Wave)
	}
	if r.DurationMs <= 0 {
		return fmt.Errorf("duration must be positive, got %d", r.DurationMs)
	}
	if r.Volume < 0 || r.Volume > 1 {
		return fmt.Errorf("volume must be in [0,1], got %.2f", r.Volume)
	}
	return nil
}
