package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GamePreferences 用户偏好
// 只包含显示和音频设置，不保存任何游戏进度（最高分不跨会话保留）
type GamePreferences struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏
}

// DefaultPreferences 返回默认偏好
func DefaultPreferences() *GamePreferences {
	return &GamePreferences{
		SoundVolume:  0.8,
		SoundEnabled: true,
		Fullscreen:   true,
	}
}

// PreferencesManager 偏好管理器
// 负责偏好的加载、保存和内存管理
type PreferencesManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	prefs        *GamePreferences
}

// 存储路径常量
const (
	preferencesObject   = "preferences"
	preferencesProperty = "global"
)

// NewPreferencesManager 创建偏好管理器并尝试加载已保存的偏好
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
func NewPreferencesManager(gdataManager *gdata.Manager) *PreferencesManager {
	pm := &PreferencesManager{
		gdataManager: gdataManager,
		prefs:        DefaultPreferences(),
	}

	if err := pm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认偏好
		log.Printf("[Preferences] Warning: Failed to load preferences: %v (using defaults)", err)
	}

	return pm
}

// Load 从 gdata 加载偏好
// gdataManager 为 nil 或文件不存在时使用默认值
func (pm *PreferencesManager) Load() error {
	if pm.gdataManager == nil {
		pm.prefs = DefaultPreferences()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(preferencesObject, preferencesProperty) {
		pm.prefs = DefaultPreferences()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := DefaultPreferences()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.prefs = DefaultPreferences()
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	pm.prefs = loaded
	log.Printf("[Preferences] Preferences loaded successfully")
	return nil
}

// Save 保存偏好到 gdata
// gdataManager 为 nil 时直接返回 nil（降级模式，不报错）
func (pm *PreferencesManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[Preferences] Preferences saved successfully")
	return nil
}

// Preferences 获取当前偏好
func (pm *PreferencesManager) Preferences() *GamePreferences {
	return pm.prefs
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
// 仅修改内存，需调用 Save() 持久化
func (pm *PreferencesManager) SetSoundVolume(volume float64) {
	pm.prefs.SoundVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (pm *PreferencesManager) SetSoundEnabled(enabled bool) {
	pm.prefs.SoundEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (pm *PreferencesManager) SetFullscreen(enabled bool) {
	pm.prefs.Fullscreen = enabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
