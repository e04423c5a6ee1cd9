// Package app 提供桌面端的游戏应用包装器
//
// 负责创建音频上下文、偏好存储和 GameScene，并实现 ebiten.Game 接口。
// main.go 只解析命令行参数，然后调用 NewApp()。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
	"github.com/gonewx/alieninvasion/pkg/render"
	"github.com/gonewx/alieninvasion/pkg/scenes"
	"github.com/gonewx/alieninvasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储目录名
const AppName = "alieninvasion"

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// VolumeStep 每次按 -/= 调整的音量
const VolumeStep = 0.1

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Autoplay 由自动驾驶控制飞船
	Autoplay bool
	// Windowed 忽略全屏偏好，使用配置中的窗口尺寸
	Windowed bool
	// Game 游戏参数，为 nil 时使用默认值
	Game *config.GameConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *SceneManager
	scene        *scenes.GameScene
	preferences  *game.PreferencesManager
	audioManager *AudioManager

	width, height int
	fullscreen    bool
	windowWidth   int
	windowHeight  int
	cursorHidden  bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 全屏时逻辑分辨率等于显示器分辨率，窗口模式使用配置中的尺寸。
// 显示器过小、容纳不下舰队时退回窗口模式。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg := cfg.Game
	if gameCfg == nil {
		gameCfg = config.DefaultGameConfig()
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	// gdata 不可用时降级为内存偏好
	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (preferences will not persist)", err)
		gdataManager = nil
	}
	preferences := game.NewPreferencesManager(gdataManager)

	a := &App{
		preferences:  preferences,
		windowWidth:  gameCfg.Screen.Width,
		windowHeight: gameCfg.Screen.Height,
		width:        gameCfg.Screen.Width,
		height:       gameCfg.Screen.Height,
	}

	wantFullscreen := utils.IsMobile() || (!cfg.Windowed && preferences.Preferences().Fullscreen)
	if wantFullscreen {
		mw, mh := ebiten.Monitor().Size()
		if err := gameCfg.ValidateScreen(float64(mw), float64(mh)); err != nil {
			log.Printf("[App] Monitor %dx%d unusable, falling back to window: %v", mw, mh, err)
		} else {
			a.width, a.height = mw, mh
			a.fullscreen = true
		}
	}
	log.Printf("[App] Logical screen %dx%d (fullscreen=%v)", a.width, a.height, a.fullscreen)

	audioContext := audio.NewContext(AudioSampleRate)
	a.audioManager = NewAudioManager(audioContext, preferences, gameCfg.Sounds)
	log.Printf("[App] AudioManager initialized with %d sounds", a.audioManager.SoundCount())

	fontSource, err := render.LoadDefaultFontSource()
	if err != nil {
		log.Printf("[App] Warning: Failed to load font: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene, err := scenes.NewGameScene(scenes.Options{
		Config:       gameCfg,
		ScreenWidth:  float64(a.width),
		ScreenHeight: float64(a.height),
		Input:        NewEbitenInput(),
		Sound:        a.audioManager,
		Autoplay:     cfg.Autoplay,
		Rand:         rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	a.scene = scene

	a.sceneManager = NewSceneManager()
	a.sceneManager.SwitchTo(render.NewSceneView(scene, fontSource))

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleWindowKeys()
	a.updateCursor()

	deltaTime := 1.0 / float64(ebiten.TPS())
	if err := a.sceneManager.Update(deltaTime); err != nil {
		if errors.Is(err, game.ErrQuit) {
			log.Printf("[App] Quit")
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// handleWindowKeys F11 切换全屏，M 切换静音，-/= 调节音量，都写入偏好
func (a *App) handleWindowKeys() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.preferences.SetFullscreen(ebiten.IsFullscreen())
		a.savePreferences()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := !a.preferences.Preferences().SoundEnabled
		a.preferences.SetSoundEnabled(enabled)
		a.savePreferences()
		log.Printf("[App] Sound enabled: %v", enabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.adjustVolume(-VolumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.adjustVolume(VolumeStep)
	}
}

// adjustVolume 调整音效音量，结果限制在 [0,1]
func (a *App) adjustVolume(delta float64) {
	a.preferences.SetSoundVolume(a.preferences.Preferences().SoundVolume + delta)
	a.savePreferences()
	log.Printf("[App] Sound volume: %.1f", a.preferences.Preferences().SoundVolume)
}

func (a *App) savePreferences() {
	if err := a.preferences.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save preferences: %v", err)
	}
}

// updateCursor 游戏进行中隐藏鼠标，否则显示
func (a *App) updateCursor() {
	hide := a.scene.State() != scenes.StateInactive
	if hide == a.cursorHidden {
		return
	}
	a.cursorHidden = hide
	if hide {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// WindowSize 返回窗口模式下的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.windowWidth, a.windowHeight
}

// Fullscreen 是否以全屏启动
func (a *App) Fullscreen() bool {
	return a.fullscreen
}
