package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/ecs"
	"github.com/gonewx/alieninvasion/pkg/entities"
	"github.com/gonewx/alieninvasion/pkg/game"
	"github.com/gonewx/alieninvasion/pkg/systems"
)

// GameState 游戏循环的状态
type GameState int

const (
	// StateInactive 等待点击开始按钮
	StateInactive GameState = iota
	// StateActive 正常推进
	StateActive
	// StatePaused 飞船被击中后的短暂停顿，仍处理退出
	StatePaused
)

func (s GameState) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// Options 创建 GameScene 所需的依赖
type Options struct {
	Config       *config.GameConfig
	ScreenWidth  float64
	ScreenHeight float64
	Input        game.InputSource
	// Sound 为 nil 时静音
	Sound game.SoundPlayer
	// Autoplay 启用自动驾驶：创建后立即开始游戏并加速
	Autoplay bool
	// Rand 为 nil 时以当前时间为种子
	Rand *rand.Rand
}

// GameScene 外星人入侵的主循环
//
// 每帧固定顺序推进：输入 → 飞船 → 子弹 → 子弹/外星人碰撞 → 舰队 →
// 飞船受击判定 → 自动驾驶。速度单位为像素/帧，deltaTime 只用于受击停顿计时。
type GameScene struct {
	cfg      *config.GameConfig
	input    game.InputSource
	sound    game.SoundPlayer
	autoplay bool

	entityManager *ecs.EntityManager
	settings      *game.Settings
	stats         *game.GameStats

	state       GameState
	clock       float64 // 累计运行时间（秒）
	pausedUntil float64

	playButtonID ecs.EntityID
	background   color.RGBA

	shipSystem       *systems.ShipSystem
	bulletSystem     *systems.BulletSystem
	collisionSystem  *systems.CollisionSystem
	fleetSystem      *systems.FleetSystem
	agentSystem      *systems.AgentSystem
	scoreboardSystem *systems.ScoreboardSystem
}

// NewGameScene 创建游戏场景并生成第一支舰队
// 屏幕尺寸容纳不下一个外星人时返回错误
func NewGameScene(opts Options) (*GameScene, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if err := cfg.ValidateScreen(opts.ScreenWidth, opts.ScreenHeight); err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	input := opts.Input
	if input == nil {
		input = &game.ScriptedInput{}
	}
	sound := opts.Sound
	if sound == nil {
		sound = game.NopSoundPlayer{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	settings := game.NewSettings(cfg, opts.ScreenWidth, opts.ScreenHeight)
	stats := game.NewGameStats(settings)

	s := &GameScene{
		cfg:           cfg,
		input:         input,
		sound:         sound,
		autoplay:      opts.Autoplay,
		entityManager: em,
		settings:      settings,
		stats:         stats,
		state:         StateInactive,
		background:    cfg.Screen.Background.Color(),
	}

	entities.CreateStarfield(em, settings, cfg.Stars, rng)
	shipID := entities.NewShip(em, settings, cfg.Ship.Color.Color())
	s.playButtonID = entities.NewPlayButton(em, settings)

	s.shipSystem = systems.NewShipSystem(em, settings, shipID)
	s.bulletSystem = systems.NewBulletSystem(em, settings, s.shipSystem, cfg.Bullet.Color.Color())
	s.collisionSystem = systems.NewCollisionSystem(em, settings, stats)
	s.fleetSystem = systems.NewFleetSystem(em, settings, cfg.Alien.Color.Color())
	s.agentSystem = systems.NewAgentSystem(settings, cfg.Agent, rng)
	s.scoreboardSystem = systems.NewScoreboardSystem(settings, stats)

	aliens := s.fleetSystem.Rebuild()
	log.Printf("[GameScene] Created %.0fx%.0f scene with %d aliens (autoplay=%v)",
		opts.ScreenWidth, opts.ScreenHeight, aliens, opts.Autoplay)

	if s.autoplay {
		s.agentSystem.Start()
		s.startGame()
	}

	return s, nil
}

// Update 推进一帧
// 收到退出请求时返回 game.ErrQuit
func (s *GameScene) Update(deltaTime float64) error {
	s.clock += deltaTime

	if err := s.handleInput(); err != nil {
		return err
	}

	if s.state == StatePaused {
		if s.clock < s.pausedUntil {
			return nil
		}
		s.state = StateActive
		log.Printf("[GameScene] Resumed after ship hit")
	}
	if s.state != StateActive {
		return nil
	}

	s.shipSystem.Update()
	s.updateBullets()
	s.updateAliens()

	if s.autoplay && s.state == StateActive {
		fire := s.agentSystem.Update(s.shipSystem.Ship(), s.shipSystem.Bounds(),
			s.fleetSystem.Count(), s.fleetSystem.FleetSize())
		if fire {
			s.fireBullet()
		}
	}
	return nil
}

// updateBullets 移动子弹、处理碰撞，舰队被消灭时进入下一关
func (s *GameScene) updateBullets() {
	s.bulletSystem.Update()

	if destroyed := s.collisionSystem.CheckBulletAlienCollisions(); destroyed > 0 {
		s.sound.PlaySound(game.SoundAlienDestroyed)
	}

	if s.fleetSystem.Count() == 0 {
		s.bulletSystem.Clear()
		s.fleetSystem.Rebuild()
		s.settings.IncreaseSpeed()
		s.stats.NextLevel()
		log.Printf("[GameScene] Fleet destroyed, advancing to level %d", s.stats.Level)
	}
}

// updateAliens 移动舰队并检查飞船是否被击中
// 同一帧内飞船最多被击中一次
func (s *GameScene) updateAliens() {
	s.fleetSystem.CheckFleetEdges()
	s.fleetSystem.Update()

	if s.collisionSystem.ShipCollidesWithAlien(s.shipSystem.Bounds()) {
		s.shipHit()
		return
	}
	if s.fleetSystem.ReachedBottom() {
		s.shipHit()
	}
}

func (s *GameScene) shipHit() {
	if s.stats.LoseShip() {
		s.bulletSystem.Clear()
		s.fleetSystem.Rebuild()
		entities.CenterShip(s.entityManager, s.shipSystem.ShipID(), s.settings)

		s.state = StatePaused
		s.pausedUntil = s.clock + s.cfg.HitPause
		log.Printf("[GameScene] Ship hit, %d ships left", s.stats.ShipsLeft)
		return
	}

	s.stats.CheckHighScore()
	s.state = StateInactive
	log.Printf("[GameScene] Game over: score=%d level=%d high=%d",
		s.stats.Score, s.stats.Level, s.stats.HighScore)
}

// startGame 重置动态参数和统计，开始新的一局
// 自动驾驶的加速已计入基准值，重置后仍然保留
func (s *GameScene) startGame() {
	s.settings.InitializeDynamicSettings()
	s.stats.ResetStats()

	s.bulletSystem.Clear()
	s.fleetSystem.Rebuild()
	entities.CenterShip(s.entityManager, s.shipSystem.ShipID(), s.settings)
	entities.StopShip(s.entityManager, s.shipSystem.ShipID())

	s.state = StateActive
	log.Printf("[GameScene] Game started")
}

// fireBullet 发射子弹，成功时播放音效
func (s *GameScene) fireBullet() {
	if s.bulletSystem.Fire() {
		s.sound.PlaySound(game.SoundBulletFired)
	}
}

// EntityManager 返回场景的实体管理器（渲染前端使用）
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Settings 返回当前参数
func (s *GameScene) Settings() *game.Settings {
	return s.settings
}

// Stats 返回当前统计
func (s *GameScene) Stats() *game.GameStats {
	return s.stats
}

// State 返回当前状态
func (s *GameScene) State() GameState {
	return s.state
}

// Config 返回场景使用的基础配置
func (s *GameScene) Config() *config.GameConfig {
	return s.cfg
}

// Background 背景色
func (s *GameScene) Background() color.RGBA {
	return s.background
}

// PlayButton 返回开始按钮组件
func (s *GameScene) PlayButton() *components.ButtonComponent {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, s.playButtonID)
	return button
}

// PlayButtonID 返回开始按钮实体
func (s *GameScene) PlayButtonID() ecs.EntityID {
	return s.playButtonID
}

// ShipBounds 返回飞船当前的矩形
func (s *GameScene) ShipBounds() components.Rect {
	return s.shipSystem.Bounds()
}

// AliensLeft 返回当前存活的外星人数量
func (s *GameScene) AliensLeft() int {
	return s.fleetSystem.Count()
}

// BulletCount 返回场上子弹数量
func (s *GameScene) BulletCount() int {
	return s.bulletSystem.Count()
}

// ScoreboardSystem 返回计分板布局
func (s *GameScene) ScoreboardSystem() *systems.ScoreboardSystem {
	return s.scoreboardSystem
}
