package game

import "github.com/gonewx/alieninvasion/pkg/config"

// Settings 会话级的游戏参数
//
// 静态部分（尺寸、上限、倍率）在创建时确定；动态部分（速度、分值、舰队方向）
// 由 InitializeDynamicSettings 重置，只能通过 IncreaseSpeed / ScaleSpeeds 增大。
// 由 GameScene 持有，以指针显式传给各系统。
type Settings struct {
	// 屏幕
	ScreenWidth  float64
	ScreenHeight float64

	// 飞船
	ShipWidth  float64
	ShipHeight float64
	ShipLimit  int
	ShipSpeed  float64

	// 子弹
	BulletWidth    float64
	BulletHeight   float64
	BulletsAllowed int
	BulletSpeed    float64

	// 外星人
	AlienWidth     float64
	AlienHeight    float64
	AlienSpeed     float64
	AlienPoints    int
	FleetDropSpeed float64
	// FleetDirection 1 表示向右，-1 表示向左
	FleetDirection float64

	// 倍率
	SpeedupScale float64
	ScoreScale   float64

	// 重置基准
	baseShipSpeed   float64
	baseBulletSpeed float64
	baseAlienSpeed  float64
	baseAlienPoints int
}

// NewSettings 根据配置和实际屏幕尺寸创建 Settings
// 返回的 Settings 已完成 InitializeDynamicSettings
func NewSettings(cfg *config.GameConfig, screenWidth, screenHeight float64) *Settings {
	s := &Settings{
		ScreenWidth:    screenWidth,
		ScreenHeight:   screenHeight,
		ShipWidth:      cfg.Ship.Width,
		ShipHeight:     cfg.Ship.Height,
		ShipLimit:      cfg.Ship.Limit,
		BulletWidth:    cfg.Bullet.Width,
		BulletHeight:   cfg.Bullet.Height,
		BulletsAllowed: cfg.Bullet.Allowed,
		AlienWidth:     cfg.Alien.Width,
		AlienHeight:    cfg.Alien.Height,
		FleetDropSpeed: cfg.Alien.FleetDropSpeed,
		SpeedupScale:   cfg.Scaling.SpeedupScale,
		ScoreScale:     cfg.Scaling.ScoreScale,

		baseShipSpeed:   cfg.Ship.Speed,
		baseBulletSpeed: cfg.Bullet.Speed,
		baseAlienSpeed:  cfg.Alien.Speed,
		baseAlienPoints: cfg.Alien.Points,
	}
	s.InitializeDynamicSettings()
	return s
}

// InitializeDynamicSettings 将速度、分值和舰队方向恢复为基准值
// 重复调用结果相同
func (s *Settings) InitializeDynamicSettings() {
	s.ShipSpeed = s.baseShipSpeed
	s.BulletSpeed = s.baseBulletSpeed
	s.AlienSpeed = s.baseAlienSpeed
	s.AlienPoints = s.baseAlienPoints
	s.FleetDirection = 1
}

// IncreaseSpeed 升级：速度乘以 SpeedupScale，分值乘以 ScoreScale 后向下取整
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ScaleSpeeds 将飞船、子弹、外星人速度及其基准值同时乘以 factor
// 自动驾驶启动时调用，之后的重置仍保持加速
func (s *Settings) ScaleSpeeds(factor float64) {
	s.baseShipSpeed *= factor
	s.baseBulletSpeed *= factor
	s.baseAlienSpeed *= factor
	s.ShipSpeed *= factor
	s.BulletSpeed *= factor
	s.AlienSpeed *= factor
}

// ReverseFleetDirection 舰队水平方向取反
func (s *Settings) ReverseFleetDirection() {
	s.FleetDirection = -s.FleetDirection
}
