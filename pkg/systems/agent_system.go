package systems

import (
	"math/rand"

	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// AgentSystem 自动驾驶策略
//
// 舰队存活数不少于 StopFraction×完整舰队 时左右扫射：起步向右，
// 右边缘越过 屏幕宽-10 时转向左，左边缘小于 10 时转向右；
// 低于该比例后停在原地。每帧以 FireProbability 的概率开火。
// 飞船扫射与舰队转向互不影响。
type AgentSystem struct {
	settings *game.Settings
	cfg      config.AgentConfig
	rng      *rand.Rand
}

// NewAgentSystem 创建自动驾驶
// rng 由调用方注入，测试可使用固定种子
func NewAgentSystem(settings *game.Settings, cfg config.AgentConfig, rng *rand.Rand) *AgentSystem {
	return &AgentSystem{settings: settings, cfg: cfg, rng: rng}
}

// Start 自动驾驶接管时加速飞船、子弹和外星人
func (a *AgentSystem) Start() {
	a.settings.ScaleSpeeds(a.cfg.SpeedFactor)
}

// Update 根据飞船位置和存活外星人数更新移动标志，返回本帧是否开火
func (a *AgentSystem) Update(ship *components.ShipComponent, bounds components.Rect, alive, fleetSize int) bool {
	if float64(alive) >= a.cfg.StopFraction*float64(fleetSize) {
		a.sweep(ship, bounds)
	} else {
		ship.MovingLeft = false
		ship.MovingRight = false
	}
	return a.rng.Float64() < a.cfg.FireProbability
}

func (a *AgentSystem) sweep(ship *components.ShipComponent, bounds components.Rect) {
	switch {
	case !ship.MovingRight && !ship.MovingLeft:
		ship.MovingRight = true
	case ship.MovingRight && bounds.Right() > a.settings.ScreenWidth-config.EdgeMargin:
		ship.MovingRight = false
		ship.MovingLeft = true
	case ship.MovingLeft && bounds.Left() < config.EdgeMargin:
		ship.MovingLeft = false
		ship.MovingRight = true
	}
}
