package scenes

import (
	"log"

	"github.com/gonewx/alieninvasion/pkg/game"
)

// handleInput 处理本帧的全部输入事件
//
// 退出在任何状态下都有效。自动驾驶模式下忽略方向键和开火键，
// 只响应退出和开始游戏。
func (s *GameScene) handleInput() error {
	for _, ev := range s.input.Poll() {
		switch ev.Kind {
		case game.InputQuit:
			log.Printf("[GameScene] Quit requested")
			return game.ErrQuit

		case game.InputKeyDown:
			if ev.Key == game.KeyEscape {
				log.Printf("[GameScene] Escape pressed")
				return game.ErrQuit
			}
			s.handleKeyDown(ev.Key)

		case game.InputKeyUp:
			s.handleKeyUp(ev.Key)

		case game.InputPointerDown:
			s.checkPlayButton(ev.X, ev.Y)
		}
	}
	return nil
}

func (s *GameScene) handleKeyDown(key game.Key) {
	if key == game.KeyPlay {
		if s.state == StateInactive {
			s.startGame()
		}
		return
	}
	if s.autoplay {
		return
	}

	ship := s.shipSystem.Ship()
	switch key {
	case game.KeyRight:
		if ship != nil {
			ship.MovingRight = true
		}
	case game.KeyLeft:
		if ship != nil {
			ship.MovingLeft = true
		}
	case game.KeyFire:
		if s.state == StateActive {
			s.fireBullet()
		}
	}
}

func (s *GameScene) handleKeyUp(key game.Key) {
	if s.autoplay {
		return
	}
	ship := s.shipSystem.Ship()
	if ship == nil {
		return
	}
	switch key {
	case game.KeyRight:
		ship.MovingRight = false
	case game.KeyLeft:
		ship.MovingLeft = false
	}
}

// checkPlayButton 非游戏状态下点击开始按钮时开始新一局
func (s *GameScene) checkPlayButton(x, y float64) {
	if s.state != StateInactive {
		return
	}
	button := s.PlayButton()
	if button == nil || !button.Rect.Contains(x, y) {
		return
	}
	s.startGame()
}
