package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/alieninvasion/pkg/game"
)

// keyBindings ebiten 键码到游戏按键的映射
var keyBindings = []struct {
	ebitenKey ebiten.Key
	key       game.Key
}{
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeySpace, game.KeyFire},
	{ebiten.KeyEscape, game.KeyEscape},
	{ebiten.KeyQ, game.KeyEscape},
	{ebiten.KeyP, game.KeyPlay},
	{ebiten.KeyEnter, game.KeyPlay},
}

// EbitenInput 从 ebiten 读取输入的 InputSource
// 只报告本帧发生变化的按键（按下/抬起沿）
type EbitenInput struct{}

// NewEbitenInput 创建 ebiten 输入源
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

// Poll 收集本帧的输入事件
func (in *EbitenInput) Poll() []game.InputEvent {
	var events []game.InputEvent

	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.InputEvent{Kind: game.InputQuit})
	}

	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.ebitenKey) {
			events = append(events, game.InputEvent{Kind: game.InputKeyDown, Key: b.key})
		}
		if inpututil.IsKeyJustReleased(b.ebitenKey) {
			events = append(events, game.InputEvent{Kind: game.InputKeyUp, Key: b.key})
		}
	}

	if pressed, x, y := IsJustTouchedOrClicked(); pressed {
		events = append(events, game.InputEvent{
			Kind: game.InputPointerDown,
			X:    float64(x),
			Y:    float64(y),
		})
	}

	return events
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
