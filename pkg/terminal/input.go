package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/alieninvasion/pkg/game"
)

// 每个终端字符格对应的逻辑像素
const (
	CellWidth  = 16.0
	CellHeight = 32.0
)

// DefaultHoldFrames 方向键在最后一次按下（含自动重复）后保持的帧数
// 终端不上报按键抬起，超过该帧数未再收到按下时视为抬起。
// 需要大于终端自动重复的首次延迟（通常 250~500ms）。
const DefaultHoldFrames = 30

// Input 把 tcell 事件转换为 game.InputEvent
//
// 方向键的抬起由保持窗口模拟；按下一个方向会立即抬起另一个方向。
// 事件由 Listen 启动的后台协程写入，Poll 在游戏循环中非阻塞地取出。
type Input struct {
	events      chan tcell.Event
	holdFrames  int
	held        map[game.Key]int
	lastButtons tcell.ButtonMask
	onMute      func()
}

// NewInput 创建输入源，holdFrames <= 0 时使用 DefaultHoldFrames
func NewInput(holdFrames int) *Input {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	return &Input{
		events:     make(chan tcell.Event, 256),
		holdFrames: holdFrames,
		held:       make(map[game.Key]int),
	}
}

// Listen 在后台读取屏幕事件，屏幕 Fini 后退出
func (in *Input) Listen(screen tcell.Screen) {
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			in.Push(ev)
		}
	}()
}

// Push 投递一个事件，队列满时丢弃
func (in *Input) Push(ev tcell.Event) {
	select {
	case in.events <- ev:
	default:
	}
}

// Poll 取出本帧全部事件，并为超时的方向键生成抬起事件
func (in *Input) Poll() []game.InputEvent {
	var out []game.InputEvent
	refreshed := make(map[game.Key]bool, 2)

drain:
	for {
		select {
		case ev := <-in.events:
			out = in.translate(ev, out, refreshed)
		default:
			break drain
		}
	}

	for _, key := range []game.Key{game.KeyLeft, game.KeyRight} {
		n, ok := in.held[key]
		if !ok || refreshed[key] {
			continue
		}
		n--
		if n <= 0 {
			delete(in.held, key)
			out = append(out, game.InputEvent{Kind: game.InputKeyUp, Key: key})
			continue
		}
		in.held[key] = n
	}
	return out
}

// OnMute 设置 m 键的回调，在 Poll 所在的协程中调用
func (in *Input) OnMute(fn func()) {
	in.onMute = fn
}

// Held 方向键当前是否处于按下状态
func (in *Input) Held(key game.Key) bool {
	_, ok := in.held[key]
	return ok
}

func (in *Input) translate(ev tcell.Event, out []game.InputEvent, refreshed map[game.Key]bool) []game.InputEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.translateKey(ev, out, refreshed)
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && in.lastButtons&tcell.Button1 == 0
		in.lastButtons = buttons
		if pressed {
			col, row := ev.Position()
			x, y := CellCenter(col, row)
			out = append(out, game.InputEvent{Kind: game.InputPointerDown, X: x, Y: y})
		}
	}
	return out
}

func (in *Input) translateKey(ev *tcell.EventKey, out []game.InputEvent, refreshed map[game.Key]bool) []game.InputEvent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return append(out, game.InputEvent{Kind: game.InputQuit})
	case tcell.KeyEscape:
		return append(out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyEscape})
	case tcell.KeyEnter:
		return append(out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyPlay})
	case tcell.KeyLeft:
		return in.press(game.KeyLeft, game.KeyRight, out, refreshed)
	case tcell.KeyRight:
		return in.press(game.KeyRight, game.KeyLeft, out, refreshed)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return append(out, game.InputEvent{Kind: game.InputQuit})
		case ' ':
			return append(out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyFire})
		case 'p', 'P':
			return append(out, game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyPlay})
		case 'm', 'M':
			if in.onMute != nil {
				in.onMute()
			}
		}
	}
	return out
}

// press 处理方向键按下（含自动重复）
func (in *Input) press(key, opposite game.Key, out []game.InputEvent, refreshed map[game.Key]bool) []game.InputEvent {
	if _, ok := in.held[opposite]; ok {
		delete(in.held, opposite)
		out = append(out, game.InputEvent{Kind: game.InputKeyUp, Key: opposite})
	}
	if _, ok := in.held[key]; !ok {
		out = append(out, game.InputEvent{Kind: game.InputKeyDown, Key: key})
	}
	in.held[key] = in.holdFrames
	refreshed[key] = true
	return out
}

// CellCenter 返回字符格中心的逻辑像素坐标
func CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// LogicalSize 终端尺寸对应的逻辑屏幕尺寸
func LogicalSize(cols, rows int) (width, height float64) {
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}
