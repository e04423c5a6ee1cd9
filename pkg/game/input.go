package game

// InputKind 输入事件类型
type InputKind int

const (
	// InputQuit 关闭窗口或终端中断
	InputQuit InputKind = iota
	// InputKeyDown 按键按下
	InputKeyDown
	// InputKeyUp 按键抬起
	InputKeyUp
	// InputPointerDown 鼠标或触摸按下
	InputPointerDown
)

// Key 游戏关心的按键，与具体前端的键码无关
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyEscape
	// KeyPlay 开始游戏的快捷键（P 或回车）
	KeyPlay
)

// InputEvent 一帧内的一个输入事件
type InputEvent struct {
	Kind InputKind
	Key  Key
	// X, Y 仅 InputPointerDown 有效，为逻辑像素坐标
	X, Y float64
}

// InputSource 拉取式输入源，每帧调用一次 Poll
type InputSource interface {
	Poll() []InputEvent
}

// ScriptedInput 按帧回放预设事件的输入源
// 第 i 次 Poll 返回 Frames[i]，用完后返回空
type ScriptedInput struct {
	Frames [][]InputEvent
	frame  int
}

// Poll 返回当前帧的事件
func (s *ScriptedInput) Poll() []InputEvent {
	if s.frame >= len(s.Frames) {
		return nil
	}
	events := s.Frames[s.frame]
	s.frame++
	return events
}

// Push 追加一帧事件
func (s *ScriptedInput) Push(events ...InputEvent) {
	s.Frames = append(s.Frames, events)
}
