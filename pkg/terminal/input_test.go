package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/alieninvasion/pkg/components"
	"github.com/gonewx/alieninvasion/pkg/game"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want []game.InputEvent
	}{
		{"q 退出", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), []game.InputEvent{{Kind: game.InputQuit}}},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), []game.InputEvent{{Kind: game.InputQuit}}},
		{"Esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), []game.InputEvent{{Kind: game.InputKeyDown, Key: game.KeyEscape}}},
		{"空格开火", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), []game.InputEvent{{Kind: game.InputKeyDown, Key: game.KeyFire}}},
		{"P 开始", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), []game.InputEvent{{Kind: game.InputKeyDown, Key: game.KeyPlay}}},
		{"回车开始", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), []game.InputEvent{{Kind: game.InputKeyDown, Key: game.KeyPlay}}},
		{"未绑定的键", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInput(3)
			in.Push(tt.ev)
			got := in.Poll()
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestArrowHoldWindow(t *testing.T) {
	in := NewInput(3)
	right := tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	in.Push(right)
	got := in.Poll()
	if len(got) != 1 || got[0] != (game.InputEvent{Kind: game.InputKeyDown, Key: game.KeyRight}) {
		t.Fatalf("expected a single key down, got %v", got)
	}

	// 自动重复不产生新的按下事件
	in.Push(right)
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("repeat should be silent, got %v", got)
	}

	for i := 0; i < 2; i++ {
		if got := in.Poll(); len(got) != 0 {
			t.Fatalf("frame %d: key should still be held, got %v", i, got)
		}
	}
	got = in.Poll()
	if len(got) != 1 || got[0] != (game.InputEvent{Kind: game.InputKeyUp, Key: game.KeyRight}) {
		t.Errorf("expected key up once the hold window elapsed, got %v", got)
	}
	if in.Held(game.KeyRight) {
		t.Error("key should no longer be held")
	}
}

func TestArrowOppositeReleases(t *testing.T) {
	in := NewInput(10)
	in.Push(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	in.Poll()

	in.Push(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	got := in.Poll()
	want := []game.InputEvent{
		{Kind: game.InputKeyUp, Key: game.KeyRight},
		{Kind: game.InputKeyDown, Key: game.KeyLeft},
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMouseClick(t *testing.T) {
	in := NewInput(0)

	in.Push(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone))
	got := in.Poll()
	if len(got) != 1 || got[0].Kind != game.InputPointerDown || got[0].X != 56 || got[0].Y != 80 {
		t.Fatalf("expected pointer down at (56,80), got %v", got)
	}

	// 按住拖动不重复触发
	in.Push(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("drag should not click again, got %v", got)
	}

	in.Push(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	in.Push(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))
	if got := in.Poll(); len(got) != 1 {
		t.Errorf("release then press should click once, got %v", got)
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		name           string
		rect           components.Rect
		c0, r0, c1, r1 int
	}{
		{"对齐格子", components.Rect{X: 16, Y: 32, Width: 32, Height: 32}, 1, 1, 2, 1},
		{"跨格", components.Rect{X: 60, Y: 58, Width: 60, Height: 58}, 3, 1, 7, 3},
		{"小于一格", components.Rect{X: 20, Y: 40, Width: 3, Height: 15}, 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c0, r0, c1, r1 := CellSpan(tt.rect)
			if c0 != tt.c0 || r0 != tt.r0 || c1 != tt.c1 || r1 != tt.r1 {
				t.Errorf("CellSpan = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					c0, r0, c1, r1, tt.c0, tt.r0, tt.c1, tt.r1)
			}
		})
	}
}

func TestLogicalSize(t *testing.T) {
	w, h := LogicalSize(80, 24)
	if w != 1280 || h != 768 {
		t.Errorf("expected 1280x768, got %vx%v", w, h)
	}
}

// TestMuteKey m 键只触发静音回调，不产生游戏事件
func TestMuteKey(t *testing.T) {
	in := NewInput(3)
	in.Push(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if got := in.Poll(); len(got) != 0 {
		t.Fatalf("mute without handler should be ignored, got %v", got)
	}

	toggles := 0
	in.OnMute(func() { toggles++ })
	in.Push(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	in.Push(tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone))
	if got := in.Poll(); len(got) != 0 {
		t.Errorf("mute should not reach the scene, got %v", got)
	}
	if toggles != 2 {
		t.Errorf("expected 2 toggles, got %d", toggles)
	}
}
