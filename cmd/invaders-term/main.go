// invaders-term 在终端中运行外星人入侵
//
// 每个字符格对应 16x32 逻辑像素。终端不上报按键抬起，方向键在停止
// 自动重复一段时间后视为抬起。
//
// 用法:
//
//	go run ./cmd/invaders-term [--autoplay] [--log invaders.log] [--config data/game.yaml]
//
// 按 m 切换静音。
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/alieninvasion/internal/audio"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
	"github.com/gonewx/alieninvasion/pkg/scenes"
	"github.com/gonewx/alieninvasion/pkg/terminal"
)

const tickRate = 60

var (
	logPath    = flag.String("log", "", "日志文件（默认丢弃，终端已被占用）")
	autoplay   = flag.Bool("autoplay", false, "由自动驾驶控制飞船")
	configPath = flag.String("config", config.GameConfigPath, "游戏配置文件")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute       = flag.Bool("mute", false, "启动时静音（可按 m 切换）")
)

func main() {
	flag.Parse()

	closeLog, err := setupLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "日志文件打开失败: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	stats, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Score: %d  High score: %d  Level: %d\n", stats.Score, stats.HighScore, stats.Level)
}

func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// run 运行游戏直到退出，返回最终统计
func run(cfg *config.GameConfig) (game.GameStats, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return game.GameStats{}, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.GameStats{}, fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// 逻辑屏幕在启动时由终端尺寸决定，之后改变终端大小只会裁剪画面
	cols, rows := screen.Size()
	width, height := terminal.LogicalSize(cols, rows)

	input := terminal.NewInput(terminal.DefaultHoldFrames)

	var sound game.SoundPlayer = game.NopSoundPlayer{}
	player, err := audio.NewSpeakerPlayer(cfg.Sounds)
	if err != nil {
		// 没有声卡时继续运行
		log.Printf("[Term] Audio initialization failed: %v", err)
	} else {
		defer player.Close()
		player.SetEnabled(!*mute)
		input.OnMute(func() {
			player.SetEnabled(!player.Enabled())
			log.Printf("[Term] Sound enabled: %v", player.Enabled())
		})
		sound = player
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	scene, err := scenes.NewGameScene(scenes.Options{
		Config:       cfg,
		ScreenWidth:  width,
		ScreenHeight: height,
		Input:        input,
		Sound:        sound,
		Autoplay:     *autoplay,
		Rand:         rand.New(rand.NewSource(s)),
	})
	if err != nil {
		return game.GameStats{}, fmt.Errorf("terminal %dx%d: %w", cols, rows, err)
	}
	input.Listen(screen)
	renderer := terminal.NewRenderer(screen)

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	last := time.Now()
	for now := range ticker.C {
		dt := now.Sub(last).Seconds()
		last = now

		if err := scene.Update(dt); err != nil {
			if errors.Is(err, game.ErrQuit) {
				return *scene.Stats(), nil
			}
			return *scene.Stats(), err
		}
		renderer.Draw(scene)
	}
	return *scene.Stats(), nil
}
