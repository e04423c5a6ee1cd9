// verify_autoplay 无界面运行自动驾驶，打印每局结果
//
// 用法:
//
//	go run ./cmd/verify_autoplay --frames 36000 --seed 42 --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/game"
	"github.com/gonewx/alieninvasion/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	frames     = flag.Int("frames", 60*60*10, "运行的帧数（60 帧 = 1 秒）")
	seed       = flag.Int64("seed", 1, "随机种子")
	width      = flag.Float64("width", 0, "逻辑屏幕宽度（默认取配置）")
	height     = flag.Float64("height", 0, "逻辑屏幕高度（默认取配置）")
	configPath = flag.String("config", config.GameConfigPath, "游戏配置文件")
)

// replayInput 游戏结束后自动按下开始键
type replayInput struct {
	scene *scenes.GameScene
}

func (in *replayInput) Poll() []game.InputEvent {
	if in.scene != nil && in.scene.State() == scenes.StateInactive {
		return []game.InputEvent{{Kind: game.InputKeyDown, Key: game.KeyPlay}}
	}
	return nil
}

// countingSound 统计音效次数
type countingSound map[string]int

func (c countingSound) PlaySound(id string) bool {
	c[id]++
	return true
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	w, h := *width, *height
	if w == 0 || h == 0 {
		w, h = float64(cfg.Screen.Width), float64(cfg.Screen.Height)
	}

	input := &replayInput{}
	sound := countingSound{}
	scene, err := scenes.NewGameScene(scenes.Options{
		Config:       cfg,
		ScreenWidth:  w,
		ScreenHeight: h,
		Input:        input,
		Sound:        sound,
		Autoplay:     true,
		Rand:         rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "场景创建失败: %v\n", err)
		os.Exit(1)
	}
	input.scene = scene

	const dt = 1.0 / 60.0
	games := 1
	prev := scene.State()
	for i := 0; i < *frames; i++ {
		if err := scene.Update(dt); err != nil {
			fmt.Fprintf(os.Stderr, "帧 %d 出错: %v\n", i, err)
			os.Exit(1)
		}

		state := scene.State()
		if prev != scenes.StateInactive && state == scenes.StateInactive {
			stats := scene.Stats()
			fmt.Printf("game %d over at frame %d: score=%d level=%d\n", games, i, stats.Score, stats.Level)
			games++
		}
		prev = state
	}

	stats := scene.Stats()
	fmt.Println("==== verify_autoplay ====")
	fmt.Printf("screen:      %.0fx%.0f\n", w, h)
	fmt.Printf("frames:      %d\n", *frames)
	fmt.Printf("games:       %d\n", games)
	fmt.Printf("state:       %s\n", scene.State())
	fmt.Printf("score:       %d\n", stats.Score)
	fmt.Printf("high score:  %d\n", stats.HighScore)
	fmt.Printf("level:       %d\n", stats.Level)
	fmt.Printf("ships left:  %d\n", stats.ShipsLeft)
	fmt.Printf("aliens left: %d\n", scene.AliensLeft())
	fmt.Printf("shots fired: %d\n", sound[game.SoundBulletFired])
	fmt.Printf("hit frames:  %d\n", sound[game.SoundAlienDestroyed])
}
