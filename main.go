package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/alieninvasion/pkg/app"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	autoplay   = flag.Bool("autoplay", false, "由自动驾驶控制飞船")
	windowed   = flag.Bool("windowed", false, "以窗口模式启动")
	configPath = flag.String("config", "", "覆盖内置 data/game.yaml 的配置文件")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameCfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Autoplay: *autoplay,
		Windowed: *windowed,
		Game:     gameCfg,
		Seed:     *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ww, wh := gameApp.WindowSize()
	ebiten.SetWindowSize(ww, wh)
	ebiten.SetWindowTitle("Alien Invasion")
	ebiten.SetFullscreen(gameApp.Fullscreen())
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadConfig 读取配置：指定了路径时从磁盘加载，否则使用嵌入的 data/game.yaml
func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	data, err := embedded.ReadFile(config.GameConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameConfig(data)
}
