//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.gonewx.alieninvasion -o build/android/alieninvasion.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/alieninvasion/pkg/app"
	"github.com/gonewx/alieninvasion/pkg/config"
	"github.com/gonewx/alieninvasion/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	cfg := config.DefaultGameConfig()
	if data, err := embedded.ReadFile(config.GameConfigPath); err == nil {
		if parsed, err := config.ParseGameConfig(data); err == nil {
			cfg = parsed
		} else {
			log.Printf("[Mobile] Invalid embedded config, using defaults: %v", err)
		}
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose: true,
		Game:    cfg,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
