//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.pickup52 -o build/android/pickup52.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Pickup52.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/pickup52/pkg/app"
	"github.com/decker502/pickup52/pkg/embedded"
)

func init() {
	// assetsFS、dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	// 触屏上直接发牌，不显示菜单
	gameApp, err := app.NewApp(app.Config{
		Verbose:  true,
		SkipMenu: true,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
