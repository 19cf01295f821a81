// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 pkg/cli 的根命令调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/pickup52/pkg/config"
	"github.com/decker502/pickup52/pkg/game"
	"github.com/decker502/pickup52/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cardPixelScale 牌面图片相对世界尺寸的分辨率倍数
const cardPixelScale = 2

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部游戏配置文件（.yaml/.yml/.toml），为空使用内置配置
	ConfigPath string
	// Seed 第一局的发牌种子，FixedSeed 为 false 时忽略
	Seed uint64
	// FixedSeed 是否使用 Seed
	FixedSeed bool
	// SkipMenu 跳过菜单，直接发牌
	SkipMenu bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	env                      *scenes.Env
	gameConfig               *config.GameConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置非法、资源清单缺牌、牌面图片无法加载都会返回错误，游戏不会启动。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	catalog, err := config.LoadEmbeddedCardAssets()
	if err != nil {
		return nil, fmt.Errorf("card assets: %w", err)
	}

	// 创建资源管理器并预生成全部牌面
	resourceManager := game.NewResourceManager(catalog,
		int(gameConfig.Card.Width*cardPixelScale), int(gameConfig.Card.Height*cardPixelScale))
	if err := resourceManager.Preload(); err != nil {
		return nil, fmt.Errorf("card images: %w", err)
	}
	log.Printf("[App] %d card faces ready", catalog.Len())

	// 统计存储不可用时降级为内存模式
	storage, err := game.OpenStorage(game.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (stats will not be saved)", err)
	}
	statsManager := game.NewStatsManager(storage)

	seed := cfg.Seed
	if !cfg.FixedSeed {
		seed = uint64(time.Now().UnixNano())
	}

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	env := scenes.NewEnv(gameConfig, resourceManager, statsManager, sceneManager, seed, cfg.FixedSeed)
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		switch name {
		case game.SceneMenu:
			return scenes.NewMenuScene(env)
		case game.SceneTable:
			table, err := scenes.NewTableScene(env)
			if err != nil {
				env.Fail(err)
				return nil
			}
			return table
		}
		return nil
	})

	start := game.SceneMenu
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, dealing immediately")
		start = game.SceneTable
	}
	if !sceneManager.Load(start) {
		if err := env.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load scene %q", start)
	}

	return &App{
		sceneManager: sceneManager,
		env:          env,
		gameConfig:   gameConfig,
	}, nil
}

func loadGameConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.LoadEmbeddedGameConfig()
	}
	log.Printf("[Config] 加载游戏配置: %s", path)
	return config.LoadGameConfig(path)
}

// GameConfig 返回生效的游戏配置
func (a *App) GameConfig() *config.GameConfig {
	return a.gameConfig
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 窗口关闭：保存统计后退出
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.SaveOnExit()
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)

	// 场景中的致命错误（例如重新发牌失败）结束游戏循环
	return a.env.Err()
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}
