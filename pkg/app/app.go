// Package app 提供播放器应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 的 play 命令调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/scenario"
	"github.com/decker502/vnplayer/pkg/scenes"
	"github.com/decker502/vnplayer/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// storageAppName gdata 存储目录名
const storageAppName = "vnplayer"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LogFile 日志文件路径（按大小轮转），为空时输出到标准错误
	LogFile string
	// ConfigPath 播放器配置路径，为空时使用嵌入的 data/player.yaml
	ConfigPath string
	// ScriptPath 覆盖配置中的剧本路径
	ScriptPath string
	// SkipTitle 跳过标题画面，直接开始播放
	SkipTitle bool
}

// App 是播放器应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	playerConfig             *config.PlayerConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化播放器应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 配置优先级：命令行参数 > 环境变量（含 .env）> 配置文件 > 默认值。
func NewApp(cfg Config) (*App, error) {
	SetupLogging(cfg.Verbose, cfg.LogFile)

	playerConfig, err := LoadPlayerConfig(cfg)
	if err != nil {
		return nil, err
	}

	script, err := scenario.Load(playerConfig.Script)
	if err != nil {
		return nil, fmt.Errorf("剧本加载失败: %w", err)
	}
	log.Printf("[App] 剧本 %s: %d 行", playerConfig.Script, script.Len())

	for _, issue := range scenario.Validate(script) {
		log.Printf("[App] 剧本检查 %s", issue)
	}

	settings := game.NewSettingsManager(game.OpenStorage(storageAppName))
	resourceManager := game.NewResourceManager(playerConfig.ImageDir)
	sceneManager := game.NewSceneManager()

	var (
		title *scenes.TitleScene
		story *scenes.StoryScene
		end   *scenes.EndScene
	)
	story = scenes.NewStoryScene(resourceManager, settings, playerConfig, script, func() {
		sceneManager.SwitchTo(end)
	})
	title = scenes.NewTitleScene(resourceManager, playerConfig, func() {
		sceneManager.SwitchTo(story)
		story.Begin()
	})
	end = scenes.NewEndScene(resourceManager, playerConfig, func() {
		story.Restart()
		sceneManager.SwitchTo(title)
	})

	if cfg.SkipTitle {
		log.Printf("[App] SkipTitle enabled, starting story directly")
		sceneManager.SwitchTo(story)
		story.Begin()
	} else {
		sceneManager.SwitchTo(title)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		playerConfig: playerConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadPlayerConfig 加载播放器配置并应用环境变量和命令行覆盖
func LoadPlayerConfig(cfg Config) (*config.PlayerConfig, error) {
	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultPlayerConfigPath
	}

	playerConfig, err := config.LoadPlayerConfig(path)
	if err != nil {
		if cfg.ConfigPath != "" {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[App] Warning: %v (using defaults)", err)
		playerConfig = config.DefaultPlayerConfig()
	}

	if err := playerConfig.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("环境变量无效: %w", err)
	}
	if cfg.ScriptPath != "" {
		playerConfig.Script = cfg.ScriptPath
	}
	return playerConfig, nil
}

// Title 窗口标题
func (a *App) Title() string {
	return a.playerConfig.Title
}

// Fullscreen 已保存的全屏设置
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Update 更新播放器逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	utils.UpdateLastTouchPosition()

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制画面
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

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
