package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	titleFontSize  = 48.0
	promptFontSize = 20.0
	titleY         = 200.0
	promptY        = 380.0
)

var (
	titleBackgroundColor = color.RGBA{R: 20, G: 16, B: 40, A: 255}
	titleColor           = color.RGBA{R: 240, G: 220, B: 255, A: 255}
	promptColor          = color.RGBA{R: 200, G: 200, B: 220, A: 255}
)

// TitleScene 标题画面，点击后开始播放
type TitleScene struct {
	title       string
	prompt      string
	titleFont   text.Face
	promptFont  text.Face
	elapsedTime float64
	onStart     func()
}

// NewTitleScene 创建标题画面
//
// 参数：
//   - rm: ResourceManager 实例（加载字体）
//   - cfg: 播放器配置（标题、字体路径）
//   - onStart: 玩家点击开始时调用
func NewTitleScene(rm *game.ResourceManager, cfg *config.PlayerConfig, onStart func()) *TitleScene {
	return &TitleScene{
		title:      cfg.Title,
		prompt:     "Click to start",
		titleFont:  rm.FontOrDefault(cfg.Font, titleFontSize),
		promptFont: rm.FontOrDefault(cfg.Font, promptFontSize),
		onStart:    onStart,
	}
}

// Update 等待点击
func (s *TitleScene) Update(deltaTime float64) {
	s.step(deltaTime, advancePressed())
}

func (s *TitleScene) step(deltaTime float64, pressed bool) {
	s.elapsedTime += deltaTime
	if !pressed {
		return
	}
	log.Printf("[TitleScene] 开始播放")
	if s.onStart != nil {
		s.onStart()
	}
}

// Draw 绘制标题和闪烁的提示
func (s *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(titleBackgroundColor)
	drawCenteredText(screen, s.title, s.titleFont, titleY, titleColor)
	if int(s.elapsedTime*2)%2 == 0 {
		drawCenteredText(screen, s.prompt, s.promptFont, promptY, promptColor)
	}
}
