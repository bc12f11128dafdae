package scenes

import (
	"log"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EndScene 剧本结束画面，点击回到标题
type EndScene struct {
	titleFont  text.Face
	promptFont text.Face
	onReturn   func()
}

// NewEndScene 创建结束画面
func NewEndScene(rm *game.ResourceManager, cfg *config.PlayerConfig, onReturn func()) *EndScene {
	return &EndScene{
		titleFont:  rm.FontOrDefault(cfg.Font, titleFontSize),
		promptFont: rm.FontOrDefault(cfg.Font, promptFontSize),
		onReturn:   onReturn,
	}
}

// Update 等待点击
func (s *EndScene) Update(deltaTime float64) {
	s.step(advancePressed())
}

func (s *EndScene) step(pressed bool) {
	if !pressed {
		return
	}
	log.Printf("[EndScene] 返回标题")
	if s.onReturn != nil {
		s.onReturn()
	}
}

// Draw 绘制结束文字
func (s *EndScene) Draw(screen *ebiten.Image) {
	screen.Fill(titleBackgroundColor)
	drawCenteredText(screen, "THE END", s.titleFont, titleY, titleColor)
	drawCenteredText(screen, "Click to return to title", s.promptFont, promptY, promptColor)
}
