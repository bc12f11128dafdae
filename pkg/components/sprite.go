package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
type SpriteComponent struct {
	Image *ebiten.Image
	// Hidden 为 true 时不绘制（立绘在第一次 set char 之前隐藏）
	Hidden bool
}
