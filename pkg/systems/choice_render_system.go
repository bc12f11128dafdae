package systems

import (
	"image/color"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	choiceNormalColor  = color.RGBA{R: 32, G: 32, B: 64, A: 220}
	choiceHoverColor   = color.RGBA{R: 96, G: 72, B: 160, A: 240}
	choiceBorderColor  = color.RGBA{R: 220, G: 220, B: 255, A: 255}
	choiceLabelColor   = color.White
	choiceBorderStroke = float32(2)
)

// ChoiceRenderSystem 选项按钮渲染系统
type ChoiceRenderSystem struct {
	entityManager *ecs.EntityManager
	font          text.Face
}

// NewChoiceRenderSystem 创建选项按钮渲染系统
func NewChoiceRenderSystem(em *ecs.EntityManager, font text.Face) *ChoiceRenderSystem {
	return &ChoiceRenderSystem{entityManager: em, font: font}
}

// Draw 绘制所有选项按钮（悬停高亮，淡入时按 Alpha 绘制）
func (s *ChoiceRenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[
		*components.ChoiceButtonComponent,
		*components.ClickableComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range ids {
		button, _ := ecs.GetComponent[*components.ChoiceButtonComponent](s.entityManager, id)
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha := 1.0
		if fade, ok := ecs.GetComponent[*components.FadeComponent](s.entityManager, id); ok {
			alpha = fade.Alpha
		}

		fill := choiceNormalColor
		if clickable.IsHovered {
			fill = choiceHoverColor
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(clickable.Width), float32(clickable.Height)
		vector.DrawFilledRect(screen, x, y, w, h, scaleAlpha(fill, alpha), true)
		vector.StrokeRect(screen, x, y, w, h, choiceBorderStroke, scaleAlpha(choiceBorderColor, alpha), true)

		s.drawLabel(screen, button.Label, pos.X, pos.Y, clickable.Width, clickable.Height, alpha)
	}
}

// drawLabel 按钮文字居中
func (s *ChoiceRenderSystem) drawLabel(screen *ebiten.Image, label string, x, y, w, h, alpha float64) {
	if s.font == nil || label == "" {
		return
	}
	labelWidth := measureTextWidth(label, s.font)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+(w-labelWidth)/2, y+(h-config.ChoiceFontSize)/2)
	op.ColorScale.ScaleWithColor(choiceLabelColor)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, label, s.font, op)
}

// scaleAlpha 按比例缩放颜色（预乘 alpha）
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
