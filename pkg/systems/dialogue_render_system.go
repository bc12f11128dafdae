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

const continueHintText = "▼"

var (
	dialogueBoxColor = color.RGBA{R: 16, G: 16, B: 32, A: config.DialogueBoxAlpha}
	namePlateColor   = color.RGBA{R: 64, G: 48, B: 96, A: 230}
	dialogueColor    = color.White
)

// DialogueRenderSystem 台词框渲染系统
//
// 职责：
//   - 绘制台词框背景和文本（自动换行）
//   - 说话人不为空时绘制名字框
//   - 推进并绘制闪烁的「点击继续」提示
type DialogueRenderSystem struct {
	entityManager *ecs.EntityManager
	dialogueFont  text.Face
	nameFont      text.Face
}

// NewDialogueRenderSystem 创建台词框渲染系统
// 参数：
//   - em: EntityManager 实例
//   - dialogueFont: 台词字体
//   - nameFont: 名字字体
func NewDialogueRenderSystem(em *ecs.EntityManager, dialogueFont, nameFont text.Face) *DialogueRenderSystem {
	return &DialogueRenderSystem{
		entityManager: em,
		dialogueFont:  dialogueFont,
		nameFont:      nameFont,
	}
}

// Update 推进提示闪烁计时
func (s *DialogueRenderSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogueBoxComponent](s.entityManager) {
		box, _ := ecs.GetComponent[*components.DialogueBoxComponent](s.entityManager, id)
		if !box.ShowContinueHint {
			box.HintElapsed = 0
			continue
		}
		box.HintElapsed += dt
	}
}

// Draw 渲染台词框
func (s *DialogueRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.DialogueBoxComponent](s.entityManager) {
		box, _ := ecs.GetComponent[*components.DialogueBoxComponent](s.entityManager, id)

		vector.DrawFilledRect(screen,
			config.DialogueBoxX, config.DialogueBoxY,
			config.DialogueBoxWidth, config.DialogueBoxHeight,
			dialogueBoxColor, true)

		if box.Speaker != "" {
			s.drawNamePlate(screen, box.Speaker)
		}
		s.drawDialogueText(screen, box.Text)

		if hintVisible(box) {
			s.drawContinueHint(screen)
		}
	}
}

// drawNamePlate 渲染名字框
func (s *DialogueRenderSystem) drawNamePlate(screen *ebiten.Image, name string) {
	if s.nameFont == nil {
		return
	}
	width := measureTextWidth(name, s.nameFont) + 2*config.NamePlatePaddingX
	vector.DrawFilledRect(screen,
		config.NamePlateX, config.NamePlateY,
		float32(width), config.NamePlateHeight,
		namePlateColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(config.NamePlateX+config.NamePlatePaddingX, config.NamePlateY+(config.NamePlateHeight-config.NameFontSize)/2)
	op.ColorScale.ScaleWithColor(dialogueColor)
	text.Draw(screen, name, s.nameFont, op)
}

// drawDialogueText 渲染台词文本（左上对齐，超出高度的行不绘制）
func (s *DialogueRenderSystem) drawDialogueText(screen *ebiten.Image, textStr string) {
	if s.dialogueFont == nil || textStr == "" {
		return
	}

	textAreaX := config.DialogueBoxX + config.DialogueBoxPaddingX
	textAreaY := config.DialogueBoxY + config.DialogueBoxPaddingY
	textAreaWidth := config.DialogueBoxWidth - 2*config.DialogueBoxPaddingX
	textAreaHeight := config.DialogueBoxHeight - 2*config.DialogueBoxPaddingY

	for i, line := range wrapText(textStr, s.dialogueFont, textAreaWidth) {
		lineY := textAreaY + float64(i)*config.DialogueLineHeight
		if lineY+config.DialogueFontSize > textAreaY+textAreaHeight {
			break
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(textAreaX, lineY)
		op.ColorScale.ScaleWithColor(dialogueColor)
		text.Draw(screen, line, s.dialogueFont, op)
	}
}

// drawContinueHint 渲染「点击继续」提示（台词框右下角）
func (s *DialogueRenderSystem) drawContinueHint(screen *ebiten.Image) {
	if s.dialogueFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		config.DialogueBoxX+config.DialogueBoxWidth-config.ContinueHintOffsetX,
		config.DialogueBoxY+config.DialogueBoxHeight-config.ContinueHintOffsetY,
	)
	op.ColorScale.ScaleWithColor(dialogueColor)
	text.Draw(screen, continueHintText, s.dialogueFont, op)
}

// hintVisible 提示在每个闪烁周期的前半段可见
func hintVisible(box *components.DialogueBoxComponent) bool {
	if !box.ShowContinueHint {
		return false
	}
	phase := box.HintElapsed - float64(int(box.HintElapsed/config.ContinueHintBlinkPeriod))*config.ContinueHintBlinkPeriod
	return phase < config.ContinueHintBlinkPeriod/2
}
