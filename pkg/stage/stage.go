// Package stage 把解释器的画面输出落到 ECS 实体上
//
// 舞台持有三类常驻实体：背景、立绘、台词框；选项按钮在 ShowChoices 时创建，
// HideChoices 时销毁。绘制由 systems 包中的渲染系统完成。
package stage

import (
	"log"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/decker502/vnplayer/pkg/interpreter"
	"github.com/decker502/vnplayer/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按剧本文件名提供图片
// game.ResourceManager 实现此接口（缺失时返回占位图）
type ImageSource interface {
	ScenarioImage(file string) *ebiten.Image
}

// Stage 舞台，实现 interpreter.Surface
type Stage struct {
	entityManager *ecs.EntityManager
	images        ImageSource
	fadeSeconds   float32

	background ecs.EntityID
	character  ecs.EntityID
	dialogue   ecs.EntityID
	buttons    []ecs.EntityID

	// retiring 正在被新背景覆盖、等待销毁的旧背景
	retiring map[ecs.EntityID]struct{}

	backgroundFile string
	characterFile  string
	ended          bool
	onEnd          func()
}

var _ interpreter.Surface = (*Stage)(nil)

// New 创建舞台
//
// 参数：
//   - em: EntityManager 实例
//   - images: 图片来源
//   - fadeSeconds: 背景切换和选项出现时的淡入时长，0 表示立即显示
func New(em *ecs.EntityManager, images ImageSource, fadeSeconds float32) *Stage {
	s := &Stage{
		entityManager: em,
		images:        images,
		fadeSeconds:   fadeSeconds,
		retiring:      make(map[ecs.EntityID]struct{}),
	}

	s.character = em.CreateEntity()
	ecs.AddComponent(em, s.character, &components.SpriteComponent{Hidden: true})
	ecs.AddComponent(em, s.character, &components.PositionComponent{
		X:      config.CharacterCenterX,
		Y:      config.CharacterBottomY,
		Anchor: components.AnchorBottomCenter,
	})
	ecs.AddComponent(em, s.character, &components.LayerComponent{Layer: config.LayerCharacter})

	s.dialogue = em.CreateEntity()
	ecs.AddComponent(em, s.dialogue, &components.DialogueBoxComponent{})

	return s
}

// SetOnEnd 设置剧本结束回调（场景用它切换到结束画面）
func (s *Stage) SetOnEnd(fn func()) {
	s.onEnd = fn
}

// SetBackground 切换背景
// 新背景在旧背景之上淡入，淡入完成后销毁旧背景
func (s *Stage) SetBackground(file string) {
	img := s.images.ScenarioImage(file)
	previous := s.background

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.SpriteComponent{Image: img})
	ecs.AddComponent(s.entityManager, id, &components.PositionComponent{Anchor: components.AnchorFill})
	ecs.AddComponent(s.entityManager, id, &components.LayerComponent{Layer: config.LayerBackground})

	s.background = id
	s.backgroundFile = file

	if previous == 0 {
		return
	}
	fade := systems.NewFadeIn(s.fadeSeconds, func() { s.retire(previous) })
	if fade == nil {
		s.retire(previous)
		return
	}
	s.retiring[previous] = struct{}{}
	ecs.AddComponent(s.entityManager, id, fade)
}

// SetCharacterImage 切换立绘图片（嘴型动画每一帧都会调用）
func (s *Stage) SetCharacterImage(file string) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.character)
	if !ok {
		return
	}
	sprite.Image = s.images.ScenarioImage(file)
	sprite.Hidden = false
	s.characterFile = file
}

// ShowCharacterName 设置说话人，空字符串隐藏名字框
func (s *Stage) ShowCharacterName(name string) {
	if box := s.dialogueBox(); box != nil {
		box.Speaker = name
	}
}

// AppendDialogueChar 追加一个字符
func (s *Stage) AppendDialogueChar(r rune) {
	if box := s.dialogueBox(); box != nil {
		box.Text += string(r)
	}
}

// SetDialogueText 整体替换台词
func (s *Stage) SetDialogueText(text string) {
	if box := s.dialogueBox(); box != nil {
		box.Text = text
	}
}

// ShowChoices 创建选项按钮，已有按钮先销毁
func (s *Stage) ShowChoices(choices []interpreter.Choice, onSelect func(number int)) {
	s.HideChoices()

	for i, choice := range choices {
		x, y := config.ChoiceButtonPosition(i, len(choices))
		id := s.entityManager.CreateEntity()
		ecs.AddComponent(s.entityManager, id, &components.ChoiceButtonComponent{
			Number:   choice.Number,
			Label:    choice.Label,
			OnSelect: onSelect,
		})
		ecs.AddComponent(s.entityManager, id, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(s.entityManager, id, &components.LayerComponent{Layer: config.LayerChoice})

		clickable := &components.ClickableComponent{
			Width:  config.ChoiceButtonWidth,
			Height: config.ChoiceButtonHeight,
		}
		ecs.AddComponent(s.entityManager, id, clickable)

		fade := systems.NewFadeIn(s.fadeSeconds, func() { clickable.IsEnabled = true })
		if fade == nil {
			clickable.IsEnabled = true
		} else {
			ecs.AddComponent(s.entityManager, id, fade)
		}

		s.buttons = append(s.buttons, id)
	}
	log.Printf("[Stage] 显示 %d 个选项", len(choices))
}

// HideChoices 销毁所有选项按钮
// 按钮组件立即移除，实体在帧末清理，同一帧内不会再被输入系统命中
func (s *Stage) HideChoices() {
	for _, id := range s.buttons {
		ecs.RemoveComponent[*components.ChoiceButtonComponent](s.entityManager, id)
		s.entityManager.DestroyEntity(id)
	}
	s.buttons = s.buttons[:0]
}

// OnScenarioEnd 剧本结束
func (s *Stage) OnScenarioEnd() {
	s.ended = true
	log.Printf("[Stage] 剧本结束")
	if s.onEnd != nil {
		s.onEnd()
	}
}

// SetContinueHint 是否显示「点击继续」提示
func (s *Stage) SetContinueHint(show bool) {
	if box := s.dialogueBox(); box != nil {
		box.ShowContinueHint = show
	}
}

// ContinueHint 是否正在显示「点击继续」提示
func (s *Stage) ContinueHint() bool {
	if box := s.dialogueBox(); box != nil {
		return box.ShowContinueHint
	}
	return false
}

// Clear 清空舞台（重新开始时使用）
func (s *Stage) Clear() {
	s.HideChoices()
	for id := range s.retiring {
		s.retire(id)
	}
	if s.background != 0 {
		s.entityManager.DestroyEntity(s.background)
		s.background = 0
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.character); ok {
		sprite.Image = nil
		sprite.Hidden = true
	}
	if box := s.dialogueBox(); box != nil {
		*box = components.DialogueBoxComponent{}
	}
	s.backgroundFile = ""
	s.characterFile = ""
	s.ended = false
}

// Background 当前背景文件名
func (s *Stage) Background() string {
	return s.backgroundFile
}

// Character 当前立绘文件名，未显示过立绘时为空
func (s *Stage) Character() string {
	return s.characterFile
}

// Speaker 当前说话人
func (s *Stage) Speaker() string {
	if box := s.dialogueBox(); box != nil {
		return box.Speaker
	}
	return ""
}

// Text 当前台词框文本
func (s *Stage) Text() string {
	if box := s.dialogueBox(); box != nil {
		return box.Text
	}
	return ""
}

// ChoiceCount 当前显示的选项数
func (s *Stage) ChoiceCount() int {
	return len(s.buttons)
}

// Ended 是否已收到剧本结束通知
func (s *Stage) Ended() bool {
	return s.ended
}

func (s *Stage) retire(id ecs.EntityID) {
	delete(s.retiring, id)
	if s.entityManager.Exists(id) {
		s.entityManager.DestroyEntity(id)
	}
}

func (s *Stage) dialogueBox() *components.DialogueBoxComponent {
	box, ok := ecs.GetComponent[*components.DialogueBoxComponent](s.entityManager, s.dialogue)
	if !ok {
		return nil
	}
	return box
}
