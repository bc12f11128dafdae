package scenes

import (
	"log"
	"time"

	"github.com/decker502/vnplayer/pkg/config"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/decker502/vnplayer/pkg/game"
	"github.com/decker502/vnplayer/pkg/interpreter"
	"github.com/decker502/vnplayer/pkg/scenario"
	"github.com/decker502/vnplayer/pkg/schedule"
	"github.com/decker502/vnplayer/pkg/stage"
	"github.com/decker502/vnplayer/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// textSpeedStep 每次按键调整的文字速度倍率
const textSpeedStep = 0.25

// StoryScene 剧本播放场景
//
// 每帧顺序：
//  1. 选项输入（命中选项时本帧不再处理推进点击）
//  2. 推进点击 → Interpreter.Click
//  3. Clock 推进 dt，触发逐字显示和嘴型动画回调
//  4. 淡入补间、提示闪烁
//  5. 清理标记删除的实体
type StoryScene struct {
	entityManager *ecs.EntityManager
	stage         *stage.Stage
	clock         *schedule.Clock
	interpreter   *interpreter.Interpreter
	settings      *game.SettingsManager
	baseCharDelay time.Duration

	stageRenderSystem    *systems.StageRenderSystem
	dialogueRenderSystem *systems.DialogueRenderSystem
	choiceInputSystem    *systems.ChoiceInputSystem
	choiceRenderSystem   *systems.ChoiceRenderSystem
	fadeSystem           *systems.FadeSystem

	started bool
}

// NewStoryScene 创建剧本播放场景
//
// 参数：
//   - rm: ResourceManager 实例（剧本图片、字体）
//   - settings: 玩家设置（文字速度）
//   - cfg: 播放器配置
//   - script: 已加载的剧本
//   - onEnd: 剧本播放完毕时调用
func NewStoryScene(
	rm *game.ResourceManager,
	settings *game.SettingsManager,
	cfg *config.PlayerConfig,
	script *scenario.Script,
	onEnd func(),
) *StoryScene {
	em := ecs.NewEntityManager()
	clock := schedule.NewClock()
	st := stage.New(em, rm, cfg.FadeSeconds())
	st.SetOnEnd(onEnd)

	charDelay := cfg.CharDelay()
	if settings != nil {
		charDelay = settings.CharDelay(charDelay)
	}

	it := interpreter.New(script, st, clock, interpreter.Options{
		CharDelay:     charDelay,
		MouthInterval: cfg.MouthInterval(),
	})

	dialogueFont := rm.FontOrDefault(cfg.Font, config.DialogueFontSize)
	nameFont := rm.FontOrDefault(cfg.Font, config.NameFontSize)
	choiceFont := rm.FontOrDefault(cfg.Font, config.ChoiceFontSize)

	return &StoryScene{
		entityManager:        em,
		stage:                st,
		clock:                clock,
		interpreter:          it,
		settings:             settings,
		baseCharDelay:        cfg.CharDelay(),
		stageRenderSystem:    systems.NewStageRenderSystem(em),
		dialogueRenderSystem: systems.NewDialogueRenderSystem(em, dialogueFont, nameFont),
		choiceInputSystem:    systems.NewChoiceInputSystem(em),
		choiceRenderSystem:   systems.NewChoiceRenderSystem(em, choiceFont),
		fadeSystem:           systems.NewFadeSystem(em),
	}
}

// Begin 从当前游标开始播放（只在第一次调用时推进）
func (s *StoryScene) Begin() {
	if s.started {
		return
	}
	s.started = true
	s.interpreter.Advance()
}

// Restart 清空舞台并回到剧本开头，下次 Begin 重新播放
func (s *StoryScene) Restart() {
	s.interpreter.Reset()
	s.stage.Clear()
	s.entityManager.RemoveMarkedEntities()
	s.started = false
}

// Interpreter 返回解释器
func (s *StoryScene) Interpreter() *interpreter.Interpreter {
	return s.interpreter
}

// Stage 返回舞台
func (s *StoryScene) Stage() *stage.Stage {
	return s.stage
}

// Update 处理输入并推进时钟
func (s *StoryScene) Update(deltaTime float64) {
	s.handleSpeedKeys()
	consumed := s.choiceInputSystem.Update(deltaTime)
	s.step(deltaTime, !consumed && advancePressed())
}

// step 不读取 ebiten 输入的帧逻辑
func (s *StoryScene) step(deltaTime float64, advance bool) {
	if advance {
		s.interpreter.Click()
	}

	s.clock.AdvanceSeconds(deltaTime)
	s.fadeSystem.Update(deltaTime)

	s.stage.SetContinueHint(s.interpreter.State() == interpreter.StateIdle && !s.interpreter.Finished())
	s.dialogueRenderSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// handleSpeedKeys +/- 调整文字速度并保存
func (s *StoryScene) handleSpeedKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		s.adjustTextSpeed(textSpeedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		s.adjustTextSpeed(-textSpeedStep)
	}
}

// adjustTextSpeed 调整文字速度，从下一句台词开始生效
func (s *StoryScene) adjustTextSpeed(delta float64) {
	if s.settings == nil {
		return
	}
	s.settings.SetTextSpeed(s.settings.GetSettings().TextSpeed + delta)
	delay := s.settings.CharDelay(s.baseCharDelay)
	s.interpreter.Engine().SetCharDelay(delay)
	if err := s.settings.Save(); err != nil {
		log.Printf("[StoryScene] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[StoryScene] 文字速度 %.2fx (%v/字)", s.settings.GetSettings().TextSpeed, delay)
}

// Draw 背景、立绘 → 台词框 → 选项
func (s *StoryScene) Draw(screen *ebiten.Image) {
	s.stageRenderSystem.Draw(screen)
	s.dialogueRenderSystem.Draw(screen)
	s.choiceRenderSystem.Draw(screen)
}
