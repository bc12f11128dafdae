// Package interpreter 实现剧本解释器（游标 + 演出状态机）
//
// 状态机：
//
//	Idle ──Advance(台词)──▶ Revealing ──逐字完成 / Click──▶ Idle
//	Idle ──Advance(set select)──▶ AwaitingChoice ──SelectChoice──▶ Revealing 或 Idle
//
// set bg / set char 在 Idle 内同步连续执行，不需要额外点击。
// 选项块的两个分支显示不同台词，但剧本位置汇合到同一个恢复点。
package interpreter

import (
	"log"
	"time"

	"github.com/decker502/vnplayer/pkg/reveal"
	"github.com/decker502/vnplayer/pkg/scenario"
	"github.com/decker502/vnplayer/pkg/schedule"
)

// State 解释器状态
type State int

const (
	// StateIdle 等待推进
	StateIdle State = iota
	// StateRevealing 台词逐字显示中
	StateRevealing
	// StateAwaitingChoice 等待玩家选择
	StateAwaitingChoice
)

// String 返回 State 的字符串表示
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRevealing:
		return "Revealing"
	case StateAwaitingChoice:
		return "AwaitingChoice"
	default:
		return "Unknown"
	}
}

// Options 解释器时序参数
type Options struct {
	// CharDelay 每个字符的显示间隔
	CharDelay time.Duration
	// MouthInterval 嘴型切换间隔
	MouthInterval time.Duration
}

// choiceSet 进入选项块时构建，做出选择后丢弃
type choiceSet struct {
	options []Choice
	// targets 块内的分支台词，key 为 select<n>
	targets map[string]scenario.Directive
	// resume 选项块之后第一行（两个分支共同的恢复点）
	resume int
}

func (cs *choiceSet) offers(number int) bool {
	for _, c := range cs.options {
		if c.Number == number {
			return true
		}
	}
	return false
}

// Interpreter 剧本解释器
//
// 非并发安全：所有方法都在游戏主循环（输入事件、Clock.Advance 回调）中调用。
type Interpreter struct {
	script  *scenario.Script
	surface Surface
	engine  *reveal.Engine

	cursor   int
	state    State
	choices  *choiceSet
	finished bool
}

// New 创建解释器
//
// 参数：
//   - script: 剧本
//   - surface: 演出层（同时作为逐字显示与嘴型动画的输出）
//   - scheduler: 调度端口（游戏中为每帧推进的 Clock）
//   - opts: 时序参数
func New(script *scenario.Script, surface Surface, scheduler schedule.Scheduler, opts Options) *Interpreter {
	mouth := reveal.NewMouth(scheduler, surface, opts.MouthInterval)
	engine := reveal.NewEngine(scheduler, surface, mouth, opts.CharDelay)

	it := &Interpreter{
		script:  script,
		surface: surface,
		engine:  engine,
	}
	engine.SetOnComplete(it.onRevealComplete)

	log.Printf("[Interpreter] Initialized: %d lines, charDelay=%v, mouthInterval=%v",
		script.Len(), opts.CharDelay, opts.MouthInterval)
	return it
}

// Cursor 返回当前游标
func (it *Interpreter) Cursor() int {
	return it.cursor
}

// State 返回当前状态
func (it *Interpreter) State() State {
	return it.state
}

// Finished 返回剧本是否已播放完毕
func (it *Interpreter) Finished() bool {
	return it.finished
}

// Engine 返回逐字显示引擎（用于调整文字速度）
func (it *Interpreter) Engine() *reveal.Engine {
	return it.engine
}

// Choices 返回当前显示的选项，不在选择状态时返回 nil
func (it *Interpreter) Choices() []Choice {
	if it.choices == nil {
		return nil
	}
	out := make([]Choice, len(it.choices.options))
	copy(out, it.choices.options)
	return out
}

// Click 处理玩家点击
//   - Revealing: 立即显示全部台词，进入 Idle（不自动推进）
//   - Idle: 推进剧本
//   - AwaitingChoice: 忽略（只有选项按钮响应）
func (it *Interpreter) Click() {
	switch it.state {
	case StateRevealing:
		it.engine.ForceComplete()
		it.state = StateIdle
		log.Printf("[Interpreter] Click: Revealing → Idle (force complete)")
	case StateIdle:
		it.Advance()
	case StateAwaitingChoice:
		log.Printf("[Interpreter] Click ignored while awaiting choice")
	}
}

// Advance 推进到下一条需要停留的指令
// 只在 Idle 状态下生效
func (it *Interpreter) Advance() {
	if it.state != StateIdle {
		log.Printf("[Interpreter] Advance ignored in state %s", it.state)
		return
	}

	for {
		if it.cursor >= it.script.Len() {
			it.end()
			return
		}

		d, _ := it.script.At(it.cursor)
		switch d.Kind {
		case scenario.KindSetBackground:
			if d.File != "" {
				it.surface.SetBackground(d.File)
			}
			it.cursor++

		case scenario.KindSetCharacter:
			if d.File != "" {
				it.engine.Mouth().SetCharacter(d.File)
				it.surface.SetCharacterImage(d.File)
			}
			it.cursor++

		case scenario.KindChoiceBlockStart:
			if it.enterChoiceBlock() {
				return
			}

		case scenario.KindChoiceTarget, scenario.KindChoiceOption:
			// 分支台词只在被选中时显示；块外的选项行无法显示
			it.cursor++

		default:
			it.cursor++
			it.startReveal(d.Speaker, d.Text)
			return
		}
	}
}

// SelectChoice 处理选项按钮点击
// 只在 AwaitingChoice 状态下、且编号属于当前选项时生效
func (it *Interpreter) SelectChoice(number int) {
	if it.state != StateAwaitingChoice || it.choices == nil {
		log.Printf("[Interpreter] SelectChoice(%d) ignored in state %s", number, it.state)
		return
	}
	if !it.choices.offers(number) {
		log.Printf("[Interpreter] SelectChoice(%d) ignored: not an offered option", number)
		return
	}

	set := it.choices
	it.choices = nil
	it.surface.HideChoices()

	label := scenario.TargetLabel(number)
	target, ok := set.targets[label]
	if !ok {
		// 分支台词也可以写在选项块之后的任意位置
		if idx, found := it.script.FindTarget(label, set.resume); found {
			target, _ = it.script.At(idx)
			ok = true
		}
	}

	if !ok {
		it.state = StateIdle
		log.Printf("[Interpreter] Warning: no %q line for option %d, back to Idle at cursor %d",
			label, number, it.cursor)
		return
	}

	log.Printf("[Interpreter] Option %d selected, resume at %d", number, set.resume)
	it.startReveal(target.Speaker, target.Text)
}

// Reset 回到剧本开头（再玩一次）
// 同时忘记上一轮的立绘，第一条 set char 之前的台词不会播放嘴型动画
func (it *Interpreter) Reset() {
	it.engine.Cancel()
	if mouth := it.engine.Mouth(); mouth != nil {
		mouth.SetCharacter("")
	}
	if it.choices != nil {
		it.surface.HideChoices()
	}
	it.cursor = 0
	it.state = StateIdle
	it.choices = nil
	it.finished = false
	log.Printf("[Interpreter] Reset to cursor 0")
}

// enterChoiceBlock 收集选项块并显示按钮
//
// 从 set select 的下一行开始，连续消费选项行和分支台词行，
// 遇到第一条两者都不是的行即为恢复点 R，游标直接设为 R。
//
// 返回 true 表示已进入 AwaitingChoice；选项为空时返回 false，调用方继续推进。
func (it *Interpreter) enterChoiceBlock() bool {
	start := it.cursor
	set := &choiceSet{targets: make(map[string]scenario.Directive)}

	i := start + 1
	for ; i < it.script.Len(); i++ {
		d, _ := it.script.At(i)
		if d.Kind == scenario.KindChoiceOption {
			set.options = append(set.options, Choice{Number: d.Number, Label: d.Text})
			continue
		}
		if d.Kind == scenario.KindChoiceTarget {
			if _, exists := set.targets[d.Label]; !exists {
				set.targets[d.Label] = d
			}
			continue
		}
		break
	}
	set.resume = i
	it.cursor = i

	if len(set.options) == 0 {
		log.Printf("[Interpreter] Warning: choice block at %d has no options, skipped", start)
		return false
	}

	it.choices = set
	it.state = StateAwaitingChoice
	log.Printf("[Interpreter] Choice block %d..%d: %d options, Idle → AwaitingChoice",
		start, i, len(set.options))

	it.surface.ShowChoices(it.Choices(), it.SelectChoice)
	return true
}

// startReveal 显示说话人并开始逐字显示
// 状态必须先切换为 Revealing：空台词会在 Start 内同步完成并回调 onRevealComplete
func (it *Interpreter) startReveal(speaker, text string) {
	it.surface.ShowCharacterName(speaker)
	it.state = StateRevealing
	it.engine.Start(text)
}

// onRevealComplete 逐字显示自然结束
func (it *Interpreter) onRevealComplete() {
	if it.state == StateRevealing {
		it.state = StateIdle
	}
}

// end 剧本结束，只通知一次
func (it *Interpreter) end() {
	if it.finished {
		return
	}
	it.finished = true
	log.Printf("[Interpreter] Scenario finished")
	it.surface.OnScenarioEnd()
}
