// Package reveal 实现台词逐字显示与说话嘴型动画
//
// 逐字显示通过调度端口链式安排回调实现：每个回调显示一个字符并安排下一个。
// 开始新台词或强制完成时，旧会话的回调通过 generation 计数失效，
// 保证过期回调不会再修改显示内容。
package reveal

import (
	"time"

	"github.com/decker502/vnplayer/pkg/schedule"
)

// TextSink 接收台词文本输出
type TextSink interface {
	SetDialogueText(text string)
	AppendDialogueChar(r rune)
}

// Engine 逐字显示引擎
type Engine struct {
	scheduler schedule.Scheduler
	sink      TextSink
	mouth     *Mouth
	charDelay time.Duration

	// 当前会话
	runes    []rune
	revealed int
	active   bool

	generation uint64
	pending    schedule.Token

	onComplete func()
}

// NewEngine 创建逐字显示引擎
// mouth 可为 nil（不播放嘴型动画）
func NewEngine(scheduler schedule.Scheduler, sink TextSink, mouth *Mouth, charDelay time.Duration) *Engine {
	return &Engine{
		scheduler: scheduler,
		sink:      sink,
		mouth:     mouth,
		charDelay: charDelay,
	}
}

// SetOnComplete 设置会话结束回调（逐字显示完毕时调用，强制完成不调用）
func (e *Engine) SetOnComplete(fn func()) {
	e.onComplete = fn
}

// SetCharDelay 修改每个字符的显示间隔，从下一个字符开始生效
func (e *Engine) SetCharDelay(d time.Duration) {
	e.charDelay = d
}

// CharDelay 返回每个字符的显示间隔
func (e *Engine) CharDelay() time.Duration {
	return e.charDelay
}

// Mouth 返回嘴型动画（可能为 nil）
func (e *Engine) Mouth() *Mouth {
	return e.mouth
}

// Active 返回是否正在逐字显示
func (e *Engine) Active() bool {
	return e.active
}

// Text 返回当前会话的完整文本
func (e *Engine) Text() string {
	return string(e.runes)
}

// Revealed 返回已显示的文本
func (e *Engine) Revealed() string {
	return string(e.runes[:e.revealed])
}

// Start 开始显示新台词
// 如果上一段仍在显示，其待执行的回调会被取消
func (e *Engine) Start(text string) {
	e.cancelPending()
	if e.mouth != nil {
		e.mouth.Stop()
	}

	e.generation++
	e.runes = []rune(text)
	e.revealed = 0
	e.active = true
	e.sink.SetDialogueText("")

	if len(e.runes) == 0 {
		e.finish()
		return
	}

	if e.mouth != nil {
		e.mouth.Start()
	}
	e.scheduleNext(e.generation)
}

// ForceComplete 立即显示全部文本并结束会话
// 会话已结束时不做任何事
func (e *Engine) ForceComplete() {
	if !e.active {
		return
	}
	e.cancelPending()
	e.generation++
	e.revealed = len(e.runes)
	e.active = false
	e.sink.SetDialogueText(string(e.runes))
	if e.mouth != nil {
		e.mouth.Stop()
	}
}

// Cancel 中止当前会话，不输出剩余文本
// 用于重新开始剧本等需要丢弃整段台词的场合
func (e *Engine) Cancel() {
	e.cancelPending()
	e.generation++
	e.active = false
	if e.mouth != nil {
		e.mouth.Stop()
	}
}

func (e *Engine) scheduleNext(gen uint64) {
	e.pending = e.scheduler.Schedule(e.charDelay, func() {
		e.tick(gen)
	})
}

func (e *Engine) tick(gen uint64) {
	if gen != e.generation || !e.active {
		return
	}
	e.pending = 0
	e.sink.AppendDialogueChar(e.runes[e.revealed])
	e.revealed++

	if e.revealed >= len(e.runes) {
		e.finish()
		return
	}
	e.scheduleNext(gen)
}

// finish 逐字显示自然结束
func (e *Engine) finish() {
	e.active = false
	if e.mouth != nil {
		e.mouth.Stop()
	}
	if e.onComplete != nil {
		e.onComplete()
	}
}

func (e *Engine) cancelPending() {
	if e.pending != 0 {
		e.scheduler.Cancel(e.pending)
		e.pending = 0
	}
}
