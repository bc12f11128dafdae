// Package schedule 提供帧驱动的定时回调
//
// 逐字显示和嘴型动画都依赖"延迟若干毫秒后执行"。游戏中没有后台线程，
// Clock 由每帧的 Update(dt) 推进；测试中直接调用 Advance 推进虚拟时间，
// 不需要真实等待。
package schedule

import (
	"sort"
	"time"
)

// Token 已安排回调的句柄，用于取消
// 零值表示"没有回调"，Cancel(0) 是无操作
type Token uint64

// Scheduler 调度端口
type Scheduler interface {
	// Schedule 在 delay 之后执行 fn，返回可取消的句柄
	Schedule(delay time.Duration, fn func()) Token
	// Cancel 取消尚未执行的回调，对已执行或已取消的句柄无影响
	Cancel(token Token)
}

// task 已安排的回调
type task struct {
	token Token
	due   time.Duration
	fn    func()
}

// Clock 虚拟时钟，实现 Scheduler
//
// 回调按 (到期时间, 安排顺序) 执行。回调内部可以再次 Schedule，
// 新回调若在本次 Advance 的时间范围内到期，也会在同一次 Advance 中执行。
// 非并发安全：只在游戏主循环中使用。
type Clock struct {
	now     time.Duration
	nextID  Token
	pending []task
}

// NewClock 创建从 0 开始的虚拟时钟
func NewClock() *Clock {
	return &Clock{}
}

// Now 返回当前虚拟时间
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending 返回尚未执行的回调数量
func (c *Clock) Pending() int {
	return len(c.pending)
}

// Schedule 实现 Scheduler
func (c *Clock) Schedule(delay time.Duration, fn func()) Token {
	if delay < 0 {
		delay = 0
	}
	c.nextID++
	c.pending = append(c.pending, task{
		token: c.nextID,
		due:   c.now + delay,
		fn:    fn,
	})
	return c.nextID
}

// Cancel 实现 Scheduler
func (c *Clock) Cancel(token Token) {
	if token == 0 {
		return
	}
	for i, t := range c.pending {
		if t.token == token {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Advance 推进虚拟时间并执行所有到期回调
func (c *Clock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt

	for {
		idx := c.nextDue(target)
		if idx < 0 {
			break
		}
		t := c.pending[idx]
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		// 回调执行时的"当前时间"是它的到期时间，这样回调内的再次安排不会漂移
		c.now = t.due
		t.fn()
	}

	c.now = target
}

// AdvanceSeconds 以秒为单位推进，便于接入 Update(deltaTime float64)
func (c *Clock) AdvanceSeconds(deltaTime float64) {
	c.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// nextDue 返回最早到期且不晚于 target 的回调下标，没有则返回 -1
func (c *Clock) nextDue(target time.Duration) int {
	if len(c.pending) == 0 {
		return -1
	}
	// token 单调递增，按 (due, token) 排序即为 (到期时间, 安排顺序)
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due != c.pending[j].due {
			return c.pending[i].due < c.pending[j].due
		}
		return c.pending[i].token < c.pending[j].token
	})
	if c.pending[0].due > target {
		return -1
	}
	return 0
}
