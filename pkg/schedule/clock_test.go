package schedule

import (
	"reflect"
	"testing"
	"time"
)

// TestClockRunsDueCallbacksInOrder 测试回调按到期时间和安排顺序执行
func TestClockRunsDueCallbacksInOrder(t *testing.T) {
	c := NewClock()
	var got []string

	c.Schedule(30*time.Millisecond, func() { got = append(got, "c") })
	c.Schedule(10*time.Millisecond, func() { got = append(got, "a") })
	c.Schedule(10*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(5 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("no callback should run before due time, got %v", got)
	}

	c.Advance(25 * time.Millisecond)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("callbacks = %v, want %v", got, want)
	}
	if c.Now() != 30*time.Millisecond {
		t.Errorf("Now() = %v, want 30ms", c.Now())
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", c.Pending())
	}
}

// TestClockCancel 测试取消回调
func TestClockCancel(t *testing.T) {
	c := NewClock()
	fired := false

	token := c.Schedule(10*time.Millisecond, func() { fired = true })
	c.Cancel(token)
	c.Cancel(token) // 重复取消无影响
	c.Cancel(0)     // 零值句柄无影响

	c.Advance(time.Second)
	if fired {
		t.Error("cancelled callback should not run")
	}
}

// TestClockChainedSchedule 测试回调内再次安排（逐字显示的工作方式）
func TestClockChainedSchedule(t *testing.T) {
	c := NewClock()
	var times []time.Duration

	var tick func()
	tick = func() {
		times = append(times, c.Now())
		if len(times) < 3 {
			c.Schedule(10*time.Millisecond, tick)
		}
	}
	c.Schedule(10*time.Millisecond, tick)

	// 一次推进足够长的时间，链式回调应全部执行，且时间不漂移
	c.Advance(100 * time.Millisecond)

	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}
	if !reflect.DeepEqual(times, want) {
		t.Errorf("tick times = %v, want %v", times, want)
	}
	if c.Now() != 100*time.Millisecond {
		t.Errorf("Now() = %v, want 100ms", c.Now())
	}
}

// TestClockCancelFromCallback 测试回调中取消另一个回调
func TestClockCancelFromCallback(t *testing.T) {
	c := NewClock()
	fired := false

	var second Token
	c.Schedule(10*time.Millisecond, func() { c.Cancel(second) })
	second = c.Schedule(20*time.Millisecond, func() { fired = true })

	c.Advance(50 * time.Millisecond)
	if fired {
		t.Error("callback cancelled by an earlier callback should not run")
	}
}

func TestClockAdvanceSeconds(t *testing.T) {
	c := NewClock()
	fired := false
	c.Schedule(16*time.Millisecond, func() { fired = true })

	c.AdvanceSeconds(1.0 / 60.0)
	if !fired {
		t.Error("callback due within one 60fps frame should run")
	}
}

func TestClockNegativeDelay(t *testing.T) {
	c := NewClock()
	fired := false
	c.Schedule(-time.Second, func() { fired = true })
	c.Advance(0)
	if !fired {
		t.Error("negative delay should be treated as zero")
	}
}
