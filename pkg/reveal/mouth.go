package reveal

import (
	"path"
	"strings"
	"time"

	"github.com/decker502/vnplayer/pkg/schedule"
)

const (
	closedSuffix = "_closed"
	openSuffix   = "_open"
)

// ImageSink 接收立绘图片切换
type ImageSink interface {
	SetCharacterImage(path string)
}

// MouthPair 根据命名约定返回闭口/张口图片对
//
// 示例:
//
//	MouthPair("chara/face_closed.png") → ("chara/face_closed.png", "chara/face_open.png", true)
//	MouthPair("face.png")              → ("", "", false)
func MouthPair(file string) (closed, open string, ok bool) {
	ext := path.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	if !strings.HasSuffix(stem, closedSuffix) || len(stem) == len(closedSuffix) {
		return "", "", false
	}
	return file, strings.TrimSuffix(stem, closedSuffix) + openSuffix + ext, true
}

// Mouth 说话时的嘴型循环动画
//
// 只有当前立绘是 "_closed" 闭口图时才会运行，按固定间隔在闭口/张口之间切换；
// 停止时总是回到闭口帧。全局只有一个实例（同一时间只有一个角色在说话）。
type Mouth struct {
	scheduler schedule.Scheduler
	sink      ImageSink
	interval  time.Duration

	// 当前立绘（由 SetCharacter 记录）
	current string
	closed  string
	open    string

	running bool
	isOpen  bool

	// generation 每次 Start/Stop 递增，过期的回调据此丢弃
	generation uint64
	pending    schedule.Token
}

// NewMouth 创建嘴型动画
func NewMouth(scheduler schedule.Scheduler, sink ImageSink, interval time.Duration) *Mouth {
	return &Mouth{
		scheduler: scheduler,
		sink:      sink,
		interval:  interval,
	}
}

// SetCharacter 记录当前立绘
// 切换立绘时先停止正在运行的动画
func (m *Mouth) SetCharacter(file string) {
	m.Stop()
	m.current = file
	m.closed, m.open, _ = MouthPair(file)
}

// Character 返回当前立绘
func (m *Mouth) Character() string {
	return m.current
}

// Running 返回动画是否在运行
func (m *Mouth) Running() bool {
	return m.running
}

// IsOpen 返回当前是否显示张口帧
func (m *Mouth) IsOpen() bool {
	return m.isOpen
}

// Start 开始嘴型动画
// 当前立绘不是闭口图、间隔非法或已在运行时不做任何事
func (m *Mouth) Start() {
	if m.running || m.closed == "" || m.interval <= 0 {
		return
	}
	m.running = true
	m.isOpen = false
	m.generation++
	m.scheduleToggle(m.generation)
}

// Stop 停止嘴型动画并回到闭口帧
// 可重复调用
func (m *Mouth) Stop() {
	if !m.running {
		return
	}
	m.running = false
	m.generation++
	m.scheduler.Cancel(m.pending)
	m.pending = 0

	if m.isOpen {
		m.isOpen = false
		m.sink.SetCharacterImage(m.closed)
	}
}

func (m *Mouth) scheduleToggle(gen uint64) {
	m.pending = m.scheduler.Schedule(m.interval, func() {
		if gen != m.generation || !m.running {
			return
		}
		m.isOpen = !m.isOpen
		if m.isOpen {
			m.sink.SetCharacterImage(m.open)
		} else {
			m.sink.SetCharacterImage(m.closed)
		}
		m.scheduleToggle(gen)
	})
}
