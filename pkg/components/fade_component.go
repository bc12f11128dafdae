package components

import "github.com/tanema/gween"

// FadeComponent 透明度补间
//
// FadeSystem 每帧推进 Tween 并写入 Alpha；补间结束后移除本组件并调用 OnComplete。
// 没有 FadeComponent 的实体按完全不透明绘制。
type FadeComponent struct {
	Tween *gween.Tween
	// Alpha 当前透明度 [0, 1]
	Alpha float64
	// OnComplete 补间结束回调（可为 nil）
	OnComplete func()
}
