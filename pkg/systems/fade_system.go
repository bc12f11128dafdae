package systems

import (
	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/ecs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeSystem 推进透明度补间
type FadeSystem struct {
	entityManager *ecs.EntityManager
}

// NewFadeSystem 创建淡入淡出系统
func NewFadeSystem(em *ecs.EntityManager) *FadeSystem {
	return &FadeSystem{entityManager: em}
}

// NewFadeIn 创建从透明到不透明的补间组件
// duration <= 0 时返回 nil，调用方应直接以不透明显示
func NewFadeIn(duration float32, onComplete func()) *components.FadeComponent {
	if duration <= 0 {
		return nil
	}
	return &components.FadeComponent{
		Tween:      gween.New(0, 1, duration, ease.OutQuad),
		Alpha:      0,
		OnComplete: onComplete,
	}
}

// Update 推进所有补间，完成后移除 FadeComponent 并触发回调
func (s *FadeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FadeComponent](s.entityManager) {
		fade, _ := ecs.GetComponent[*components.FadeComponent](s.entityManager, id)
		if fade.Tween == nil {
			ecs.RemoveComponent[*components.FadeComponent](s.entityManager, id)
			continue
		}

		val, finished := fade.Tween.Update(float32(dt))
		fade.Alpha = float64(val)
		if !finished {
			continue
		}

		fade.Alpha = 1
		ecs.RemoveComponent[*components.FadeComponent](s.entityManager, id)
		if fade.OnComplete != nil {
			fade.OnComplete()
		}
	}
}
