package systems

import (
	"testing"

	"github.com/decker502/vnplayer/pkg/components"
	"github.com/decker502/vnplayer/pkg/ecs"
)

func TestNewFadeInZeroDuration(t *testing.T) {
	if fade := NewFadeIn(0, nil); fade != nil {
		t.Error("zero duration should not create a fade")
	}
}

func TestFadeSystemCompletes(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFadeSystem(em)

	completed := 0
	id := em.CreateEntity()
	ecs.AddComponent(em, id, NewFadeIn(0.3, func() { completed++ }))

	system.Update(0.1)
	fade, ok := ecs.GetComponent[*components.FadeComponent](em, id)
	if !ok {
		t.Fatal("fade should still be running")
	}
	if fade.Alpha <= 0 || fade.Alpha >= 1 {
		t.Errorf("Alpha = %v, want between 0 and 1", fade.Alpha)
	}
	if completed != 0 {
		t.Error("OnComplete called too early")
	}

	system.Update(0.3)
	if ecs.HasComponent[*components.FadeComponent](em, id) {
		t.Error("FadeComponent should be removed when finished")
	}
	if completed != 1 {
		t.Errorf("OnComplete called %d times, want 1", completed)
	}

	system.Update(0.1)
	if completed != 1 {
		t.Errorf("OnComplete called %d times after finish, want 1", completed)
	}
}

func TestFadeSystemNilTween(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFadeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FadeComponent{})

	system.Update(0.016)
	if ecs.HasComponent[*components.FadeComponent](em, id) {
		t.Error("FadeComponent without tween should be removed")
	}
}
