package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the player's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 场景切换请求在当前帧 Update 结束后才生效，
// 避免场景在自己的 Update 中途被替换。
type SceneManager struct {
	currentScene Scene
	pendingScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// 在 Update 期间调用时，切换延迟到本帧结束。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == nil {
		return
	}
	sm.pendingScene = scene
	if sm.currentScene == nil {
		sm.applyPending()
	}
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
	sm.applyPending()
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func (sm *SceneManager) applyPending() {
	if sm.pendingScene == nil {
		return
	}
	log.Printf("[SceneManager] 切换场景: %s → %s", sceneName(sm.currentScene), sceneName(sm.pendingScene))
	sm.currentScene = sm.pendingScene
	sm.pendingScene = nil
}

func sceneName(s Scene) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", s)
}
