package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/emitterdemo/pkg/utils"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// DispatchPointer 将一帧的指针事件派发给当前场景
// 先派发移动，再按顺序派发按下；场景未实现 PointerHandler 时忽略
func (sm *SceneManager) DispatchPointer(ev utils.PointerEvents) {
	handler, ok := sm.currentScene.(PointerHandler)
	if !ok {
		return
	}
	if ev.Moved {
		handler.OnPointerMove(ev.X, ev.Y, ev.DX, ev.DY)
	}
	for _, p := range ev.Presses {
		handler.OnPointerPress(p.X, p.Y, p.Button, p.Mods)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
