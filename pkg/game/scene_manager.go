package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneMenu  = "menu"
	SceneTable = "table"
)

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免场景包之间的循环依赖
type SceneFactory func(name string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
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

// Load 通过工厂创建并切换到指定名称的场景
// 返回是否切换成功
func (sm *SceneManager) Load(name string) bool {
	log.Printf("[SceneManager] 加载场景: %s", name)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}
	sm.SwitchTo(newScene)
	return true
}

// SaveOnExit 如果当前场景实现了 Saveable，调用它保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
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
