package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	saved        bool
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// SaveOnExit records that the scene was asked to save.
func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}

	sm.Draw(nil)
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerNoScene verifies that Update and Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without a scene should succeed")
	}
}

// TestSceneManagerLoad verifies factory-based scene loading.
func TestSceneManagerLoad(t *testing.T) {
	sm := NewSceneManager()
	if sm.Load(SceneTable) {
		t.Error("Load without a factory should fail")
	}

	created := map[string]*MockScene{}
	sm.SetSceneFactory(func(name string) Scene {
		if name != SceneMenu && name != SceneTable {
			return nil
		}
		s := &MockScene{}
		created[name] = s
		return s
	})

	if !sm.Load(SceneTable) {
		t.Fatal("Load(table) should succeed")
	}
	if sm.GetCurrentScene() != created[SceneTable] {
		t.Error("current scene should be the table scene")
	}

	if sm.Load("credits") {
		t.Error("unknown scene should fail")
	}
	if sm.GetCurrentScene() != created[SceneTable] {
		t.Error("failed load should keep the previous scene")
	}

	if !sm.SaveOnExit() || !created[SceneTable].saved {
		t.Error("SaveOnExit should reach the Saveable scene")
	}
}
