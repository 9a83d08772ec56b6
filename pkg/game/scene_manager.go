package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ErrNoSceneFactory 未设置场景工厂时无法重开
var ErrNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 创建一个全新的场景，用于开局和重开
type SceneFactory func() (Scene, error)

// SceneManager 管理当前活动的场景，同一时刻只更新和绘制一个场景
type SceneManager struct {
	log          *zap.Logger
	currentScene Scene
	sceneFactory SceneFactory
	restarts     int
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(log *zap.Logger) *SceneManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneManager{log: log.Named("scenes")}
}

// SetSceneFactory 设置场景工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到 scene
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// CurrentScene 当前活动场景，没有时返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// Restarts 重开次数
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// Restart 用工厂创建新场景替换当前场景；失败时保留当前场景
func (sm *SceneManager) Restart() error {
	if sm.sceneFactory == nil {
		return ErrNoSceneFactory
	}
	scene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("restart scene: %w", err)
	}
	sm.SwitchTo(scene)
	sm.restarts++
	sm.log.Info("scene restarted", zap.Int("restarts", sm.restarts))
	return nil
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 当前场景实现 Saveable 时保存其状态
func (sm *SceneManager) SaveOnExit() error {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return nil
}
