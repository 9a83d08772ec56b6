package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置，以 YAML 保存在 gdata 中
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() GameSettings {
	return GameSettings{
		MusicVolume:  0.5,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// normalize 音量限制在 0.0 ~ 1.0
func (s GameSettings) normalize() GameSettings {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
	return s
}

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// SettingsManager 设置的加载、修改和持久化
// store 为 nil 时只在内存中保存设置
type SettingsManager struct {
	store    *gdata.Manager
	log      *zap.Logger
	settings GameSettings
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - store: gdata 存储，可以为 nil
//   - log: 日志，可以为 nil
//
// 返回：
//   - *SettingsManager: 加载失败时使用默认设置
func NewSettingsManager(store *gdata.Manager, log *zap.Logger) *SettingsManager {
	if log == nil {
		log = zap.NewNop()
	}
	sm := &SettingsManager{
		store:    store,
		log:      log.Named("settings"),
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		sm.log.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	return sm
}

// Load 从存储读取设置，没有保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	sm.settings = loaded.normalize()
	sm.log.Debug("settings loaded")
	return nil
}

// Save 把当前设置写入存储
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	sm.log.Debug("settings saved")
	return nil
}

// Settings 返回当前设置的副本
func (sm *SettingsManager) Settings() GameSettings {
	return sm.settings
}

// Update 修改设置，修改后自动限制音量范围
// 只修改内存中的设置，需调用 Save 持久化
func (sm *SettingsManager) Update(fn func(*GameSettings)) {
	s := sm.settings
	fn(&s)
	sm.settings = s.normalize()
}

// ToggleSound 切换音效开关，返回切换后的状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

// ToggleMusic 切换音乐开关，返回切换后的状态
func (sm *SettingsManager) ToggleMusic() bool {
	sm.settings.MusicEnabled = !sm.settings.MusicEnabled
	return sm.settings.MusicEnabled
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
