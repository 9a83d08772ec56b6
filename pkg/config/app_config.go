package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// AppConfig 应用配置（config/graveyard.toml + GRAVEYARD_* 环境变量）
type AppConfig struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
	Data    DataConfig    `toml:"data"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	TPS        int    `toml:"tps"` // 每秒逻辑帧数
	Fullscreen bool   `toml:"fullscreen" env:"GRAVEYARD_FULLSCREEN"`
}

// WorldConfig 战场调参
type WorldConfig struct {
	ViewWidth         float64 `toml:"view_width"`
	ViewHeight        float64 `toml:"view_height"`
	ScrollSpeed       float64 `toml:"scroll_speed"`       // 镜头滚动速度（像素每秒）
	BorderDistance    float64 `toml:"border_distance"`    // 玩家距视野边缘的最小距离
	BattlefieldMargin float64 `toml:"battlefield_margin"` // 战场在视野上方额外延伸的高度
	SpawnDelay        float64 `toml:"spawn_delay"`        // 刷怪间隔（秒）
	EnemyCap          int     `toml:"enemy_cap"`          // 同时存在的敌人上限
	SpawnMargin       float64 `toml:"spawn_margin"`       // 刷怪点距视野边缘的距离
	GroanInterval     float64 `toml:"groan_interval"`     // 环境音效间隔（秒）
	NudgeDistance     float64 `toml:"nudge_distance"`     // 敌人互相重叠时的推开距离
	ListenerZ         float64 `toml:"listener_z"`         // 听者高度（距离衰减用）

	// Seed 随机种子，0 表示用当前时间
	Seed int64 `toml:"seed" env:"GRAVEYARD_SEED"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `toml:"level" env:"GRAVEYARD_LOG_LEVEL"`   // debug / info / warn / error
	Format string `toml:"format" env:"GRAVEYARD_LOG_FORMAT"` // console / json
}

// StorageConfig 本地存储配置（gdata）
type StorageConfig struct {
	AppName string `toml:"app_name" env:"GRAVEYARD_APP_NAME"`
}

// DataConfig 数据文件路径
type DataConfig struct {
	Actors    string `toml:"actors" env:"GRAVEYARD_ACTORS"`
	Resources string `toml:"resources" env:"GRAVEYARD_RESOURCES"`
	AssetsDir string `toml:"assets_dir" env:"GRAVEYARD_ASSETS_DIR"`
}

// DefaultAppConfig 返回内置默认配置
func DefaultAppConfig() *AppConfig {
	return defaults()
}

func defaults() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Graveyard Shift",
			Width:  1680,
			Height: 1050,
			TPS:    60,
		},
		World: WorldConfig{
			ViewWidth:         1680,
			ViewHeight:        1050,
			ScrollSpeed:       0,
			BorderDistance:    40,
			BattlefieldMargin: 100,
			SpawnDelay:        4.5,
			EnemyCap:          30,
			SpawnMargin:       50,
			GroanInterval:     15,
			NudgeDistance:     5,
			ListenerZ:         300,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			AppName: "graveyard",
		},
		Data: DataConfig{
			Actors:    "data/actors.yaml",
			Resources: "data/resources.yaml",
			AssetsDir: "assets",
		},
	}
}

// LoadAppConfig 读取 TOML 配置并叠加环境变量
// 文件不存在时使用默认配置；path 为空时只读环境变量
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *AppConfig) validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	w := c.World
	if w.ViewWidth <= 0 || w.ViewHeight <= 0 {
		return fmt.Errorf("world view must be positive, got %vx%v", w.ViewWidth, w.ViewHeight)
	}
	if w.SpawnDelay <= 0 {
		return fmt.Errorf("world.spawn_delay must be positive, got %v", w.SpawnDelay)
	}
	if w.GroanInterval <= 0 {
		return fmt.Errorf("world.groan_interval must be positive, got %v", w.GroanInterval)
	}
	if w.EnemyCap < 0 {
		return fmt.Errorf("world.enemy_cap cannot be negative, got %d", w.EnemyCap)
	}
	if 2*w.BorderDistance >= w.ViewWidth || 2*w.BorderDistance >= w.ViewHeight {
		return fmt.Errorf("world.border_distance %v too large for view", w.BorderDistance)
	}
	return nil
}
