// Package app 组装游戏应用：日志、存储、设置、资源、音频和场景
//
// 桌面端 main.go 和工具程序共用这里的初始化逻辑。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/game"
	"github.com/decker502/graveyard/pkg/scenes"
)

// HUDFont 计分和提示文字使用的字体资源ID
const HUDFont = "FONT_HUD"

const audioSampleRate = 48000

// App 实现 ebiten.Game
type App struct {
	cfg          *config.AppConfig
	log          *zap.Logger
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	audio        *game.AudioManager
	dt           float64
}

// NewLogger 按配置创建日志：console 为带颜色的开发格式，json 为生产格式
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

// NewApp 创建并初始化游戏应用，从标题画面开始
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg *config.AppConfig, log *zap.Logger) (*App, error) {
	table, err := config.LoadActorTable(cfg.Data.Actors)
	if err != nil {
		return nil, fmt.Errorf("角色数据加载失败: %w", err)
	}

	store, err := gdata.Open(gdata.Config{AppName: cfg.Storage.AppName})
	if err != nil {
		// 没有可写的存储时设置只保存在内存中
		log.Warn("gdata unavailable, settings will not persist", zap.Error(err))
		store = nil
	}
	settings := game.NewSettingsManager(store, log)

	resources := game.NewResourceManager(audio.NewContext(audioSampleRate), log)
	if err := resources.LoadResourceConfig(cfg.Data.Resources); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if cfg.Data.AssetsDir != "" {
		if err := resources.SetBasePath(cfg.Data.AssetsDir); err != nil {
			return nil, fmt.Errorf("资源目录设置失败: %w", err)
		}
	}
	audioManager := game.NewAudioManager(resources, settings, cfg.World.ListenerZ, log)

	var face text.Face
	if f, err := resources.LoadFont(HUDFont, 0); err != nil {
		log.Warn("hud font unavailable, using debug font", zap.Error(err))
	} else {
		face = f
	}

	sceneManager := game.NewSceneManager(log)
	input := scenes.KeyboardInput()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewBattleScene(scenes.BattleConfig{
			World:     cfg.World,
			Table:     table,
			Manager:   sceneManager,
			Input:     input,
			Resources: resources,
			Audio:     audioManager,
			Settings:  settings,
			HUDFace:   face,
			Logger:    log,
		})
	})
	sceneManager.SwitchTo(scenes.NewTitleScene(sceneManager, input, resources.Texture(scenes.TitleTexture), face))

	log.Info("app initialized",
		zap.Int("tps", cfg.Window.TPS),
		zap.Int("textures", len(table.TextureIDs())))

	return &App{
		cfg:          cfg,
		log:          log,
		sceneManager: sceneManager,
		settings:     settings,
		audio:        audioManager,
		dt:           1 / float64(cfg.Window.TPS),
	}, nil
}

// ApplyWindow 按配置和已保存的设置设置窗口
func (a *App) ApplyWindow() {
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetTPS(a.cfg.Window.TPS)
	ebiten.SetFullscreen(a.cfg.Window.Fullscreen || a.settings.Settings().Fullscreen)
}

// Update 每个 tick 调用一次，使用固定步长
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		a.settings.Update(func(s *game.GameSettings) { s.Fullscreen = full })
	}
	return a.sceneManager.Update(a.dt)
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 逻辑屏幕尺寸与视野一致，由 Ebitengine 负责缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.cfg.World.ViewWidth), int(a.cfg.World.ViewHeight)
}

// Shutdown 退出前保存设置并停止音乐
func (a *App) Shutdown() {
	if err := a.sceneManager.SaveOnExit(); err != nil {
		a.log.Warn("save on exit failed", zap.Error(err))
	}
	if err := a.settings.Save(); err != nil {
		a.log.Warn("save settings failed", zap.Error(err))
	}
	a.audio.StopMusic()
	_ = a.log.Sync()
}
