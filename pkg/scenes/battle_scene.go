package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/actor"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/game"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/world"
)

// BattleMusic 战斗背景音乐资源ID
const BattleMusic = "MUSIC_BATTLE"

// BattleConfig 战斗场景的依赖；Resources、Audio、Settings、HUDFace 可以为 nil
type BattleConfig struct {
	World     config.WorldConfig
	Table     *config.ActorTable
	Manager   *game.SceneManager
	Input     Input
	Resources *game.ResourceManager
	Audio     *game.AudioManager
	Settings  *game.SettingsManager
	HUDFace   text.Face
	Logger    *zap.Logger
}

// BattleScene 一局游戏：键盘输入 -> 命令队列 -> World
// 玩家死亡后显示结束提示，按回车重开
type BattleScene struct {
	cfg      BattleConfig
	log      *zap.Logger
	world    *world.World
	controls *PlayerControl
	input    Input
}

// NewBattleScene 创建一局新的战斗
func NewBattleScene(cfg BattleConfig) (*BattleScene, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	input := cfg.Input
	if input == nil {
		input = KeyboardInput()
	}

	opts := world.Options{
		Config:  cfg.World,
		Table:   cfg.Table,
		HUDFace: cfg.HUDFace,
		Logger:  log,
	}
	if cfg.Resources != nil {
		opts.Textures = cfg.Resources
	}
	if cfg.Audio != nil {
		opts.Sounds = cfg.Audio
	}
	w, err := world.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}

	if cfg.Audio != nil {
		cfg.Audio.PlayMusic(BattleMusic)
	}
	return &BattleScene{
		cfg:      cfg,
		log:      log.Named("battle"),
		world:    w,
		controls: NewPlayerControl(),
		input:    input,
	}, nil
}

// World 当前战场
func (s *BattleScene) World() *world.World {
	return s.world
}

// Controls 当前键位
func (s *BattleScene) Controls() *PlayerControl {
	return s.controls
}

// Update 处理输入并推进一帧
func (s *BattleScene) Update(dt float64) error {
	s.handleAudioToggles()

	if s.world.HasAlivePlayer() {
		s.controls.HandleRealtimeInput(s.input, s.world.Commands())
	} else if s.controls.Status() != MissionFailure {
		s.controls.SetMissionStatus(MissionFailure)
		s.log.Info("mission failed", zap.Int("score", s.world.Score()))
	}

	s.world.Update(dt)

	if s.controls.Status() == MissionFailure && s.input.IsKeyJustPressed(ebiten.KeyEnter) && s.cfg.Manager != nil {
		return s.cfg.Manager.Restart()
	}
	return nil
}

// handleAudioToggles M 切换音乐，N 切换音效
func (s *BattleScene) handleAudioToggles() {
	if s.cfg.Settings == nil {
		return
	}
	if s.input.IsKeyJustPressed(ebiten.KeyM) {
		on := s.cfg.Settings.ToggleMusic()
		if s.cfg.Audio != nil {
			if on {
				s.cfg.Audio.PlayMusic(BattleMusic)
			} else {
				s.cfg.Audio.ApplySettings()
			}
		}
	}
	if s.input.IsKeyJustPressed(ebiten.KeyN) {
		s.cfg.Settings.ToggleSound()
	}
}

// Draw 绘制战场，结束时叠加提示
func (s *BattleScene) Draw(screen *ebiten.Image) {
	s.world.Draw(screen)
	if s.controls.Status() != MissionFailure {
		return
	}

	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	drawCentered(screen, s.cfg.HUDFace, "GAME OVER", cx, cy-20)
	drawCentered(screen, s.cfg.HUDFace, "Press Enter to restart", cx, cy+20)
}

// SaveOnExit 保存设置
func (s *BattleScene) SaveOnExit() error {
	if s.cfg.Settings == nil {
		return nil
	}
	return s.cfg.Settings.Save()
}

// drawCentered 以 (x, y) 为中心绘制一行文字，没有字体时用调试字体
func drawCentered(dst *ebiten.Image, face text.Face, msg string, x, y float64) {
	if face == nil {
		ebitenutil.DebugPrintAt(dst, msg, int(x)-len(msg)*3, int(y)-8)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(dst, msg, face, op)
}

var (
	_ game.Saveable         = (*BattleScene)(nil)
	_ actor.TextureProvider = (*game.ResourceManager)(nil)
	_ scene.SoundPlayer     = (*game.AudioManager)(nil)
)
