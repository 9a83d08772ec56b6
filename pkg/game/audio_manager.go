package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/types"
)

// 空间音效参数：听者位于平面上方 ListenerZ 处，最小距离以内不衰减
const (
	soundAttenuation = 8.0
	minDistance2D    = 200.0
)

// AudioManager 音频管理器
// 职责：
//   - 在世界坐标中播放一次性音效，按与听者的距离衰减音量
//   - 回收播放完毕的播放器
//   - 播放循环背景音乐
//   - 音量与开关从 SettingsManager 读取
type AudioManager struct {
	resources *ResourceManager
	settings  *SettingsManager // 可以为 nil
	log       *zap.Logger

	listener  types.Vec2
	listenerZ float64
	active    []*audio.Player

	music   *audio.Player
	musicID string
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - rm: 提供音效数据和音频上下文
//   - sm: 音量设置，可以为 nil
//   - listenerZ: 听者离地高度
//   - log: 日志，可以为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, listenerZ float64, log *zap.Logger) *AudioManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioManager{
		resources: rm,
		settings:  sm,
		log:       log.Named("audio"),
		listenerZ: listenerZ,
	}
}

// Play 在 pos 处播放音效
func (am *AudioManager) Play(effect types.SoundEffect, pos types.Vec2) {
	if !am.soundEnabled() {
		return
	}
	ctx := am.resources.AudioContext()
	if ctx == nil {
		return
	}
	pcm := am.resources.SoundData(string(effect))
	if pcm == nil {
		return
	}

	player := ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(am.soundVolume() * attenuate(pos.Sub(am.listener).Length(), am.listenerZ))
	player.Play()
	am.active = append(am.active, player)
}

// SetListenerPosition 设置听者位置
func (am *AudioManager) SetListenerPosition(pos types.Vec2) {
	am.listener = pos
}

// ListenerPosition 当前听者位置
func (am *AudioManager) ListenerPosition() types.Vec2 {
	return am.listener
}

// RemoveStoppedSounds 关闭并移除已播放完毕的音效
func (am *AudioManager) RemoveStoppedSounds() {
	kept := am.active[:0]
	for _, p := range am.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			am.log.Debug("close sound player", zap.Error(err))
		}
	}
	clear(am.active[len(kept):])
	am.active = kept
}

// ActiveSounds 正在播放的音效数量
func (am *AudioManager) ActiveSounds() int {
	return len(am.active)
}

// PlayMusic 循环播放背景音乐，同一首已在播放时不重新开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settings != nil && !am.settings.Settings().MusicEnabled {
		return false
	}
	if am.musicID == musicID && am.music != nil && am.music.IsPlaying() {
		return true
	}
	am.StopMusic()

	player, err := am.resources.LoadMusic(musicID)
	if err != nil {
		am.log.Warn("music unavailable", zap.String("id", musicID), zap.Error(err))
		return false
	}
	player.SetVolume(am.musicVolume())
	player.Play()
	am.music = player
	am.musicID = musicID
	am.log.Info("playing music", zap.String("id", musicID), zap.Float64("volume", am.musicVolume()))
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.music == nil {
		return
	}
	am.music.Pause()
	if err := am.music.Close(); err != nil {
		am.log.Debug("close music player", zap.Error(err))
	}
	am.music = nil
	am.musicID = ""
}

// ApplySettings 把当前音量设置应用到正在播放的音乐
func (am *AudioManager) ApplySettings() {
	if am.music == nil {
		return
	}
	if am.settings != nil && !am.settings.Settings().MusicEnabled {
		am.StopMusic()
		return
	}
	am.music.SetVolume(am.musicVolume())
}

func (am *AudioManager) soundEnabled() bool {
	return am.settings == nil || am.settings.Settings().SoundEnabled
}

func (am *AudioManager) soundVolume() float64 {
	if am.settings != nil {
		return am.settings.Settings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}

func (am *AudioManager) musicVolume() float64 {
	if am.settings != nil {
		return am.settings.Settings().MusicVolume
	}
	return DefaultSettings().MusicVolume
}

// attenuate 反距离衰减系数，distance 为平面距离，听者高度 z 计入三维距离
func attenuate(distance, z float64) float64 {
	minDistance := math.Hypot(minDistance2D, z)
	d := math.Max(math.Hypot(distance, z), minDistance)
	return minDistance / (minDistance + soundAttenuation*(d-minDistance))
}
