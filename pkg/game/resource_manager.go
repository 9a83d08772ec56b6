package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/graveyard/pkg/embedded"
)

// ErrUnknownResource 资源 ID 未在资源配置中定义
var ErrUnknownResource = errors.New("unknown resource id")

// ResourceManager 集中加载并缓存贴图、音效和字体
//
// 资源按 ID 通过资源配置映射到文件路径，首次使用时才加载。
// 加载失败的贴图和音效也会被缓存（值为 nil），同一个缺失资源只记录一次警告。
// 非并发安全，只在游戏主循环中使用。
type ResourceManager struct {
	log          *zap.Logger
	audioContext *audio.Context // 可以为 nil，此时不解码音频

	config      *ResourceConfig
	resourceMap map[string]string // 资源ID -> 完整路径
	musicIDs    map[string]bool

	imageCache  map[string]*ebiten.Image
	soundCache  map[string][]byte // 资源ID -> 解码后的 PCM
	fontSources map[string]*text.GoTextFaceSource
}

// NewResourceManager 创建资源管理器
// 参数:
//   - audioContext: 全局音频上下文，可以为 nil
//   - log: 日志，可以为 nil
func NewResourceManager(audioContext *audio.Context, log *zap.Logger) *ResourceManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResourceManager{
		log:          log.Named("resources"),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
		musicIDs:     make(map[string]bool),
		imageCache:   make(map[string]*ebiten.Image),
		soundCache:   make(map[string][]byte),
		fontSources:  make(map[string]*text.GoTextFaceSource),
	}
}

// AudioContext 返回音频上下文
func (rm *ResourceManager) AudioContext() *audio.Context {
	return rm.audioContext
}

// LoadResourceConfig 读取并解析资源配置，建立 ID 到路径的映射
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	return rm.parseResourceConfig(data)
}

func (rm *ResourceManager) parseResourceConfig(data []byte) error {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config: %w", err)
	}
	rm.config = &cfg
	return rm.buildResourceMap()
}

// buildResourceMap 拼接完整路径，同一 ID 在不同分组中重复定义时报错
func (rm *ResourceManager) buildResourceMap() error {
	rm.resourceMap = make(map[string]string)
	rm.musicIDs = make(map[string]bool)

	add := func(id, path, defaultExt string) error {
		if id == "" || path == "" {
			return fmt.Errorf("resource entry %q has empty id or path", id)
		}
		if _, dup := rm.resourceMap[id]; dup {
			return fmt.Errorf("duplicate resource id %s", id)
		}
		full := buildFullPath(rm.config.BasePath, path)
		if defaultExt != "" && filepath.Ext(full) == "" {
			full += defaultExt
		}
		rm.resourceMap[id] = full
		return nil
	}

	for name, group := range rm.config.Groups {
		for _, img := range group.Images {
			if err := add(img.ID, img.Path, ".png"); err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
		}
		for _, snd := range group.Sounds {
			if err := add(snd.ID, snd.Path, ".ogg"); err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
			if snd.Music {
				rm.musicIDs[snd.ID] = true
			}
		}
		for _, f := range group.Fonts {
			if err := add(f.ID, f.Path, ""); err != nil {
				return fmt.Errorf("group %s: %w", name, err)
			}
		}
	}
	return nil
}

// SetBasePath 替换资源根目录并重建路径映射
func (rm *ResourceManager) SetBasePath(dir string) error {
	if rm.config == nil {
		return errors.New("resource config not loaded")
	}
	rm.config.BasePath = dir
	return rm.buildResourceMap()
}

// ResourcePath 返回资源 ID 对应的完整路径
func (rm *ResourceManager) ResourcePath(id string) (string, bool) {
	p, ok := rm.resourceMap[id]
	return p, ok
}

// LoadImage 按路径加载图片并缓存
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[path]; ok && img != nil {
		return img, nil
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[path] = img
	return img, nil
}

// Texture 按资源 ID 返回贴图，首次访问时加载
// 缺失或加载失败时返回 nil，调用方按无贴图处理
func (rm *ResourceManager) Texture(id string) *ebiten.Image {
	if img, ok := rm.imageCache[id]; ok {
		return img
	}
	path, ok := rm.resourceMap[id]
	if !ok {
		rm.log.Warn("texture not defined", zap.String("id", id))
		rm.imageCache[id] = nil
		return nil
	}
	img, err := rm.LoadImage(path)
	if err != nil {
		rm.log.Warn("texture unavailable", zap.String("id", id), zap.Error(err))
	}
	rm.imageCache[id] = img
	return img
}

// decodeAudio 按扩展名解码并重采样到音频上下文的采样率
func (rm *ResourceManager) decodeAudio(path string) (io.ReadSeeker, int64, error) {
	if rm.audioContext == nil {
		return nil, 0, errors.New("audio context not available")
	}
	raw, err := embedded.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	sampleRate := rm.audioContext.SampleRate()
	reader := bytes.NewReader(raw)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .wav, .mp3)", ext)
	}
}

// SoundData 返回音效解码后的 PCM 数据，首次访问时解码
// 缺失或解码失败时返回 nil
func (rm *ResourceManager) SoundData(id string) []byte {
	if pcm, ok := rm.soundCache[id]; ok {
		return pcm
	}
	var pcm []byte
	path, ok := rm.resourceMap[id]
	if !ok {
		rm.log.Warn("sound not defined", zap.String("id", id))
	} else if stream, _, err := rm.decodeAudio(path); err != nil {
		rm.log.Warn("sound unavailable", zap.String("id", id), zap.Error(err))
	} else if pcm, err = io.ReadAll(stream); err != nil {
		rm.log.Warn("sound unreadable", zap.String("id", id), zap.Error(err))
		pcm = nil
	}
	rm.soundCache[id] = pcm
	return pcm
}

// LoadMusic 创建循环播放的音乐播放器，每次调用返回新的播放器
func (rm *ResourceManager) LoadMusic(id string) (*audio.Player, error) {
	path, ok := rm.resourceMap[id]
	if !ok || !rm.musicIDs[id] {
		return nil, fmt.Errorf("%w: music %s", ErrUnknownResource, id)
	}
	stream, length, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}
	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// LoadFont 按资源 ID 加载字体并创建指定字号的字体
// size 为 0 时使用资源配置中的默认字号
func (rm *ResourceManager) LoadFont(id string, size float64) (*text.GoTextFace, error) {
	path, ok := rm.resourceMap[id]
	if !ok {
		return nil, fmt.Errorf("%w: font %s", ErrUnknownResource, id)
	}
	if size <= 0 {
		size = rm.defaultFontSize(id)
	}

	source, ok := rm.fontSources[id]
	if !ok {
		data, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
		rm.fontSources[id] = source
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

func (rm *ResourceManager) defaultFontSize(id string) float64 {
	if rm.config != nil {
		for _, g := range rm.config.Groups {
			for _, f := range g.Fonts {
				if f.ID == id && f.Size > 0 {
					return f.Size
				}
			}
		}
	}
	return 24
}
