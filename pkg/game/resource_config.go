package game

// ResourceConfig data/resources.yaml 的顶层结构
//
// 结构:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  battle:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"` // 所有资源路径的前缀
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一组一起使用的资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource 贴图定义，Path 不带扩展名时按 .png 处理
//
//	- id: IMAGE_GRAVEYARD
//	  path: textures/graveyard
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource 音效或音乐定义，Path 不带扩展名时按 .ogg 处理
// Music 为 true 的资源循环播放
type SoundResource struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Music bool   `yaml:"music,omitempty"`
}

// FontResource 字体定义（TTF/OTF）
type FontResource struct {
	ID   string  `yaml:"id"`
	Path string  `yaml:"path"`
	Size float64 `yaml:"size,omitempty"` // 默认字号，0 表示由调用方指定
}

// buildFullPath 拼接 base_path 和资源相对路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
