package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/types"
)

const testResourceYAML = `
version: "1.0"
base_path: assets
groups:
  battle:
    images:
      - id: IMAGE_A
        path: textures/a
      - id: IMAGE_B
        path: textures/b.jpg
    sounds:
      - id: SOUND_A
        path: sounds/a
      - id: SOUND_B
        path: sounds/b.wav
      - id: MUSIC_A
        path: music/a
        music: true
    fonts:
      - id: FONT_A
        path: fonts/a.ttf
        size: 18
`

func newTestResourceManager(t *testing.T) *ResourceManager {
	t.Helper()
	rm := NewResourceManager(nil, nil)
	if err := rm.parseResourceConfig([]byte(testResourceYAML)); err != nil {
		t.Fatalf("parseResourceConfig: %v", err)
	}
	return rm
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, rel, want string
	}{
		{"", "a.png", "a.png"},
		{"assets", "a.png", "assets/a.png"},
		{"assets", "/a.png", "assets/a.png"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.rel); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
		}
	}
}

// TestResourceMapDefaultExtensions 未写扩展名的图片补 .png，声音补 .ogg
func TestResourceMapDefaultExtensions(t *testing.T) {
	rm := newTestResourceManager(t)

	want := map[string]string{
		"IMAGE_A": "assets/textures/a.png",
		"IMAGE_B": "assets/textures/b.jpg",
		"SOUND_A": "assets/sounds/a.ogg",
		"SOUND_B": "assets/sounds/b.wav",
		"MUSIC_A": "assets/music/a.ogg",
		"FONT_A":  "assets/fonts/a.ttf",
	}
	for id, path := range want {
		got, ok := rm.ResourcePath(id)
		if !ok || got != path {
			t.Errorf("ResourcePath(%s) = %q, %v; want %q", id, got, ok, path)
		}
	}
	if !rm.musicIDs["MUSIC_A"] || rm.musicIDs["SOUND_A"] {
		t.Errorf("unexpected music ids: %v", rm.musicIDs)
	}
	if size := rm.defaultFontSize("FONT_A"); size != 18 {
		t.Errorf("defaultFontSize = %v, want 18", size)
	}
}

func TestSetBasePath(t *testing.T) {
	rm := newTestResourceManager(t)
	if err := rm.SetBasePath("/opt/graveyard"); err != nil {
		t.Fatalf("SetBasePath: %v", err)
	}
	if got, _ := rm.ResourcePath("IMAGE_A"); got != "/opt/graveyard/textures/a.png" {
		t.Errorf("unexpected path after SetBasePath: %s", got)
	}

	if err := NewResourceManager(nil, nil).SetBasePath("x"); err == nil {
		t.Error("SetBasePath before loading config should fail")
	}
}

func TestResourceConfigDuplicateID(t *testing.T) {
	rm := NewResourceManager(nil, nil)
	data := strings.Replace(testResourceYAML, "id: IMAGE_B", "id: IMAGE_A", 1)
	if err := rm.parseResourceConfig([]byte(data)); err == nil {
		t.Error("expected duplicate id error")
	}
}

// TestMissingResourcesAreCachedAsNil 缺失的贴图和音效返回 nil，重复访问不重复加载
func TestMissingResourcesAreCachedAsNil(t *testing.T) {
	rm := newTestResourceManager(t)

	if img := rm.Texture("IMAGE_UNKNOWN"); img != nil {
		t.Error("undefined texture should be nil")
	}
	if img := rm.Texture("IMAGE_A"); img != nil {
		t.Error("texture whose file is missing should be nil")
	}
	if _, ok := rm.imageCache["IMAGE_A"]; !ok {
		t.Error("failed texture lookup should be cached")
	}

	if pcm := rm.SoundData("SOUND_A"); pcm != nil {
		t.Error("sound without audio context should be nil")
	}
	if _, ok := rm.soundCache["SOUND_A"]; !ok {
		t.Error("failed sound lookup should be cached")
	}
}

func TestLoadMusicAndFontUnknown(t *testing.T) {
	rm := newTestResourceManager(t)

	if _, err := rm.LoadMusic("SOUND_A"); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("non-music sound should be rejected, got %v", err)
	}
	if _, err := rm.LoadFont("FONT_MISSING", 12); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("expected ErrUnknownResource, got %v", err)
	}
	if _, err := rm.LoadFont("FONT_A", 12); err == nil {
		t.Error("font whose file is missing should fail")
	}
}

// TestShippedResourcesCoverActors data/resources.yaml 定义了角色表和音效引用的全部资源
func TestShippedResourcesCoverActors(t *testing.T) {
	rm := NewResourceManager(nil, nil)
	if err := rm.LoadResourceConfig("../../data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig: %v", err)
	}

	for _, id := range config.FixtureActorTable().TextureIDs() {
		if _, ok := rm.ResourcePath(id); !ok {
			t.Errorf("texture %s not defined", id)
		}
	}
	effects := append([]types.SoundEffect{types.SoundPistolShot, types.SoundCollectPickup, types.SoundZombieDeath}, types.ZombieGroans...)
	for _, e := range effects {
		if _, ok := rm.ResourcePath(string(e)); !ok {
			t.Errorf("sound %s not defined", e)
		}
	}
	for _, id := range []string{"IMAGE_GRAVEYARD", "MUSIC_BATTLE", "FONT_HUD"} {
		if _, ok := rm.ResourcePath(id); !ok {
			t.Errorf("resource %s not defined", id)
		}
	}
}
