package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/graveyard/pkg/game"
)

// TitleTexture 标题画面背景资源ID
const TitleTexture = "IMAGE_TITLE"

const titleBlinkInterval = 0.5

// TitleScene 标题画面，提示文字闪烁，任意键开始
type TitleScene struct {
	manager    *game.SceneManager
	input      Input
	face       text.Face
	background *ebiten.Image

	elapsed  float64
	showText bool
}

// NewTitleScene 创建标题画面；background 和 face 可以为 nil
func NewTitleScene(manager *game.SceneManager, input Input, background *ebiten.Image, face text.Face) *TitleScene {
	if input == nil {
		input = KeyboardInput()
	}
	return &TitleScene{
		manager:    manager,
		input:      input,
		face:       face,
		background: background,
		showText:   true,
	}
}

// TextVisible 提示文字当前是否显示
func (s *TitleScene) TextVisible() bool {
	return s.showText
}

func (s *TitleScene) Update(dt float64) error {
	s.elapsed += dt
	for s.elapsed >= titleBlinkInterval {
		s.elapsed -= titleBlinkInterval
		s.showText = !s.showText
	}

	if s.input.AnyKeyJustPressed() && s.manager != nil {
		return s.manager.Restart()
	}
	return nil
}

func (s *TitleScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if s.background != nil {
		op := &ebiten.DrawImageOptions{}
		bb := s.background.Bounds()
		op.GeoM.Scale(float64(b.Dx())/float64(bb.Dx()), float64(b.Dy())/float64(bb.Dy()))
		screen.DrawImage(s.background, op)
	}
	if s.showText {
		drawCentered(screen, s.face, "Press any key to Start", float64(b.Dx())/2, float64(b.Dy())/2)
	}
}
