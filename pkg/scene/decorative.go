package scene

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/types"
)

// SpriteNode 绘制一张贴图（或其中一块区域），可选平铺到指定尺寸
type SpriteNode struct {
	*Node
	BaseHooks

	texture *ebiten.Image
	region  image.Rectangle
	fill    types.Vec2
}

// NewSpriteNode 创建贴图节点
// 参数:
//   - texture: 贴图，nil 时什么都不画
//   - region: 贴图区域，空矩形表示整张贴图
func NewSpriteNode(texture *ebiten.Image, region image.Rectangle) *SpriteNode {
	s := &SpriteNode{Node: NewNode(), texture: texture, region: region}
	s.SetHooks(s)
	return s
}

// SetTiled 把贴图区域平铺到 w x h 的范围（用于背景）
func (s *SpriteNode) SetTiled(w, h float64) {
	s.fill = types.Vec2{X: w, Y: h}
}

func (s *SpriteNode) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	if s.texture == nil {
		return
	}
	img := s.texture
	if !s.region.Empty() {
		img = s.texture.SubImage(s.region).(*ebiten.Image)
	}
	if s.fill.IsZero() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geom
		dst.DrawImage(img, op)
		return
	}

	tw, th := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if tw <= 0 || th <= 0 {
		return
	}
	for y := 0.0; y < s.fill.Y; y += th {
		for x := 0.0; x < s.fill.X; x += tw {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			op.GeoM.Concat(geom)
			dst.DrawImage(img, op)
		}
	}
}

// TextSetter 只写的文本显示接口
type TextSetter interface {
	SetString(s string)
}

// TextNode 居中绘制一行文本
// 没有字体时退回 ebitenutil 调试字体
type TextNode struct {
	*Node
	BaseHooks

	str   string
	face  text.Face
	color color.Color
}

// NewTextNode 创建文本节点，face 可以为 nil
func NewTextNode(face text.Face, s string) *TextNode {
	t := &TextNode{Node: NewNode(), str: s, face: face, color: color.White}
	t.SetHooks(t)
	return t
}

// SetString 设置显示文本
func (t *TextNode) SetString(s string) {
	t.str = s
}

// String 当前显示文本
func (t *TextNode) String() string {
	return t.str
}

// SetColor 设置文本颜色
func (t *TextNode) SetColor(c color.Color) {
	t.color = c
}

func (t *TextNode) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	if t.str == "" {
		return
	}
	if t.face == nil {
		x, y := geom.Apply(0, 0)
		ebitenutil.DebugPrintAt(dst, t.str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geom
	op.ColorScale.ScaleWithColor(t.color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, t.str, t.face, op)
}

// SoundPlayer 音效播放接口
type SoundPlayer interface {
	// Play 在世界坐标 pos 处播放一次音效
	Play(effect types.SoundEffect, pos types.Vec2)
	// SetListenerPosition 设置听者位置（用于距离衰减）
	SetListenerPosition(pos types.Vec2)
	// RemoveStoppedSounds 清理已播放完毕的音效
	RemoveStoppedSounds()
}

// SoundNode 把 KindPlaySound 命令转交给 SoundPlayer
type SoundNode struct {
	*Node
	BaseHooks

	player SoundPlayer
}

// NewSoundNode 创建声音节点，player 为 nil 时静音
func NewSoundNode(player SoundPlayer) *SoundNode {
	s := &SoundNode{Node: NewNode(), player: player}
	s.SetHooks(s)
	return s
}

func (s *SoundNode) Category() types.Category {
	return types.CategorySoundEffect
}

func (s *SoundNode) ReceiveCommand(cmd command.Command, _ float64) {
	if cmd.Kind != command.KindPlaySound || s.player == nil {
		return
	}
	s.player.Play(cmd.Sound, cmd.Position)
}
