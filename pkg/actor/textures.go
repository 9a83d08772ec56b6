package actor

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/anim"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// TextureProvider 贴图来源，只在构造角色时查询
// 找不到贴图时返回 nil，角色照常参与模拟但不绘制
type TextureProvider interface {
	Texture(id string) *ebiten.Image
}

func newAnimation(tp TextureProvider, d config.AnimationData) *anim.Animation {
	var tex *ebiten.Image
	if tp != nil && d.Texture != "" {
		tex = tp.Texture(d.Texture)
	}
	return anim.New(tex, d.FrameWidth, d.FrameHeight, d.Frames, d.Duration, d.Repeat)
}

// directional 四个朝向的动画，按 Facing 下标
type directional [4]*anim.Animation

func newDirectional(tp TextureProvider, d config.DirectionalAnimations) directional {
	return directional{
		FacingUp:    newAnimation(tp, d.Up),
		FacingLeft:  newAnimation(tp, d.Left),
		FacingDown:  newAnimation(tp, d.Down),
		FacingRight: newAnimation(tp, d.Right),
	}
}

func (d directional) get(f Facing) *anim.Animation {
	return d[f]
}

// sprite 贴图中的一块区域，以中心为原点绘制
type sprite struct {
	image *ebiten.Image
	w, h  float64
}

func newSprite(tp TextureProvider, d config.SpriteData) sprite {
	s := sprite{w: float64(d.Region[2]), h: float64(d.Region[3])}
	if tp == nil || d.Texture == "" {
		return s
	}
	tex := tp.Texture(d.Texture)
	if tex == nil {
		return s
	}
	r := image.Rect(d.Region[0], d.Region[1], d.Region[0]+d.Region[2], d.Region[1]+d.Region[3])
	s.image = tex.SubImage(r).(*ebiten.Image)
	return s
}

func (s sprite) draw(dst *ebiten.Image, geom ebiten.GeoM) {
	if s.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.w/2, -s.h/2)
	op.GeoM.Concat(geom)
	dst.DrawImage(s.image, op)
}

// worldBox 把以节点原点为中心的 w x h 矩形变换到世界坐标，取轴对齐包围盒
func worldBox(n *scene.Node, w, h float64) types.Rect {
	if w <= 0 || h <= 0 {
		return types.Rect{}
	}
	g := n.WorldTransform()
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {-w / 2, h / 2}, {w / 2, h / 2}} {
		x, y := g.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return types.Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}
