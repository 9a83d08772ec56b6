package actor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

const particleSize = 6

// Particle 装饰性粒子，不参与碰撞，随寿命淡出
type Particle struct {
	*scene.Node
	scene.BaseHooks

	kind     types.ParticleKind
	color    color.RGBA
	lifetime float64
	elapsed  float64
}

// NewParticle 创建粒子
func NewParticle(kind types.ParticleKind, table *config.ActorTable) *Particle {
	data := table.Particle(kind)
	p := &Particle{
		Node:     scene.NewNode(),
		kind:     kind,
		color:    color.RGBA{R: data.Color[0], G: data.Color[1], B: data.Color[2], A: 255},
		lifetime: data.Lifetime,
	}
	p.SetHooks(p)
	return p
}

// Kind 粒子类型
func (p *Particle) Kind() types.ParticleKind { return p.kind }

// Alpha 当前不透明度 [0, 1]
func (p *Particle) Alpha() float64 {
	if p.lifetime <= 0 || p.elapsed >= p.lifetime {
		return 0
	}
	return 1 - p.elapsed/p.lifetime
}

func (p *Particle) Category() types.Category { return types.CategoryParticle }

func (p *Particle) IsMarkedForRemoval() bool { return p.elapsed >= p.lifetime }

func (p *Particle) UpdateCurrent(dt float64, _ *command.Queue) {
	p.elapsed += dt
}

func (p *Particle) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	a := p.Alpha()
	if a <= 0 {
		return
	}
	x, y := geom.Apply(0, 0)
	c := color.RGBA{
		R: uint8(float64(p.color.R) * a),
		G: uint8(float64(p.color.G) * a),
		B: uint8(float64(p.color.B) * a),
		A: uint8(255 * a),
	}
	vector.DrawFilledRect(dst, float32(x-particleSize/2), float32(y-particleSize/2), particleSize, particleSize, c, false)
}
