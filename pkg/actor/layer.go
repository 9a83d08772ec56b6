package actor

import (
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// Layer 场景层节点
// 带 CategoryGroundLayer 的层负责处理生成命令，把新角色挂到自己下面
type Layer struct {
	*scene.Node
	scene.BaseHooks

	category types.Category
	factory  *Factory
}

// NewLayer 创建普通的装饰层
func NewLayer() *Layer {
	l := &Layer{Node: scene.NewNode(), category: types.CategoryScene}
	l.SetHooks(l)
	return l
}

// NewGroundLayer 创建处理生成命令的地面层
func NewGroundLayer(factory *Factory) *Layer {
	l := &Layer{Node: scene.NewNode(), category: types.CategoryGroundLayer, factory: factory}
	l.SetHooks(l)
	return l
}

func (l *Layer) Category() types.Category { return l.category }

func (l *Layer) ReceiveCommand(cmd command.Command, _ float64) {
	if l.factory == nil {
		return
	}
	switch cmd.Kind {
	case command.KindSpawnProjectile:
		p := l.factory.NewProjectile(cmd.Projectile)
		p.Position = cmd.Position
		p.Rotation = cmd.Rotation
		p.SetVelocity(cmd.Velocity)
		l.AttachChild(p.Node)
	case command.KindSpawnPickup:
		p := l.factory.NewPickup(cmd.Pickup)
		p.Position = cmd.Position
		l.AttachChild(p.Node)
	case command.KindSpawnParticle:
		p := l.factory.NewParticle(cmd.Particle)
		p.Position = cmd.Position
		l.AttachChild(p.Node)
	}
}
