package actor

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/types"
)

type hostileBuilder func(*config.ActorTable, TextureProvider, *rand.Rand) *Hostile

// hostileBuilders 按敌人类型注册构造函数；新增类型时在这里登记
var hostileBuilders = map[types.HostileKind]hostileBuilder{
	types.HostileZombie:   NewZombie,
	types.HostileSkeleton: NewSkeleton,
}

// Factory 按类型创建角色
// 持有只读的角色数据表和贴图来源，由 World 构造一次后传递给地面层
type Factory struct {
	table    *config.ActorTable
	textures TextureProvider
	face     text.Face
	rng      *rand.Rand
}

// NewFactory 创建角色工厂
// 参数:
//   - table: 已校验的角色数据表
//   - textures: 贴图来源，可以为 nil
//   - face: 玩家头顶文字字体，可以为 nil
//   - rng: 掉落等随机行为使用的随机数源
//
// 返回:
//   - error: 有敌人类型没有注册构造函数时返回错误
func NewFactory(table *config.ActorTable, textures TextureProvider, face text.Face, rng *rand.Rand) (*Factory, error) {
	if table == nil {
		return nil, fmt.Errorf("actor table is nil")
	}
	for _, k := range types.AllHostileKinds {
		if _, ok := hostileBuilders[k]; !ok {
			return nil, fmt.Errorf("no builder registered for hostile %q", k)
		}
	}
	return &Factory{table: table, textures: textures, face: face, rng: rng}, nil
}

// Table 角色数据表
func (f *Factory) Table() *config.ActorTable { return f.table }

// NewPlayer 创建玩家
func (f *Factory) NewPlayer(kind types.PlayerKind) *Player {
	return NewPlayer(kind, f.table, f.textures, f.face)
}

// NewHostile 创建敌人
func (f *Factory) NewHostile(kind types.HostileKind) *Hostile {
	return hostileBuilders[kind](f.table, f.textures, f.rng)
}

// NewProjectile 创建子弹
func (f *Factory) NewProjectile(kind types.ProjectileKind) *Projectile {
	return NewProjectile(kind, f.table, f.textures)
}

// NewPickup 创建道具
func (f *Factory) NewPickup(kind types.PickupKind) *Pickup {
	return NewPickup(kind, f.table, f.textures)
}

// NewParticle 创建粒子
func (f *Factory) NewParticle(kind types.ParticleKind) *Particle {
	return NewParticle(kind, f.table)
}
