package actor

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/types"
)

// Projectile 子弹
type Projectile struct {
	*entity.Entity

	kind   types.ProjectileKind
	data   config.ProjectileData
	sprite sprite
}

// NewProjectile 创建子弹，敌方子弹的类别为 CategoryEnemyProjectile
func NewProjectile(kind types.ProjectileKind, table *config.ActorTable, textures TextureProvider) *Projectile {
	data := table.Projectile(kind)
	category := types.CategoryAlliedProjectile
	if kind == types.ProjectileEnemyBullet {
		category = types.CategoryEnemyProjectile
	}
	p := &Projectile{
		Entity: entity.New(1, category),
		kind:   kind,
		data:   data,
		sprite: newSprite(textures, data.Sprite),
	}
	p.SetMaxSpeed(data.Speed)
	p.SetHooks(p)
	return p
}

// Kind 子弹类型
func (p *Projectile) Kind() types.ProjectileKind { return p.kind }

// HitDamage 命中伤害
func (p *Projectile) HitDamage() int { return p.data.Damage }

func (p *Projectile) BoundingBox() types.Rect {
	return worldBox(p.Node, p.sprite.w, p.sprite.h)
}

func (p *Projectile) ReceiveCommand(cmd command.Command, _ float64) {
	p.HandleCommand(p, cmd)
}

func (p *Projectile) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	p.sprite.draw(dst, geom)
}
