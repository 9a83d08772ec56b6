package actor

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/types"
)

// Pickup 道具，玩家接触后生效并消失
type Pickup struct {
	*entity.Entity

	kind   types.PickupKind
	data   config.PickupData
	sprite sprite
}

// NewPickup 创建道具
func NewPickup(kind types.PickupKind, table *config.ActorTable, textures TextureProvider) *Pickup {
	data := table.Pickup(kind)
	p := &Pickup{
		Entity: entity.New(1, types.CategoryPickup),
		kind:   kind,
		data:   data,
		sprite: newSprite(textures, data.Sprite),
	}
	p.SetHooks(p)
	return p
}

// Kind 道具类型
func (p *Pickup) Kind() types.PickupKind { return p.kind }

// Effect 道具效果
func (p *Pickup) Effect() config.PickupEffect { return p.data.Effect }

// Apply 对玩家生效
func (p *Pickup) Apply(player *Player) {
	switch p.data.Effect {
	case config.EffectRepair:
		player.Repair(p.data.Amount)
	case config.EffectAmmo:
		player.CollectAmmo(p.data.Amount)
	case config.EffectFireSpread:
		player.IncreaseFireSpread()
	case config.EffectFireRate:
		player.IncreaseFireRate()
	}
}

func (p *Pickup) BoundingBox() types.Rect {
	return worldBox(p.Node, p.sprite.w, p.sprite.h)
}

func (p *Pickup) ReceiveCommand(cmd command.Command, _ float64) {
	p.HandleCommand(p, cmd)
}

func (p *Pickup) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	p.sprite.draw(dst, geom)
}
