package actor

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/anim"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/types"
)

// pickupDropChance 死亡时掉落道具的概率为 1/pickupDropChance
const pickupDropChance = 3

// Hostile 近战敌人（僵尸和骷髅王共用）
//
// 接触玩家时停下并按攻击间隔造成伤害；死亡时播放一次死亡音效，并有概率掉落道具。
// 没有死亡动画的类型在摧毁后立即可被清除。
type Hostile struct {
	*entity.Entity

	kind types.HostileKind
	data config.HostileData
	rng  *rand.Rand

	state     State
	walk      directional
	death     *anim.Animation
	showDeath bool

	attackTimer  float64
	deathHandled bool
}

// NewZombie 创建僵尸
func NewZombie(table *config.ActorTable, textures TextureProvider, rng *rand.Rand) *Hostile {
	return newHostile(types.HostileZombie, types.CategoryZombie, table, textures, rng)
}

// NewSkeleton 创建骷髅王
func NewSkeleton(table *config.ActorTable, textures TextureProvider, rng *rand.Rand) *Hostile {
	return newHostile(types.HostileSkeleton, types.CategorySkeleton, table, textures, rng)
}

func newHostile(kind types.HostileKind, category types.Category, table *config.ActorTable, textures TextureProvider, rng *rand.Rand) *Hostile {
	data := table.Hostile(kind)
	h := &Hostile{
		Entity:    entity.New(data.HitPoints, category),
		kind:      kind,
		data:      data,
		rng:       rng,
		state:     StateWalkDown,
		walk:      newDirectional(textures, data.Walk),
		showDeath: true,
	}
	if data.Death != nil {
		h.death = newAnimation(textures, *data.Death)
	}
	h.SetMaxSpeed(data.Speed)
	h.SetMovementPattern(entity.NewMovementPattern(data.Directions))
	h.SetHooks(h)
	return h
}

// Kind 敌人类型
func (h *Hostile) Kind() types.HostileKind { return h.kind }

// State 当前状态
func (h *Hostile) State() State { return h.state }

// AttackDamage 每次攻击造成的伤害
func (h *Hostile) AttackDamage() int { return h.data.Damage }

// AttackDelay 攻击间隔（秒）
func (h *Hostile) AttackDelay() float64 { return h.data.AttackInterval }

// AttackTimer 已累积的攻击时间
func (h *Hostile) AttackTimer() float64 { return h.attackTimer }

// Attack 累积接触时间 dt，达到攻击间隔时返回 true 并扣除一个间隔
// 超出的时间保留到下一次，每帧最多命中一次
func (h *Hostile) Attack(dt float64) bool {
	h.attackTimer += dt
	if h.attackTimer < h.data.AttackInterval {
		return false
	}
	h.attackTimer -= h.data.AttackInterval
	return true
}

// HasDeathAnimation 是否有死亡动画
func (h *Hostile) HasDeathAnimation() bool {
	return h.death != nil
}

// HandleDeath 死亡时推送死亡音效、血迹粒子，按概率推送道具掉落；只生效一次
// 存活时什么都不做
func (h *Hostile) HandleDeath(queue *command.Queue) {
	if !h.IsDestroyed() || h.deathHandled {
		return
	}
	h.deathHandled = true

	pos := h.WorldPosition()
	queue.Push(command.PlaySound(types.SoundZombieDeath, pos))
	queue.Push(command.SpawnParticle(types.ParticleBlood, pos))
	if h.rng != nil && h.rng.IntN(pickupDropChance) == 0 {
		kind := types.AllPickupKinds[h.rng.IntN(len(types.AllPickupKinds))]
		queue.Push(command.SpawnPickup(kind, pos))
	}
}

// Remove 摧毁并跳过死亡动画
func (h *Hostile) Remove() {
	h.Entity.Remove()
	h.showDeath = false
}

func (h *Hostile) IsMarkedForRemoval() bool {
	if !h.IsDestroyed() {
		return false
	}
	return h.death == nil || h.death.IsFinished() || !h.showDeath
}

func (h *Hostile) BoundingBox() types.Rect {
	return worldBox(h.Node, h.data.Size[0], h.data.Size[1]).Adjust(h.data.Hitbox)
}

func (h *Hostile) ReceiveCommand(cmd command.Command, _ float64) {
	h.HandleCommand(h, cmd)
}

func (h *Hostile) UpdateCurrent(dt float64, queue *command.Queue) {
	h.state = NextState(h.state, h.Velocity(), h.HitPoints(), false)

	if h.state == StateDead {
		h.HandleDeath(queue)
		if h.death != nil {
			h.death.Update(dt)
		}
	} else {
		h.walk.get(h.state.Facing()).Update(dt)
	}

	h.Entity.UpdateCurrent(dt, queue)
}

func (h *Hostile) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	if h.state == StateDead {
		if h.death != nil && h.showDeath {
			h.death.Draw(dst, geom)
		}
		return
	}
	h.walk.get(h.state.Facing()).Draw(dst, geom)
}
