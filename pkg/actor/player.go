package actor

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/graveyard/pkg/anim"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

const (
	// MaxFireRateLevel 射速等级上限
	MaxFireRateLevel = 10
	// MaxFireSpreadLevel 散射等级上限（一次最多发射的子弹数）
	MaxFireSpreadLevel = 3
)

// spreadOffsets 各散射等级下子弹相对玩家的横向偏移（以碰撞盒尺寸为单位）
var spreadOffsets = [MaxFireSpreadLevel + 1][]float64{
	1: {0},
	2: {-0.33, 0.33},
	3: {-0.5, 0, 0.5},
}

// Player 玩家
type Player struct {
	*entity.Entity

	kind       types.PlayerKind
	data       config.PlayerData
	projectile config.ProjectileData

	state     State
	walk      directional
	idle      directional
	death     *anim.Animation
	showDeath bool

	ammo            int
	firing          bool
	fireCountdown   float64
	fireRateLevel   int
	fireSpreadLevel int

	healthDisplay *scene.TextNode
	ammoDisplay   *scene.TextNode
}

// NewPlayer 创建玩家
// 参数:
//   - kind: 玩家类型
//   - table: 已校验的角色数据表
//   - textures: 贴图来源，可以为 nil
//   - face: 头顶血量/弹药文字的字体，nil 时使用调试字体
func NewPlayer(kind types.PlayerKind, table *config.ActorTable, textures TextureProvider, face text.Face) *Player {
	data := table.Player(kind)
	p := &Player{
		Entity:          entity.New(data.HitPoints, types.CategoryPlayer),
		kind:            kind,
		data:            data,
		projectile:      table.Projectile(data.Projectile),
		state:           StateIdleDown,
		walk:            newDirectional(textures, data.Walk),
		idle:            newDirectional(textures, data.Idle),
		showDeath:       true,
		ammo:            data.Ammo,
		fireRateLevel:   1,
		fireSpreadLevel: 1,
	}
	if data.Death != nil {
		p.death = newAnimation(textures, *data.Death)
	}
	p.SetMaxSpeed(data.Speed)
	p.SetHooks(p)

	p.healthDisplay = scene.NewTextNode(face, "")
	p.healthDisplay.Position = types.Vec2{X: 0, Y: 50}
	p.AttachChild(p.healthDisplay.Node)

	p.ammoDisplay = scene.NewTextNode(face, "")
	p.ammoDisplay.Position = types.Vec2{X: 0, Y: 70}
	p.AttachChild(p.ammoDisplay.Node)

	p.updateTexts()
	return p
}

// Kind 玩家类型
func (p *Player) Kind() types.PlayerKind { return p.kind }

// State 当前状态
func (p *Player) State() State { return p.state }

// Ammo 剩余弹药
func (p *Player) Ammo() int { return p.ammo }

// IsFiring 是否有待处理的开火意图
func (p *Player) IsFiring() bool { return p.firing }

// FireRateLevel 射速等级
func (p *Player) FireRateLevel() int { return p.fireRateLevel }

// FireSpreadLevel 散射等级
func (p *Player) FireSpreadLevel() int { return p.fireSpreadLevel }

// HealthText 头顶血量文本
func (p *Player) HealthText() string { return p.healthDisplay.String() }

// AmmoText 头顶弹药文本
func (p *Player) AmmoText() string { return p.ammoDisplay.String() }

// Fire 设置开火意图；开火间隔为 0 的玩家不能开火
func (p *Player) Fire() {
	if p.data.FireInterval > 0 {
		p.firing = true
	}
}

// CollectAmmo 增加弹药
func (p *Player) CollectAmmo(n int) {
	if n > 0 {
		p.ammo += n
	}
}

// IncreaseFireRate 提升射速等级
func (p *Player) IncreaseFireRate() {
	if p.fireRateLevel < MaxFireRateLevel {
		p.fireRateLevel++
	}
}

// IncreaseFireSpread 提升散射等级
func (p *Player) IncreaseFireSpread() {
	if p.fireSpreadLevel < MaxFireSpreadLevel {
		p.fireSpreadLevel++
	}
}

// Remove 摧毁并跳过死亡动画
func (p *Player) Remove() {
	p.Entity.Remove()
	p.showDeath = false
}

func (p *Player) IsMarkedForRemoval() bool {
	return p.IsDestroyed() && (p.death == nil || p.death.IsFinished() || !p.showDeath)
}

func (p *Player) BoundingBox() types.Rect {
	return worldBox(p.Node, p.data.Size[0], p.data.Size[1]).Adjust(p.data.Hitbox)
}

func (p *Player) ReceiveCommand(cmd command.Command, _ float64) {
	if cmd.Kind == command.KindFire {
		p.Fire()
		return
	}
	p.HandleCommand(p, cmd)
}

func (p *Player) UpdateCurrent(dt float64, queue *command.Queue) {
	p.checkProjectileLaunch(dt, queue)

	p.state = NextState(p.state, p.Velocity(), p.HitPoints(), true)
	if a := p.animation(); a != nil {
		a.Update(dt)
	}

	p.Entity.UpdateCurrent(dt, queue)
	p.updateTexts()
}

func (p *Player) DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM) {
	if a := p.animation(); a != nil {
		a.Draw(dst, geom)
	}
}

// animation 当前状态对应的动画
func (p *Player) animation() *anim.Animation {
	switch {
	case p.state == StateDead:
		return p.death
	case p.state.IsIdle():
		return p.idle.get(p.state.Facing())
	default:
		return p.walk.get(p.state.Facing())
	}
}

func (p *Player) checkProjectileLaunch(dt float64, queue *command.Queue) {
	if p.firing && p.fireCountdown <= 0 {
		// 弹药耗尽时静默忽略
		if p.ammo > 0 {
			p.emitProjectiles(queue)
			queue.Push(command.PlaySound(types.SoundPistolShot, p.WorldPosition()))
			p.firing = false
			p.ammo--
			p.fireCountdown = p.data.FireInterval / float64(p.fireRateLevel)
		}
	} else if p.fireCountdown > 0 {
		p.fireCountdown -= dt
	}
}

// emitProjectiles 朝当前朝向发射子弹，散射等级决定子弹数量
func (p *Player) emitProjectiles(queue *command.Queue) {
	speed := p.projectile.Speed
	pos := p.WorldPosition()

	var vel, perp types.Vec2
	rotation := 0.0
	width := p.data.Size[0]
	switch p.state.Facing() {
	case FacingUp:
		vel, perp = types.Vec2{Y: -speed}, types.Vec2{X: 1}
	case FacingDown:
		vel, perp = types.Vec2{Y: speed}, types.Vec2{X: 1}
	case FacingLeft:
		vel, perp = types.Vec2{X: -speed}, types.Vec2{Y: 1}
		rotation, width = 90, p.data.Size[1]
	case FacingRight:
		vel, perp = types.Vec2{X: speed}, types.Vec2{Y: 1}
		rotation, width = 90, p.data.Size[1]
	}

	for _, f := range spreadOffsets[p.fireSpreadLevel] {
		at := pos.Add(perp.Scale(f * width))
		queue.Push(command.SpawnProjectile(p.data.Projectile, at, vel, rotation))
	}
}

func (p *Player) updateTexts() {
	if p.IsDestroyed() {
		p.healthDisplay.SetString("")
	} else {
		p.healthDisplay.SetString("HP " + strconv.Itoa(p.HitPoints()))
	}
	p.healthDisplay.Rotation = -p.Rotation

	if p.ammo == 0 || p.IsDestroyed() {
		p.ammoDisplay.SetString("")
	} else {
		p.ammoDisplay.SetString("Ammo " + strconv.Itoa(p.ammo))
	}
}
