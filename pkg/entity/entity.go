// Package entity 定义所有模拟角色的公共基类：生命值、速度和摧毁/存活生命周期
package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// Entity 带生命值和速度的场景节点
//
// 具体角色嵌入 *Entity 并覆盖需要的 Hooks 方法，
// 构造完成后必须调用 SetHooks 把自己绑定到节点上。
type Entity struct {
	*scene.Node

	hitPoints int
	velocity  types.Vec2
	maxSpeed  float64
	category  types.Category
	pattern   *MovementPattern
}

// New 创建实体
// 参数:
//   - hitPoints: 初始生命值（来自角色数据表）
//   - category: 运行时类别
func New(hitPoints int, category types.Category) *Entity {
	e := &Entity{
		Node:      scene.NewNode(),
		hitPoints: hitPoints,
		category:  category,
	}
	e.SetHooks(e)
	return e
}

// HitPoints 当前生命值（可以为负）
func (e *Entity) HitPoints() int {
	return e.hitPoints
}

// Damage 扣除 p 点生命值，p 必须为正
func (e *Entity) Damage(p int) {
	if p <= 0 {
		panic(fmt.Sprintf("entity: damage must be positive, got %d", p))
	}
	e.hitPoints -= p
}

// Repair 恢复 p 点生命值，p 必须为正
func (e *Entity) Repair(p int) {
	if p <= 0 {
		panic(fmt.Sprintf("entity: repair must be positive, got %d", p))
	}
	e.hitPoints += p
}

// Destroy 生命值归零
func (e *Entity) Destroy() {
	e.hitPoints = 0
}

// Remove 请求移除；具体角色会覆盖它以取消死亡动画
func (e *Entity) Remove() {
	e.Destroy()
}

// Velocity 当前速度
func (e *Entity) Velocity() types.Vec2 {
	return e.velocity
}

// SetVelocity 设置速度
func (e *Entity) SetVelocity(v types.Vec2) {
	e.velocity = v
}

// Accelerate 在当前速度上叠加 v
func (e *Entity) Accelerate(v types.Vec2) {
	e.velocity = e.velocity.Add(v)
}

// MaxSpeed 最大移动速度（像素每秒）
func (e *Entity) MaxSpeed() float64 {
	return e.maxSpeed
}

// SetMaxSpeed 设置最大移动速度
func (e *Entity) SetMaxSpeed(speed float64) {
	e.maxSpeed = speed
}

// SetMovementPattern 设置巡游路线，nil 表示没有路线
func (e *Entity) SetMovementPattern(p *MovementPattern) {
	e.pattern = p
}

// FollowPattern 按巡游路线推进并设置速度，没有配置路线时什么都不做
func (e *Entity) FollowPattern(dt, speed float64) {
	if e.pattern == nil {
		return
	}
	if v, ok := e.pattern.Advance(dt, speed); ok {
		e.velocity = v
	}
}

func (e *Entity) Category() types.Category {
	return e.category
}

func (e *Entity) IsDestroyed() bool {
	return e.hitPoints <= 0
}

func (e *Entity) IsMarkedForRemoval() bool {
	return e.IsDestroyed()
}

func (e *Entity) BoundingBox() types.Rect {
	return types.Rect{}
}

func (e *Entity) DrawCurrent(*ebiten.Image, ebiten.GeoM) {}

// UpdateCurrent 积分位置：position += velocity * dt
func (e *Entity) UpdateCurrent(dt float64, _ *command.Queue) {
	e.Position = e.Position.Add(e.velocity.Scale(dt))
}

// ReceiveCommand 处理所有实体通用的命令
func (e *Entity) ReceiveCommand(cmd command.Command, _ float64) {
	e.HandleCommand(e, cmd)
}

// Removable 具体角色的移除接口，由 HandleCommand 用于越界移除
type Removable interface {
	Remove()
	BoundingBox() types.Rect
}

// HandleCommand 处理移动和越界移除命令
// self 是具体角色（用于回调它覆盖过的 Remove 和 BoundingBox）
// 返回是否已处理
func (e *Entity) HandleCommand(self Removable, cmd command.Command) bool {
	switch cmd.Kind {
	case command.KindMove:
		e.Accelerate(cmd.Direction.Scale(e.maxSpeed))
		return true
	case command.KindDespawnOutside:
		if !cmd.Bounds.Intersects(self.BoundingBox()) {
			self.Remove()
		}
		return true
	}
	return false
}
