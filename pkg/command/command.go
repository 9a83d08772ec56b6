// Package command 实现场景图的命令派发：按类别掩码把动作投递给匹配的节点
//
// 命令是一个带标签的联合体（Kind + 载荷字段），接收节点用 switch 处理自己关心的种类，
// 不认识的种类直接忽略。构造函数负责固定目标类别，保证命令只会投递到能处理它的节点。
package command

import (
	"github.com/decker502/graveyard/pkg/types"
)

// Kind 命令种类
type Kind uint8

const (
	// KindMove 累加移动方向，接收者按自身最大速度缩放
	KindMove Kind = iota + 1
	// KindFire 设置开火意图
	KindFire
	// KindSpawnProjectile 在地面层生成子弹
	KindSpawnProjectile
	// KindSpawnPickup 在地面层生成道具
	KindSpawnPickup
	// KindSpawnParticle 在下层地面生成粒子
	KindSpawnParticle
	// KindPlaySound 在世界坐标播放音效
	KindPlaySound
	// KindDespawnOutside 包围盒离开 Bounds 时移除
	KindDespawnOutside
)

// String 返回命令种类名称（日志用）
func (k Kind) String() string {
	switch k {
	case KindMove:
		return "move"
	case KindFire:
		return "fire"
	case KindSpawnProjectile:
		return "spawnProjectile"
	case KindSpawnPickup:
		return "spawnPickup"
	case KindSpawnParticle:
		return "spawnParticle"
	case KindPlaySound:
		return "playSound"
	case KindDespawnOutside:
		return "despawnOutside"
	default:
		return "unknown"
	}
}

// Command 投递给场景节点的命令
// 仅当节点类别与 Category 相交时才会被处理
type Command struct {
	Category types.Category
	Kind     Kind

	// Direction KindMove 的方向（单位为最大速度的倍数）
	Direction types.Vec2
	// Position 生成或播放位置（世界坐标）
	Position types.Vec2
	// Velocity 生成物体的初速度
	Velocity types.Vec2
	// Rotation 生成物体的旋转角度（度）
	Rotation float64
	// Bounds KindDespawnOutside 的有效区域
	Bounds types.Rect

	Projectile types.ProjectileKind
	Pickup     types.PickupKind
	Particle   types.ParticleKind
	Sound      types.SoundEffect
}

// Move 创建移动命令
// 参数:
//   - target: 接收者类别（通常是 CategoryPlayer）
//   - dx, dy: 方向分量
func Move(target types.Category, dx, dy float64) Command {
	return Command{Category: target, Kind: KindMove, Direction: types.Vec2{X: dx, Y: dy}}
}

// Fire 创建开火命令，只投递给玩家
func Fire() Command {
	return Command{Category: types.CategoryPlayer, Kind: KindFire}
}

// SpawnProjectile 创建生成子弹的命令，由地面层处理
func SpawnProjectile(kind types.ProjectileKind, pos, vel types.Vec2, rotation float64) Command {
	return Command{
		Category:   types.CategoryGroundLayer,
		Kind:       KindSpawnProjectile,
		Projectile: kind,
		Position:   pos,
		Velocity:   vel,
		Rotation:   rotation,
	}
}

// SpawnPickup 创建生成道具的命令，由地面层处理
func SpawnPickup(kind types.PickupKind, pos types.Vec2) Command {
	return Command{
		Category: types.CategoryGroundLayer,
		Kind:     KindSpawnPickup,
		Pickup:   kind,
		Position: pos,
	}
}

// SpawnParticle 创建生成粒子的命令，由地面层处理
func SpawnParticle(kind types.ParticleKind, pos types.Vec2) Command {
	return Command{
		Category: types.CategoryGroundLayer,
		Kind:     KindSpawnParticle,
		Particle: kind,
		Position: pos,
	}
}

// PlaySound 创建播放音效命令，由声音节点处理
func PlaySound(effect types.SoundEffect, pos types.Vec2) Command {
	return Command{
		Category: types.CategorySoundEffect,
		Kind:     KindPlaySound,
		Sound:    effect,
		Position: pos,
	}
}

// DespawnOutside 创建越界移除命令
func DespawnOutside(target types.Category, bounds types.Rect) Command {
	return Command{Category: target, Kind: KindDespawnOutside, Bounds: bounds}
}
