package config

import (
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/types"
)

func walk(texture string, w, h, frames int, duration float64) AnimationData {
	return AnimationData{Texture: texture, FrameWidth: w, FrameHeight: h, Frames: frames, Duration: duration, Repeat: true}
}

func still(texture string, w, h int) AnimationData {
	return AnimationData{Texture: texture, FrameWidth: w, FrameHeight: h, Frames: 1, Duration: 1, Repeat: true}
}

// FixtureActorTable 返回与 data/actors.yaml 数值一致的数据表
// 供测试和无资源的工具程序使用
func FixtureActorTable() *ActorTable {
	return &ActorTable{
		Players: map[types.PlayerKind]PlayerData{
			types.PlayerDefault: {
				HitPoints:    100,
				Speed:        200,
				FireInterval: 1,
				Ammo:         250,
				Projectile:   types.ProjectileAlliedBullet,
				Size:         [2]float64{48, 64},
				Hitbox:       types.RectAdjust{Left: 12, Top: 12, Width: -20, Height: -20},
				Walk: DirectionalAnimations{
					Up:    walk("IMAGE_PLAYER_WALK_UP", 27, 39, 7, 1.5),
					Left:  walk("IMAGE_PLAYER_WALK_LEFT", 30, 39, 7, 1.5),
					Down:  walk("IMAGE_PLAYER_WALK_DOWN", 26, 39, 7, 1.5),
					Right: walk("IMAGE_PLAYER_WALK_RIGHT", 30, 39, 7, 1.5),
				},
				Idle: DirectionalAnimations{
					Up:    still("IMAGE_PLAYER_IDLE_UP", 27, 39),
					Left:  still("IMAGE_PLAYER_IDLE_LEFT", 30, 39),
					Down:  still("IMAGE_PLAYER_IDLE_DOWN", 26, 39),
					Right: still("IMAGE_PLAYER_IDLE_RIGHT", 30, 39),
				},
				Death: &AnimationData{Texture: "IMAGE_PLAYER_DEATH", FrameWidth: 35, FrameHeight: 39, Frames: 4, Duration: 1},
			},
		},
		Hostiles: map[types.HostileKind]HostileData{
			types.HostileZombie: {
				HitPoints:      100,
				Speed:          50,
				AttackInterval: 1,
				Damage:         1,
				Weight:         9,
				Size:           [2]float64{33, 45},
				Hitbox:         types.RectAdjust{Left: -15, Top: -20},
				Walk: DirectionalAnimations{
					Up:    walk("IMAGE_ZOMBIE_WALK_UP", 33, 45, 3, 0.5),
					Left:  walk("IMAGE_ZOMBIE_WALK_LEFT", 33, 45, 3, 0.5),
					Down:  walk("IMAGE_ZOMBIE_WALK_DOWN", 33, 45, 3, 0.5),
					Right: walk("IMAGE_ZOMBIE_WALK_RIGHT", 33, 45, 3, 0.5),
				},
				Death: &AnimationData{Texture: "IMAGE_ZOMBIE_DEATH", FrameWidth: 40, FrameHeight: 45, Frames: 3, Duration: 1.5},
				Directions: []entity.Direction{
					{Angle: 45, Distance: 80},
					{Angle: -45, Distance: 160},
					{Angle: 45, Distance: 80},
				},
			},
			types.HostileSkeleton: {
				HitPoints:      400,
				Speed:          100,
				AttackInterval: 1,
				Damage:         5,
				Weight:         1,
				Size:           [2]float64{40, 52},
				Walk: DirectionalAnimations{
					Up:    walk("IMAGE_SKELETON_WALK_UP", 40, 52, 4, 0.6),
					Left:  walk("IMAGE_SKELETON_WALK_LEFT", 40, 52, 4, 0.6),
					Down:  walk("IMAGE_SKELETON_WALK_DOWN", 40, 52, 4, 0.6),
					Right: walk("IMAGE_SKELETON_WALK_RIGHT", 40, 52, 4, 0.6),
				},
			},
		},
		Projectiles: map[types.ProjectileKind]ProjectileData{
			types.ProjectileAlliedBullet: {Damage: 50, Speed: 1500, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{175, 64, 3, 14}}},
			types.ProjectileEnemyBullet:  {Damage: 10, Speed: 300, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{175, 64, 3, 14}}},
			types.ProjectileMissile:      {Damage: 200, Speed: 200, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{160, 64, 15, 24}}},
		},
		Pickups: map[types.PickupKind]PickupData{
			types.PickupHealthRefill: {Effect: EffectRepair, Amount: 25, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{0, 64, 40, 40}}},
			types.PickupAmmoRefill:   {Effect: EffectAmmo, Amount: 3, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{40, 64, 40, 40}}},
			types.PickupFireSpread:   {Effect: EffectFireSpread, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{80, 64, 40, 40}}},
			types.PickupFireRate:     {Effect: EffectFireRate, Sprite: SpriteData{Texture: "IMAGE_ENTITIES", Region: [4]int{120, 64, 40, 40}}},
		},
		Particles: map[types.ParticleKind]ParticleData{
			types.ParticleBlood: {Color: [3]uint8{255, 255, 50}, Lifetime: 0.6},
			types.ParticleSmoke: {Color: [3]uint8{50, 50, 50}, Lifetime: 4},
		},
	}
}
