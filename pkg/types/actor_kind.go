package types

// PlayerKind 玩家类型
type PlayerKind string

// HostileKind 近战敌人类型（僵尸、骷髅王）
type HostileKind string

// ProjectileKind 子弹类型
type ProjectileKind string

// PickupKind 道具类型
type PickupKind string

// ParticleKind 粒子类型
type ParticleKind string

const (
	PlayerDefault PlayerKind = "player"
)

const (
	HostileZombie   HostileKind = "zombie"
	HostileSkeleton HostileKind = "skeleton"
)

const (
	ProjectileAlliedBullet ProjectileKind = "alliedBullet"
	ProjectileEnemyBullet  ProjectileKind = "enemyBullet"
	ProjectileMissile      ProjectileKind = "missile"
)

const (
	PickupHealthRefill PickupKind = "healthRefill"
	PickupAmmoRefill   PickupKind = "ammoRefill"
	PickupFireSpread   PickupKind = "fireSpread"
	PickupFireRate     PickupKind = "fireRate"
)

const (
	ParticleBlood ParticleKind = "blood"
	ParticleSmoke ParticleKind = "smoke"
)

// 以下列表用于启动时校验数据表是否覆盖了全部枚举值
// 新增类型时必须同时加入对应列表
var (
	AllPlayerKinds     = []PlayerKind{PlayerDefault}
	AllHostileKinds    = []HostileKind{HostileZombie, HostileSkeleton}
	AllProjectileKinds = []ProjectileKind{ProjectileAlliedBullet, ProjectileEnemyBullet, ProjectileMissile}
	AllPickupKinds     = []PickupKind{PickupHealthRefill, PickupAmmoRefill, PickupFireSpread, PickupFireRate}
	AllParticleKinds   = []ParticleKind{ParticleBlood, ParticleSmoke}
)
