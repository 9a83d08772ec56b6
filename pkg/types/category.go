package types

// Category 是场景节点的类别位掩码
// 用于命令路由（Command 只投递给类别相交的节点）和碰撞分类
type Category uint32

const (
	// CategoryNone 无类别（纯装饰节点，如背景图层）
	CategoryNone Category = 0
	// CategoryScene 场景根节点
	CategoryScene Category = 1 << iota
	// CategoryGroundLayer 地面图层，接收生成类命令（子弹、道具、粒子）
	CategoryGroundLayer
	// CategoryPlayer 玩家
	CategoryPlayer
	// CategoryZombie 僵尸（近战敌人）
	CategoryZombie
	// CategorySkeleton 骷髅王（近战敌人）
	CategorySkeleton
	// CategoryPickup 可拾取道具
	CategoryPickup
	// CategoryAlliedProjectile 玩家发射的子弹
	CategoryAlliedProjectile
	// CategoryEnemyProjectile 敌方子弹
	CategoryEnemyProjectile
	// CategorySoundEffect 音效节点，接收播放音效命令
	CategorySoundEffect
	// CategoryParticle 粒子（装饰，不参与碰撞）
	CategoryParticle
)

const (
	// CategoryHostile 所有近战敌人
	CategoryHostile = CategoryZombie | CategorySkeleton
	// CategoryProjectile 所有子弹
	CategoryProjectile = CategoryAlliedProjectile | CategoryEnemyProjectile
)

// Has 判断两个类别掩码是否有交集
func (c Category) Has(mask Category) bool {
	return c&mask != 0
}
