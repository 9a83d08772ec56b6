package config

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/decker502/graveyard/pkg/embedded"
	"github.com/decker502/graveyard/pkg/entity"
	"github.com/decker502/graveyard/pkg/types"
)

// ErrMissingKind 角色数据表缺少某个枚举类型的条目
var ErrMissingKind = errors.New("actor table missing kind")

// AnimationData 帧条动画配置
type AnimationData struct {
	Texture     string  `yaml:"texture"`     // 贴图资源ID
	FrameWidth  int     `yaml:"frameWidth"`  // 单帧宽度
	FrameHeight int     `yaml:"frameHeight"` // 单帧高度
	Frames      int     `yaml:"frames"`      // 帧数
	Duration    float64 `yaml:"duration"`    // 一轮播放时长（秒）
	Repeat      bool    `yaml:"repeat"`      // 是否循环
}

// DirectionalAnimations 四个朝向各自的动画
type DirectionalAnimations struct {
	Up    AnimationData `yaml:"up"`
	Down  AnimationData `yaml:"down"`
	Left  AnimationData `yaml:"left"`
	Right AnimationData `yaml:"right"`
}

// SpriteData 贴图中的一块区域
type SpriteData struct {
	Texture string `yaml:"texture"`
	Region  [4]int `yaml:"region"` // x, y, w, h
}

// PlayerData 玩家属性
type PlayerData struct {
	HitPoints    int                   `yaml:"hitPoints"`
	Speed        float64               `yaml:"speed"`
	FireInterval float64               `yaml:"fireInterval"` // 开火间隔（秒），0 表示不能开火
	Ammo         int                   `yaml:"ammo"`
	Projectile   types.ProjectileKind  `yaml:"projectile"`
	Size         [2]float64            `yaml:"size"` // 碰撞盒基准尺寸（以位置为中心）
	Hitbox       types.RectAdjust      `yaml:"hitbox"`
	Walk         DirectionalAnimations `yaml:"walk"`
	Idle         DirectionalAnimations `yaml:"idle"`
	Death        *AnimationData        `yaml:"death"`
}

// HostileData 近战敌人属性
type HostileData struct {
	HitPoints      int                   `yaml:"hitPoints"`
	Speed          float64               `yaml:"speed"`
	AttackInterval float64               `yaml:"attackInterval"` // 攻击间隔（秒）
	Damage         int                   `yaml:"damage"`
	Weight         int                   `yaml:"weight"` // 刷怪权重
	Size           [2]float64            `yaml:"size"`
	Hitbox         types.RectAdjust      `yaml:"hitbox"`
	Walk           DirectionalAnimations `yaml:"walk"`
	Death          *AnimationData        `yaml:"death"` // 为空表示摧毁后立即移除
	Directions     []entity.Direction    `yaml:"directions"`
}

// ProjectileData 子弹属性
type ProjectileData struct {
	Damage int        `yaml:"damage"`
	Speed  float64    `yaml:"speed"`
	Sprite SpriteData `yaml:"sprite"`
}

// PickupEffect 道具效果
type PickupEffect string

const (
	EffectRepair     PickupEffect = "repair"
	EffectAmmo       PickupEffect = "ammo"
	EffectFireSpread PickupEffect = "fireSpread"
	EffectFireRate   PickupEffect = "fireRate"
)

// PickupData 道具属性
type PickupData struct {
	Effect PickupEffect `yaml:"effect"`
	Amount int          `yaml:"amount"`
	Sprite SpriteData   `yaml:"sprite"`
}

// ParticleData 粒子属性
type ParticleData struct {
	Color    [3]uint8 `yaml:"color"`
	Lifetime float64  `yaml:"lifetime"` // 秒
}

// ActorTable 全部角色类型的静态数据，启动时加载一次，之后只读
type ActorTable struct {
	Players     map[types.PlayerKind]PlayerData         `yaml:"players"`
	Hostiles    map[types.HostileKind]HostileData       `yaml:"hostiles"`
	Projectiles map[types.ProjectileKind]ProjectileData `yaml:"projectiles"`
	Pickups     map[types.PickupKind]PickupData         `yaml:"pickups"`
	Particles   map[types.ParticleKind]ParticleData     `yaml:"particles"`
}

// LoadActorTable 从 YAML 文件加载角色数据表并校验
// 参数：
//
//	path - 配置文件路径（data/ 前缀走嵌入资源，其它路径读磁盘）
//
// 返回：
//
//	*ActorTable - 校验通过的数据表
//	error - 读取、解析或校验失败
func LoadActorTable(path string) (*ActorTable, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read actor table %s: %w", path, err)
	}
	table, err := ParseActorTable(data)
	if err != nil {
		return nil, fmt.Errorf("actor table %s: %w", path, err)
	}
	return table, nil
}

// ParseActorTable 解析并校验 YAML 格式的角色数据表
func ParseActorTable(data []byte) (*ActorTable, error) {
	var table ActorTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateActorTable(&table); err != nil {
		return nil, fmt.Errorf("invalid actor table: %w", err)
	}
	return &table, nil
}

// validateActorTable 校验数据表覆盖了每一个枚举类型，且数值合法
func validateActorTable(t *ActorTable) error {
	for _, k := range types.AllPlayerKinds {
		p, ok := t.Players[k]
		if !ok {
			return fmt.Errorf("%w: player %q", ErrMissingKind, k)
		}
		if p.HitPoints <= 0 {
			return fmt.Errorf("player %s: hitPoints must be positive, got %d", k, p.HitPoints)
		}
		if p.Speed <= 0 {
			return fmt.Errorf("player %s: speed must be positive, got %v", k, p.Speed)
		}
		if p.FireInterval < 0 {
			return fmt.Errorf("player %s: fireInterval cannot be negative, got %v", k, p.FireInterval)
		}
		if p.Ammo < 0 {
			return fmt.Errorf("player %s: ammo cannot be negative, got %d", k, p.Ammo)
		}
		if _, ok := t.Projectiles[p.Projectile]; !ok {
			return fmt.Errorf("player %s: unknown projectile %q", k, p.Projectile)
		}
	}

	for _, k := range types.AllHostileKinds {
		h, ok := t.Hostiles[k]
		if !ok {
			return fmt.Errorf("%w: hostile %q", ErrMissingKind, k)
		}
		if h.HitPoints <= 0 {
			return fmt.Errorf("hostile %s: hitPoints must be positive, got %d", k, h.HitPoints)
		}
		if h.Speed <= 0 {
			return fmt.Errorf("hostile %s: speed must be positive, got %v", k, h.Speed)
		}
		if h.AttackInterval <= 0 {
			return fmt.Errorf("hostile %s: attackInterval must be positive, got %v", k, h.AttackInterval)
		}
		if h.Damage <= 0 {
			return fmt.Errorf("hostile %s: damage must be positive, got %d", k, h.Damage)
		}
		if h.Weight < 0 {
			return fmt.Errorf("hostile %s: weight cannot be negative, got %d", k, h.Weight)
		}
	}

	for _, k := range types.AllProjectileKinds {
		p, ok := t.Projectiles[k]
		if !ok {
			return fmt.Errorf("%w: projectile %q", ErrMissingKind, k)
		}
		if p.Damage <= 0 {
			return fmt.Errorf("projectile %s: damage must be positive, got %d", k, p.Damage)
		}
		if p.Speed <= 0 {
			return fmt.Errorf("projectile %s: speed must be positive, got %v", k, p.Speed)
		}
	}

	for _, k := range types.AllPickupKinds {
		p, ok := t.Pickups[k]
		if !ok {
			return fmt.Errorf("%w: pickup %q", ErrMissingKind, k)
		}
		switch p.Effect {
		case EffectRepair, EffectAmmo:
			if p.Amount <= 0 {
				return fmt.Errorf("pickup %s: amount must be positive for %s, got %d", k, p.Effect, p.Amount)
			}
		case EffectFireSpread, EffectFireRate:
		default:
			return fmt.Errorf("pickup %s: unknown effect %q", k, p.Effect)
		}
	}

	for _, k := range types.AllParticleKinds {
		p, ok := t.Particles[k]
		if !ok {
			return fmt.Errorf("%w: particle %q", ErrMissingKind, k)
		}
		if p.Lifetime <= 0 {
			return fmt.Errorf("particle %s: lifetime must be positive, got %v", k, p.Lifetime)
		}
	}

	return nil
}

// Player 返回玩家数据；数据表已在加载时校验，缺失说明调用方绕过了校验
func (t *ActorTable) Player(k types.PlayerKind) PlayerData {
	d, ok := t.Players[k]
	if !ok {
		panic(fmt.Sprintf("config: no player data for %q", k))
	}
	return d
}

// Hostile 返回敌人数据
func (t *ActorTable) Hostile(k types.HostileKind) HostileData {
	d, ok := t.Hostiles[k]
	if !ok {
		panic(fmt.Sprintf("config: no hostile data for %q", k))
	}
	return d
}

// Projectile 返回子弹数据
func (t *ActorTable) Projectile(k types.ProjectileKind) ProjectileData {
	d, ok := t.Projectiles[k]
	if !ok {
		panic(fmt.Sprintf("config: no projectile data for %q", k))
	}
	return d
}

// Pickup 返回道具数据
func (t *ActorTable) Pickup(k types.PickupKind) PickupData {
	d, ok := t.Pickups[k]
	if !ok {
		panic(fmt.Sprintf("config: no pickup data for %q", k))
	}
	return d
}

// Particle 返回粒子数据
func (t *ActorTable) Particle(k types.ParticleKind) ParticleData {
	d, ok := t.Particles[k]
	if !ok {
		panic(fmt.Sprintf("config: no particle data for %q", k))
	}
	return d
}

// HostileWeights 按 AllHostileKinds 顺序返回刷怪权重
func (t *ActorTable) HostileWeights() []int {
	weights := make([]int, len(types.AllHostileKinds))
	for i, k := range types.AllHostileKinds {
		weights[i] = t.Hostiles[k].Weight
	}
	return weights
}

// TextureIDs 数据表引用的全部贴图资源ID，去重并排序
func (t *ActorTable) TextureIDs() []string {
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" {
			seen[id] = true
		}
	}
	addDir := func(d DirectionalAnimations) {
		add(d.Up.Texture)
		add(d.Down.Texture)
		add(d.Left.Texture)
		add(d.Right.Texture)
	}

	for _, p := range t.Players {
		addDir(p.Walk)
		addDir(p.Idle)
		if p.Death != nil {
			add(p.Death.Texture)
		}
	}
	for _, h := range t.Hostiles {
		addDir(h.Walk)
		if h.Death != nil {
			add(h.Death.Texture)
		}
	}
	for _, p := range t.Projectiles {
		add(p.Sprite.Texture)
	}
	for _, p := range t.Pickups {
		add(p.Sprite.Texture)
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
