// Package world 驱动一帧的模拟流程：刷怪、命令派发、碰撞结算、清理、状态推进、镜头和计分
package world

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/actor"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// BackgroundTexture 背景贴图资源ID
const BackgroundTexture = "IMAGE_GRAVEYARD"

// 场景层，按绘制顺序
const (
	LayerBackground = iota
	LayerLowerGround
	LayerGround
	layerCount
)

// Options World 的构造参数
type Options struct {
	Config   config.WorldConfig
	Table    *config.ActorTable    // 必填，已校验
	Textures actor.TextureProvider // 可以为 nil
	Sounds   scene.SoundPlayer     // 可以为 nil
	HUDFace  text.Face             // 可以为 nil
	Rand     *rand.Rand            // 为 nil 时按 Config.Seed 创建
	Logger   *zap.Logger           // 为 nil 时不输出日志
}

// World 拥有场景图、命令队列、刷怪计时和计分状态
type World struct {
	cfg    config.WorldConfig
	log    *zap.Logger
	rng    *rand.Rand
	sounds scene.SoundPlayer

	factory *actor.Factory
	root    *scene.Node
	layers  [layerCount]*actor.Layer
	queue   *command.Queue

	detector scene.Detector
	pairs    *scene.PairSet

	viewCenter types.Vec2
	viewSize   types.Vec2

	// player 非拥有引用，玩家只在重开一局时随整个 World 一起丢弃
	player  *actor.Player
	enemies []*actor.Hostile

	spawnPoints []types.Vec2
	spawnTimer  float64
	groanTimer  float64

	hostileWeights []int
	totalWeight    int

	score      int
	multiplier int
	hud        *hud

	gameOverLogged bool
}

// New 创建战场
// 参数:
//   - opts: 构造参数，Table 必填
//
// 返回:
//   - *World: 已放置玩家和背景的战场
//   - error: 参数不合法时返回错误
func New(opts Options) (*World, error) {
	if opts.Table == nil {
		return nil, errors.New("world: actor table is required")
	}
	if opts.Config.ViewWidth <= 0 || opts.Config.ViewHeight <= 0 {
		return nil, fmt.Errorf("world: invalid view size %vx%v", opts.Config.ViewWidth, opts.Config.ViewHeight)
	}
	if opts.Config.SpawnDelay <= 0 || opts.Config.GroanInterval <= 0 {
		return nil, fmt.Errorf("world: spawn delay and groan interval must be positive")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(opts.Config.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	factory, err := actor.NewFactory(opts.Table, opts.Textures, opts.HUDFace, rng)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w := &World{
		cfg:         opts.Config,
		log:         log.Named("world"),
		rng:         rng,
		sounds:      opts.Sounds,
		factory:     factory,
		root:        scene.NewNode(),
		queue:       command.NewQueue(),
		pairs:       scene.NewPairSet(),
		viewSize:    types.Vec2{X: opts.Config.ViewWidth, Y: opts.Config.ViewHeight},
		spawnPoints: make([]types.Vec2, 0, 4),
		multiplier:  1,
		hud:         newHUD(opts.HUDFace),
	}
	w.viewCenter = w.viewSize.Scale(0.5)

	for _, k := range types.AllHostileKinds {
		weight := opts.Table.Hostile(k).Weight
		w.hostileWeights = append(w.hostileWeights, weight)
		w.totalWeight += weight
	}
	if w.totalWeight <= 0 {
		return nil, errors.New("world: at least one hostile kind needs a positive weight")
	}

	w.buildScene(opts.Textures)
	w.updateSpawnPoints()
	w.hud.update(w.score, w.multiplier)

	w.log.Info("world created",
		zap.Float64("viewWidth", w.viewSize.X),
		zap.Float64("viewHeight", w.viewSize.Y),
		zap.Int("enemyCap", w.cfg.EnemyCap))
	return w, nil
}

// buildScene 建立场景层、背景、声音节点和玩家
func (w *World) buildScene(textures actor.TextureProvider) {
	for i := range w.layers {
		if i == LayerGround {
			w.layers[i] = actor.NewGroundLayer(w.factory)
		} else {
			w.layers[i] = actor.NewLayer()
		}
		w.root.AttachChild(w.layers[i].Node)
	}

	var tex *ebiten.Image
	if textures != nil {
		tex = textures.Texture(BackgroundTexture)
	}
	bg := scene.NewSpriteNode(tex, image.Rectangle{})
	bg.Position = types.Vec2{X: 0, Y: -w.cfg.BattlefieldMargin}
	bg.SetTiled(w.viewSize.X, w.viewSize.Y+w.cfg.BattlefieldMargin)
	w.layers[LayerBackground].AttachChild(bg.Node)

	w.root.AttachChild(scene.NewSoundNode(w.sounds).Node)

	w.player = w.factory.NewPlayer(types.PlayerDefault)
	w.player.Position = w.viewCenter
	w.layers[LayerGround].AttachChild(w.player.Node)
}

// Update 推进一帧
func (w *World) Update(dt float64) {
	// 1. 刷怪点
	w.updateSpawnPoints()

	// 2. 镜头滚动，玩家速度每帧由输入命令重新累加
	w.viewCenter.Y += w.cfg.ScrollSpeed * dt
	w.player.SetVelocity(types.Vec2{})

	// 3. 越界子弹
	w.queue.Push(command.DespawnOutside(types.CategoryProjectile, w.BattlefieldBounds()))

	// 4. 派发本帧开始时已在队列中的命令
	w.dispatchCommands(dt)

	// 5. 斜向移动归一化
	w.adaptPlayerVelocity()

	// 6. 碰撞
	w.handleCollisions(dt)

	// 7. 清理
	w.root.RemoveWrecks()

	// 8. 刷怪
	w.spawnEnemies(dt)

	// 9. 场景图更新
	w.root.Update(dt, w.queue)

	// 10. 玩家不能离开视野
	w.adaptPlayerPosition()

	// 11. 音效
	if w.sounds != nil {
		w.sounds.SetListenerPosition(w.player.WorldPosition())
		w.sounds.RemoveStoppedSounds()
	}

	// 12. 计分显示
	w.hud.update(w.score, w.multiplier)

	// 13. 敌人追踪玩家
	w.steerEnemies(dt)

	// 14. 环境音效
	w.updateGroans(dt)

	if !w.HasAlivePlayer() && !w.gameOverLogged {
		w.gameOverLogged = true
		w.log.Info("player died", zap.Int("score", w.score), zap.Int("multiplier", w.multiplier))
	}
}

// dispatchCommands 只处理派发开始时队列中已有的命令，派发过程中新推入的命令留到下一帧
func (w *World) dispatchCommands(dt float64) {
	for n := w.queue.Len(); n > 0; n-- {
		cmd, err := w.queue.Pop()
		if err != nil {
			return
		}
		w.root.OnCommand(cmd, dt)
	}
}

func (w *World) adaptPlayerVelocity() {
	v := w.player.Velocity()
	if v.X != 0 && v.Y != 0 {
		w.player.SetVelocity(v.Scale(1 / math.Sqrt2))
	}
}

func (w *World) adaptPlayerPosition() {
	view := w.View()
	border := w.cfg.BorderDistance
	pos := w.player.Position
	pos.X = math.Max(pos.X, view.Left+border)
	pos.X = math.Min(pos.X, view.Right()-border)
	pos.Y = math.Max(pos.Y, view.Top+border)
	pos.Y = math.Min(pos.Y, view.Bottom()-border)
	w.player.Position = pos
}

// steerEnemies 存活的敌人沿主轴方向追向玩家，死亡的停下并移出敌人列表
// 玩家死亡后改为沿巡游路线游荡
func (w *World) steerEnemies(dt float64) {
	target := w.player.WorldPosition()
	alive := w.HasAlivePlayer()

	kept := w.enemies[:0]
	for _, h := range w.enemies {
		if h.IsDestroyed() {
			h.SetVelocity(types.Vec2{})
			continue
		}
		kept = append(kept, h)

		if !alive {
			h.FollowPattern(dt, h.MaxSpeed())
			continue
		}
		h.SetVelocity(steer(h.WorldPosition(), target, h.MaxSpeed()))
	}
	clear(w.enemies[len(kept):])
	w.enemies = kept
}

// steer 从 from 指向 to 的单位向量去掉较小的分量后乘以 speed，分量相等时保留纵向
func steer(from, to types.Vec2, speed float64) types.Vec2 {
	dir := to.Sub(from).Unit()
	if math.Abs(dir.X) > math.Abs(dir.Y) {
		dir.Y = 0
	} else {
		dir.X = 0
	}
	return dir.Scale(speed)
}

func (w *World) updateGroans(dt float64) {
	w.groanTimer += dt
	for w.groanTimer >= w.cfg.GroanInterval {
		w.groanTimer -= w.cfg.GroanInterval
		effect := types.ZombieGroans[w.rng.IntN(len(types.ZombieGroans))]
		w.queue.Push(command.PlaySound(effect, w.player.WorldPosition()))
	}
}

// Draw 通过镜头绘制场景图，再绘制计分
func (w *World) Draw(dst *ebiten.Image) {
	view := w.View()
	var cam ebiten.GeoM
	cam.Translate(-view.Left, -view.Top)
	if b := dst.Bounds(); b.Dx() > 0 && b.Dy() > 0 {
		cam.Scale(float64(b.Dx())/view.Width, float64(b.Dy())/view.Height)
	}
	w.root.Draw(dst, cam)
	w.hud.draw(dst)
}

// HasAlivePlayer 玩家是否存活
func (w *World) HasAlivePlayer() bool {
	return !w.player.IsDestroyed()
}

// Commands 命令队列，外部输入层通过它推送玩家命令
func (w *World) Commands() *command.Queue {
	return w.queue
}

// Player 玩家
func (w *World) Player() *actor.Player {
	return w.player
}

// Score 当前得分
func (w *World) Score() int {
	return w.score
}

// Multiplier 当前倍率
func (w *World) Multiplier() int {
	return w.multiplier
}

// ScoreText 计分文本
func (w *World) ScoreText() string {
	return w.hud.score.String()
}

// MultiplierText 倍率文本
func (w *World) MultiplierText() string {
	return w.hud.multiplier.String()
}

// ActiveEnemies 存活敌人数量
func (w *World) ActiveEnemies() int {
	return len(w.enemies)
}

// View 当前镜头范围（世界坐标）
func (w *World) View() types.Rect {
	return types.Rect{
		Left:   w.viewCenter.X - w.viewSize.X/2,
		Top:    w.viewCenter.Y - w.viewSize.Y/2,
		Width:  w.viewSize.X,
		Height: w.viewSize.Y,
	}
}

// BattlefieldBounds 子弹有效范围：视野向上延伸 BattlefieldMargin
func (w *World) BattlefieldBounds() types.Rect {
	b := w.View()
	b.Top -= w.cfg.BattlefieldMargin
	b.Height += w.cfg.BattlefieldMargin
	return b
}

// SpawnPoints 当前刷怪点（只读）
func (w *World) SpawnPoints() []types.Vec2 {
	return w.spawnPoints
}

// Root 场景图根节点
func (w *World) Root() *scene.Node {
	return w.root
}

// Layer 返回指定场景层
func (w *World) Layer(i int) *actor.Layer {
	return w.layers[i]
}
