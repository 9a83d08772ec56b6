package world

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/decker502/graveyard/pkg/actor"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/config"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

const frame = 1.0 / 60

var _ scene.SoundPlayer = (*recordingSounds)(nil)

type recordingSounds struct {
	played   []types.SoundEffect
	listener types.Vec2
	pruned   int
}

func (r *recordingSounds) Play(e types.SoundEffect, _ types.Vec2) { r.played = append(r.played, e) }
func (r *recordingSounds) SetListenerPosition(pos types.Vec2)    { r.listener = pos }
func (r *recordingSounds) RemoveStoppedSounds()                  { r.pruned++ }

func (r *recordingSounds) count(e types.SoundEffect) int {
	n := 0
	for _, p := range r.played {
		if p == e {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T, tune func(*config.WorldConfig)) (*World, *recordingSounds) {
	t.Helper()
	cfg := config.DefaultAppConfig().World
	if tune != nil {
		tune(&cfg)
	}
	sounds := &recordingSounds{}
	w, err := New(Options{
		Config: cfg,
		Table:  config.FixtureActorTable(),
		Sounds: sounds,
		Rand:   rand.New(rand.NewPCG(7, 11)),
		Logger: zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return w, sounds
}

func run(w *World, frames int) {
	for i := 0; i < frames; i++ {
		w.Update(frame)
	}
}

func projectiles(w *World) []*actor.Projectile {
	var out []*actor.Projectile
	for _, c := range w.Layer(LayerGround).Children() {
		if p, ok := c.Hooks().(*actor.Projectile); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestNewRequiresTable(t *testing.T) {
	_, err := New(Options{Config: config.DefaultAppConfig().World})
	assert.Error(t, err)

	cfg := config.DefaultAppConfig().World
	cfg.ViewWidth = 0
	_, err = New(Options{Config: cfg, Table: config.FixtureActorTable()})
	assert.Error(t, err)
}

func TestNewPlacesPlayerAtViewCenter(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	assert.True(t, w.HasAlivePlayer())
	assert.Equal(t, types.Vec2{X: 840, Y: 525}, w.Player().Position)
	assert.Equal(t, 1, w.Multiplier())
	assert.Equal(t, "Score 0", w.ScoreText())
	assert.Equal(t, "X 1", w.MultiplierText())
}

// 僵尸攻击间隔 1 秒、伤害 1，三次相隔 2 秒的接触各命中一次
func TestZombieMeleeThreeEncounters(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 1 })
	z := w.SpawnHostile(types.HostileZombie, w.Player().Position)

	for encounter := 0; encounter < 3; encounter++ {
		z.Position = w.Player().Position
		run(w, 70)
		assert.Equal(t, 100-(encounter+1), w.Player().HitPoints(), "encounter %d", encounter)

		z.Position = w.Player().Position.Add(types.Vec2{X: 600})
		run(w, 50)
	}

	assert.Equal(t, 97, w.Player().HitPoints())
	assert.Equal(t, "HP 97", w.Player().HealthText())
}

// 两发 50 伤害的子弹击杀 100 血的僵尸，只在死亡那一次计分
func TestTwoBulletsKillZombieOnce(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 1 })
	z := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 300, Y: 300})

	q := w.Commands()
	q.Push(command.SpawnProjectile(types.ProjectileAlliedBullet, z.Position, types.Vec2{}, 0))
	q.Push(command.SpawnProjectile(types.ProjectileAlliedBullet, z.Position, types.Vec2{}, 0))
	w.Update(frame)

	assert.Equal(t, 0, z.HitPoints())
	assert.Equal(t, actor.StateDead, z.State())
	assert.Equal(t, 200, w.Score())
	assert.Equal(t, 2, w.Multiplier())
	assert.Equal(t, "Score 200", w.ScoreText())
	assert.Equal(t, "X 2", w.MultiplierText())
	assert.Equal(t, 0, w.ActiveEnemies())

	run(w, 10)
	assert.Equal(t, 200, w.Score())
	assert.Equal(t, 2, w.Multiplier())
	assert.Empty(t, projectiles(w))
}

func TestKillScoreUsesMultiplier(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	w.multiplier = 5
	w.score = 1000
	z := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 200, Y: 200})
	z.Damage(99)

	w.Commands().Push(command.SpawnProjectile(types.ProjectileAlliedBullet, z.Position, types.Vec2{}, 0))
	w.Update(frame)

	assert.Equal(t, 2000, w.Score())
	assert.Equal(t, 6, w.Multiplier())
	assert.Equal(t, "Score 2,000", w.ScoreText())
}

func TestDiagonalVelocityNormalized(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	start := w.Player().Position

	w.Commands().Push(command.Move(types.CategoryPlayer, 1, 1))
	w.Update(0.1)

	v := w.Player().Velocity()
	assert.InDelta(t, 200.0, v.Length(), 1e-9)
	assert.InDelta(t, v.X, v.Y, 1e-9)
	moved := w.Player().Position.Sub(start)
	assert.InDelta(t, 20.0, moved.Length(), 1e-9)
}

func TestAxisAlignedVelocityUnchanged(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	w.Commands().Push(command.Move(types.CategoryPlayer, -1, 0))
	w.Update(0.1)
	assert.Equal(t, types.Vec2{X: -200}, w.Player().Velocity())
}

func TestSpawnCapSuppressesAndResumes(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) {
		c.SpawnDelay = 1
		c.EnemyCap = 3
	})

	for i := 0; i < 300; i++ {
		w.Update(frame)
		require.LessOrEqual(t, w.ActiveEnemies(), 3)
	}
	require.Equal(t, 3, w.ActiveEnemies())

	w.enemies[0].Destroy()
	w.Update(frame)
	assert.Equal(t, 2, w.ActiveEnemies())

	run(w, 75)
	assert.Equal(t, 3, w.ActiveEnemies())
}

func TestSpawnPointsFollowView(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	want := []types.Vec2{
		{X: -50, Y: 525},
		{X: 840, Y: -50},
		{X: 1730, Y: 525},
		{X: 840, Y: 1100},
	}
	assert.Equal(t, want, w.SpawnPoints())
}

func TestCommandsPushedDuringFrameWaitForNextDrain(t *testing.T) {
	w, sounds := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })

	w.Commands().Push(command.Fire())
	w.Update(frame)
	assert.Empty(t, projectiles(w), "玩家更新时推入的生成命令下一帧才处理")
	assert.Equal(t, 0, sounds.count(types.SoundPistolShot))

	w.Update(frame)
	assert.Len(t, projectiles(w), 1)
	assert.Equal(t, 1, sounds.count(types.SoundPistolShot))
}

func TestProjectilesOutsideBattlefieldRemoved(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	w.Commands().Push(command.SpawnProjectile(types.ProjectileAlliedBullet, types.Vec2{X: 100, Y: 100}, types.Vec2{Y: -1500}, 0))

	w.Update(frame)
	require.Len(t, projectiles(w), 1)

	// 1500 像素每秒，0.2 秒后越过战场上边界（视野上方 100 像素）
	run(w, 15)
	assert.Empty(t, projectiles(w))
}

func TestPlayerCollectsPickup(t *testing.T) {
	w, sounds := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	w.Commands().Push(command.SpawnPickup(types.PickupAmmoRefill, w.Player().Position))

	w.Update(frame)
	assert.Equal(t, 253, w.Player().Ammo())

	w.Update(frame)
	assert.Equal(t, 1, sounds.count(types.SoundCollectPickup))
	for _, c := range w.Layer(LayerGround).Children() {
		_, isPickup := c.Hooks().(*actor.Pickup)
		assert.False(t, isPickup, "道具被拾取后清除")
	}
}

func TestPlayerClampedToView(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	w.Player().Position = types.Vec2{X: -500, Y: 5000}
	w.Update(frame)
	assert.Equal(t, types.Vec2{X: 40, Y: 1010}, w.Player().Position)
}

func TestEnemySteeringIsAxisLocked(t *testing.T) {
	tests := []struct {
		name string
		from types.Vec2
		to   types.Vec2
		want types.Vec2
	}{
		{"纵向为主", types.Vec2{}, types.Vec2{X: 30, Y: 40}, types.Vec2{Y: 40}},
		{"横向为主", types.Vec2{}, types.Vec2{X: -40, Y: 30}, types.Vec2{X: -40}},
		{"纯纵向", types.Vec2{}, types.Vec2{Y: -80}, types.Vec2{Y: -50}},
		{"相等时纵向", types.Vec2{}, types.Vec2{X: 10, Y: 10}, types.Vec2{Y: 50 / math.Sqrt2}},
		{"重合", types.Vec2{X: 5, Y: 5}, types.Vec2{X: 5, Y: 5}, types.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := steer(tt.from, tt.to, 50)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestEnemiesChasePlayer(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	z := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 240, Y: 525})
	w.Update(frame)
	assert.Equal(t, 0.0, z.Velocity().Y)
	assert.InDelta(t, 50.0, z.Velocity().X, 1e-9)
}

func TestMatchesCategorySwaps(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	z := w.SpawnHostile(types.HostileZombie, types.Vec2{})
	a, b := z.Node, w.Player().Node

	require.True(t, matchesCategory(&a, &b, types.CategoryPlayer, types.CategoryHostile))
	assert.Same(t, w.Player().Node, a)
	assert.Same(t, z.Node, b)

	c, d := z.Node, w.Player().Node
	assert.False(t, matchesCategory(&c, &d, types.CategoryPickup, types.CategoryHostile))
	assert.Same(t, z.Node, c, "不匹配时不交换")
}

func TestHostilesNudgedApart(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	a := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 200, Y: 200})
	b := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 201, Y: 200})
	before := a.Position.Add(b.Position)

	w.handleCollisions(frame)
	after := a.Position.Add(b.Position)
	assert.NotEqual(t, before, after)
}

func TestGameOverAndWander(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	z := w.SpawnHostile(types.HostileZombie, types.Vec2{X: 200, Y: 200})

	w.Player().Damage(100)
	w.Update(frame)
	assert.False(t, w.HasAlivePlayer())

	// 玩家死亡后僵尸沿巡游路线 45 度方向移动
	v := z.Velocity()
	assert.InDelta(t, 50.0, v.Length(), 1e-9)
	assert.InDelta(t, v.X, v.Y, 1e-9)
}

func TestAmbientGroans(t *testing.T) {
	w, sounds := newTestWorld(t, func(c *config.WorldConfig) {
		c.EnemyCap = 0
		c.GroanInterval = 0.5
	})
	run(w, 45)

	groans := 0
	for _, g := range types.ZombieGroans {
		groans += sounds.count(g)
	}
	assert.Equal(t, 1, groans)
	assert.Greater(t, sounds.pruned, 0)
	assert.Equal(t, w.Player().WorldPosition(), sounds.listener)
}

func TestRemoveWrecksKeepsPlayerWhileAlive(t *testing.T) {
	w, _ := newTestWorld(t, func(c *config.WorldConfig) { c.EnemyCap = 0 })
	run(w, 5)
	found := false
	for _, c := range w.Layer(LayerGround).Children() {
		if c == w.Player().Node {
			found = true
		}
	}
	assert.True(t, found)
}
