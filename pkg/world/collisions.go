package world

import (
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/actor"
	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/scene"
	"github.com/decker502/graveyard/pkg/types"
)

// killScore 每次击杀的基础分
const killScore = 200

// matchesCategory 判断节点对是否属于 (t1, t2) 类别组合
// 匹配时把 a、b 调整为依次对应 t1、t2
func matchesCategory(a, b **scene.Node, t1, t2 types.Category) bool {
	c1, c2 := (*a).Hooks().Category(), (*b).Hooks().Category()
	if c1.Has(t1) && c2.Has(t2) {
		return true
	}
	if c1.Has(t2) && c2.Has(t1) {
		*a, *b = *b, *a
		return true
	}
	return false
}

// handleCollisions 检测并结算本帧的碰撞
// 节点对按插入顺序各自独立结算，已被摧毁的节点不再参与
func (w *World) handleCollisions(dt float64) {
	w.pairs.Reset()
	w.detector.Check(w.root, w.pairs)

	for _, pair := range w.pairs.Pairs() {
		a, b := pair.First, pair.Second
		if a.Hooks().IsDestroyed() || b.Hooks().IsDestroyed() {
			continue
		}

		switch {
		case matchesCategory(&a, &b, types.CategoryPlayer, types.CategoryHostile):
			player, ok1 := a.Hooks().(*actor.Player)
			hostile, ok2 := b.Hooks().(*actor.Hostile)
			if ok1 && ok2 {
				w.resolveMelee(player, hostile, dt)
			}

		case matchesCategory(&a, &b, types.CategoryPlayer, types.CategoryPickup):
			player, ok1 := a.Hooks().(*actor.Player)
			pickup, ok2 := b.Hooks().(*actor.Pickup)
			if ok1 && ok2 {
				pickup.Apply(player)
				pickup.Destroy()
				w.queue.Push(command.PlaySound(types.SoundCollectPickup, player.WorldPosition()))
			}

		case matchesCategory(&a, &b, types.CategoryHostile, types.CategoryAlliedProjectile):
			hostile, ok1 := a.Hooks().(*actor.Hostile)
			projectile, ok2 := b.Hooks().(*actor.Projectile)
			if ok1 && ok2 {
				w.resolveHit(hostile, projectile)
			}

		case matchesCategory(&a, &b, types.CategoryHostile, types.CategoryHostile):
			if h, ok := a.Hooks().(*actor.Hostile); ok {
				w.nudge(h)
			}
		}
	}
}

// resolveMelee 敌人停下攻击，攻击计时达到间隔时对玩家造成伤害
func (w *World) resolveMelee(player *actor.Player, hostile *actor.Hostile, dt float64) {
	hostile.SetVelocity(types.Vec2{})
	if hostile.Attack(dt) {
		player.Damage(hostile.AttackDamage())
	}
}

// resolveHit 子弹命中敌人；只在生命值由正变为非正的那一次计分
func (w *World) resolveHit(hostile *actor.Hostile, projectile *actor.Projectile) {
	wasAlive := !hostile.IsDestroyed()
	hostile.Damage(projectile.HitDamage())
	projectile.Destroy()

	if wasAlive && hostile.IsDestroyed() {
		if w.multiplier == 0 {
			w.score += killScore
		} else {
			w.score += killScore * w.multiplier
		}
		w.multiplier++
		hostile.HandleDeath(w.queue)
		w.log.Debug("hostile killed",
			zap.String("kind", string(hostile.Kind())),
			zap.Int("score", w.score),
			zap.Int("multiplier", w.multiplier))
	}
}

// nudge 按朝向把敌人推开一点，减少重叠（仅视觉效果）
func (w *World) nudge(h *actor.Hostile) {
	d := w.cfg.NudgeDistance
	switch h.State().Facing() {
	case actor.FacingLeft:
		h.Position.X += d
	case actor.FacingDown:
		h.Position.Y -= d
	case actor.FacingRight:
		h.Position.X -= d
	case actor.FacingUp:
		h.Position.Y += d
	}
}
