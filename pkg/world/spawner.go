package world

import (
	"go.uber.org/zap"

	"github.com/decker502/graveyard/pkg/actor"
	"github.com/decker502/graveyard/pkg/types"
)

// updateSpawnPoints 在视野四边外侧 SpawnMargin 处各放一个刷怪点
func (w *World) updateSpawnPoints() {
	view := w.View()
	m := w.cfg.SpawnMargin
	cx, cy := view.Left+view.Width/2, view.Top+view.Height/2

	w.spawnPoints = append(w.spawnPoints[:0],
		types.Vec2{X: view.Left - m, Y: cy},
		types.Vec2{X: cx, Y: view.Top - m},
		types.Vec2{X: view.Right() + m, Y: cy},
		types.Vec2{X: cx, Y: view.Bottom() + m},
	)
}

// spawnEnemies 每隔 SpawnDelay 尝试刷一个敌人，数量达到上限时本次跳过
func (w *World) spawnEnemies(dt float64) {
	w.spawnTimer += dt
	for w.spawnTimer >= w.cfg.SpawnDelay {
		w.spawnTimer -= w.cfg.SpawnDelay
		if len(w.enemies) >= w.cfg.EnemyCap || len(w.spawnPoints) == 0 {
			continue
		}
		pos := w.spawnPoints[w.rng.IntN(len(w.spawnPoints))]
		w.SpawnHostile(w.pickHostileKind(), pos)
	}
}

// pickHostileKind 按权重随机选择敌人类型
func (w *World) pickHostileKind() types.HostileKind {
	r := w.rng.IntN(w.totalWeight)
	for i, weight := range w.hostileWeights {
		if r < weight {
			return types.AllHostileKinds[i]
		}
		r -= weight
	}
	return types.AllHostileKinds[0]
}

// SpawnHostile 在 pos 处放置一个敌人并加入追踪列表
func (w *World) SpawnHostile(kind types.HostileKind, pos types.Vec2) *actor.Hostile {
	h := w.factory.NewHostile(kind)
	h.Position = pos
	w.layers[LayerGround].AttachChild(h.Node)
	w.enemies = append(w.enemies, h)

	w.log.Debug("hostile spawned",
		zap.String("kind", string(kind)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Int("active", len(w.enemies)))
	return h
}
