package entity

import (
	"math"

	"github.com/decker502/graveyard/pkg/types"
)

// Direction 巡游路线中的一段：朝 Angle 方向（度，0 为向右，顺时针）走 Distance 像素
type Direction struct {
	Angle    float64 `yaml:"angle"`
	Distance float64 `yaml:"distance"`
}

// MovementPattern 沿一组方向循环移动
type MovementPattern struct {
	directions []Direction
	index      int
	travelled  float64
}

// NewMovementPattern 创建巡游路线，directions 为空时返回 nil
func NewMovementPattern(directions []Direction) *MovementPattern {
	if len(directions) == 0 {
		return nil
	}
	return &MovementPattern{directions: append([]Direction(nil), directions...)}
}

// Advance 推进 dt 秒，返回当前段的速度
func (m *MovementPattern) Advance(dt, speed float64) (types.Vec2, bool) {
	if m == nil || len(m.directions) == 0 {
		return types.Vec2{}, false
	}
	d := m.directions[m.index]
	if m.travelled > d.Distance {
		m.index = (m.index + 1) % len(m.directions)
		m.travelled = 0
		d = m.directions[m.index]
	}
	rad := d.Angle * math.Pi / 180
	m.travelled += speed * dt
	return types.Vec2{X: speed * math.Cos(rad), Y: speed * math.Sin(rad)}, true
}

// Index 当前段的下标
func (m *MovementPattern) Index() int {
	return m.index
}
