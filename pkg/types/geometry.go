// Package types 定义模拟核心共享的基础类型：类别掩码、角色类型枚举、音效ID和二维几何
package types

import "math"

// Vec2 二维向量（像素 / 像素每秒）
type Vec2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length 向量长度
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero 两个分量是否都为 0
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Unit 返回单位向量；零向量返回零向量
func (v Vec2) Unit() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect 轴对齐矩形，(Left, Top) 为左上角
type Rect struct {
	Left, Top, Width, Height float64
}

// IsEmpty 宽或高不为正时视为空矩形（不可碰撞）
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right 右边界
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center 矩形中心
func (r Rect) Center() Vec2 {
	return Vec2{r.Left + r.Width/2, r.Top + r.Height/2}
}

// Intersects AABB 相交检测（严格重叠，边缘相接不算）
// 任一矩形为空时返回 false
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Adjust 按偏移量平移左上角并增减宽高
// 用于按角色类型微调碰撞盒手感（负宽高表示收缩）
func (r Rect) Adjust(a RectAdjust) Rect {
	return Rect{
		Left:   r.Left + a.Left,
		Top:    r.Top + a.Top,
		Width:  r.Width + a.Width,
		Height: r.Height + a.Height,
	}
}

// RectAdjust 碰撞盒调整量
type RectAdjust struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
