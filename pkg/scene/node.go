// Package scene 实现场景图：节点树、世界变换组合、更新/绘制/命令遍历、残骸清理和碰撞检测
package scene

import (
	"math"
	"sync/atomic"
	"weak"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/types"
)

var nextNodeID atomic.Uint64

// Node 场景图节点
//
// 节点独占自己的子节点（插入顺序即绘制和更新顺序），
// 对父节点只持有弱引用，仅用于计算世界变换，不参与生命周期管理。
type Node struct {
	id uint64

	// Position 相对父节点的位置
	Position types.Vec2
	// Rotation 相对父节点的旋转角度（度）
	Rotation float64
	// Scale 相对父节点的缩放
	Scale types.Vec2

	children []*Node
	parent   weak.Pointer[Node]
	hooks    Hooks
}

// NewNode 创建一个没有行为的空节点
func NewNode() *Node {
	return &Node{
		id:    nextNodeID.Add(1),
		Scale: types.Vec2{X: 1, Y: 1},
		hooks: BaseHooks{},
	}
}

// SetHooks 绑定具体节点类型的行为；h 为 nil 时恢复为空行为
func (n *Node) SetHooks(h Hooks) {
	if h == nil {
		n.hooks = BaseHooks{}
		return
	}
	n.hooks = h
}

// Hooks 返回节点绑定的行为
func (n *Node) Hooks() Hooks {
	return n.hooks
}

// ID 进程内唯一、单调递增的节点编号
func (n *Node) ID() uint64 {
	return n.id
}

// Parent 返回父节点，根节点或已分离的节点返回 nil
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// Children 返回子节点列表（只读）
func (n *Node) Children() []*Node {
	return n.children
}

// AttachChild 把 child 挂到当前节点下
// child 如果已有父节点，会先从原位置摘下
func (n *Node) AttachChild(child *Node) {
	for p := n; p != nil; p = p.Parent() {
		if p == child {
			panic("scene: attaching a node under itself or its descendant")
		}
	}
	if old := child.Parent(); old != nil {
		old.DetachChild(child)
	}
	child.parent = weak.Make(n)
	n.children = append(n.children, child)
}

// DetachChild 从子节点列表中摘下 child 并返回，child 不是直接子节点时返回 nil
// 剩余子节点的相对顺序不变
func (n *Node) DetachChild(child *Node) *Node {
	for i, c := range n.children {
		if c != child {
			continue
		}
		copy(n.children[i:], n.children[i+1:])
		n.children[len(n.children)-1] = nil
		n.children = n.children[:len(n.children)-1]
		child.parent = weak.Pointer[Node]{}
		return child
	}
	return nil
}

// LocalTransform 本地变换：缩放，旋转，再平移
func (n *Node) LocalTransform() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(n.Scale.X, n.Scale.Y)
	if n.Rotation != 0 {
		g.Rotate(n.Rotation * math.Pi / 180)
	}
	g.Translate(n.Position.X, n.Position.Y)
	return g
}

// WorldTransform 依次组合祖先链上的本地变换得到世界变换，复杂度 O(深度)
func (n *Node) WorldTransform() ebiten.GeoM {
	g := n.LocalTransform()
	for p := n.Parent(); p != nil; p = p.Parent() {
		g.Concat(p.LocalTransform())
	}
	return g
}

// WorldPosition 节点原点在世界坐标中的位置
func (n *Node) WorldPosition() types.Vec2 {
	g := n.WorldTransform()
	x, y := g.Apply(0, 0)
	return types.Vec2{X: x, Y: y}
}

// Update 先更新自身，再按顺序更新子节点
// 遍历过程中新挂上的子节点下一帧才会被更新
func (n *Node) Update(dt float64, queue *command.Queue) {
	n.hooks.UpdateCurrent(dt, queue)
	count := len(n.children)
	for i := 0; i < count && i < len(n.children); i++ {
		n.children[i].Update(dt, queue)
	}
}

// Draw 以 parent 为父变换绘制整棵子树
func (n *Node) Draw(dst *ebiten.Image, parent ebiten.GeoM) {
	g := n.LocalTransform()
	g.Concat(parent)
	n.hooks.DrawCurrent(dst, g)
	for _, c := range n.children {
		c.Draw(dst, g)
	}
}

// OnCommand 类别相交时交给自身处理，然后无条件递归到子节点
func (n *Node) OnCommand(cmd command.Command, dt float64) {
	if n.hooks.Category().Has(cmd.Category) {
		n.hooks.ReceiveCommand(cmd, dt)
	}
	count := len(n.children)
	for i := 0; i < count && i < len(n.children); i++ {
		n.children[i].OnCommand(cmd, dt)
	}
}

// RemoveWrecks 清除所有可移除的子孙节点（连同其子树），返回清除的子树数量
// 先压缩子节点列表再递归，幸存节点保持原有顺序
func (n *Node) RemoveWrecks() int {
	removed := 0
	kept := n.children[:0]
	for _, c := range n.children {
		if c.hooks.IsMarkedForRemoval() {
			c.parent = weak.Pointer[Node]{}
			removed++
			continue
		}
		kept = append(kept, c)
	}
	clear(n.children[len(kept):])
	n.children = kept

	for _, c := range n.children {
		removed += c.RemoveWrecks()
	}
	return removed
}
