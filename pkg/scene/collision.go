package scene

import "github.com/decker502/graveyard/pkg/types"

// Pair 一对发生重叠的节点，按节点 ID 规范化（ID 小的在前）
type Pair struct {
	First, Second *Node
}

// MakePair 构造规范化的节点对
func MakePair(a, b *Node) Pair {
	if a.id > b.id {
		a, b = b, a
	}
	return Pair{First: a, Second: b}
}

type pairKey struct{ lo, hi uint64 }

// PairSet 按插入顺序保存、去重的节点对集合
// Reset 后保留底层容量，可逐帧复用
type PairSet struct {
	pairs []Pair
	index map[pairKey]struct{}
}

// NewPairSet 创建空集合
func NewPairSet() *PairSet {
	return &PairSet{index: make(map[pairKey]struct{})}
}

// Add 插入一对节点，自身配对或重复配对时返回 false
func (s *PairSet) Add(a, b *Node) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	p := MakePair(a, b)
	k := pairKey{p.First.id, p.Second.id}
	if _, ok := s.index[k]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[pairKey]struct{})
	}
	s.index[k] = struct{}{}
	s.pairs = append(s.pairs, p)
	return true
}

// Contains 集合中是否有 (a, b) 或 (b, a)
func (s *PairSet) Contains(a, b *Node) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	p := MakePair(a, b)
	_, ok := s.index[pairKey{p.First.id, p.Second.id}]
	return ok
}

// Pairs 按插入顺序返回所有节点对（只读，下次 Reset 前有效）
func (s *PairSet) Pairs() []Pair {
	return s.pairs
}

// Len 节点对数量
func (s *PairSet) Len() int {
	return len(s.pairs)
}

// Reset 清空集合
func (s *PairSet) Reset() {
	clear(s.pairs)
	s.pairs = s.pairs[:0]
	clear(s.index)
}

// Collides 两个节点的世界碰撞盒是否相交
func Collides(a, b *Node) bool {
	return a.hooks.BoundingBox().Intersects(b.hooks.BoundingBox())
}

// Detector 碰撞检测器，展平用的缓冲区跨帧复用
type Detector struct {
	nodes  []*Node
	bounds []types.Rect
}

// Check 把 root 子树（含 root）中所有可碰撞节点两两比较，重叠的节点对写入 out
//
// 可碰撞：碰撞盒非空且未被摧毁。父子（祖先与子孙）之间从不配对。
// out 不会被清空，调用方负责在每帧开始时 Reset。
func (d *Detector) Check(root *Node, out *PairSet) {
	d.nodes = d.nodes[:0]
	d.bounds = d.bounds[:0]
	d.flatten(root)

	for i := 0; i < len(d.nodes); i++ {
		for j := i + 1; j < len(d.nodes); j++ {
			if !d.bounds[i].Intersects(d.bounds[j]) {
				continue
			}
			a, b := d.nodes[i], d.nodes[j]
			if isAncestor(a, b) || isAncestor(b, a) {
				continue
			}
			out.Add(a, b)
		}
	}

	clear(d.nodes)
}

func (d *Detector) flatten(n *Node) {
	if !n.hooks.IsDestroyed() {
		if box := n.hooks.BoundingBox(); !box.IsEmpty() {
			d.nodes = append(d.nodes, n)
			d.bounds = append(d.bounds, box)
		}
	}
	for _, c := range n.children {
		d.flatten(c)
	}
}

// isAncestor a 是否是 b 的祖先
func isAncestor(a, b *Node) bool {
	for p := b.Parent(); p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// CheckSceneCollision 一次性检测 root 子树中的碰撞
// 每帧调用时优先复用 Detector 以避免分配
func CheckSceneCollision(root *Node, out *PairSet) {
	var d Detector
	d.Check(root, out)
}
