package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/graveyard/pkg/types"
)

func boxProbe(cat types.Category, x, y float64) *probe {
	p := newProbe(cat)
	p.Position = types.Vec2{X: x, Y: y}
	p.box = types.Rect{Width: 10, Height: 10}
	return p
}

func TestPairSetSymmetricAndIrreflexive(t *testing.T) {
	a, b := NewNode(), NewNode()
	s := NewPairSet()

	assert.False(t, s.Add(a, a))
	assert.True(t, s.Add(b, a))
	assert.False(t, s.Add(a, b))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(a, b))
	assert.True(t, s.Contains(b, a))
	assert.Same(t, a, s.Pairs()[0].First, "ID 小的节点在前")

	s.Reset()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(a, b))
}

func TestCheckSceneCollision(t *testing.T) {
	root := newProbe(types.CategoryScene)
	layer := newProbe(types.CategoryGroundLayer)
	root.AttachChild(layer.Node)

	player := boxProbe(types.CategoryPlayer, 0, 0)
	zombie := boxProbe(types.CategoryZombie, 5, 5)
	far := boxProbe(types.CategoryZombie, 100, 100)
	layer.AttachChild(player.Node)
	layer.AttachChild(zombie.Node)
	layer.AttachChild(far.Node)

	set := NewPairSet()
	CheckSceneCollision(root.Node, set)
	require.Equal(t, 1, set.Len())
	assert.True(t, set.Contains(player.Node, zombie.Node))
	assert.False(t, set.Contains(player.Node, far.Node))
}

func TestCheckSceneCollisionSkipsAncestorsAndDestroyed(t *testing.T) {
	root := newProbe(types.CategoryScene)
	parent := boxProbe(types.CategoryPlayer, 0, 0)
	child := boxProbe(types.CategoryPickup, 0, 0)
	grandChild := boxProbe(types.CategoryPickup, 0, 0)
	root.AttachChild(parent.Node)
	parent.AttachChild(child.Node)
	child.AttachChild(grandChild.Node)

	dead := boxProbe(types.CategoryZombie, 2, 2)
	dead.destroyed = true
	root.AttachChild(dead.Node)

	set := NewPairSet()
	CheckSceneCollision(root.Node, set)
	assert.Equal(t, 0, set.Len())
}

func TestDetectorReuseAcrossFrames(t *testing.T) {
	root := newProbe(types.CategoryScene)
	a := boxProbe(types.CategoryPlayer, 0, 0)
	b := boxProbe(types.CategoryZombie, 3, 3)
	root.AttachChild(a.Node)
	root.AttachChild(b.Node)

	var d Detector
	set := NewPairSet()
	for frame := 0; frame < 3; frame++ {
		set.Reset()
		d.Check(root.Node, set)
		assert.Equal(t, 1, set.Len())
	}

	b.Position = types.Vec2{X: 50, Y: 50}
	set.Reset()
	d.Check(root.Node, set)
	assert.Equal(t, 0, set.Len())
}

func TestCollidesTouchingEdgesDoNotOverlap(t *testing.T) {
	a := boxProbe(types.CategoryPlayer, 0, 0)
	b := boxProbe(types.CategoryZombie, 10, 0)
	assert.False(t, Collides(a.Node, b.Node))
	b.Position.X = 9.5
	assert.True(t, Collides(a.Node, b.Node))
}
