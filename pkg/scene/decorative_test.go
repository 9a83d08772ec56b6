package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/types"
)

type recordingPlayer struct {
	played []types.SoundEffect
	at     []types.Vec2
}

func (r *recordingPlayer) Play(e types.SoundEffect, pos types.Vec2) {
	r.played = append(r.played, e)
	r.at = append(r.at, pos)
}
func (r *recordingPlayer) SetListenerPosition(types.Vec2) {}
func (r *recordingPlayer) RemoveStoppedSounds()           {}

func TestSoundNodeForwardsPlaySound(t *testing.T) {
	rp := &recordingPlayer{}
	root := NewNode()
	sn := NewSoundNode(rp)
	root.AttachChild(sn.Node)

	root.OnCommand(command.PlaySound(types.SoundPistolShot, types.Vec2{X: 1, Y: 2}), 0)
	root.OnCommand(command.Fire(), 0)

	assert.Equal(t, []types.SoundEffect{types.SoundPistolShot}, rp.played)
	assert.Equal(t, types.Vec2{X: 1, Y: 2}, rp.at[0])
}

func TestSoundNodeWithoutPlayer(t *testing.T) {
	sn := NewSoundNode(nil)
	assert.NotPanics(t, func() {
		sn.OnCommand(command.PlaySound(types.SoundZombieDeath, types.Vec2{}), 0)
	})
}

func TestTextNodeSetString(t *testing.T) {
	var ts TextSetter = NewTextNode(nil, "HP 100")
	ts.SetString("HP 97")
	assert.Equal(t, "HP 97", ts.(*TextNode).String())
}

func TestDecorativeNodesAreNotCollidable(t *testing.T) {
	root := NewNode()
	root.AttachChild(NewSpriteNode(nil, image.Rectangle{}).Node)
	root.AttachChild(NewTextNode(nil, "Score 0").Node)
	root.AttachChild(NewSoundNode(nil).Node)

	set := NewPairSet()
	CheckSceneCollision(root, set)
	assert.Equal(t, 0, set.Len())
	for _, c := range root.Children() {
		assert.True(t, c.Hooks().BoundingBox().IsEmpty())
	}
}
