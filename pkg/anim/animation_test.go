package anim

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestAnimationOnce(t *testing.T) {
	a := New(nil, 40, 45, 3, 1.5, false)
	assert.Equal(t, 0, a.CurrentFrame())
	assert.False(t, a.IsFinished())

	a.Update(0.6)
	assert.Equal(t, 1, a.CurrentFrame())
	assert.Equal(t, image.Rect(40, 0, 80, 45), a.FrameRect())

	a.Update(1.0)
	assert.Equal(t, 2, a.CurrentFrame())
	assert.True(t, a.IsFinished())

	a.Update(5)
	assert.Equal(t, 2, a.CurrentFrame(), "播放结束后停在最后一帧")

	a.Restart()
	assert.False(t, a.IsFinished())
	assert.Equal(t, 0, a.CurrentFrame())
}

func TestAnimationRepeat(t *testing.T) {
	a := New(nil, 33, 45, 3, 0.5, true)
	for i := 0; i < 100; i++ {
		a.Update(0.1)
		assert.False(t, a.IsFinished())
		assert.Less(t, a.CurrentFrame(), 3)
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	a := New(nil, 10, 10, 4, 0, false)
	assert.True(t, a.IsFinished())
	assert.NotPanics(t, func() { a.Draw(nil, ebiten.GeoM{}) })
}
