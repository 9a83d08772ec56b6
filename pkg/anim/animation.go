// Package anim 播放横向排列的帧动画条
package anim

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation 横向帧条动画
// 帧按从左到右排列在贴图上，Duration 内播放完全部帧
type Animation struct {
	texture    *ebiten.Image
	frameW     int
	frameH     int
	frameCount int
	duration   float64
	repeat     bool

	elapsed float64
	frame   int
}

// New 创建动画
// 参数:
//   - texture: 帧条贴图，为 nil 时只计时不绘制
//   - frameW, frameH: 单帧尺寸
//   - frameCount: 帧数
//   - duration: 一轮播放时长（秒）
//   - repeat: 是否循环
func New(texture *ebiten.Image, frameW, frameH, frameCount int, duration float64, repeat bool) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	return &Animation{
		texture:    texture,
		frameW:     frameW,
		frameH:     frameH,
		frameCount: frameCount,
		duration:   duration,
		repeat:     repeat,
	}
}

// Update 推进 dt 秒
func (a *Animation) Update(dt float64) {
	if a.IsFinished() {
		return
	}
	a.elapsed += dt
	if a.duration <= 0 {
		a.frame = a.frameCount - 1
		return
	}
	perFrame := a.duration / float64(a.frameCount)
	frame := int(a.elapsed / perFrame)
	if a.repeat {
		a.frame = frame % a.frameCount
		for a.elapsed >= a.duration {
			a.elapsed -= a.duration
		}
		return
	}
	if frame >= a.frameCount {
		frame = a.frameCount - 1
	}
	a.frame = frame
}

// Restart 回到第一帧
func (a *Animation) Restart() {
	a.elapsed = 0
	a.frame = 0
}

// IsFinished 非循环动画是否已播放完毕；循环动画永远返回 false
func (a *Animation) IsFinished() bool {
	return !a.repeat && a.elapsed >= a.duration
}

// CurrentFrame 当前帧下标
func (a *Animation) CurrentFrame() int {
	return a.frame
}

// FrameSize 单帧尺寸
func (a *Animation) FrameSize() (int, int) {
	return a.frameW, a.frameH
}

// FrameRect 当前帧在贴图上的区域
func (a *Animation) FrameRect() image.Rectangle {
	x := a.frame * a.frameW
	return image.Rect(x, 0, x+a.frameW, a.frameH)
}

// Draw 以帧中心为原点绘制当前帧
func (a *Animation) Draw(dst *ebiten.Image, geom ebiten.GeoM) {
	if a.texture == nil {
		return
	}
	frame := a.texture.SubImage(a.FrameRect()).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(a.frameW)/2, -float64(a.frameH)/2)
	op.GeoM.Concat(geom)
	dst.DrawImage(frame, op)
}
