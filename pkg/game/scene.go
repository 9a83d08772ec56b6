package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个游戏画面（标题、战斗）
type Scene interface {
	// Update 推进 deltaTime 秒
	Update(deltaTime float64) error

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存自身状态（如设置）
type Saveable interface {
	SaveOnExit() error
}
