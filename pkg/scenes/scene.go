// Package scenes 标题画面和战斗画面，负责把键盘输入翻译成命令并驱动 World
package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/graveyard/pkg/game"
)

// Scene game.Scene 的别名
type Scene = game.Scene

// Input 场景读取的键盘状态
type Input interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	AnyKeyJustPressed() bool
}

type keyboardInput struct {
	keys []ebiten.Key
}

// KeyboardInput 读取 ebiten 键盘状态的 Input
func KeyboardInput() Input {
	return &keyboardInput{}
}

func (k *keyboardInput) IsKeyPressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (k *keyboardInput) IsKeyJustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

func (k *keyboardInput) AnyKeyJustPressed() bool {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	return len(k.keys) > 0
}
