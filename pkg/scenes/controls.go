package scenes

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/types"
)

// Action 玩家可以触发的动作
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	actionCount
)

var actionNames = [...]string{"MoveLeft", "MoveRight", "MoveUp", "MoveDown", "Fire"}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// MissionStatus 本局状态
type MissionStatus int

const (
	MissionRunning MissionStatus = iota
	MissionFailure
)

// PlayerControl 键位到动作、动作到命令的两级映射
type PlayerControl struct {
	keyBindings    map[ebiten.Key]Action
	actionBindings [actionCount]command.Command
	status         MissionStatus
}

// NewPlayerControl 默认键位：WASD 和方向键移动，空格开火
func NewPlayerControl() *PlayerControl {
	pc := &PlayerControl{
		keyBindings: map[ebiten.Key]Action{
			ebiten.KeyA:          ActionMoveLeft,
			ebiten.KeyArrowLeft:  ActionMoveLeft,
			ebiten.KeyD:          ActionMoveRight,
			ebiten.KeyArrowRight: ActionMoveRight,
			ebiten.KeyW:          ActionMoveUp,
			ebiten.KeyArrowUp:    ActionMoveUp,
			ebiten.KeyS:          ActionMoveDown,
			ebiten.KeyArrowDown:  ActionMoveDown,
			ebiten.KeySpace:      ActionFire,
		},
	}
	pc.actionBindings[ActionMoveLeft] = command.Move(types.CategoryPlayer, -1, 0)
	pc.actionBindings[ActionMoveRight] = command.Move(types.CategoryPlayer, 1, 0)
	pc.actionBindings[ActionMoveUp] = command.Move(types.CategoryPlayer, 0, -1)
	pc.actionBindings[ActionMoveDown] = command.Move(types.CategoryPlayer, 0, 1)
	pc.actionBindings[ActionFire] = command.Fire()
	return pc
}

// AssignKey 把 key 绑定到 action，key 原有的绑定被替换
func (pc *PlayerControl) AssignKey(action Action, key ebiten.Key) {
	pc.keyBindings[key] = action
}

// AssignedKeys 绑定到 action 的全部按键，按键值排序
func (pc *PlayerControl) AssignedKeys(action Action) []ebiten.Key {
	var keys []ebiten.Key
	for k, a := range pc.keyBindings {
		if a == action {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// HandleRealtimeInput 每个按下的动作推入一条命令，同一动作绑定多个键时也只推一次
// 命令按动作顺序推入
func (pc *PlayerControl) HandleRealtimeInput(in Input, q *command.Queue) {
	var active [actionCount]bool
	for k, a := range pc.keyBindings {
		if in.IsKeyPressed(k) {
			active[a] = true
		}
	}
	for a, on := range active {
		if on {
			q.Push(pc.actionBindings[a])
		}
	}
}

// SetMissionStatus 设置本局状态
func (pc *PlayerControl) SetMissionStatus(s MissionStatus) {
	pc.status = s
}

// Status 本局状态
func (pc *PlayerControl) Status() MissionStatus {
	return pc.status
}
