// Package actor 实现具体角色：玩家、僵尸、骷髅、子弹、道具、粒子，以及负责生成它们的地面层和工厂
package actor

import "github.com/decker502/graveyard/pkg/types"

// State 角色状态
type State uint8

const (
	StateWalkUp State = iota
	StateWalkLeft
	StateWalkDown
	StateWalkRight
	StateIdleUp
	StateIdleLeft
	StateIdleDown
	StateIdleRight
	StateDead
)

var stateNames = [...]string{
	StateWalkUp:    "walkUp",
	StateWalkLeft:  "walkLeft",
	StateWalkDown:  "walkDown",
	StateWalkRight: "walkRight",
	StateIdleUp:    "idleUp",
	StateIdleLeft:  "idleLeft",
	StateIdleDown:  "idleDown",
	StateIdleRight: "idleRight",
	StateDead:      "dead",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Facing 朝向
type Facing uint8

const (
	FacingUp Facing = iota
	FacingLeft
	FacingDown
	FacingRight
)

// Facing 状态对应的朝向；Dead 返回 FacingDown
func (s State) Facing() Facing {
	switch s {
	case StateWalkUp, StateIdleUp:
		return FacingUp
	case StateWalkLeft, StateIdleLeft:
		return FacingLeft
	case StateWalkRight, StateIdleRight:
		return FacingRight
	default:
		return FacingDown
	}
}

// IsIdle 是否为站立状态
func (s State) IsIdle() bool {
	return s >= StateIdleUp && s <= StateIdleRight
}

// NextState 状态转换
//
// 规则：
//  1. 生命值 <= 0 进入 Dead，Dead 是终态
//  2. 速度为零时切换到当前朝向的站立状态；没有站立动画（hasIdle=false）时保持原状态
//  3. 否则按速度方向行走，纵向优先
func NextState(current State, velocity types.Vec2, hitPoints int, hasIdle bool) State {
	if current == StateDead || hitPoints <= 0 {
		return StateDead
	}

	if velocity.IsZero() {
		if !hasIdle {
			return current
		}
		return StateIdleUp + State(current.Facing())
	}

	if velocity.Y != 0 {
		if velocity.Y < 0 {
			return StateWalkUp
		}
		return StateWalkDown
	}
	if velocity.X < 0 {
		return StateWalkLeft
	}
	return StateWalkRight
}
