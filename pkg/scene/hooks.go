package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/graveyard/pkg/command"
	"github.com/decker502/graveyard/pkg/types"
)

// Hooks 是具体节点类型提供给场景图的能力接口
// 场景图遍历时通过它回调每个节点自身的更新、绘制、命令处理和碰撞信息
type Hooks interface {
	// UpdateCurrent 更新节点自身（不含子节点）
	UpdateCurrent(dt float64, queue *command.Queue)
	// DrawCurrent 绘制节点自身，geom 为已组合好的世界变换
	DrawCurrent(dst *ebiten.Image, geom ebiten.GeoM)
	// ReceiveCommand 处理一条类别已匹配的命令
	ReceiveCommand(cmd command.Command, dt float64)
	// Category 节点的运行时类别
	Category() types.Category
	// BoundingBox 世界坐标下的碰撞盒，不可碰撞时返回空矩形
	BoundingBox() types.Rect
	// IsDestroyed 节点是否已被摧毁
	IsDestroyed() bool
	// IsMarkedForRemoval 节点是否可以从场景图中清除
	IsMarkedForRemoval() bool
}

// BaseHooks 提供全部空实现，装饰性节点嵌入它后只需覆盖关心的方法
type BaseHooks struct{}

func (BaseHooks) UpdateCurrent(float64, *command.Queue)   {}
func (BaseHooks) DrawCurrent(*ebiten.Image, ebiten.GeoM)  {}
func (BaseHooks) ReceiveCommand(command.Command, float64) {}
func (BaseHooks) Category() types.Category                { return types.CategoryScene }
func (BaseHooks) BoundingBox() types.Rect                 { return types.Rect{} }
func (BaseHooks) IsDestroyed() bool                       { return false }
func (BaseHooks) IsMarkedForRemoval() bool                { return false }
