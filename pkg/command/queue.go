package command

import "errors"

// ErrEmptyQueue 从空队列弹出命令
var ErrEmptyQueue = errors.New("command queue is empty")

// Queue 单线程 FIFO 命令队列
// 底层切片在队列排空时复位，稳定状态下每帧不产生新的分配
type Queue struct {
	items []Command
	head  int
}

// NewQueue 创建命令队列
func NewQueue() *Queue {
	return &Queue{items: make([]Command, 0, 32)}
}

// Push 入队
func (q *Queue) Push(c Command) {
	q.items = append(q.items, c)
}

// Pop 弹出最早入队的命令
// 队列为空时返回 ErrEmptyQueue
func (q *Queue) Pop() (Command, error) {
	if q.head >= len(q.items) {
		return Command{}, ErrEmptyQueue
	}
	c := q.items[q.head]
	q.items[q.head] = Command{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return c, nil
}

// IsEmpty 队列是否为空
func (q *Queue) IsEmpty() bool {
	return q.head >= len(q.items)
}

// Len 队列中待处理命令数
func (q *Queue) Len() int {
	return len(q.items) - q.head
}
