package engine

import "container/heap"

// Task is a one-shot callback due at a given session elapsed time.
type Task struct {
	Key string
	Due float64
	Run func()

	seq   uint64 // insertion order, breaks ties on Due
	index int
}

// TaskQueue implements heap.Interface, earliest Due first.
type TaskQueue []*Task

func (q TaskQueue) Len() int { return len(q) }

func (q TaskQueue) Less(i, j int) bool {
	if q[i].Due == q[j].Due {
		return q[i].seq < q[j].seq
	}
	return q[i].Due < q[j].Due
}

func (q TaskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *TaskQueue) Push(x interface{}) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *TaskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Update moves a task to a new due time.
func (q *TaskQueue) Update(t *Task, due float64) {
	t.Due = due
	heap.Fix(q, t.index)
}
