package engine

import (
	"container/heap"

	"github.com/nancyzera/jurassic-game/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Scheduler runs deferred session callbacks on the session's own clock.
// It is driven from Tick, so callbacks run on the owning goroutine and
// never race with commands.
type Scheduler struct {
	queue TaskQueue
	byKey map[string]*Task
	seq   uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		queue: make(TaskQueue, 0),
		byKey: make(map[string]*Task),
	}
}

// After schedules fn at elapsed time due. A pending task with the same
// key is replaced.
func (s *Scheduler) After(due float64, key string, fn func()) {
	if old, ok := s.byKey[key]; ok {
		old.Run = fn
		s.queue.Update(old, due)
		return
	}
	s.seq++
	t := &Task{Key: key, Due: due, Run: fn, seq: s.seq}
	heap.Push(&s.queue, t)
	s.byKey[key] = t

	logger.Component("scheduler").WithFields(logrus.Fields{
		"key": key,
		"due": due,
	}).Debug("Task scheduled")
}

// Cancel drops a pending task. Reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	t, ok := s.byKey[key]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.byKey, key)
	return true
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	s.queue = s.queue[:0]
	s.byKey = make(map[string]*Task)
}

func (s *Scheduler) Pending(key string) bool {
	_, ok := s.byKey[key]
	return ok
}

func (s *Scheduler) Len() int {
	return s.queue.Len()
}

// RunDue pops and runs every task with Due <= now, in due order.
// Tasks scheduled by a running task are considered in the same pass.
func (s *Scheduler) RunDue(now float64) int {
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].Due <= now {
		t := heap.Pop(&s.queue).(*Task)
		delete(s.byKey, t.Key)
		t.Run()
		ran++
	}
	return ran
}

// ScheduledTask is a queued task as debug endpoints show it.
type ScheduledTask struct {
	Key string  `json:"key"`
	Due float64 `json:"due"`
}

// DebugDump returns the queue contents for debug endpoints.
func (s *Scheduler) DebugDump() []ScheduledTask {
	result := make([]ScheduledTask, 0, len(s.queue))
	for _, t := range s.queue {
		result = append(result, ScheduledTask{Key: t.Key, Due: t.Due})
	}
	return result
}
