package engine

import (
	"container/heap"
	"testing"
)

func TestTaskQueue(t *testing.T) {
	q := make(TaskQueue, 0)
	heap.Init(&q)

	t1 := &Task{Key: "t1", Due: 10}
	t2 := &Task{Key: "t2", Due: 5}
	t3 := &Task{Key: "t3", Due: 20}
	heap.Push(&q, t1)
	heap.Push(&q, t2)
	heap.Push(&q, t3)

	if first := heap.Pop(&q).(*Task); first.Key != "t2" {
		t.Errorf("Expected t2, got %s", first.Key)
	}

	q.Update(t1, 30)
	if second := heap.Pop(&q).(*Task); second.Key != "t3" {
		t.Errorf("Expected t3, got %s", second.Key)
	}
	if third := heap.Pop(&q).(*Task); third.Key != "t1" {
		t.Errorf("Expected t1, got %s", third.Key)
	}
}

func TestScheduler_RunDue(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(2, "b", func() { order = append(order, "b") })
	s.After(1, "a", func() { order = append(order, "a") })
	s.After(5, "c", func() { order = append(order, "c") })

	if n := s.RunDue(0.5); n != 0 {
		t.Errorf("Nothing is due yet, ran %d", n)
	}
	if n := s.RunDue(2); n != 2 {
		t.Errorf("Expected 2 tasks, ran %d", n)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Order = %v", order)
	}
	if !s.Pending("c") || s.Pending("a") {
		t.Error("Pending state wrong after RunDue")
	}
	dump := s.DebugDump()
	if len(dump) != 1 || dump[0] != (ScheduledTask{Key: "c", Due: 5}) {
		t.Errorf("DebugDump = %+v, want only c at 5", dump)
	}
}

func TestScheduler_CancelAndReplace(t *testing.T) {
	s := NewScheduler()
	ran := ""
	s.After(1, "win", func() { ran = "first" })
	s.After(3, "win", func() { ran = "second" })

	if s.Len() != 1 {
		t.Fatalf("Same key should replace, len = %d", s.Len())
	}
	s.RunDue(2)
	if ran != "" {
		t.Errorf("Replaced task ran at its old time: %q", ran)
	}
	s.RunDue(3)
	if ran != "second" {
		t.Errorf("Expected the replacement to run, got %q", ran)
	}

	s.After(1, "x", func() { t.Error("Cancelled task ran") })
	if !s.Cancel("x") {
		t.Error("Cancel should report a pending task")
	}
	if s.Cancel("x") {
		t.Error("Second cancel should report nothing pending")
	}

	s.After(1, "y", func() { t.Error("Task ran after CancelAll") })
	s.After(2, "z", func() { t.Error("Task ran after CancelAll") })
	s.CancelAll()
	if s.RunDue(10) != 0 || s.Len() != 0 {
		t.Error("CancelAll left tasks behind")
	}
	if len(s.DebugDump()) != 0 {
		t.Error("DebugDump should be empty")
	}
}
