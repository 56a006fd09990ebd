package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllTasks(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		tasks   int
	}{
		{"single worker", 1, 100},
		{"several workers", 4, 1000},
		{"default workers", 0, 50},
		{"no tasks", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var count atomic.Int64
			pool := New(tt.workers)
			for i := 0; i < tt.tasks; i++ {
				pool.Submit(func() { count.Add(1) })
			}
			pool.Close()

			if got := count.Load(); got != int64(tt.tasks) {
				t.Errorf("ran %d tasks, want %d", got, tt.tasks)
			}
		})
	}
}

func TestPoolCloseWaitsForQueuedTasks(t *testing.T) {
	var count atomic.Int64
	pool := New(1)
	for i := 0; i < 10; i++ {
		pool.Submit(func() { count.Add(1) })
	}
	pool.Close()

	if got := count.Load(); got != 10 {
		t.Errorf("Close returned before all tasks ran: %d of 10", got)
	}
}
