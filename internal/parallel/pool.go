// Package parallel provides a small fixed-size worker pool for batch
// processing of independent images. Each task owns its buffers outright;
// the pool never shares a buffer between tasks.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted tasks on a fixed set of worker goroutines.
//
// Thread safety: Submit may be called from multiple goroutines until
// Close is called.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// New creates a pool with the specified number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		tasks: make(chan func(), workers),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}

	return p
}

// Submit queues a task. It blocks when all workers are busy and the
// queue is full. Submitting after Close panics.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops accepting tasks and waits for queued ones to finish.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
