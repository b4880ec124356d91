// Package parallel provides a bounded worker pool for running many
// independent solve jobs concurrently, such as a batch of puzzle boards.
// Each job owns its own solver instance; the engine itself stays
// single-threaded per board.
package parallel

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// WorkerPool manages a pool of goroutines for executing independent jobs
// with controlled concurrency and backpressure: submission blocks once every
// worker is busy and the queue is full.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan func()
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// NewWorkerPool creates a pool with the given number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan func(), maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// worker is the main worker loop that processes tasks from the channel.
func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case task := <-wp.taskChan:
			if task != nil {
				task()
			}
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit queues a job for execution, blocking while the pool is saturated.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	select {
	case wp.taskChan <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.shutdownChan:
		return ErrPoolShutdown
	}
}

// Shutdown stops the pool, waiting for currently executing jobs to
// complete. Queued but unstarted jobs may be dropped.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		close(wp.taskChan)
		wp.workerWg.Wait()
	})
}

// ErrPoolShutdown is returned when submitting to a pool that has shut down.
var ErrPoolShutdown = fmt.Errorf("worker pool has been shutdown")
