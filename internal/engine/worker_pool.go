package engine

import (
	"context"
	"sync"
)

// taskPool is a fixed-size goroutine pool with a bounded input queue.
// Result delivery is the task's own business (tasks carry their reply
// channel when the submitter wants one).
type taskPool[T any] struct {
	queue   chan T
	process func(ctx context.Context, t T)
	wg      sync.WaitGroup
}

// newTaskPool creates and starts a pool with n goroutines and queue
// capacity depth.
func newTaskPool[T any](ctx context.Context, n, depth int, fn func(context.Context, T)) *taskPool[T] {
	p := &taskPool[T]{
		queue:   make(chan T, depth),
		process: fn,
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.run(ctx)
		}()
	}
	return p
}

func (p *taskPool[T]) run(ctx context.Context) {
	for {
		select {
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			p.process(ctx, t)
		case <-ctx.Done():
			return
		}
	}
}

// Submit enqueues a task without blocking (returns false if full).
func (p *taskPool[T]) Submit(t T) bool {
	select {
	case p.queue <- t:
		return true
	default:
		return false
	}
}

// Drain closes the queue and waits for all workers to finish.
func (p *taskPool[T]) Drain() {
	close(p.queue)
	p.wg.Wait()
}

// QueueLen returns how many tasks are currently queued.
func (p *taskPool[T]) QueueLen() int {
	return len(p.queue)
}

// QueueCap returns the total queue capacity.
func (p *taskPool[T]) QueueCap() int {
	return cap(p.queue)
}
