package notify

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool chan Task
	g    errgroup.Group
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, size)}

	for i := 0; i < size; i++ {
		wp.g.Go(wp.worker)
	}
	return wp
}

func (wp *WorkerPool) worker() error {
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
	return nil
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops intake and waits for queued tasks to finish.
func (wp *WorkerPool) Close() {
	close(wp.pool)
	if err := wp.g.Wait(); err != nil {
		zap.L().Error("Worker pool shutdown error", zap.Error(err))
	}
}
