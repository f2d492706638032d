package calculator

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// 基于档距区间的任务分配，每个任务是 [start, end) 范围内的一段档距
type task struct {
	start int
	end   int
}

type Executor struct {
	workers   int
	chunkSize int
}

func NewExecutor(workers, chunkSize int) *Executor {
	if workers < 1 {
		workers = 1
	}
	if workers > 64 {
		workers = 64
	}
	return &Executor{
		workers:   workers,
		chunkSize: chunkSize,
	}
}

// split 划分任务，chunkSize <= 0 时每个 worker 分到大致相同数量的档距
func (e *Executor) split(total int) []task {
	if total <= 0 {
		return nil
	}
	size := e.chunkSize
	if size <= 0 {
		size = (total + e.workers - 1) / e.workers
	}
	tasks := make([]task, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		tasks = append(tasks, task{start: start, end: end})
	}
	return tasks
}

// dispatchTask runs f over [0, total) on the worker pool and waits for every
// task. The first error cancels the tasks that have not started yet.
func (e *Executor) dispatchTask(ctx context.Context, total int, f func(ctx context.Context, t task) error) (time.Duration, error) {
	start := time.Now()
	tasks := e.split(total)
	g, ctx := errgroup.WithContext(ctx)
	dispatchChan := make(chan task)

	g.Go(func() error {
		defer close(dispatchChan)
		for _, t := range tasks {
			select {
			case dispatchChan <- t:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < e.workers; i++ {
		g.Go(func() error {
			for t := range dispatchChan {
				if err := f(ctx, t); err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	log.WithFields(log.Fields{
		"spans":   total,
		"tasks":   len(tasks),
		"workers": e.workers,
		"cost":    time.Since(start),
	}).Debug("任务执行完成")
	return time.Since(start), err
}
