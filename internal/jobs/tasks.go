package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ErrQueueFull = errors.New("task queue is full")
	ErrClosed    = errors.New("task pool is shut down")
)

var tasksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "background_tasks_total",
		Help: "Background tasks run, by task name and outcome",
	},
	[]string{"task", "outcome"},
)

type Task = func(ctx context.Context) error

type queuedTask struct {
	name string
	run  Task
}

// Pool runs submitted tasks on a fixed number of workers. Tasks receive a
// context that is cancelled when Shutdown gives up waiting.
type Pool struct {
	log     *zap.Logger
	tasks   chan queuedTask
	workers int
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	closed bool
}

func NewPool(log *zap.Logger, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		log:     log.With(zap.String("component", "tasks")),
		tasks:   make(chan queuedTask, queueSize),
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (p *Pool) Run() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func(worker int) {
			defer p.wg.Done()
			log := p.log.With(zap.Int("worker", worker))
			for task := range p.tasks {
				p.execute(log, task)
			}
		}(i)
	}
}

func (p *Pool) execute(log *zap.Logger, task queuedTask) {
	defer func() {
		if r := recover(); r != nil {
			tasksTotal.WithLabelValues(task.name, "panic").Inc()
			log.Error("Task panicked", zap.String("task", task.name), zap.Any("panic", r))
		}
	}()

	if err := task.run(p.ctx); err != nil {
		tasksTotal.WithLabelValues(task.name, "error").Inc()
		log.Error("Task failed", zap.String("task", task.name), zap.Error(err))
		return
	}
	tasksTotal.WithLabelValues(task.name, "ok").Inc()
	log.Debug("Task done", zap.String("task", task.name))
}

// Submit queues a task without blocking.
func (p *Pool) Submit(name string, task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case p.tasks <- queuedTask{name: name, run: task}:
		return nil
	default:
		return fmt.Errorf("submit %s: %w", name, ErrQueueFull)
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish. When
// ctx ends first, running tasks see their context cancelled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.log.Info("Shutting down background tasks")

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		p.cancel()
		p.log.Warn("Background tasks did not finish in time", zap.Error(ctx.Err()))
		return ctx.Err()
	case <-done:
		p.cancel()
		p.log.Info("Background tasks stopped")
		return nil
	}
}
