package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout - максимальное время ожидания завершения воркеров
const shutdownTimeout = 30 * time.Second

// WorkerManager запускает зарегистрированные воркеры и останавливает их вместе
type WorkerManager struct {
	workers []Worker
	logger  *zap.Logger
	mu      sync.Mutex
	group   *errgroup.Group
	failed  chan error
	timeout time.Duration
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		logger:  logger,
		failed:  make(chan error, 1),
		timeout: shutdownTimeout,
	}
}

// Register регистрирует воркер; вызывать до Start
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start запускает каждый воркер в своей горутине и сразу возвращается
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workers) == 0 {
		return fmt.Errorf("no workers registered")
	}
	if m.group != nil {
		return fmt.Errorf("workers already started")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(m.workers)))

	m.group = &errgroup.Group{}
	for _, w := range m.workers {
		w := w
		m.group.Go(func() error {
			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
				err = fmt.Errorf("worker %s: %w", w.Name(), err)
				select {
				case m.failed <- err:
				default:
				}
				return err
			}
			return nil
		})
	}

	return nil
}

// Failed получает первую ошибку воркера, завершившегося не по отмене контекста
func (m *WorkerManager) Failed() <-chan error {
	return m.failed
}

// Stop останавливает все воркеры и ждёт их не дольше таймаута
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := append([]Worker(nil), m.workers...)
	group := m.group
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))
	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	if group == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- group.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(m.timeout):
		m.logger.Warn("Workers shutdown timed out", zap.Duration("timeout", m.timeout))
		return fmt.Errorf("workers shutdown timed out after %v", m.timeout)
	}
}
