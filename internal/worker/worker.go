package worker

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Worker интерфейс для всех воркеров
type Worker interface {
	// Start блокирует до остановки воркера
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться; повторный вызов безопасен
	Stop() error

	Name() string
}

// BaseWorker содержит общую логику остановки для воркеров стримов
type BaseWorker struct {
	name          string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger
	stopChan      chan struct{}
	stopOnce      sync.Once
	mu            sync.Mutex
	stopped       bool
}

func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		consumerName:  defaultConsumerName(name),
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		w.mu.Lock()
		w.stopped = true
		w.mu.Unlock()
		close(w.stopChan)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopChan
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}

// ConsumerName - имя потребителя в группе. Оно не меняется между перезапусками,
// поэтому неподтверждённые сообщения прошлого запуска дочитываются тем же потребителем.
func (w *BaseWorker) ConsumerName() string {
	return w.consumerName
}

// SetConsumerName переопределяет имя потребителя; вызывать до Start
func (w *BaseWorker) SetConsumerName(name string) {
	if name != "" {
		w.consumerName = name
	}
}

func defaultConsumerName(worker string) string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return worker
	}
	return hostname + "-" + worker
}
