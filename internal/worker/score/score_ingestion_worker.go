package score

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cycleroute-microservice/internal/domain"
	"github.com/cycleroute-microservice/internal/domain/repository"
	"github.com/cycleroute-microservice/internal/worker"
)

const retryDelay = 200 * time.Millisecond

// ScoreIngestionWorker сохраняет отчёты из stream:score:submitted в хранилище
type ScoreIngestionWorker struct {
	*worker.BaseWorker
	streamRepo repository.StreamRepository
	scoreRepo  repository.ScoreRepository
	maxRetries int
}

// NewScoreIngestionWorker создает новый ScoreIngestionWorker
func NewScoreIngestionWorker(
	streamRepo repository.StreamRepository,
	scoreRepo repository.ScoreRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ScoreIngestionWorker {
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &ScoreIngestionWorker{
		BaseWorker: worker.NewBaseWorker("score-ingestion", consumerGroup, logger),
		streamRepo: streamRepo,
		scoreRepo:  scoreRepo,
		maxRetries: maxRetries,
	}
}

// Start читает стрим до остановки воркера, отмены ctx или закрытия канала
func (w *ScoreIngestionWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ScoreIngestionWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamScoreSubmitted, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	consumeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	messages, err := w.streamRepo.ConsumeStream(consumeCtx, domain.StreamScoreSubmitted, w.ConsumerGroup(), w.ConsumerName())
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream closed")
				return nil
			}
			w.handle(ctx, msg)
		}
	}
}

// handle сохраняет один отчёт. Битые сообщения подтверждаются и пропускаются;
// при ошибке хранилища сообщение остаётся в pending до перезапуска.
func (w *ScoreIngestionWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	event, err := parseEvent(msg.Data)
	if err != nil {
		logger.Warn("Skipping malformed score event", zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	score := event.ToScore()
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		var id int32
		id, err = w.scoreRepo.Insert(ctx, score)
		if err == nil {
			logger.Info("Score stored",
				zap.String("event_id", event.EventID.String()),
				zap.Int32("id", id),
				zap.Int("ways", len(score.WayIDs)))
			w.ack(ctx, msg.ID)
			return
		}

		logger.Warn("Failed to store score",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(err))
		if attempt < w.maxRetries {
			select {
			case <-time.After(retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return
			}
		}
	}

	logger.Error("Giving up on score event, left pending",
		zap.String("event_id", event.EventID.String()),
		zap.Error(err))
}

func (w *ScoreIngestionWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamScoreSubmitted, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func parseEvent(data string) (*domain.ScoreSubmittedEvent, error) {
	var event domain.ScoreSubmittedEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if event.Score != domain.Unrated && (event.Score < 0 || event.Score > 1) {
		return nil, fmt.Errorf("score %v out of range", event.Score)
	}
	if len(event.WayIDs) == 0 {
		return nil, fmt.Errorf("event has no way ids")
	}
	return &event, nil
}
