package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/AVTech-ve/ecommerce-backend/pkg/jitter"
	"github.com/AVTech-ve/ecommerce-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	outboxChannel = "outbox_pending"
	batchSize     = 10
	// fallbackInterval страхует от потерянных NOTIFY: накопившиеся события
	// будут отправлены не позднее этого интервала.
	fallbackInterval   = 30 * time.Second
	reconnectBaseDelay = 2 * time.Second
	reconnectMaxDelay  = 30 * time.Second
)

// OutboxWorker доставляет события изменения товаров из таблицы outbox в Kafka.
// Просыпается по NOTIFY из транзакции записи события и по таймеру.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	dbConnStr string

	wake chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		dbConnStr: dbConnStr,
		wake:      make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
}

// Start запускает цикл доставки и слушатель уведомлений Postgres.
func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.drainLoop(ctx)
	}()
	go func() {
		defer w.wg.Done()
		w.listen(ctx)
	}()
}

// Stop останавливает воркер и дожидается завершения обеих горутин.
func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// drainLoop отправляет накопленные события при старте, затем по каждому
// пробуждению (NOTIFY или таймер) вычитывает outbox до пустого результата.
func (w *OutboxWorker) drainLoop(ctx context.Context) {
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	ticker := time.NewTicker(fallbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Infof("Outbox worker stopped by context cancellation")
			return
		case <-w.stop:
			return
		case <-w.wake:
			w.drain(ctx)
		case <-ticker.C:
			w.drain(ctx)
		}
	}
}

func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("Outbox batch processing failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

// notify будит цикл доставки; повторные сигналы во время обработки схлопываются.
func (w *OutboxWorker) notify() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// listen держит выделенное соединение с LISTEN outbox_pending и будит цикл
// доставки на каждое уведомление. При потере соединения переподключается
// с экспоненциальной задержкой.
func (w *OutboxWorker) listen(ctx context.Context) {
	var attempt int

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		conn, err := w.subscribe(ctx)
		if err != nil {
			delay := jitter.ExponentialBackoff(reconnectBaseDelay, reconnectMaxDelay, attempt, jitter.DefaultJitter)
			attempt++
			w.logger.Warnf("Outbox LISTEN connect failed (attempt %d): %v", attempt, err)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}
			continue
		}
		attempt = 0

		w.receive(ctx, conn)
		conn.Close(ctx)
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("LISTEN "+outboxChannel, err)
	}

	w.logger.Infof("Subscribed to '%s' channel", outboxChannel)
	return conn, nil
}

// receive читает уведомления до потери соединения или остановки.
func (w *OutboxWorker) receive(ctx context.Context, conn *pgx.Conn) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, fallbackInterval)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				continue
			}
			w.logger.Warnf("Outbox LISTEN connection lost: %v. Reconnecting...", err)
			return
		}

		if notif != nil && notif.Channel == outboxChannel {
			w.logger.Debugf("Received outbox notification")
			w.notify()
		}
	}
}

// processBatch захватывает порцию событий (FOR UPDATE SKIP LOCKED в репозитории)
// и публикует их. Событие с ошибкой отправки остаётся в статусе processing
// и будет подхвачено повторно.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, batchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			w.logger.Warnf("Failed to publish outbox event %d: %v", event.ID, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("Failed to mark outbox event %d as processed: %v", event.ID, err)
		}
	}

	return true, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	if err := w.SendBytes(ctx, event.ProductID, event.Payload); err != nil {
		if isRetryableError(err) {
			return e.Wrap("temporary Kafka failure, will retry", err)
		}
		return e.Wrap("permanent Kafka failure", err)
	}
	return nil
}

// SendBytes публикует готовый payload события, ключ партиционирования — id товара.
func (w *OutboxWorker) SendBytes(ctx context.Context, productID int64, payload []byte) error {
	return w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(productID, payload))
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}
