package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// eventHandler — обработчик событий изменений: декодирует событие
// и сверяет затронутые последовательности кэша с сервером.
type eventHandler interface {
	HandleChangeEvent(ctx context.Context, raw []byte) error
}

// Consumer — обёртка над kafka.Reader + обработчик событий + logger.
type Consumer struct {
	reader         reader
	handler        eventHandler
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand // источник джиттера для backoff
	closeOnce      sync.Once
}

// NewConsumer — консьюмер событий изменений; ReaderConfig() без автокоммита.
// Нулевые таймауты заменяются значениями по умолчанию.
func NewConsumer(cfg *ConsumerConfig, handler eventHandler, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		handler:        handler,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, 5*time.Second),
		retryInitial:   orDefault(cfg.RetryInitial, time.Second),
		retryMax:       orDefault(cfg.RetryMax, 30*time.Second),
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — цикл чтения событий изменений с ручным коммитом оффсетов.
// Обработанное и невалидное событие коммитятся; при временной ошибке оффсет
// остаётся на месте и событие будет прочитано повторно.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "change event consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	fetchRetry := c.newBackoff()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			wait := fetchRetry.next()
			c.log.Warnf(ctx, "fetch failed topic=%s err=%v retry_in=%s", rc.Topic, err, wait)
			if !sleepCtx(ctx, wait) {
				return ctx.Err()
			}
			continue
		}
		fetchRetry.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.handleMessage(ctx, rc.Topic, &msg) {
			c.commitSafely(ctx, &msg)
			continue
		}
		// Пауза перед повторным чтением того же события.
		_ = sleepCtx(ctx, fetchRetry.jitter(minDuration(c.retryInitial, 500*time.Millisecond)))
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
