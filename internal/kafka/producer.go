package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer (для моков в тестах).
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры публикации событий изменений.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Producer — публикует события изменений; ключ сообщения — id интеграции,
// поэтому события одной интеграции попадают в одну партицию по порядку.
type Producer struct {
	writer    writer
	topic     string
	timeout   time.Duration
	closeOnce sync.Once
}

// NewProducer — конструктор; Hash-балансировщик по ключу.
func NewProducer(cfg *ProducerConfig) *Producer {
	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           timeout,
		AllowAutoTopicCreation: true,
	}
	return &Producer{writer: w, topic: cfg.Topic, timeout: timeout}
}

// Publish — синхронная запись одного события.
func (p *Producer) Publish(ctx context.Context, event domain.ChangeEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal change event: %w", err)
	}

	msg := kafka.Message{Key: []byte(event.IntegrationID), Value: raw, Time: event.OccurredAt}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: ctxmeta.HeaderRequestID, Value: []byte(rid)})
	}

	// Публикация не должна зависеть от отмены HTTP-запроса, который её вызвал.
	ctxWrite, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctxWrite, msg); err != nil {
		metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("write change event: %w", err)
	}
	metrics.KafkaMessagesPublished.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// Close — сбрасывает буфер и закрывает writer.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// NopPublisher — публикатор для запуска без брокера: события отбрасываются.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.ChangeEvent) error { return nil }
func (NopPublisher) Close() error                                      { return nil }
