package kafka

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/Gunvolt24/oncall_routes/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// messageContext — контекст обработки: request_id берётся из заголовка,
// который проставил издатель, иначе генерируется новый.
func messageContext(ctx context.Context, msg *kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == ctxmeta.HeaderRequestID && len(h.Value) > 0 {
			return ctxmeta.WithRequestID(ctx, string(h.Value))
		}
	}
	ctx, _ = ctxmeta.EnsureRequestID(ctx)
	return ctx
}

// handleMessage — обработка одного события; true — оффсет нужно закоммитить.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxMsg := messageContext(ctx, msg)
	ctxRun, cancel := context.WithTimeout(ctxMsg, c.processTimeout)
	err := c.handler.HandleChangeEvent(ctxRun, msg.Value)
	cancel()

	if err == nil {
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	}
	metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
	if errors.Is(err, domain.ErrInvalidEvent) {
		c.log.Warnf(ctxMsg, "change event skipped integration=%s partition=%d offset=%d err=%v",
			msg.Key, msg.Partition, msg.Offset, err)
		return true
	}
	c.log.Warnf(ctxMsg, "change event not applied integration=%s partition=%d offset=%d err=%v; will redeliver",
		msg.Key, msg.Partition, msg.Offset, err)
	return false
}

// commitSafely — ошибка коммита только логируется: событие придёт повторно,
// а сверка с сервером идемпотентна.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if err := c.reader.CommitMessages(ctx, *msg); err != nil {
		c.log.Warnf(ctx, "commit failed partition=%d offset=%d err=%v", msg.Partition, msg.Offset, err)
	}
}

// backoff — экспоненциальная задержка с equal-jitter, ограниченная сверху.
type backoff struct {
	initial, max, cur time.Duration
	rnd               *rand.Rand
}

func (c *Consumer) newBackoff() *backoff {
	return &backoff{initial: c.retryInitial, max: c.retryMax, cur: c.retryInitial, rnd: c.jitterRand}
}

// next — задержка для текущей попытки; следующая будет вдвое длиннее.
func (b *backoff) next() time.Duration {
	d := b.jitter(b.cur)
	b.cur = minDuration(b.cur*2, b.max)
	return d
}

func (b *backoff) reset() { b.cur = b.initial }

// jitter — половина задержки фиксирована, вторая половина случайна.
func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
