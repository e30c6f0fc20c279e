//go:build integration

package kafka_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	ikafka "github.com/Gunvolt24/oncall_routes/internal/kafka"
	"github.com/Gunvolt24/oncall_routes/internal/store"
	"github.com/Gunvolt24/oncall_routes/internal/testutil"
	"github.com/Gunvolt24/oncall_routes/pkg/logger"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

// recordingHandler — обработчик, который строго декодирует событие и запоминает его.
type recordingHandler struct {
	mu     sync.Mutex
	events []domain.ChangeEvent
	fail   error
}

func (h *recordingHandler) HandleChangeEvent(_ context.Context, raw []byte) error {
	ev, err := store.DecodeChangeEvent(raw)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fail != nil {
		return h.fail
	}
	h.events = append(h.events, ev)
	return nil
}

func (h *recordingHandler) snapshot() []domain.ChangeEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]domain.ChangeEvent(nil), h.events...)
}

func (h *recordingHandler) waitFor(t *testing.T, n int, within time.Duration) []domain.ChangeEvent {
	t.Helper()
	deadline := time.Now().Add(within)
	for {
		if got := h.snapshot(); len(got) >= n {
			return got
		}
		if time.Now().After(deadline) {
			t.Fatalf("want %d events, got %d", n, len(h.snapshot()))
		}
		time.Sleep(200 * time.Millisecond)
	}
}

type kafkaStack struct {
	ctx    context.Context
	kf     *testutil.KafkaEnv
	topic  string
	group  string
	logger *logger.ZapLogger
}

func newKafkaStack(t *testing.T) *kafkaStack {
	t.Helper()

	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "routing-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	logg, closer, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	return &kafkaStack{ctx: ctx, kf: kf, topic: topic, group: group, logger: logg}
}

func (s *kafkaStack) consumer(h *recordingHandler, startOffset string) *ikafka.Consumer {
	return ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        s.kf.Brokers,
		Topic:          s.topic,
		GroupID:        s.group,
		StartOffset:    startOffset,
		ProcessTimeout: 2 * time.Second,
		RetryInitial:   100 * time.Millisecond,
		RetryMax:       time.Second,
	}, h, s.logger)
}

func (s *kafkaStack) producer(t *testing.T) *ikafka.Producer {
	t.Helper()
	p := ikafka.NewProducer(&ikafka.ProducerConfig{Brokers: s.kf.Brokers, Topic: s.topic})
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func writeRaw(t *testing.T, ctx context.Context, brokers []string, topic string, payload []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: payload}))
}

func event(kind domain.EventKind, integrationID, routeID string) domain.ChangeEvent {
	return domain.ChangeEvent{Kind: kind, IntegrationID: integrationID, RouteID: routeID, OccurredAt: time.Now().UTC()}
}

// 1) События одной интеграции приходят в порядке публикации
func TestKafka_PublishConsume_Ordered_TC(t *testing.T) {
	s := newKafkaStack(t)
	h := &recordingHandler{}

	runCtx, cancelRun := context.WithCancel(s.ctx)
	defer cancelRun()
	go func() { _ = s.consumer(h, "first").Run(runCtx) }()

	p := s.producer(t)
	require.NoError(t, p.Publish(s.ctx, event(domain.EventRouteCreated, "C1", "R1")))
	require.NoError(t, p.Publish(s.ctx, event(domain.EventRouteMoved, "C1", "R1")))
	require.NoError(t, p.Publish(s.ctx, event(domain.EventRouteDeleted, "C1", "R1")))

	got := h.waitFor(t, 3, 20*time.Second)
	require.Equal(t, domain.EventRouteCreated, got[0].Kind)
	require.Equal(t, domain.EventRouteMoved, got[1].Kind)
	require.Equal(t, domain.EventRouteDeleted, got[2].Kind)
}

// 2) Мусор и события без обязательных полей пропускаются, следующее валидное обрабатывается
func TestKafka_Skip_InvalidEvents_Then_HandleValid_TC(t *testing.T) {
	s := newKafkaStack(t)
	h := &recordingHandler{}

	runCtx, cancelRun := context.WithCancel(s.ctx)
	defer cancelRun()
	go func() { _ = s.consumer(h, "first").Run(runCtx) }()

	writeRaw(t, s.ctx, s.kf.Brokers, s.topic, []byte("not-a-json"))
	writeRaw(t, s.ctx, s.kf.Brokers, s.topic, []byte(`{"kind":"route_moved","integration_id":"C1"}`))
	require.NoError(t, s.producer(t).Publish(s.ctx, event(domain.EventDemoAlert, "C1", "")))

	got := h.waitFor(t, 1, 20*time.Second)
	require.Len(t, got, 1)
	require.Equal(t, domain.EventDemoAlert, got[0].Kind)
}

// 3) StartOffset="last": события до старта консьюмера игнорируются
func TestKafka_StartOffset_Last_IgnoresOld_TC(t *testing.T) {
	s := newKafkaStack(t)
	h := &recordingHandler{}
	p := s.producer(t)

	require.NoError(t, p.Publish(s.ctx, event(domain.EventIntegrationCreated, "C-old", "")))

	runCtx, cancelRun := context.WithCancel(s.ctx)
	defer cancelRun()
	go func() { _ = s.consumer(h, "last").Run(runCtx) }()

	deadline := time.Now().Add(20 * time.Second)
	for {
		require.NoError(t, p.Publish(s.ctx, event(domain.EventIntegrationCreated, "C-new", "")))
		if got := h.snapshot(); len(got) > 0 {
			for _, ev := range got {
				require.Equal(t, "C-new", ev.IntegrationID)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("new event not consumed in time")
		}
		time.Sleep(300 * time.Millisecond)
	}
}

// 4) At-least-once: при временной ошибке оффсет не коммитится, после рестарта событие приходит снова
func TestKafka_Redelivery_AfterRestart_NoCommit_TC(t *testing.T) {
	s := newKafkaStack(t)
	require.NoError(t, s.producer(t).Publish(s.ctx, event(domain.EventRouteUpdated, "C1", "R7")))

	failing := &recordingHandler{fail: errors.New("remote unavailable")}
	runCtx1, cancelRun1 := context.WithCancel(s.ctx)
	go func() { _ = s.consumer(failing, "first").Run(runCtx1) }()
	time.Sleep(2 * time.Second)
	cancelRun1()
	require.Empty(t, failing.snapshot())

	ok := &recordingHandler{}
	runCtx2, cancelRun2 := context.WithCancel(s.ctx)
	defer cancelRun2()
	go func() { _ = s.consumer(ok, "first").Run(runCtx2) }()

	got := ok.waitFor(t, 1, 25*time.Second)
	require.Equal(t, "R7", got[0].RouteID)
}
