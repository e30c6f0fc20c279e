package kafka

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/kafka/mocks"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// runAsync запускает Consumer.Run в отдельном горутине и возвращает канал с ошибкой.
func runAsync(ctx context.Context, c *Consumer) <-chan error {
	errCh := make(chan error, 1)
	go func() { errCh <- c.Run(ctx) }()
	return errCh
}

func newTestConsumer(r reader, s eventHandler) *Consumer {
	return &Consumer{
		reader: r, handler: s, log: nopLogger{},
		processTimeout: 30 * time.Millisecond,
		retryInitial:   5 * time.Millisecond,
		retryMax:       10 * time.Millisecond,
		jitterRand:     rand.New(rand.NewSource(1)),
	}
}

// blockUntilCancel — следующий FetchMessage ждёт остановки Run.
func blockUntilCancel(r *mocks.Mockreader) {
	r.EXPECT().FetchMessage(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (kafka.Message, error) {
			<-ctx.Done()
			return kafka.Message{}, ctx.Err()
		})
}

// Решение о коммите оффсета по результату обработки события.
func TestRun_CommitDecision(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		commit     bool  // ожидается CommitMessages
		commitErr  error // ошибка коммита не останавливает цикл
	}{
		{name: "applied", commit: true},
		{name: "invalid event skipped", handlerErr: fmt.Errorf("decode: %w", domain.ErrInvalidEvent), commit: true},
		{name: "remote unavailable redelivers", handlerErr: fmt.Errorf("list routes: %w", domain.ErrRemoteUnavailable)},
		{name: "commit error only warns", commit: true, commitErr: errors.New("rebalance in progress")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			r := mocks.NewMockreader(ctrl)
			h := mocks.NewMockeventHandler(ctrl)

			r.EXPECT().Config().Return(kafka.ReaderConfig{Topic: "oncall.changes", GroupID: "g1"}).AnyTimes()
			msg := kafka.Message{Key: []byte("I1"), Offset: 11, Value: []byte(`{"kind":"route_moved"}`)}
			r.EXPECT().FetchMessage(gomock.Any()).Return(msg, nil)
			h.EXPECT().HandleChangeEvent(gomock.Any(), msg.Value).Return(tt.handlerErr)
			if tt.commit {
				r.EXPECT().CommitMessages(gomock.Any(), msg).Return(tt.commitErr)
			}
			blockUntilCancel(r)

			ctx, cancel := context.WithCancel(context.Background())
			errCh := runAsync(ctx, newTestConsumer(r, h))
			time.Sleep(20 * time.Millisecond)
			cancel()

			select {
			case err := <-errCh:
				if !errors.Is(err, context.Canceled) {
					t.Fatalf("want context.Canceled, got %v", err)
				}
			case <-time.After(200 * time.Millisecond):
				t.Fatal("Run did not stop")
			}
		})
	}
}

// Ошибки брокера ретраятся до отмены контекста.
func TestRun_FetchErrorsUntilDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	r.EXPECT().Config().Return(kafka.ReaderConfig{Topic: "oncall.changes"}).AnyTimes()
	r.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("broker not available")).MinTimes(2)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	if err := newTestConsumer(r, mocks.NewMockeventHandler(ctrl)).Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want DeadlineExceeded, got %v", err)
	}
}

// Close закрывает reader.
func TestClose_DelegatesToReader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockeventHandler(ctrl)

	r.EXPECT().Close().Return(nil).Times(1)

	c := newTestConsumer(r, s)
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
}

// Обработчик видит request_id, сгенерированный для сообщения.
func TestHandleMessage_AddsRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockeventHandler(ctrl)

	s.EXPECT().HandleChangeEvent(gomock.Any(), []byte("ok")).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			if _, ok := ctxmeta.RequestIDFromContext(ctx); !ok {
				t.Fatalf("request_id must be set for a consumed message")
			}
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("process timeout must bound the handler")
			}
			return nil
		})

	c := newTestConsumer(r, s)
	if !c.handleMessage(context.Background(), "routing.changes", &kafka.Message{Value: []byte("ok")}) {
		t.Fatalf("successful message must be committed")
	}
}

// request_id издателя переходит в контекст обработчика.
func TestHandleMessage_RequestIDFromHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockreader(ctrl)
	s := mocks.NewMockeventHandler(ctrl)

	s.EXPECT().HandleChangeEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []byte) error {
			if rid, _ := ctxmeta.RequestIDFromContext(ctx); rid != "rid-from-api" {
				t.Fatalf("want rid-from-api, got %q", rid)
			}
			return nil
		})

	c := newTestConsumer(r, s)
	msg := &kafka.Message{
		Key:     []byte("I1"),
		Value:   []byte(`{}`),
		Headers: []kafka.Header{{Key: ctxmeta.HeaderRequestID, Value: []byte("rid-from-api")}},
	}
	c.handleMessage(context.Background(), "routing.changes", msg)
}

func TestBackoff_GrowsCapsAndResets(t *testing.T) {
	c := newTestConsumer(nil, nil)
	c.retryInitial = 4 * time.Millisecond
	c.retryMax = 10 * time.Millisecond
	b := c.newBackoff()

	bounds := []time.Duration{4, 8, 10, 10}
	for i, upper := range bounds {
		upper *= time.Millisecond
		d := b.next()
		if d < upper/2 || d > upper {
			t.Fatalf("attempt %d: %s not in [%s..%s]", i, d, upper/2, upper)
		}
	}
	b.reset()
	if d := b.next(); d > 4*time.Millisecond {
		t.Fatalf("after reset want <= 4ms, got %s", d)
	}
}
