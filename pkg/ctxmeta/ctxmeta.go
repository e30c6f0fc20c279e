// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, trace_id и т.д.).
// HTTP-слой, шлюз к удалённому API и логгер зависят от него, но не друг от друга.
package ctxmeta

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"

	// HeaderRequestID — заголовок, в котором request_id ходит между сервисами.
	HeaderRequestID = "X-Request-ID"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// EnsureRequestID — возвращает контекст с request_id, генерируя UUID при его отсутствии.
// Нужен там, где запрос рождается не из HTTP (Kafka, CLI).
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.New().String()
	return WithRequestID(ctx, id), id
}
