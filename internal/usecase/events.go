package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/google/uuid"
)

// newID — публичный id сущности: префикс вида сущности + 12 символов UUID.
func newID(prefix string) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + raw[:12]
}

// publish — отправка события изменения; сбой публикации не ломает запрос.
func publish(ctx context.Context, pub ports.EventPublisher, log ports.Logger, kind domain.EventKind, integrationID, routeID string) {
	ev := domain.ChangeEvent{
		Kind:          kind,
		IntegrationID: integrationID,
		RouteID:       routeID,
		OccurredAt:    time.Now().UTC(),
	}
	if err := pub.Publish(ctx, ev); err != nil {
		log.Warnf(ctx, "publish change event failed kind=%s integration=%s route=%s err=%v", kind, integrationID, routeID, err)
	}
}
