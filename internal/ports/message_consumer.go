package ports

import (
	"context"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

// MessageConsumer — фоновый потребитель событий изменений (Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// EventPublisher — публикация событий изменений для клиентских кэшей.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
	Close() error
}
