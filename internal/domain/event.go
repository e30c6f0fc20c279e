package domain

import (
	"fmt"
	"time"
)

// EventKind — тип изменения на стороне API.
type EventKind string

const (
	EventRouteCreated       EventKind = "route_created"
	EventRouteUpdated       EventKind = "route_updated"
	EventRouteMoved         EventKind = "route_moved"
	EventRouteDeleted       EventKind = "route_deleted"
	EventIntegrationCreated EventKind = "integration_created"
	EventIntegrationUpdated EventKind = "integration_updated"
	EventIntegrationDeleted EventKind = "integration_deleted"
	EventTemplatesUpdated   EventKind = "templates_updated"
	EventDemoAlert          EventKind = "demo_alert"
)

// ChangeEvent — уведомление об изменении, публикуемое API в Kafka.
type ChangeEvent struct {
	Kind          EventKind `json:"kind"`
	IntegrationID string    `json:"integration_id"`
	RouteID       string    `json:"route_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// IsRouteEvent — событие меняет структуру маршрутов интеграции.
func (k EventKind) IsRouteEvent() bool {
	switch k {
	case EventRouteCreated, EventRouteUpdated, EventRouteMoved, EventRouteDeleted:
		return true
	}
	return false
}

// Validate — проверяет тип события и обязательные идентификаторы.
func (e *ChangeEvent) Validate() error {
	switch e.Kind {
	case EventRouteCreated, EventRouteUpdated, EventRouteMoved, EventRouteDeleted:
		if e.RouteID == "" {
			return fmt.Errorf("%w: route_id is required for %s", ErrInvalidEvent, e.Kind)
		}
	case EventIntegrationCreated, EventIntegrationUpdated, EventIntegrationDeleted,
		EventTemplatesUpdated, EventDemoAlert:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEvent, e.Kind)
	}
	if e.IntegrationID == "" {
		return fmt.Errorf("%w: integration_id is required", ErrInvalidEvent)
	}
	return nil
}
