package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// EventHandler — применяет события изменений с сервера к локальным хранилищам.
// Ошибки с domain.ErrInvalidEvent означают «сообщение не обработать никогда»,
// остальные ошибки временные.
type EventHandler struct {
	routes       *RouteStore
	integrations *IntegrationStore
	log          ports.Logger
}

func NewEventHandler(routes *RouteStore, integrations *IntegrationStore, log ports.Logger) *EventHandler {
	return &EventHandler{routes: routes, integrations: integrations, log: log}
}

// DecodeChangeEvent — строгий разбор события: неизвестные поля и данные после объекта запрещены.
func DecodeChangeEvent(raw []byte) (domain.ChangeEvent, error) {
	var ev domain.ChangeEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return ev, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return ev, fmt.Errorf("%w: trailing data", domain.ErrInvalidEvent)
	}
	if err := ev.Validate(); err != nil {
		return ev, err
	}
	return ev, nil
}

// HandleChangeEvent — разбор и применение одного события.
func (h *EventHandler) HandleChangeEvent(ctx context.Context, raw []byte) error {
	ev, err := DecodeChangeEvent(raw)
	if err != nil {
		h.log.Warnf(ctx, "invalid change event err=%v", err)
		return err
	}
	return h.Apply(ctx, ev)
}

// Apply — применение проверенного события.
func (h *EventHandler) Apply(ctx context.Context, ev domain.ChangeEvent) error {
	switch {
	case ev.Kind.IsRouteEvent():
		// Неизвестные локально интеграции не загружаем: их никто не смотрит.
		if h.routes.Loaded(ev.IntegrationID) {
			if _, err := h.routes.FetchAll(ctx, ev.IntegrationID); err != nil {
				return err
			}
		}
		if ev.Kind != domain.EventRouteUpdated {
			h.integrations.RefreshCountersBestEffort(ctx)
		}

	case ev.Kind == domain.EventIntegrationDeleted:
		h.integrations.Forget(ev.IntegrationID)
		h.routes.Forget(ev.IntegrationID)

	case ev.Kind == domain.EventIntegrationCreated, ev.Kind == domain.EventIntegrationUpdated:
		if _, err := h.integrations.Load(ctx, ev.IntegrationID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				h.routes.Forget(ev.IntegrationID)
				return nil
			}
			return err
		}

	case ev.Kind == domain.EventTemplatesUpdated:
		if _, ok := h.integrations.Templates(ev.IntegrationID); ok {
			if _, err := h.integrations.LoadTemplates(ctx, ev.IntegrationID); err != nil {
				return err
			}
		}

	case ev.Kind == domain.EventDemoAlert:
		if err := h.integrations.RefreshCounters(ctx); err != nil {
			return err
		}
	}

	h.log.Infof(ctx, "change event applied kind=%s integration=%s route=%s", ev.Kind, ev.IntegrationID, ev.RouteID)
	return nil
}
