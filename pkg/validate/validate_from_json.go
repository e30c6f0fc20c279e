package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

// ValidateRouteDraftFromJSON — строгий разбор и валидация черновика маршрута из JSON.
func ValidateRouteDraftFromJSON(ctx context.Context, validator ports.RouteValidator, raw []byte) (*domain.RouteDraft, error) {
	var draft domain.RouteDraft
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidRoute, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidRoute)
	}
	if err := validator.ValidateDraft(ctx, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}
