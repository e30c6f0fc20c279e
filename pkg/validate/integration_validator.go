package validate

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
)

var _ ports.IntegrationValidator = (*IntegrationValidator)(nil)

// ErrInvalidIntegration — базовая ошибка валидации интеграции (оборачивает domain.ErrValidation).
var ErrInvalidIntegration = fmt.Errorf("%w: integration", domain.ErrValidation)

const maxVerbalNameLen = 150

// IntegrationValidator — проверка имени и вида интеграции.
type IntegrationValidator struct{}

func NewIntegrationValidator() *IntegrationValidator { return &IntegrationValidator{} }

func (v *IntegrationValidator) Validate(_ context.Context, draft *domain.IntegrationDraft) error {
	if draft == nil {
		return fmt.Errorf("%w: интеграция не может быть nil", ErrInvalidIntegration)
	}
	name := strings.TrimSpace(draft.VerbalName)
	if name == "" {
		return fmt.Errorf("%w: verbal_name обязателен", ErrInvalidIntegration)
	}
	if utf8.RuneCountInString(name) > maxVerbalNameLen {
		return fmt.Errorf("%w: verbal_name длиннее %d символов", ErrInvalidIntegration, maxVerbalNameLen)
	}
	if _, ok := domain.LookupIntegrationOption(draft.Kind); !ok {
		return fmt.Errorf("%w: неизвестный вид интеграции %q", ErrInvalidIntegration, draft.Kind)
	}
	return nil
}
