package domain

import (
	"errors"
	"fmt"
)

// Таксономия ошибок, общая для клиента и эталонного API.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrInvalidEvent — событие изменения не парсится или не проходит проверку.
	ErrInvalidEvent = fmt.Errorf("%w: invalid change event", ErrValidation)
)
