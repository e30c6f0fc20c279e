package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/gin-gonic/gin"
)

// MaxBodyBytes — предел тела запроса.
const MaxBodyBytes = 1 << 20

// BindStrict — строгий разбор JSON-тела: неизвестные поля и данные после объекта
// отклоняются. Ошибка оборачивает domain.ErrValidation.
func BindStrict(c *gin.Context, out any) error {
	raw, err := readBody(c)
	if err != nil {
		return err
	}
	return decodeStrict(raw, out)
}

// BindOptional — как BindStrict, но пустое тело (в том числе из одних пробелов
// или с неизвестной длиной) не ошибка: out не меняется, возвращается false.
func BindOptional(c *gin.Context, out any) (bool, error) {
	raw, err := readBody(c)
	if err != nil {
		return false, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	return true, decodeStrict(raw, out)
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrValidation, err)
	}
	return raw, nil
}

func decodeStrict(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid json: %v", domain.ErrValidation, err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after json object", domain.ErrValidation)
	}
	return nil
}
