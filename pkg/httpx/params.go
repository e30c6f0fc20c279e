package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [min, max].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePage - читает page/page_size из query с дефолтами и границами (page с 1).
func ParsePage(c *gin.Context, defaultSize, maxSize int) (page, size int) {
	page, size = 1, ClampInt(defaultSize, 1, maxSize)
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultSize))); err == nil {
		size = ClampInt(v, 1, maxSize)
	}
	return
}

// RequiredIntQuery - обязательный неотрицательный целый query-параметр.
// Ошибка оборачивает domain.ErrValidation.
func RequiredIntQuery(c *gin.Context, name string) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: query parameter %q is required", domain.ErrValidation, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: query parameter %q must be a non-negative integer", domain.ErrValidation, name)
	}
	return v, nil
}
