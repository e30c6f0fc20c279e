package httpx

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/gin-gonic/gin"
)

// StatusFromError — HTTP-статус для ошибки из доменной таксономии.
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WriteError — пишет {"error": ...}; для 5xx текст ошибки наружу не отдаётся.
func WriteError(c *gin.Context, log ports.Logger, op string, err error) {
	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Errorf(c.Request.Context(), "%s failed status=%d err=%v", op, status, err)
		msg := "internal server error"
		if status == http.StatusBadGateway {
			msg = "remote api unavailable"
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	log.Warnf(c.Request.Context(), "%s rejected status=%d err=%v", op, status, err)
	c.JSON(status, gin.H{"error": err.Error()})
}
