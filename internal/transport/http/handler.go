package rest

import (
	"context"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/gin-gonic/gin"
)

// Services — сервисы, которые обслуживает эталонный API.
type Services struct {
	Routes        ports.RouteService
	Integrations  ports.IntegrationService
	CustomButtons ports.CustomButtonService
	Escalations   ports.EscalationService
	Health        ports.HealthChecker
}

// Handler — HTTP-обработчики эталонного API.
type Handler struct {
	svc         Services
	log         ports.Logger
	timeout     time.Duration
	maintenance string
}

// NewHandler — timeout ограничивает каждый запрос (0 — без ограничения).
func NewHandler(svc Services, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{svc: svc, log: log, timeout: timeout}
}

// WithMaintenance — сообщение о режиме обслуживания для /maintenance/.
func (h *Handler) WithMaintenance(message string) *Handler {
	h.maintenance = message
	return h
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
