package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// health — процесс жив; зависимости не проверяются.
func (h *Handler) health(c *gin.Context) {
	c.String(http.StatusOK, "Ok.")
}

// ready — готовность: хранилище отвечает на ping.
func (h *Handler) ready(c *gin.Context) {
	if h.svc.Health == nil {
		c.String(http.StatusOK, "Ok.")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	if err := h.svc.Health.Ping(ctx); err != nil {
		h.log.Warnf(ctx, "readiness probe failed err=%v", err)
		c.String(http.StatusServiceUnavailable, "database is not ready")
		return
	}
	c.String(http.StatusOK, "Ok.")
}

// maintenanceMode — пустое сообщение означает, что обслуживание не идёт.
func (h *Handler) maintenanceMode(c *gin.Context) {
	if h.maintenance == "" {
		c.JSON(http.StatusOK, gin.H{"currently_undergoing_maintenance_message": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"currently_undergoing_maintenance_message": h.maintenance})
}
