// Package console — HTTP-адаптер консоли поверх клиентских хранилищ: модели отображения
// маршрутов, дерево интеграции, таблица шаблонов и websocket-лента изменений кэша.
package console

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/internal/store"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Stores — клиентские хранилища консоли.
type Stores struct {
	Routes       *store.RouteStore
	Integrations *store.IntegrationStore
	Escalations  *store.EscalationStore
}

// Display — установленные чаты: от них зависят блоки ChatOps и таблица шаблонов.
type Display struct {
	SlackInstalled    bool
	TelegramInstalled bool
}

// Handler — обработчики консоли.
type Handler struct {
	stores  Stores
	display Display
	ws      http.HandlerFunc
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — ws может быть nil, тогда /ws не регистрируется.
func NewHandler(stores Stores, display Display, ws http.HandlerFunc, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{stores: stores, display: display, ws: ws, log: log, timeout: timeout}
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// NewRouter — роутер консоли. otelServiceName == "" — без трейсинга.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "not found"}) })

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if h.ws != nil {
		r.GET("/ws", gin.WrapF(h.ws))
	}

	r.GET("/integrations", h.listIntegrations)
	r.POST("/integrations", h.createIntegration)
	r.GET("/integration_options", h.integrationOptions)
	r.GET("/counters", h.counters)
	r.GET("/escalation_options", h.escalationOptions)

	in := r.Group("/integrations/:id")
	{
		in.GET("", h.getIntegration)
		in.DELETE("", h.deleteIntegration)
		in.PUT("/team", h.changeTeam)
		in.POST("/demo_alert", h.integrationDemoAlert)
		in.GET("/routes", h.routesView)
		in.POST("/routes", h.createRoute)
		in.POST("/routes/move", h.moveRoute)
		in.GET("/tree", h.tree)
		in.GET("/templates", h.templates)
		in.PUT("/templates", h.saveTemplates)
		in.POST("/templates/preview", h.previewTemplate)
		in.GET("/heartbeat", h.heartbeat)
		in.GET("/custom_buttons", h.customButtons)
	}

	r.DELETE("/custom_buttons/:id", h.deleteCustomButton)

	routes := r.Group("/routes/:id")
	{
		routes.PATCH("", h.updateRoute)
		routes.DELETE("", h.deleteRoute)
		routes.PUT("/escalation_chain", h.setEscalationChain)
		routes.POST("/demo_alert", h.routeDemoAlert)
		routes.POST("/convert", h.convertRoute)
	}

	return r
}
