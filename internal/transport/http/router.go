package rest

import (
	"net/http"

	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — роутер эталонного API. otelServiceName == "" — без трейсинга.
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

	r.GET("/health/", h.health)
	r.GET("/ready/", h.ready)
	r.GET("/startup/", h.ready)
	r.GET("/maintenance/", h.maintenanceMode)

	api := r.Group("/api")
	{
		integrations := api.Group("/alert_receive_channels")
		integrations.GET("/", h.listIntegrations)
		integrations.POST("/", h.createIntegration)
		integrations.GET("/counters/", h.counters)
		integrations.GET("/integration_options/", h.integrationOptions)
		integrations.GET("/:id/", h.getIntegration)
		integrations.PUT("/:id/", h.updateIntegration)
		integrations.DELETE("/:id/", h.deleteIntegration)
		integrations.PUT("/:id/change_team/", h.changeTeam)
		integrations.POST("/:id/send_demo_alert/", h.sendIntegrationDemoAlert)
		integrations.POST("/:id/preview_template/", h.previewTemplate)

		api.GET("/alert_receive_channel_templates/:id/", h.getTemplates)
		api.PUT("/alert_receive_channel_templates/:id/", h.saveTemplates)

		routes := api.Group("/channel_filters")
		routes.GET("/", h.listRoutes)
		routes.POST("/", h.createRoute)
		routes.GET("/:id/", h.getRoute)
		routes.PUT("/:id/", h.updateRoute)
		routes.DELETE("/:id/", h.deleteRoute)
		routes.PUT("/:id/move_to_position/", h.moveRoute)
		routes.POST("/:id/send_demo_alert/", h.sendRouteDemoAlert)
		routes.POST("/:id/convert_from_regex_to_jinja2/", h.convertRoute)

		buttons := api.Group("/custom_buttons")
		buttons.GET("/", h.listCustomButtons)
		buttons.POST("/", h.createCustomButton)
		buttons.DELETE("/:id/", h.deleteCustomButton)

		api.GET("/escalation_chains/", h.listEscalationChains)
		api.POST("/escalation_chains/", h.createEscalationChain)
	}

	return r
}
