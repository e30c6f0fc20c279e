package console

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/templates"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listIntegrations(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	search := c.Query("search")
	if _, paged := c.GetQuery("page"); paged {
		page, _ := httpx.ParsePage(c, 50, 100)
		out, err := h.stores.Integrations.Search(ctx, search, page)
		if err != nil {
			httpx.WriteError(c, h.log, "SearchIntegrations", err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	items, err := h.stores.Integrations.List(ctx, search)
	if err != nil {
		httpx.WriteError(c, h.log, "ListIntegrations", err)
		return
	}
	if items == nil {
		items = []*domain.Integration{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getIntegration(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	in, err := h.stores.Integrations.Load(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "GetIntegration", err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *Handler) createIntegration(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var draft domain.IntegrationDraft
	if err := httpx.BindStrict(c, &draft); err != nil {
		httpx.WriteError(c, h.log, "CreateIntegration", err)
		return
	}
	in, err := h.stores.Integrations.Create(ctx, &draft)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateIntegration", err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

// deleteIntegration — интеграция уходит из кэша вместе с порядком её маршрутов.
func (h *Handler) deleteIntegration(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	if err := h.stores.Integrations.Delete(ctx, id); err != nil {
		httpx.WriteError(c, h.log, "DeleteIntegration", err)
		return
	}
	h.stores.Routes.Forget(id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) changeTeam(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	in, err := h.stores.Integrations.ChangeTeam(ctx, c.Param("id"), c.Query("team_id"))
	if err != nil {
		httpx.WriteError(c, h.log, "ChangeTeam", err)
		return
	}
	c.JSON(http.StatusOK, in)
}

type demoAlertRequest struct {
	Payload map[string]any `json:"demo_alert_payload"`
}

func (h *Handler) integrationDemoAlert(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req demoAlertRequest
	if _, err := httpx.BindOptional(c, &req); err != nil {
		httpx.WriteError(c, h.log, "IntegrationDemoAlert", err)
		return
	}
	if err := h.stores.Integrations.SendDemoAlert(ctx, c.Param("id"), req.Payload); err != nil {
		httpx.WriteError(c, h.log, "IntegrationDemoAlert", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) integrationOptions(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	opts, err := h.stores.Integrations.LoadOptions(ctx)
	if err != nil {
		httpx.WriteError(c, h.log, "IntegrationOptions", err)
		return
	}
	c.JSON(http.StatusOK, opts)
}

// counters — при недоступном сервере отдаются последние известные счётчики.
func (h *Handler) counters(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	h.stores.Integrations.RefreshCountersBestEffort(ctx)
	c.JSON(http.StatusOK, h.stores.Integrations.AllCounters())
}

// TemplatesResponse — таблица шаблонов с учётом установленных чатов и их значения.
type TemplatesResponse struct {
	Blocks []templates.Block `json:"blocks"`
	Values domain.Templates  `json:"values"`
}

func (h *Handler) templates(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	values, err := h.stores.Integrations.LoadTemplates(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "Templates", err)
		return
	}
	c.JSON(http.StatusOK, TemplatesResponse{
		Blocks: templates.ForChannels(h.display.SlackInstalled, h.display.TelegramInstalled),
		Values: values,
	})
}

func (h *Handler) saveTemplates(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var in domain.Templates
	if err := httpx.BindStrict(c, &in); err != nil {
		httpx.WriteError(c, h.log, "SaveTemplates", err)
		return
	}
	saved, err := h.stores.Integrations.SaveTemplates(ctx, c.Param("id"), in)
	if err != nil {
		httpx.WriteError(c, h.log, "SaveTemplates", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *Handler) previewTemplate(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req domain.TemplatePreviewRequest
	if err := httpx.BindStrict(c, &req); err != nil {
		httpx.WriteError(c, h.log, "PreviewTemplate", err)
		return
	}
	out, err := h.stores.Integrations.PreviewTemplate(ctx, c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.log, "PreviewTemplate", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// heartbeat — heartbeat интеграции; незагруженная интеграция сначала читается с сервера.
func (h *Handler) heartbeat(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	if _, ok := h.stores.Integrations.Get(id); !ok {
		if _, err := h.stores.Integrations.Load(ctx, id); err != nil {
			httpx.WriteError(c, h.log, "Heartbeat", err)
			return
		}
	}
	hb, ok := h.stores.Integrations.Heartbeat(id)
	if !ok {
		httpx.WriteError(c, h.log, "Heartbeat", fmt.Errorf("%w: integration %s has no heartbeat", domain.ErrNotFound, id))
		return
	}
	c.JSON(http.StatusOK, hb)
}

func (h *Handler) customButtons(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	buttons, err := h.stores.Integrations.LoadCustomButtons(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "CustomButtons", err)
		return
	}
	if buttons == nil {
		buttons = []*domain.CustomButton{}
	}
	c.JSON(http.StatusOK, buttons)
}

func (h *Handler) deleteCustomButton(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.stores.Integrations.DeleteCustomButton(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "DeleteCustomButton", err)
		return
	}
	c.Status(http.StatusNoContent)
}
