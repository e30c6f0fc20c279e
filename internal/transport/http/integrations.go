package rest

import (
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// listIntegrations — без page возвращает массив, с page — страницу {count, page, results}.
func (h *Handler) listIntegrations(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	search := c.Query("search")
	if _, paged := c.GetQuery("page"); paged {
		page, size := httpx.ParsePage(c, defaultPageSize, maxPageSize)
		out, err := h.svc.Integrations.Search(ctx, search, page, size)
		if err != nil {
			httpx.WriteError(c, h.log, "SearchIntegrations", err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	items, err := h.svc.Integrations.List(ctx, search)
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

	in, err := h.svc.Integrations.Get(ctx, c.Param("id"))
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
	in, err := h.svc.Integrations.Create(ctx, &draft)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateIntegration", err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (h *Handler) updateIntegration(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var draft domain.IntegrationDraft
	if err := httpx.BindStrict(c, &draft); err != nil {
		httpx.WriteError(c, h.log, "UpdateIntegration", err)
		return
	}
	in, err := h.svc.Integrations.Update(ctx, c.Param("id"), &draft)
	if err != nil {
		httpx.WriteError(c, h.log, "UpdateIntegration", err)
		return
	}
	c.JSON(http.StatusOK, in)
}

func (h *Handler) deleteIntegration(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Integrations.Delete(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "DeleteIntegration", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) counters(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.svc.Integrations.Counters(ctx)
	if err != nil {
		httpx.WriteError(c, h.log, "Counters", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) integrationOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.IntegrationOptions())
}

func (h *Handler) changeTeam(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Integrations.ChangeTeam(ctx, c.Param("id"), c.Query("team_id")); err != nil {
		httpx.WriteError(c, h.log, "ChangeTeam", err)
		return
	}
	c.Status(http.StatusNoContent)
}

type demoAlertRequest struct {
	Payload map[string]any `json:"demo_alert_payload"`
}

// sendIntegrationDemoAlert — тело необязательно.
func (h *Handler) sendIntegrationDemoAlert(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req demoAlertRequest
	if _, err := httpx.BindOptional(c, &req); err != nil {
		httpx.WriteError(c, h.log, "SendDemoAlert", err)
		return
	}
	if err := h.svc.Integrations.SendDemoAlert(ctx, c.Param("id"), req.Payload); err != nil {
		httpx.WriteError(c, h.log, "SendDemoAlert", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getTemplates(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.svc.Integrations.Templates(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "GetTemplates", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) saveTemplates(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var in domain.Templates
	if err := httpx.BindStrict(c, &in); err != nil {
		httpx.WriteError(c, h.log, "SaveTemplates", err)
		return
	}
	out, err := h.svc.Integrations.SaveTemplates(ctx, c.Param("id"), in)
	if err != nil {
		httpx.WriteError(c, h.log, "SaveTemplates", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) previewTemplate(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req domain.TemplatePreviewRequest
	if err := httpx.BindStrict(c, &req); err != nil {
		httpx.WriteError(c, h.log, "PreviewTemplate", err)
		return
	}
	out, err := h.svc.Integrations.PreviewTemplate(ctx, c.Param("id"), &req)
	if err != nil {
		httpx.WriteError(c, h.log, "PreviewTemplate", err)
		return
	}
	c.JSON(http.StatusOK, out)
}
