package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listCustomButtons(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	integrationID := c.Query("alert_receive_channel")
	if integrationID == "" {
		httpx.WriteError(c, h.log, "ListCustomButtons", fmt.Errorf("%w: alert_receive_channel is required", domain.ErrValidation))
		return
	}
	buttons, err := h.svc.CustomButtons.List(ctx, integrationID)
	if err != nil {
		httpx.WriteError(c, h.log, "ListCustomButtons", err)
		return
	}
	if buttons == nil {
		buttons = []*domain.CustomButton{}
	}
	c.JSON(http.StatusOK, buttons)
}

func (h *Handler) createCustomButton(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var draft domain.CustomButtonDraft
	if err := httpx.BindStrict(c, &draft); err != nil {
		httpx.WriteError(c, h.log, "CreateCustomButton", err)
		return
	}
	button, err := h.svc.CustomButtons.Create(ctx, &draft)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateCustomButton", err)
		return
	}
	c.JSON(http.StatusCreated, button)
}

func (h *Handler) deleteCustomButton(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.CustomButtons.Delete(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "DeleteCustomButton", err)
		return
	}
	c.Status(http.StatusNoContent)
}
