package rest

import (
	"fmt"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listRoutes(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	integrationID := c.Query("alert_receive_channel")
	if integrationID == "" {
		httpx.WriteError(c, h.log, "ListRoutes", fmt.Errorf("%w: alert_receive_channel is required", domain.ErrValidation))
		return
	}
	routes, err := h.svc.Routes.List(ctx, integrationID)
	if err != nil {
		httpx.WriteError(c, h.log, "ListRoutes", err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *Handler) getRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	route, err := h.svc.Routes.Get(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "GetRoute", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) createRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var draft domain.RouteDraft
	if err := httpx.BindStrict(c, &draft); err != nil {
		httpx.WriteError(c, h.log, "CreateRoute", err)
		return
	}
	route, err := h.svc.Routes.Create(ctx, &draft)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateRoute", err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *Handler) updateRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var patch domain.RoutePatch
	if err := httpx.BindStrict(c, &patch); err != nil {
		httpx.WriteError(c, h.log, "UpdateRoute", err)
		return
	}
	route, err := h.svc.Routes.Update(ctx, c.Param("id"), &patch)
	if err != nil {
		httpx.WriteError(c, h.log, "UpdateRoute", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) moveRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	position, err := httpx.RequiredIntQuery(c, "position")
	if err != nil {
		httpx.WriteError(c, h.log, "MoveRoute", err)
		return
	}
	if err := h.svc.Routes.Move(ctx, c.Param("id"), position); err != nil {
		httpx.WriteError(c, h.log, "MoveRoute", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Routes.Delete(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "DeleteRoute", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) sendRouteDemoAlert(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.svc.Routes.SendDemoAlert(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "SendRouteDemoAlert", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) convertRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	route, err := h.svc.Routes.ConvertToJinja2(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "ConvertRouteToJinja2", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) listEscalationChains(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	chains, err := h.svc.Escalations.List(ctx)
	if err != nil {
		httpx.WriteError(c, h.log, "ListEscalationChains", err)
		return
	}
	if chains == nil {
		chains = []*domain.EscalationChain{}
	}
	c.JSON(http.StatusOK, chains)
}

type createChainRequest struct {
	Name string  `json:"name"`
	Team *string `json:"team"`
}

func (h *Handler) createEscalationChain(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req createChainRequest
	if err := httpx.BindStrict(c, &req); err != nil {
		httpx.WriteError(c, h.log, "CreateEscalationChain", err)
		return
	}
	chain, err := h.svc.Escalations.Create(ctx, req.Name, req.Team)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateEscalationChain", err)
		return
	}
	c.JSON(http.StatusCreated, chain)
}
