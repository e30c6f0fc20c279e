package console

import (
	"bytes"
	"net/http"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/routeview"
	"github.com/Gunvolt24/oncall_routes/internal/treeview"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// RoutesResponse — маршруты интеграции в локальном порядке и состояние синхронизации.
type RoutesResponse struct {
	IntegrationID string                `json:"integration_id"`
	State         domain.SyncState      `json:"state"`
	Sequence      []string              `json:"sequence"`
	Routes        []routeview.RouteView `json:"routes"`
}

func (h *Handler) viewOptions(c *gin.Context) routeview.Options {
	opts := routeview.Options{
		SlackInstalled:    h.display.SlackInstalled,
		TelegramInstalled: h.display.TelegramInstalled,
	}
	ctx, cancel := h.requestContext(c)
	defer cancel()
	chains, err := h.stores.Escalations.List(ctx)
	if err != nil {
		h.log.Warnf(ctx, "escalation chains unavailable for route view err=%v", err)
		return opts
	}
	opts.Chains = chains
	return opts
}

func (h *Handler) routesResponse(c *gin.Context, integrationID string, routes []*domain.Route) RoutesResponse {
	state, _ := h.stores.Routes.State(integrationID)
	seq, _ := h.stores.Routes.Sequence(integrationID)
	if seq == nil {
		seq = []string{}
	}
	return RoutesResponse{
		IntegrationID: integrationID,
		State:         state,
		Sequence:      seq,
		Routes:        routeview.Build(routes, h.viewOptions(c)),
	}
}

// routesView — ?refresh=1 принудительно перечитывает маршруты с сервера.
func (h *Handler) routesView(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	var (
		routes []*domain.Route
		err    error
	)
	if c.Query("refresh") == "1" {
		routes, err = h.stores.Routes.FetchAll(ctx, id)
	} else {
		routes, err = h.stores.Routes.Routes(ctx, id)
	}
	if err != nil {
		httpx.WriteError(c, h.log, "RoutesView", err)
		return
	}
	c.JSON(http.StatusOK, h.routesResponse(c, id, routes))
}

func (h *Handler) tree(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	in, ok := h.stores.Integrations.Get(id)
	if !ok {
		loaded, err := h.stores.Integrations.Load(ctx, id)
		if err != nil {
			httpx.WriteError(c, h.log, "Tree", err)
			return
		}
		in = loaded
	}
	routes, err := h.stores.Routes.Routes(ctx, id)
	if err != nil {
		httpx.WriteError(c, h.log, "Tree", err)
		return
	}

	var counters *domain.Counters
	if cnt, ok := h.stores.Integrations.Counters(id); ok {
		counters = &cnt
	}
	views := routeview.Build(routes, h.viewOptions(c))
	tree := treeview.New(routeview.BuildTree(in, counters, views, nil)...)

	var buf bytes.Buffer
	if err := tree.Render(&buf); err != nil {
		httpx.WriteError(c, h.log, "Tree", err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

// createRoute — создание и пересинхронизация порядка: место нового маршрута знает сервер.
func (h *Handler) createRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	var draft domain.RouteDraft
	if err := httpx.BindStrict(c, &draft); err != nil {
		httpx.WriteError(c, h.log, "CreateRoute", err)
		return
	}
	draft.IntegrationID = id

	if _, err := h.stores.Routes.Insert(ctx, &draft); err != nil {
		httpx.WriteError(c, h.log, "CreateRoute", err)
		return
	}
	routes, err := h.stores.Routes.FetchAll(ctx, id)
	if err != nil {
		httpx.WriteError(c, h.log, "CreateRoute", err)
		return
	}
	c.JSON(http.StatusCreated, h.routesResponse(c, id, routes))
}

type moveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// moveRoute — оптимистичный перенос. Ответ содержит порядок после сверки,
// даже если сервер отказал.
func (h *Handler) moveRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	var req moveRequest
	if err := httpx.BindStrict(c, &req); err != nil {
		httpx.WriteError(c, h.log, "MoveRoute", err)
		return
	}
	if err := h.stores.Routes.MoveToPosition(ctx, id, req.From, req.To); err != nil {
		httpx.WriteError(c, h.log, "MoveRoute", err)
		return
	}
	routes, _ := h.stores.Routes.Cached(id)
	c.JSON(http.StatusOK, h.routesResponse(c, id, routes))
}

func (h *Handler) deleteRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.stores.Routes.DeleteRoute(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "DeleteRoute", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) updateRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var patch domain.RoutePatch
	if err := httpx.BindStrict(c, &patch); err != nil {
		httpx.WriteError(c, h.log, "UpdateRoute", err)
		return
	}
	route, err := h.stores.Routes.Update(ctx, c.Param("id"), &patch)
	if err != nil {
		httpx.WriteError(c, h.log, "UpdateRoute", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

type chainRequest struct {
	EscalationChain string `json:"escalation_chain"`
}

// setEscalationChain — пустая строка снимает цепочку.
func (h *Handler) setEscalationChain(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req chainRequest
	if err := httpx.BindStrict(c, &req); err != nil {
		httpx.WriteError(c, h.log, "SetEscalationChain", err)
		return
	}
	route, err := h.stores.Routes.SetEscalationChain(ctx, c.Param("id"), req.EscalationChain)
	if err != nil {
		httpx.WriteError(c, h.log, "SetEscalationChain", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) routeDemoAlert(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.stores.Routes.SendDemoAlert(ctx, c.Param("id")); err != nil {
		httpx.WriteError(c, h.log, "RouteDemoAlert", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) convertRoute(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	route, err := h.stores.Routes.ConvertToJinja2(ctx, c.Param("id"))
	if err != nil {
		httpx.WriteError(c, h.log, "ConvertRoute", err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) escalationOptions(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	chains, err := h.stores.Escalations.List(ctx)
	if err != nil {
		httpx.WriteError(c, h.log, "EscalationOptions", err)
		return
	}
	c.JSON(http.StatusOK, routeview.EscalationOptions(chains))
}
