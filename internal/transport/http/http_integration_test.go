//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/oncall_routes/internal/cache/memory"
	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/gateway"
	"github.com/Gunvolt24/oncall_routes/internal/kafka"
	pgrepo "github.com/Gunvolt24/oncall_routes/internal/repo/postgres"
	"github.com/Gunvolt24/oncall_routes/internal/store"
	"github.com/Gunvolt24/oncall_routes/internal/testutil"
	rest "github.com/Gunvolt24/oncall_routes/internal/transport/http"
	"github.com/Gunvolt24/oncall_routes/internal/usecase"
	"github.com/Gunvolt24/oncall_routes/pkg/logger"
	"github.com/Gunvolt24/oncall_routes/pkg/validate"
)

type stack struct {
	ts      *httptest.Server
	gw      *gateway.Client
	routes  *pgrepo.RouteRepository
	integr  *pgrepo.IntegrationRepository
	buttons *pgrepo.CustomButtonRepository
	cleanup func()
}

// startStack — Postgres в контейнере, эталонный API поверх него и шлюз к нему.
func startStack(t *testing.T) *stack {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, syncLog, err := logger.NewZapLogger(false)
	require.NoError(t, err)

	routeRepo := pgrepo.NewRouteRepository(pg.Pool)
	integrationRepo := pgrepo.NewIntegrationRepository(pg.Pool)
	chainRepo := pgrepo.NewEscalationRepository(pg.Pool)
	buttonRepo := pgrepo.NewCustomButtonRepository(pg.Pool)
	pub := kafka.NopPublisher{}

	h := rest.NewHandler(rest.Services{
		Routes:        usecase.NewRouteService(routeRepo, integrationRepo, chainRepo, validate.NewRouteValidator(), pub, logg),
		Integrations:  usecase.NewIntegrationService(integrationRepo, validate.NewIntegrationValidator(), pub, logg, "inbound.example.com"),
		CustomButtons: usecase.NewCustomButtonService(buttonRepo, integrationRepo, logg),
		Escalations:   usecase.NewEscalationService(chainRepo, logg),
		Health:        pg.Pool,
	}, logg, 5*time.Second)
	ts := httptest.NewServer(rest.NewRouter(h, ""))

	return &stack{
		ts:     ts,
		gw:     gateway.NewClient(ts.URL+"/api", "", 5*time.Second),
		routes:  routeRepo,
		integr:  integrationRepo,
		buttons: buttonRepo,
		cleanup: func() {
			ts.Close()
			_ = syncLog()
			_ = stop(context.Background())
		},
	}
}

// seed — интеграция с маршрутами terms... и default в конце.
func (s *stack) seed(t *testing.T, terms ...string) (*domain.Integration, []string) {
	t.Helper()
	ctx := context.Background()

	in, def := testutil.MakeIntegration()
	require.NoError(t, s.integr.Create(ctx, in, def))
	ids := make([]string, 0, len(terms)+1)
	for _, term := range terms {
		r, err := s.routes.Create(ctx, testutil.MakeRoute(in.ID, term))
		require.NoError(t, err)
		ids = append(ids, r.ID)
	}
	return in, append(ids, def.ID)
}

func ids(routes []*domain.Route) []string {
	out := make([]string, 0, len(routes))
	for _, r := range routes {
		out = append(out, r.ID)
	}
	return out
}

// Оптимистичный перенос через шлюз: после сверки локальный порядок совпадает с серверным.
func TestHTTP_MoveRoute_ReconcilesCache_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()
	ctx := context.Background()

	in, seeded := s.seed(t, "alpha", "beta", "gamma")

	routes := store.NewRouteStore(s.gw, cachemem.NewOrdered[*domain.Route](store.RoutesCollection, 16, time.Minute), testutil.NopLogger{}, 0)

	_, err := routes.FetchAll(ctx, in.ID)
	require.NoError(t, err)

	require.NoError(t, routes.MoveToPosition(ctx, in.ID, 0, 2))

	want := []string{seeded[1], seeded[2], seeded[0], seeded[3]}
	seq, ok := routes.Sequence(in.ID)
	require.True(t, ok)
	require.Equal(t, want, seq)
	st, _ := routes.State(in.ID)
	require.Equal(t, domain.StateSynchronized, st)

	server, err := s.gw.ListRoutes(ctx, in.ID)
	require.NoError(t, err)
	require.Equal(t, want, ids(server))
	for i, r := range server {
		require.Equal(t, i, r.Order)
	}
}

// Отказ сервера: перенос на место default отклоняется, сверка тихо откатывает локальный порядок.
func TestHTTP_MoveRoute_RejectedRollsBack_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()
	ctx := context.Background()

	in, seeded := s.seed(t, "alpha", "beta")

	routes := store.NewRouteStore(s.gw, cachemem.NewOrdered[*domain.Route](store.RoutesCollection, 16, time.Minute), testutil.NopLogger{}, 0)
	_, err := routes.FetchAll(ctx, in.ID)
	require.NoError(t, err)

	err = routes.MoveToPosition(ctx, in.ID, 0, 2)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)

	seq, _ := routes.Sequence(in.ID)
	require.Equal(t, seeded, seq)
}

// Удаление через шлюз: маршрут пропадает, позиции остаются непрерывными.
func TestHTTP_DeleteRoute_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()
	ctx := context.Background()

	in, seeded := s.seed(t, "alpha", "beta")

	routes := store.NewRouteStore(s.gw, cachemem.NewOrdered[*domain.Route](store.RoutesCollection, 16, time.Minute), testutil.NopLogger{}, 0)
	_, err := routes.FetchAll(ctx, in.ID)
	require.NoError(t, err)

	require.NoError(t, routes.Delete(ctx, seeded[0], in.ID))

	seq, _ := routes.Sequence(in.ID)
	require.Equal(t, seeded[1:], seq)

	// default удалить нельзя
	err = routes.Delete(ctx, seeded[2], in.ID)
	require.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
	seq, _ = routes.Sequence(in.ID)
	require.Equal(t, seeded[1:], seq)
}

// Создание интеграции через API: default-маршрут появляется автоматически.
func TestHTTP_CreateIntegration_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()
	ctx := context.Background()

	in, err := s.gw.CreateIntegration(ctx, &domain.IntegrationDraft{VerbalName: "Mail", Kind: "inbound_email"})
	require.NoError(t, err)
	require.NotEmpty(t, in.InboundEmail)
	require.False(t, in.IsAbleToAutoresolve)

	routes, err := s.gw.ListRoutes(ctx, in.ID)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.True(t, routes[0].IsDefault)

	_, err = s.gw.CreateIntegration(ctx, &domain.IntegrationDraft{VerbalName: "X", Kind: "carrier_pigeon"})
	require.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
}

// Предпросмотр шаблона и пользовательские действия через IntegrationStore поверх шлюза.
func TestHTTP_PreviewAndCustomButtons_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()
	ctx := context.Background()

	in, _ := s.seed(t)
	integrations := store.NewIntegrationStore(s.gw,
		cachemem.NewOrdered[*domain.Integration](store.IntegrationsCollection, 16, time.Minute), testutil.NopLogger{})

	preview, err := integrations.PreviewTemplate(ctx, in.ID, &domain.TemplatePreviewRequest{
		TemplateName: "web_title_template",
		TemplateBody: "{{ payload.title }} on {{ payload.labels.host }}",
		Payload:      map[string]any{"title": "CPU", "labels": map[string]any{"host": "db-1"}},
	})
	require.NoError(t, err)
	require.Equal(t, "CPU on db-1", preview.Preview)

	_, err = integrations.PreviewTemplate(ctx, in.ID, &domain.TemplatePreviewRequest{TemplateName: "web_title_template", TemplateBody: "{{ x"})
	require.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, s.buttons.Create(ctx, &domain.CustomButton{ID: "K1", IntegrationID: in.ID, Name: "Restart", Webhook: "https://h/restart"}))
	require.NoError(t, s.buttons.Create(ctx, &domain.CustomButton{ID: "K2", IntegrationID: in.ID, Name: "Page", Webhook: "https://h/page"}))

	buttons, err := integrations.LoadCustomButtons(ctx, in.ID)
	require.NoError(t, err)
	require.Len(t, buttons, 2)

	require.NoError(t, integrations.DeleteCustomButton(ctx, "K1"))
	cached, ok := integrations.CustomButtons(in.ID)
	require.True(t, ok)
	require.Len(t, cached, 1)
	require.Equal(t, "K2", cached[0].ID)

	require.ErrorIs(t, integrations.DeleteCustomButton(ctx, "K1"), domain.ErrNotFound)
	_, err = integrations.LoadCustomButtons(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// /ping, /ready/, 404 на неизвестный маршрут
func TestHTTP_Probes_And_404_TC(t *testing.T) {
	s := startStack(t)
	defer s.cleanup()

	resp, err := http.Get(s.ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))

	respReady, err := http.Get(s.ts.URL + "/ready/")
	require.NoError(t, err)
	defer respReady.Body.Close()
	require.Equal(t, http.StatusOK, respReady.StatusCode)

	resp404, err := http.Get(s.ts.URL + "/no/such/route")
	require.NoError(t, err)
	defer resp404.Body.Close()
	require.Equal(t, http.StatusNotFound, resp404.StatusCode)

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp404.Body).Decode(&got))
	require.Equal(t, "not found", got["error"])
}

// --- функции помощники ---

func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
