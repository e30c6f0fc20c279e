package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/config"
	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports/mocks"
	rest "github.com/Gunvolt24/oncall_routes/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type apiMocks struct {
	routes       *mocks.MockRouteService
	integrations *mocks.MockIntegrationService
	escalations  *mocks.MockEscalationService
	baseURL      string
}

// startAPI — эталонный API поверх моков сервисов; routectl ходит в него по HTTP.
func startAPI(t *testing.T) *apiMocks {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := &apiMocks{
		routes:       mocks.NewMockRouteService(ctrl),
		integrations: mocks.NewMockIntegrationService(ctrl),
		escalations:  mocks.NewMockEscalationService(ctrl),
	}
	h := rest.NewHandler(rest.Services{
		Routes:       m.routes,
		Integrations: m.integrations,
		Escalations:  m.escalations,
	}, nopLogger{}, 0)

	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)
	m.baseURL = ts.URL + "/api"
	return m
}

// run — routectl с профилем, указывающим на тестовый API.
func run(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvCLIBaseURL, "")
	t.Setenv(config.EnvCLIToken, "")
	t.Setenv(config.EnvCLITimeout, "")

	profile := filepath.Join(t.TempDir(), "routectl.toml")
	body := "base_url = \"" + baseURL + "\"\ntimeout = \"5s\"\n"
	if err := os.WriteFile(profile, []byte(body), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", profile}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func routesOf(ids ...string) []*domain.Route {
	out := make([]*domain.Route, 0, len(ids))
	for i, id := range ids {
		out = append(out, &domain.Route{
			ID:                id,
			IntegrationID:     "I1",
			Order:             i,
			FilteringTerm:     `{{ payload.env == "` + id + `" }}`,
			FilteringTermType: domain.FilteringTermJinja2,
			IsDefault:         i == len(ids)-1,
		})
	}
	return out
}

func TestRoutesList_JSON(t *testing.T) {
	m := startAPI(t)
	m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b", "c"), nil)
	m.escalations.EXPECT().List(gomock.Any()).Return(nil, nil)

	out, err := run(t, m.baseURL, "routes", "list", "I1")
	if err != nil {
		t.Fatalf("routes list: %v", err)
	}

	var got routesOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if !slices.Equal(got.Sequence, []string{"a", "b", "c"}) {
		t.Fatalf("sequence: %v", got.Sequence)
	}
	if got.Routes[2].Wording != "Default" || got.Routes[2].ShowTemplate {
		t.Fatalf("default route view wrong: %+v", got.Routes[2])
	}
}

func TestRoutesList_Tree(t *testing.T) {
	m := startAPI(t)
	m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b"), nil)
	m.escalations.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.integrations.EXPECT().Get(gomock.Any(), "I1").
		Return(&domain.Integration{ID: "I1", VerbalName: "Prod alerts", Kind: "webhook"}, nil)
	m.integrations.EXPECT().Counters(gomock.Any()).
		Return(map[string]domain.Counters{"I1": {AlertsCount: 7, AlertGroupsCount: 2}}, nil)

	out, err := run(t, m.baseURL, "routes", "list", "I1", "--tree")
	if err != nil {
		t.Fatalf("routes list --tree: %v", err)
	}
	for _, want := range []string{"Prod alerts (webhook)", "alerts=7 groups=2", "If ", "Default", "Add route"} {
		if !strings.Contains(out, want) {
			t.Fatalf("tree must contain %q:\n%s", want, out)
		}
	}
}

func TestRoutesMove_PrintsReconciledOrder(t *testing.T) {
	m := startAPI(t)
	gomock.InOrder(
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b", "c"), nil),
		m.routes.EXPECT().Move(gomock.Any(), "b", 0).Return(nil),
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("b", "a", "c"), nil),
	)

	out, err := run(t, m.baseURL, "routes", "move", "I1", "1", "0")
	if err != nil {
		t.Fatalf("routes move: %v", err)
	}
	if strings.TrimSpace(out) != "order: [b a c]" {
		t.Fatalf("output: %q", out)
	}
}

func TestRoutesMove_RejectedShowsServerOrder(t *testing.T) {
	m := startAPI(t)
	gomock.InOrder(
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b", "c"), nil),
		m.routes.EXPECT().Move(gomock.Any(), "b", 2).Return(domain.ErrValidation),
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b", "c"), nil),
	)

	out, err := run(t, m.baseURL, "routes", "move", "I1", "1", "2")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if strings.TrimSpace(out) != "order: [a b c]" {
		t.Fatalf("output: %q", out)
	}
}

func TestRoutesMove_BadPosition(t *testing.T) {
	m := startAPI(t)
	if _, err := run(t, m.baseURL, "routes", "move", "I1", "x", "0"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestRoutesDelete(t *testing.T) {
	m := startAPI(t)
	gomock.InOrder(
		m.routes.EXPECT().Get(gomock.Any(), "b").Return(routesOf("a", "b", "c")[1], nil),
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "b", "c"), nil),
		m.routes.EXPECT().Delete(gomock.Any(), "b").Return(nil),
		m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "c"), nil),
	)

	out, err := run(t, m.baseURL, "routes", "delete", "b")
	if err != nil {
		t.Fatalf("routes delete: %v", err)
	}
	if strings.TrimSpace(out) != "deleted b" {
		t.Fatalf("output: %q", out)
	}
}

func TestRoutesSetChain(t *testing.T) {
	tests := []struct {
		name      string
		chain     string
		wantClear bool
		wantOut   string
	}{
		{"attach", "E1", false, "Edit escalation chain: id=E1&page=escalations"},
		{"detach", "none", true, "Add an escalation chain: page=escalations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := startAPI(t)
			m.routes.EXPECT().Update(gomock.Any(), "R1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, p *domain.RoutePatch) (*domain.Route, error) {
					if p.ClearEscalationChain != tt.wantClear {
						t.Errorf("clear: want %v, got %v", tt.wantClear, p.ClearEscalationChain)
					}
					r := &domain.Route{ID: "R1", IntegrationID: "I1"}
					if !tt.wantClear {
						r.EscalationChainID = p.EscalationChainID
					}
					return r, nil
				})

			out, err := run(t, m.baseURL, "routes", "set-chain", "R1", tt.chain)
			if err != nil {
				t.Fatalf("set-chain: %v", err)
			}
			if strings.TrimSpace(out) != tt.wantOut {
				t.Fatalf("output: %q", out)
			}
		})
	}
}

func TestRoutesAdd(t *testing.T) {
	m := startAPI(t)
	m.routes.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.RouteDraft) (*domain.Route, error) {
			if d.IntegrationID != "I1" || d.FilteringTerm != "critical" || d.FilteringTermType != domain.FilteringTermRegex {
				t.Errorf("draft: %+v", d)
			}
			return &domain.Route{ID: "n", IntegrationID: "I1", Order: 1}, nil
		})
	m.routes.EXPECT().List(gomock.Any(), "I1").Return(routesOf("a", "n", "c"), nil)

	out, err := run(t, m.baseURL, "routes", "add", "I1", "--term", "critical", "--regex")
	if err != nil {
		t.Fatalf("routes add: %v", err)
	}
	if strings.TrimSpace(out) != "created n at position 1 of 3" {
		t.Fatalf("output: %q", out)
	}
}

func TestIntegrationsList_JSON(t *testing.T) {
	m := startAPI(t)
	m.integrations.EXPECT().List(gomock.Any(), "graf").
		Return([]*domain.Integration{{ID: "I1", VerbalName: "Grafana", Kind: "grafana"}}, nil)

	out, err := run(t, m.baseURL, "integrations", "list", "--search", "graf")
	if err != nil {
		t.Fatalf("integrations list: %v", err)
	}
	var got []domain.Integration
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 1 || got[0].ID != "I1" {
		t.Fatalf("integrations: %+v", got)
	}
}

func TestTemplatesShow_JSON(t *testing.T) {
	m := startAPI(t)
	title := "{{ payload.title }}"
	m.integrations.EXPECT().Templates(gomock.Any(), "I1").
		Return(domain.Templates{"slack_title_template": &title}, nil).Times(2)

	out, err := run(t, m.baseURL, "templates", "show", "I1")
	if err != nil {
		t.Fatalf("templates show: %v", err)
	}
	var rows []templateRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, r := range rows {
		if r.Block == "Slack" {
			t.Fatalf("slack block must be hidden without --slack")
		}
	}

	out, err = run(t, m.baseURL, "templates", "show", "I1", "--slack")
	if err != nil {
		t.Fatalf("templates show --slack: %v", err)
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := false
	for _, r := range rows {
		if r.Name == "slack_title_template" {
			found = r.Value != nil && *r.Value == title
		}
	}
	if !found {
		t.Fatalf("slack title value missing: %+v", rows)
	}
}

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.jsonl")
	content := `{"alert_receive_channel":"I1","filtering_term":"env=prod","filtering_term_type":0}` + "\n" +
		`{"alert_receive_channel":"I1","filtering_term":"{{ broken","filtering_term_type":1}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"validate", "--in", path})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 1 {
		t.Fatalf("want 1 valid draft, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(errOut.String(), "1 valid / 1 invalid") {
		t.Fatalf("summary: %q", errOut.String())
	}
}

func TestValidate_Stdin(t *testing.T) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetIn(strings.NewReader(`{"alert_receive_channel":"I1","filtering_term":"","filtering_term_type":0}` + "\n"))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"validate"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no valid drafts expected, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "line 1:") || !strings.Contains(errOut.String(), "0 valid / 1 invalid") {
		t.Fatalf("stderr: %q", errOut.String())
	}
}
