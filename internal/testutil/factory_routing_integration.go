//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeIntegration — валидная интеграция и её маршрут по умолчанию.
func MakeIntegration(opts ...func(*domain.Integration)) (*domain.Integration, *domain.Route) {
	in := &domain.Integration{
		ID:                  "C" + UniqSuffix(),
		VerbalName:          "Grafana " + UniqSuffix(),
		Kind:                "grafana_alerting",
		IsAbleToAutoresolve: true,
	}
	for _, fn := range opts {
		fn(in)
	}
	def := &domain.Route{ID: "R" + UniqSuffix(), IntegrationID: in.ID, IsDefault: true}
	return in, def
}

// MakeRoute — обычный маршрут интеграции с regex-условием.
func MakeRoute(integrationID, term string) *domain.Route {
	return &domain.Route{
		ID:            "R" + UniqSuffix(),
		IntegrationID: integrationID,
		FilteringTerm: term,
		NotifyInSlack: true,
	}
}

func WithName(name string) func(*domain.Integration) {
	return func(in *domain.Integration) { in.VerbalName = name }
}

func WithTeam(team string) func(*domain.Integration) {
	return func(in *domain.Integration) { in.TeamID = &team }
}
