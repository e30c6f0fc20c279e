package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports/mocks"
	"github.com/Gunvolt24/oncall_routes/internal/usecase"
	"github.com/golang/mock/gomock"
)

func newCustomButtonService(t *testing.T) (*usecase.CustomButtonService, *mocks.MockCustomButtonRepository, *mocks.MockIntegrationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCustomButtonRepository(ctrl)
	integrations := mocks.NewMockIntegrationRepository(ctrl)
	return usecase.NewCustomButtonService(repo, integrations, noopLogger{}), repo, integrations
}

func TestCustomButtonService_Create(t *testing.T) {
	svc, repo, integrations := newCustomButtonService(t)
	data := `{"host":"{{ payload.host }}"}`

	gomock.InOrder(
		integrations.EXPECT().GetByID(gomock.Any(), "C1").Return(&domain.Integration{ID: "C1"}, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.CustomButton) error {
			if b.ID == "" || b.IntegrationID != "C1" || b.Name != "Restart" || b.Webhook != "https://hooks.example.com/restart" {
				t.Fatalf("unexpected button %+v", b)
			}
			if b.Data == nil || *b.Data != data {
				t.Fatalf("data: %v", b.Data)
			}
			return nil
		}),
	)

	got, err := svc.Create(context.Background(), &domain.CustomButtonDraft{
		IntegrationID: "C1",
		Name:          " Restart ",
		Webhook:       "https://hooks.example.com/restart",
		Data:          &data,
	})
	if err != nil || got.ID[0] != 'K' {
		t.Fatalf("create: %+v %v", got, err)
	}
}

func TestCustomButtonService_CreateRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		draft *domain.CustomButtonDraft
	}{
		{"nil", nil},
		{"no_integration", &domain.CustomButtonDraft{Name: "a", Webhook: "https://h/x"}},
		{"blank_name", &domain.CustomButtonDraft{IntegrationID: "C1", Name: "  ", Webhook: "https://h/x"}},
		{"relative_webhook", &domain.CustomButtonDraft{IntegrationID: "C1", Name: "a", Webhook: "/hooks/x"}},
		{"ftp_webhook", &domain.CustomButtonDraft{IntegrationID: "C1", Name: "a", Webhook: "ftp://h/x"}},
		{"no_host", &domain.CustomButtonDraft{IntegrationID: "C1", Name: "a", Webhook: "https:///x"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _, _ := newCustomButtonService(t)
			if _, err := svc.Create(context.Background(), tt.draft); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
		})
	}
}

func TestCustomButtonService_ListAndDelete(t *testing.T) {
	svc, repo, integrations := newCustomButtonService(t)
	ctx := context.Background()

	integrations.EXPECT().GetByID(gomock.Any(), "C1").Return(&domain.Integration{ID: "C1"}, nil)
	integrations.EXPECT().GetByID(gomock.Any(), "C9").Return(nil, domain.ErrNotFound)
	repo.EXPECT().ListByIntegration(gomock.Any(), "C1").Return([]*domain.CustomButton{{ID: "K1"}}, nil)
	repo.EXPECT().Delete(gomock.Any(), "K1").Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "K2").Return(domain.ErrNotFound)

	if got, err := svc.List(ctx, "C1"); err != nil || len(got) != 1 {
		t.Fatalf("list: %+v %v", got, err)
	}
	if _, err := svc.List(ctx, "C9"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown integration: want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "K1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, "K2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("delete missing: want ErrNotFound, got %v", err)
	}
}
