package httpx_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с query-строкой
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"equal_min", 1, 1, 10, 1},
		{"equal_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d,%d,%d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParsePage_Defaults(t *testing.T) {
	t.Parallel()

	c := ctxWithQuery("")
	page, size := httpx.ParsePage(c, 20, 50)
	if page != 1 || size != 20 {
		t.Fatalf("got page=%d size=%d, want 1/20", page, size)
	}

	c = ctxWithQuery("")
	if _, size = httpx.ParsePage(c, 100, 50); size != 50 {
		t.Fatalf("default size above max must be clamped, got %d", size)
	}
}

func TestParsePage_QueryProvided(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rawQuery  string
		wantPage  int
		wantSize  int
	}{
		{"ok_both", "page=3&page_size=10", 3, 10},
		{"page_zero_ignored", "page=0", 1, 20},
		{"page_negative_ignored", "page=-2", 1, 20},
		{"page_non_int_ignored", "page=foo", 1, 20},
		{"size_above_max_clamped", "page_size=999", 1, 50},
		{"size_zero_clamped_to_min", "page_size=0", 1, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := ctxWithQuery(tt.rawQuery)
			page, size := httpx.ParsePage(c, 20, 50)
			if page != tt.wantPage || size != tt.wantSize {
				t.Fatalf("got page=%d size=%d, want %d/%d (query=%q)",
					page, size, tt.wantPage, tt.wantSize, tt.rawQuery)
			}
		})
	}
}

func TestRequiredIntQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rawQuery string
		want     int
		wantErr  bool
	}{
		{"ok", "position=2", 2, false},
		{"zero", "position=0", 0, false},
		{"missing", "", 0, true},
		{"negative", "position=-1", 0, true},
		{"not_int", "position=x", 0, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := httpx.RequiredIntQuery(ctxWithQuery(tt.rawQuery), "position")
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %d err=%v, want %d", got, err, tt.want)
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("wrap: %w", domain.ErrNotFound), http.StatusNotFound},
		{domain.ErrInvalidEvent, http.StatusBadRequest},
		{fmt.Errorf("%w: dial", domain.ErrRemoteUnavailable), http.StatusBadGateway},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := httpx.StatusFromError(tt.err); got != tt.want {
			t.Fatalf("StatusFromError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBindStrict(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"ok", `{"name":"a"}`, false},
		{"unknown field", `{"name":"a","extra":1}`, true},
		{"trailing data", `{"name":"a"}{}`, true},
		{"broken", `{"name":`, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.raw))

			var got body
			err := httpx.BindStrict(c, &got)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
				return
			}
			if err != nil || got.Name != "a" {
				t.Fatalf("unexpected: %+v err=%v", got, err)
			}
		})
	}
}
