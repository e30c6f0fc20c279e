package httpx_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type bindTarget struct {
	Name string `json:"name"`
}

func ctxWithBody(body io.Reader) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", body)
	return c
}

// Тело неизвестной длины: httptest выставляет ContentLength = -1.
func unknownLength(s string) io.Reader { return io.MultiReader(strings.NewReader(s)) }

func TestBindOptional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      io.Reader
		wantBound bool
		wantName  string
		wantErr   bool
	}{
		{name: "nil_body", body: nil},
		{name: "no_body", body: http.NoBody},
		{name: "whitespace", body: strings.NewReader("  \r\n")},
		{name: "empty_unknown_length", body: unknownLength("")},
		{name: "object", body: strings.NewReader(`{"name":"a"}`), wantBound: true, wantName: "a"},
		{name: "object_unknown_length", body: unknownLength(`{"name":"b"}`), wantBound: true, wantName: "b"},
		{name: "unknown_field", body: strings.NewReader(`{"nick":"a"}`), wantBound: true, wantErr: true},
		{name: "trailing_data", body: strings.NewReader(`{"name":"a"} {}`), wantBound: true, wantErr: true},
		{name: "malformed", body: strings.NewReader(`{"name":`), wantBound: true, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bindTarget
			bound, err := httpx.BindOptional(ctxWithBody(tt.body), &out)
			if bound != tt.wantBound {
				t.Fatalf("bound = %t, want %t", bound, tt.wantBound)
			}
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("want ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Name != tt.wantName {
				t.Fatalf("name = %q, want %q", out.Name, tt.wantName)
			}
		})
	}
}

func TestBindStrict_EmptyBodyRejected(t *testing.T) {
	t.Parallel()

	for _, body := range []io.Reader{nil, http.NoBody, strings.NewReader(""), unknownLength("")} {
		var out bindTarget
		if err := httpx.BindStrict(ctxWithBody(body), &out); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("body %T: want ErrValidation, got %v", body, err)
		}
	}
}
