//go:build !integration

package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/oncall_routes/internal/domain"
	"github.com/Gunvolt24/oncall_routes/internal/ports/mocks"
)

// --- Бенчмарки ---

// Список маршрутов интеграции — LEAN vs FULL пайплайн.
func BenchmarkHTTP_ListRoutes(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := newBenchHandler(b, makeRoutes("C1", n))

			const path = "/api/channel_filters/?alert_receive_channel=C1"
			b.Run("lean/no-mw", func(b *testing.B) {
				benchServe(b, makeLeanRouter(h), http.MethodGet, path, http.StatusOK)
			})
			b.Run("full/prod-mw", func(b *testing.B) {
				benchServe(b, makeFullRouter(h), http.MethodGet, path, http.StatusOK)
			})
		})
	}
}

// Перемещение маршрута: парсинг position и ответ 204 без тела.
func BenchmarkHTTP_MoveRoute(b *testing.B) {
	ctrl := gomock.NewController(b)
	svc := mocks.NewMockRouteService(ctrl)
	svc.EXPECT().Move(gomock.Any(), "R0001", 3).Return(nil).AnyTimes()
	h := NewHandler(Services{Routes: svc}, nopLogger{}, 2*time.Second)

	benchServe(b, makeFullRouter(h), http.MethodPut, "/api/channel_filters/R0001/move_to_position/?position=3", http.StatusNoContent)
}

// Неизвестный путь: цена роутера и JSON-ответа 404.
func BenchmarkHTTP_NotFound(b *testing.B) {
	benchServe(b, makeLeanRouter(newBenchHandler(b, nil)), http.MethodGet, "/api/nope/", http.StatusNotFound)
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- функции-помощники ---

func makeRoutes(integrationID string, n int) []*domain.Route {
	out := make([]*domain.Route, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &domain.Route{
			ID:            fmt.Sprintf("R%04d", i),
			IntegrationID: integrationID,
			Order:         i,
			FilteringTerm: fmt.Sprintf("severity=%d", i),
			IsDefault:     i == n-1,
		})
	}
	return out
}

func newBenchHandler(b *testing.B, routes []*domain.Route) *Handler {
	ctrl := gomock.NewController(b)
	svc := mocks.NewMockRouteService(ctrl)
	svc.EXPECT().List(gomock.Any(), gomock.Any()).Return(routes, nil).AnyTimes()
	return NewHandler(Services{Routes: svc}, nopLogger{}, 2*time.Second)
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — получаем меньшую аллокацию
	r.GET("/api/channel_filters/", h.listRoutes)
	r.GET("/api/channel_filters/:id/", h.getRoute)
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	// prod пайплайн из NewRouter
	return NewRouter(h, "")
}

func benchServe(b *testing.B, r *gin.Engine, method, path string, want int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != want {
				b.Fatalf("%s %s: status=%d want %d", method, path, w.Code, want)
			}
		}
	})
}
