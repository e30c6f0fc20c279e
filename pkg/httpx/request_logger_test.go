package httpx_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Gunvolt24/oncall_routes/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type recordLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordLogger) Infof(_ context.Context, f string, a ...any)  { l.add("INFO", f, a...) }
func (l *recordLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("WARN", f, a...) }
func (l *recordLogger) Errorf(_ context.Context, f string, a ...any) { l.add("ERROR", f, a...) }

func TestRequestLogger_LevelsAndParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		path      string
		wantLevel string
		wantPart  string
	}{
		{name: "ok", path: "/routes/R1", wantLevel: "INFO", wantPart: "route=/routes/:id id=R1 status=200"},
		{name: "client error", path: "/missing/R2", wantLevel: "WARN", wantPart: "status=404"},
		{name: "server error", path: "/boom", wantLevel: "ERROR", wantPart: "status=500"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			log := &recordLogger{}
			r := gin.New()
			r.Use(httpx.RequestLogger(log))
			r.GET("/routes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
			r.GET("/missing/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
			r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			if len(log.lines) != 1 {
				t.Fatalf("want 1 line, got %v", log.lines)
			}
			line := log.lines[0]
			if !strings.HasPrefix(line, tt.wantLevel+" ") {
				t.Fatalf("level: want %s, got %q", tt.wantLevel, line)
			}
			if !strings.Contains(line, tt.wantPart) {
				t.Fatalf("line %q must contain %q", line, tt.wantPart)
			}
		})
	}
}

func TestRequestLogger_SkipsServicePaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := &recordLogger{}
	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	for _, p := range []string{"/ping", "/metrics", "/ws"} {
		r.GET(p, func(c *gin.Context) { c.Status(http.StatusOK) })
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, http.NoBody))
	}
	if len(log.lines) != 0 {
		t.Fatalf("service paths must not be logged: %v", log.lines)
	}
}
