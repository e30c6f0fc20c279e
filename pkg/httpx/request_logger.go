package httpx

import (
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/oncall_routes/internal/ports"
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные маршруты, которые не попадают в журнал запросов.
// /ws живёт долго и логируется самим хабом.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
	"/health":  {},
	"/ws":      {},
}

// RequestLogger — журнал HTTP-запросов с уровнем по статусу ответа:
// 5xx пишутся как ошибки, 4xx как предупреждения.
// Параметры пути (:id и т.п.) добавляются отдельными полями.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		route := c.FullPath()
		if _, skip := quietPaths[route]; skip {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		line := fmt.Sprintf(
			"http method=%s route=%s%s status=%d took=%s bytes=%d ip=%s%s",
			c.Request.Method, route, pathParams(c.Params),
			status, time.Since(began), c.Writer.Size(), c.ClientIP(),
			traceFields(c),
		)
		if len(c.Errors) > 0 {
			line += " err=" + strings.Join(c.Errors.Errors(), "; ")
		}

		switch {
		case status >= 500:
			log.Errorf(ctx, "%s", line)
		case status >= 400:
			log.Warnf(ctx, "%s", line)
		default:
			log.Infof(ctx, "%s", line)
		}
	}
}

// pathParams — " id=... route=..." для параметров пути.
func pathParams(params gin.Params) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range params {
		b.WriteString(" ")
		b.WriteString(p.Key)
		b.WriteString("=")
		b.WriteString(p.Value)
	}
	return b.String()
}

func traceFields(c *gin.Context) string {
	span, ok := ctxmeta.SpanIDFromContext(c.Request.Context())
	if !ok {
		return ""
	}
	return " span=" + span
}
