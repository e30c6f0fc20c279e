package httpx

import (
	"github.com/Gunvolt24/oncall_routes/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxRequestIDLen — длиннее не принимаем: id уходит дальше в заголовках шлюза и Kafka.
const maxRequestIDLen = 128

// RequestIDMiddleware — request_id запроса: берётся из X-Request-ID (консоль,
// routectl) либо генерируется, кладётся в контекст и возвращается в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(ctxmeta.HeaderRequestID)
		if !acceptableRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Header(ctxmeta.HeaderRequestID, rid)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}

// acceptableRequestID — непустой id из печатных ASCII-символов без пробелов.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
