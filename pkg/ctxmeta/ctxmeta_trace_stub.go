//go:build !otel || gopls

package ctxmeta

import "context"

// Без тега otel идентификаторов трассировки нет: логгер их не пишет,
// request id остаётся единственной корреляцией.

func TraceIDFromContext(context.Context) (string, bool) { return noTrace() }

func SpanIDFromContext(context.Context) (string, bool) { return noTrace() }

func noTrace() (string, bool) { return "", false }
