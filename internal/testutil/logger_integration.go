//go:build integration

package testutil

import "context"

// NopLogger — логгер для интеграционных тестов, где вывод не нужен.
type NopLogger struct{}

func (NopLogger) Infof(context.Context, string, ...any)  {}
func (NopLogger) Warnf(context.Context, string, ...any)  {}
func (NopLogger) Errorf(context.Context, string, ...any) {}
