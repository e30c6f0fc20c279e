// Package migrations — SQL-миграции схемы эталонного API (goose).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
