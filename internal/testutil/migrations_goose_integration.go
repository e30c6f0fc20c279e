//go:build integration

package testutil

import (
	"context"
	"log"
	"os"

	pgrepo "github.com/Gunvolt24/oncall_routes/internal/repo/postgres"
	"github.com/pressly/goose/v3"
)

// ApplyMigrationsGoose — применяет встроенные миграции из пакета migrations.
func ApplyMigrationsGoose(dsn string) error {
	goose.SetLogger(log.New(os.Stdout, "[goose] ", 0))
	return pgrepo.Migrate(context.Background(), dsn)
}
