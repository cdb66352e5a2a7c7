// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/angelamos/memorial/migrations"
)

// Migrate applies every pending goose migration embedded in the binary.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	return MigrateFS(ctx, db, migrations.FS, logger)
}

func MigrateFS(
	ctx context.Context,
	db *sql.DB,
	fsys fs.FS,
	logger *slog.Logger,
) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	if logger != nil {
		for _, res := range results {
			logger.Info("migration applied",
				"version", res.Source.Version,
				"path", res.Source.Path,
				"duration", res.Duration,
			)
		}
	}

	return nil
}
