package db

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/zhangwenhan0216/reservation/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies every pending goose migration found in migrations and
// returns the versions applied by this call, oldest first.
func Migrate(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) ([]string, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load migrations")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		var partial *goose.PartialError
		if errs.As(err, &partial) {
			results = partial.Applied
		}
	}

	applied := make([]string, 0, len(results))
	for _, r := range results {
		version := strings.TrimSuffix(path.Base(r.Source.Path), ".sql")
		slog.Info("migration applied", "version", version, "duration", r.Duration)
		applied = append(applied, version)
	}
	if err != nil {
		return applied, errs.Wrap(err, "failed to apply migrations")
	}
	return applied, nil
}
