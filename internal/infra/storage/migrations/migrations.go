package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.sql
var files embed.FS

var (
	// ErrReadMigrations не удалось прочитать встроенные миграции
	ErrReadMigrations = errors.New("migrations: failed to read embedded files")

	// ErrApplyMigration ошибка применения миграции
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

const (
	createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`
	selectVersion       = `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	insertVersion       = `INSERT INTO schema_migrations (version) VALUES ($1)`
)

// Names имена миграций в порядке применения
func Names() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Apply применяет ещё не применённые миграции и возвращает их имена
func Apply(ctx context.Context, db DBExecutor) ([]string, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return nil, fmt.Errorf("%w: schema_migrations: %v", ErrApplyMigration, err)
	}

	applied := make([]string, 0, len(names))
	for _, name := range names {
		var done bool
		if err := db.QueryRowContext(ctx, selectVersion, name).Scan(&done); err != nil {
			return applied, fmt.Errorf("%w: check %s: %v", ErrApplyMigration, name, err)
		}
		if done {
			continue
		}

		body, err := files.ReadFile(name)
		if err != nil {
			return applied, fmt.Errorf("%w: %v", ErrReadMigrations, err)
		}

		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrApplyMigration, name, err)
		}
		if _, err := db.ExecContext(ctx, insertVersion, name); err != nil {
			return applied, fmt.Errorf("%w: record %s: %v", ErrApplyMigration, name, err)
		}

		applied = append(applied, name)
	}

	return applied, nil
}
