package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ferdiebergado/sulat/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

const (
	driverPgx    = "pgx"
	driverSQLite = "sqlite"

	sqlitePragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
)

type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Connect opens and pings the database selected by cfg.Driver.
func Connect(signalCtx context.Context, cfg *config.Store) (*sql.DB, error) {
	slog.Info("Connecting to the database...", "driver", cfg.Driver)

	var driver, dsn string
	switch cfg.Driver {
	case config.DriverPostgres:
		driver, dsn = driverPgx, cfg.DSN
	case config.DriverSQLite:
		path := filepath.Clean(cfg.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		driver, dsn = driverSQLite, path+sqlitePragmas
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(signalCtx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.", "driver", cfg.Driver)

	return conn, nil
}
