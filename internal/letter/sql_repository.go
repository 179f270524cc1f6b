package letter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ferdiebergado/sulat/internal/config"
)

// SQLRepository keeps opened letters in the opened_letters table. It works
// with both postgres and sqlite.
type SQLRepository struct {
	db      *sql.DB
	dialect string
}

var _ Repository = (*SQLRepository)(nil)

const querySchema = `
CREATE TABLE IF NOT EXISTS opened_letters (
    name TEXT PRIMARY KEY,
    opened_at BIGINT NOT NULL
)
`

// NewSQLRepository creates the opened_letters table when it does not exist.
// dialect is config.DriverPostgres or config.DriverSQLite.
func NewSQLRepository(ctx context.Context, db *sql.DB, dialect string) (*SQLRepository, error) {
	if dialect != config.DriverPostgres && dialect != config.DriverSQLite {
		return nil, fmt.Errorf("unsupported sql dialect: %q", dialect)
	}

	if _, err := db.ExecContext(ctx, querySchema); err != nil {
		return nil, fmt.Errorf("create opened_letters table: %w", err)
	}

	slog.Info("Using database store.", "dialect", dialect)
	return &SQLRepository{db: db, dialect: dialect}, nil
}

// rebind turns ? placeholders into $n for postgres.
func (r *SQLRepository) rebind(query string) string {
	if r.dialect != config.DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

const queryList = "SELECT name FROM opened_letters ORDER BY opened_at, name"

func (r *SQLRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("%w: list opened letters: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("letter repository: scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("letter repository: iterate rows: %w", err)
	}

	return names, nil
}

const queryAdd = `
INSERT INTO opened_letters (name, opened_at)
VALUES (?, ?)
ON CONFLICT (name) DO NOTHING
`

func (r *SQLRepository) Add(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.rebind(queryAdd), name, time.Now().UnixNano())
	if err != nil {
		return false, fmt.Errorf("%w: add %q: %v", ErrQueryFailed, name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("letter repository: rows affected: %w", err)
	}
	return n > 0, nil
}

const queryRemove = "DELETE FROM opened_letters WHERE name = ?"

func (r *SQLRepository) Remove(ctx context.Context, name string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.rebind(queryRemove), name)
	if err != nil {
		return false, fmt.Errorf("%w: remove %q: %v", ErrQueryFailed, name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("letter repository: rows affected: %w", err)
	}
	return n > 0, nil
}

const queryReset = "DELETE FROM opened_letters"

func (r *SQLRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, queryReset); err != nil {
		return fmt.Errorf("%w: reset: %v", ErrQueryFailed, err)
	}
	return nil
}
