//go:build integration

package letter_test

import (
	"os"
	"testing"
	"time"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/letter"
	"github.com/ferdiebergado/sulat/internal/platform/db"
	timex "github.com/ferdiebergado/sulat/internal/pkg/time"
)

func TestIntegrationSQLRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		t.Skip("STORE_DSN is not set")
	}

	cfg := &config.Store{
		Driver:       config.DriverPostgres,
		DSN:          dsn,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		PingTimeout:  timex.NewDuration(5 * time.Second),
	}

	conn, err := db.Connect(t.Context(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	repo, err := letter.NewSQLRepository(t.Context(), conn, config.DriverPostgres)
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Reset(t.Context()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if _, err := conn.Exec("DELETE FROM opened_letters"); err != nil {
			t.Log(err)
		}
	})

	exerciseRepository(t, repo)
}
