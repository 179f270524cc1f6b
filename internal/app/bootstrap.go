package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/letter"
	"github.com/ferdiebergado/sulat/internal/middleware"
	"github.com/ferdiebergado/sulat/internal/pkg/logging"
	"github.com/ferdiebergado/sulat/internal/pkg/security"
	"github.com/ferdiebergado/sulat/internal/platform/db"
	"github.com/ferdiebergado/sulat/internal/platform/hash"
	"github.com/ferdiebergado/sulat/internal/roster"
)

const securityKeyLen = 32

type Options struct {
	ConfigFile string
	EnvFile    string
}

func Run(signalCtx context.Context, opts Options) error {
	slog.Info("Initializing...")

	if os.Getenv("ENV") != "production" {
		if err := loadEnvFile(opts.EnvFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return err
	}

	logging.SetupLogger(cfg.App.Env, cfg.App.LogLevel, os.Stdout)

	if cfg.UsesDefaultAdminKey() {
		slog.Warn("Using the default admin key. Set ADMIN_KEY before going live.")
	}

	securityKey, err := resolveSecurityKey(cfg.JWT.SecurityKey)
	if err != nil {
		return err
	}

	repo, closeStore, err := openStore(signalCtx, &cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher := hash.NewArgon2Hasher(&cfg.Argon2)
	people, err := roster.Load(cfg.Roster.File, hasher)
	if err != nil {
		return err
	}

	provider := newProvider(cfg, securityKey, repo, people, hasher)

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
	}
	api := New(cfg, provider, middlewares)

	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("No env file found.", "file", path)
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := env.Load(path); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// resolveSecurityKey falls back to a random key, which invalidates admin
// tokens on every restart.
func resolveSecurityKey(key string) (string, error) {
	if key != "" {
		return key, nil
	}

	slog.Warn("SECURITY_KEY is not set, generating a random key. Admin tokens will not survive a restart.")
	key, err := security.GenerateRandomBytesURLEncoded(securityKeyLen)
	if err != nil {
		return "", fmt.Errorf("generate security key: %w", err)
	}
	return key, nil
}

// openStore returns the repository selected by cfg.Driver and a func that
// releases it.
func openStore(ctx context.Context, cfg *config.Store) (letter.Repository, func(), error) {
	if cfg.Driver == config.DriverFile {
		repo, err := letter.NewFileRepository(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	conn, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	closeConn := func() {
		if err := conn.Close(); err != nil {
			slog.Error("close database", "reason", err)
		}
	}

	repo, err := letter.NewSQLRepository(ctx, conn, cfg.Driver)
	if err != nil {
		closeConn()
		return nil, nil, err
	}

	return repo, closeConn, nil
}
