package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	timex "github.com/ferdiebergado/sulat/internal/pkg/time"
	"github.com/tidwall/jsonc"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultAdminKey = "admin-secret-key-change-me"
)

var ErrInvalidConfig = errors.New("invalid config")

type App struct {
	Env      string `json:"env,omitempty" env:"ENV"`
	LogLevel string `json:"log_level,omitempty" env:"LOG_LEVEL"`
}

type Server struct {
	Port            int            `json:"port,omitempty" env:"PORT"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
	AllowedOrigin   string         `json:"allowed_origin,omitempty" env:"ALLOWED_ORIGIN"`
}

// Store selects where opened letters are kept. Path is used by the file and
// sqlite drivers, DSN by postgres.
type Store struct {
	Driver          string         `json:"driver,omitempty" env:"STORE_DRIVER"`
	Path            string         `json:"path,omitempty" env:"STORE_PATH"`
	DSN             string         `json:"dsn,omitempty" env:"STORE_DSN"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
}

type Admin struct {
	Key      string         `json:"key,omitempty" env:"ADMIN_KEY"`
	TokenTTL timex.Duration `json:"token_ttl,omitempty"`
}

type JWT struct {
	JTILength   uint32 `json:"jti_length,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	SecurityKey string `json:"-" env:"SECURITY_KEY"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Notifier struct {
	Heartbeat  timex.Duration `json:"heartbeat,omitempty"`
	BufferSize int            `json:"buffer_size,omitempty"`
}

type Roster struct {
	File string `json:"file,omitempty" env:"ROSTER_FILE"`
}

type Config struct {
	App      App      `json:"app"`
	Server   Server   `json:"server"`
	Store    Store    `json:"store"`
	Admin    Admin    `json:"admin"`
	JWT      JWT      `json:"jwt"`
	Argon2   Argon2   `json:"argon2"`
	Notifier Notifier `json:"notifier"`
	Roster   Roster   `json:"roster"`
}

func (c *Config) LogValue() slog.Value {
	storeDSN := ""
	if c.Store.DSN != "" {
		storeDSN = "*"
	}
	return slog.GroupValue(
		slog.Any("app", c.App),
		slog.Any("server", c.Server),
		slog.Group("store",
			slog.String("driver", c.Store.Driver),
			slog.String("path", c.Store.Path),
			slog.String("dsn", storeDSN),
		),
		slog.Group("admin",
			slog.String("key", "*"),
			slog.Duration("token_ttl", c.Admin.TokenTTL.Duration),
		),
		slog.Group("jwt",
			slog.String("issuer", c.JWT.Issuer),
			slog.Any("jti_length", c.JWT.JTILength),
		),
		slog.Any("argon2", c.Argon2),
		slog.Any("notifier", c.Notifier),
		slog.Any("roster", c.Roster),
	)
}

// Default returns the settings used when neither the config file nor the
// environment say otherwise.
func Default() *Config {
	return &Config{
		App: App{
			Env:      "development",
			LogLevel: "info",
		},
		Server: Server{
			Port:            3001,
			ReadTimeout:     timex.NewDuration(10 * time.Second),
			WriteTimeout:    timex.NewDuration(10 * time.Second),
			IdleTimeout:     timex.NewDuration(60 * time.Second),
			ShutdownTimeout: timex.NewDuration(10 * time.Second),
			MaxBodyBytes:    1 << 14,
			AllowedOrigin:   "*",
		},
		Store: Store{
			Driver:          DriverFile,
			Path:            filepath.Join("data", "opened-letters.json"),
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxIdleTime: timex.NewDuration(5 * time.Minute),
			ConnMaxLifetime: timex.NewDuration(30 * time.Minute),
			PingTimeout:     timex.NewDuration(5 * time.Second),
		},
		Admin: Admin{
			Key:      DefaultAdminKey,
			TokenTTL: timex.NewDuration(2 * time.Hour),
		},
		JWT: JWT{
			JTILength: 16,
			Issuer:    "sulat",
		},
		Argon2: Argon2{
			Memory:     64 * 1024,
			Iterations: 3,
			Threads:    2,
			SaltLength: 16,
			KeyLength:  32,
		},
		Notifier: Notifier{
			Heartbeat:  timex.NewDuration(30 * time.Second),
			BufferSize: 16,
		},
		Roster: Roster{
			File: "roster.yaml",
		},
	}
}

// Load reads cfgFile over the defaults, then applies environment overrides.
// The file may contain comments and trailing commas.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg := Default()

	if err := parseCfgFile(cfgFile, cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseCfgFile(cfgFile string, cfg *Config) error {
	cfgFile = filepath.Clean(cfgFile)
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return nil
}

func (c *Config) Validate() error {
	drivers := []string{DriverFile, DriverPostgres, DriverSQLite}
	if !slices.Contains(drivers, c.Store.Driver) {
		return fmt.Errorf("%w: store driver %q is not one of %v", ErrInvalidConfig, c.Store.Driver, drivers)
	}

	if c.Store.Driver == DriverPostgres && c.Store.DSN == "" {
		return fmt.Errorf("%w: store dsn is required for %s", ErrInvalidConfig, DriverPostgres)
	}

	if c.Store.Driver != DriverPostgres && c.Store.Path == "" {
		return fmt.Errorf("%w: store path is required for %s", ErrInvalidConfig, c.Store.Driver)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Server.Port)
	}

	if c.Admin.Key == "" {
		return fmt.Errorf("%w: admin key is empty", ErrInvalidConfig)
	}

	if c.Roster.File == "" {
		return fmt.Errorf("%w: roster file is required", ErrInvalidConfig)
	}

	return nil
}

// UsesDefaultAdminKey reports whether the admin key was left at its
// well-known default.
func (c *Config) UsesDefaultAdminKey() bool {
	return c.Admin.Key == DefaultAdminKey
}
