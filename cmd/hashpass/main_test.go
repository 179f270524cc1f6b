package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ferdiebergado/sulat/internal/config"
	"github.com/ferdiebergado/sulat/internal/platform/hash"
)

const testConfig = `{
	// keep hashing fast in tests
	"argon2": {"memory": 8192, "iterations": 1, "threads": 1, "salt_length": 16, "key_length": 32,},
}`

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func verify(t *testing.T, cfgFile, password, hashed string) {
	t.Helper()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := hash.NewArgon2Hasher(&cfg.Argon2).Verify(password, hashed)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("hash %q does not match %q", hashed, password)
	}
}

func TestRun_PasswordFlag(t *testing.T) {
	t.Parallel()

	cfgFile := writeConfig(t)
	var stdout, stderr bytes.Buffer

	if err := run([]string{"--config", cfgFile, "--password", "MySafeSpace"}, nil, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	hashed := strings.TrimSpace(stdout.String())
	if !strings.HasPrefix(hashed, "$argon2id$") {
		t.Fatalf("output = %q, want an argon2id hash", hashed)
	}

	verify(t, cfgFile, "mysafespace", hashed)
}

func TestRun_PipedPassword(t *testing.T) {
	t.Parallel()

	cfgFile := writeConfig(t)

	inPath := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(inPath, []byte("MyDayOne\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	stdin, err := os.Open(inPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { stdin.Close() })

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--config", cfgFile}, stdin, &stdout, &stderr); err != nil {
		t.Fatal(err)
	}

	verify(t, cfgFile, "mydayone", strings.TrimSpace(stdout.String()))
}

func TestRun_EmptyPassword(t *testing.T) {
	t.Parallel()

	inPath := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(inPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	stdin, err := os.Open(inPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { stdin.Close() })

	var stdout, stderr bytes.Buffer
	if err := run([]string{"--config", writeConfig(t)}, stdin, &stdout, &stderr); err == nil {
		t.Error("run() with empty password = nil error, want: error")
	}
}
