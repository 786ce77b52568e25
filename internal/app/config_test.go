package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tradecut/internal/app"
	"tradecut/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Setenv(app.EnvToken, "")
	t.Setenv(app.EnvEndpoint, "")
	t.Setenv(app.EnvSolver, "")
	os.Unsetenv(app.EnvToken)
	os.Unsetenv(app.EnvEndpoint)
	os.Unsetenv(app.EnvSolver)
}

// TestLoadConfig_MissingToken is the fail-fast scenario: no token anywhere
// yields a ConfigError naming DWAVE_TOKEN.
func TestLoadConfig_MissingToken(t *testing.T) {
	clearEnv(t)

	_, err := app.LoadConfig("")
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want *domain.ConfigError, got %v", err)
	}
	if !strings.Contains(err.Error(), "DWAVE_TOKEN") {
		t.Fatalf("error must name DWAVE_TOKEN, got %q", err.Error())
	}
}

// TestLoadConfig_Defaults checks the fixed endpoint and solver defaults.
func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(app.EnvToken, "DEV-secret")

	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Token != "DEV-secret" {
		t.Fatalf("bad token: %q", cfg.Token)
	}
	if cfg.Endpoint != app.DefaultEndpoint || cfg.Solver != app.DefaultSolver {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

// TestLoadConfig_EnvFile checks .env loading and that a missing file is not
// an error.
func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "DWAVE_TOKEN=file-token\nDWAVE_SOLVER=Advantage2_prototype\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Token != "file-token" || cfg.Solver != "Advantage2_prototype" {
		t.Fatalf("env file not honored: %+v", cfg)
	}

	// Absent file falls through to the (empty) environment.
	if _, err := app.LoadConfig(filepath.Join(dir, "nope.env")); err == nil {
		t.Fatal("want missing-token error when file is absent and env is empty")
	}
}
