package app

import (
	"os"

	"github.com/joho/godotenv"

	"tradecut/internal/domain"
)

// Defaults for the annealing service connection.
const (
	DefaultEndpoint = "https://cloud.dwavesys.com/sapi"
	DefaultSolver   = "Advantage_system4.1"
)

// Environment variables consulted by LoadConfig.
const (
	EnvToken    = "DWAVE_TOKEN"
	EnvEndpoint = "DWAVE_ENDPOINT"
	EnvSolver   = "DWAVE_SOLVER"
)

// Config holds the annealing service connection settings.
type Config struct {
	Token    string // API token, required
	Endpoint string // service base URL
	Solver   string // solver identifier
}

// LoadConfig reads the connection settings from envFile (when it exists)
// and the process environment, with the environment taking precedence. A
// missing token is a *domain.ConfigError; no graph or QUBO work may happen
// before this succeeds.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, &domain.ConfigError{Reason: "loading " + envFile + ": " + err.Error()}
			}
		}
	}

	cfg := Config{
		Token:    os.Getenv(EnvToken),
		Endpoint: os.Getenv(EnvEndpoint),
		Solver:   os.Getenv(EnvSolver),
	}
	if cfg.Token == "" {
		return Config{}, &domain.ConfigError{Reason: EnvToken + " not set (expected in the environment or a .env file)"}
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Solver == "" {
		cfg.Solver = DefaultSolver
	}
	return cfg, nil
}
