// Package config holds run-configuration defaults and the create-run
// request normalization rules.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Run defaults, overridable per request.
const (
	DefaultMaxTasks             = 8
	DefaultMaxStepsPerTask      = 6
	DefaultMaxTokensPerTask     = 60000
	DefaultHardCostCapUSD       = 2.0
	DefaultExecutionConcurrency = 3
	DefaultJudgeConcurrency     = 2
	DefaultWorkerCount          = 2

	DefaultRunProvider   = "openai"
	DefaultRunModel      = "gpt-4o-mini"
	DefaultJudgeProvider = "openai"
	DefaultJudgeModel    = "gpt-4o"

	DefaultModelTimeoutMs = 120000
	DefaultModelRetries   = 2
)

// Hard ceilings create-run requests cannot exceed.
const (
	MaxTasksCeiling            = 25
	MaxStepsCeiling            = 16
	MaxWorkerCount             = 8
	MaxExecutionConcurrency    = 8
	MaxJudgeConcurrencyCeiling = 8
)

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ServerConfig is the HTTP server's env-driven configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoadServerConfigFromEnv reads SERVER_HOST / SERVER_PORT with defaults.
func LoadServerConfigFromEnv() (*ServerConfig, error) {
	cfg := &ServerConfig{Host: "0.0.0.0", Port: 8080}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return nil, fmt.Errorf("invalid SERVER_PORT %q", port)
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
