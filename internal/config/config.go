// Package config loads the runtime configuration for the planner's CLI and
// HTTP query surface. It never configures the declarative planning model
// itself (that has its own loader in internal/model), only the ambient
// knobs of the process hosting the engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anthropics/goap-engine/internal/domain"
)

// Config holds the engine host's runtime configuration. The serve
// subcommand reads ListenAddr and LogLevel; PlanCachePath,
// DefaultMaxExpansion, and ExpansionWarnRatio are defaulted and validated
// by Load but are not read by any caller in this module.
type Config struct {
	PlanCachePath       string  `json:"plan_cache_path"`
	ListenAddr          string  `json:"listen_addr"`
	LogLevel            string  `json:"log_level"`
	DefaultMaxExpansion int     `json:"default_max_expansion"`
	ExpansionWarnRatio  float64 `json:"expansion_warn_ratio"`
}

// Load reads a JSON config file, applies defaults, and validates. An empty
// path skips the file read and returns the default configuration, so
// callers with no mandatory config file (the serve subcommand) can share
// this one entry point.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.PlanCachePath == "" {
		c.PlanCachePath = "goap-plan-cache.db"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8900"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultMaxExpansion == 0 {
		c.DefaultMaxExpansion = 100000
	}
	if c.ExpansionWarnRatio == 0 {
		c.ExpansionWarnRatio = 0.8
	}
}

func (c *Config) validate() error {
	var problems []string

	if c.DefaultMaxExpansion <= 0 {
		problems = append(problems, "default_max_expansion must be positive")
	}
	if c.ExpansionWarnRatio <= 0 || c.ExpansionWarnRatio > 1 {
		problems = append(problems, "expansion_warn_ratio must be in (0, 1]")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "log_level must be one of debug, info, warn, error")
	}

	if len(problems) > 0 {
		return &domain.EngineError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
