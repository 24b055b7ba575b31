package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, then the YAML file at
// configPath (ignored when absent), then environment variables on top.
// Returns an error when a required value is still missing afterwards.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadFile(cfg, configPath); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.WorkDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		cfg.WorkDir = cwd
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile merges values from a YAML config file into cfg.
// A missing file is not an error; a malformed one is.
func loadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with any environment variables that are set.
func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("WORKDIR"); v != "" {
		cfg.WorkDir = v
	}
	if v := os.Getenv("SKILLS_DIR"); v != "" {
		cfg.SkillsDir = v
	}
	if v := os.Getenv("GEMCODE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return errors.New("OPENAI_API_KEY environment variable is not set")
	}
	if c.BaseURL == "" {
		return errors.New("OPENAI_BASE_URL environment variable is not set")
	}
	return nil
}
