// Package config provides configuration management for gemcode.
// Values come from an optional YAML file in the data directory, overridden by
// environment variables. The environment is the canonical interface; the file
// only supplies defaults for repeated settings like the endpoint and model.
package config

// DefaultModel is the model used when OPENAI_MODEL is not set.
const DefaultModel = "MiniMax-M2.5"

// Config holds everything gemcode needs before a session can be constructed.
type Config struct {
	// APIKey authenticates against the completion endpoint (OPENAI_API_KEY).
	// Never read from the config file.
	APIKey string `yaml:"-"`

	// BaseURL is the OpenAI-compatible endpoint address (OPENAI_BASE_URL).
	BaseURL string `yaml:"baseUrl"`

	// Model is the model identifier sent with every request (OPENAI_MODEL).
	Model string `yaml:"model"`

	// WorkDir is the directory tools execute in (WORKDIR, default: process cwd).
	WorkDir string `yaml:"workdir"`

	// SkillsDir points at a directory of skill documents (SKILLS_DIR).
	// Empty means skills are disabled.
	SkillsDir string `yaml:"skillsDir"`

	// LogLevel controls logging verbosity (GEMCODE_LOG_LEVEL).
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		LogLevel: "info",
	}
}
