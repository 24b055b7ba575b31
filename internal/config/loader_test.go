package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY",
		"OPENAI_BASE_URL",
		"OPENAI_MODEL",
		"WORKDIR",
		"SKILLS_DIR",
		"GEMCODE_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")
	t.Setenv("OPENAI_MODEL", "test-model")
	t.Setenv("WORKDIR", "/tmp")
	t.Setenv("SKILLS_DIR", "/tmp/skills")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "test-model", cfg.Model)
	assert.Equal(t, "/tmp", cfg.WorkDir)
	assert.Equal(t, "/tmp/skills", cfg.SkillsDir)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, "info", cfg.LogLevel)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, cfg.WorkDir)
	assert.Empty(t, cfg.SkillsDir)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")

	_, err := Load("")
	require.Error(t, err)
	assert.Equal(t, "OPENAI_API_KEY environment variable is not set", err.Error())
}

func TestLoad_MissingBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	_, err := Load("")
	require.Error(t, err)
	assert.Equal(t, "OPENAI_BASE_URL environment variable is not set", err.Error())
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
baseUrl: https://file.example.com/v1
model: file-model
logLevel: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://file.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "file-model", cfg.Model)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "https://env.example.com/v1")
	t.Setenv("OPENAI_MODEL", "env-model")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
baseUrl: https://file.example.com/v1
model: file-model
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/v1", cfg.BaseURL)
	assert.Equal(t, "env-model", cfg.Model)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("model: [unclosed"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_APIKeyNotReadFromFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("apiKey: leaked\n"), 0644))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Equal(t, "OPENAI_API_KEY environment variable is not set", err.Error())
}
