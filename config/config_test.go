package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test helper: a getenv backed by a map
func mapEnv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

// TestResolve_Defaults verifies defaults apply with no file and no
// environment
func TestResolve_Defaults(t *testing.T) {
	cfg := Resolve(nil, mapEnv(nil))

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.RulesPath)
}

// TestResolve_FileOverridesDefaults verifies file values replace defaults
// and empty file values are ignored
func TestResolve_FileOverridesDefaults(t *testing.T) {
	file := &FileConfig{Rules: "/rules.yaml"}
	file.Log.Level = "debug"

	cfg := Resolve(file, nil)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "empty file value should keep default")
	assert.Equal(t, "/rules.yaml", cfg.RulesPath)
}

// TestResolve_EnvOverridesFile verifies the environment wins over the file
func TestResolve_EnvOverridesFile(t *testing.T) {
	file := &FileConfig{Rules: "/file.yaml"}
	file.Log.Format = "logfmt"

	cfg := Resolve(file, mapEnv(map[string]string{
		EnvLogFormat: "json",
		EnvRules:     "/env.yaml",
	}))

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/env.yaml", cfg.RulesPath)
}

// TestHelper_SetConfigPath verifies the last path set is kept
func TestHelper_SetConfigPath(t *testing.T) {
	h := NewHelper()
	assert.Nil(t, h.configPath)

	h.SetConfigPath("/first.toml")
	h.SetConfigPath("/second.toml")

	if assert.NotNil(t, h.configPath) {
		assert.Equal(t, "/second.toml", *h.configPath)
	}
}
