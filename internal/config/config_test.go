package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, 10080, cfg.Auth.TokenExpiryMinutes)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diksiai.toml")
	content := `
[server]
port = 9000

[ai]
groq_api_key = "gsk-test"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "gsk-test", cfg.AI.GroqAPIKey)
	// Defaults survive a partial file.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DIKSIAI_AI__OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("DIKSIAI_SERVER__PORT", "7070")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sk-or-test", cfg.AI.OpenRouterAPIKey)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Database.URL = "postgres://localhost/diksiai"
		cfg.Auth.JWTSecret = strings.Repeat("s", 32)
		cfg.AI.GroqAPIKey = "gsk-test"
		return cfg
	}

	assert.NoError(t, Validate(valid()))

	missingDB := valid()
	missingDB.Database.URL = ""
	assert.Error(t, Validate(missingDB))

	shortSecret := valid()
	shortSecret.Auth.JWTSecret = "short"
	assert.Error(t, Validate(shortSecret))

	noKeys := valid()
	noKeys.AI.GroqAPIKey = ""
	noKeys.AI.OpenRouterAPIKey = ""
	assert.Error(t, Validate(noKeys))
}
